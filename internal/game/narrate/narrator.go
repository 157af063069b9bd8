// Package narrate provides the textual output channel the game writes its
// narrative lines to.
package narrate

import (
	"io"

	"go.uber.org/zap"
)

// Narrator writes narrative lines to an output channel.
//
// A nil *Narrator discards everything.
type Narrator struct {
	out    io.Writer
	logger *zap.Logger
}

// New creates a Narrator writing to out.
//
// Precondition: out must be non-nil.
// Postcondition: a nil logger is replaced by zap.NewNop().
func New(out io.Writer, logger *zap.Logger) *Narrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Narrator{out: out, logger: logger}
}

// Say writes text followed by a newline.
//
// Write failures are logged and otherwise ignored; callers still return the
// text they narrated.
func (n *Narrator) Say(text string) {
	if n == nil {
		return
	}
	if _, err := io.WriteString(n.out, text+"\n"); err != nil {
		n.logger.Warn("writing narration", zap.Error(err))
	}
}
