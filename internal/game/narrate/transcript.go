package narrate

import (
	"fmt"
	"io"
	"os"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenTranscript returns the writer narration should go to. An empty path
// selects stdout; any other path is opened for appending, created if needed.
//
// Postcondition: closing the result never closes stdout.
func OpenTranscript(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening transcript %s: %w", path, err)
	}
	return f, nil
}
