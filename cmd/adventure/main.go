// Package main provides the adventure demo binary. It builds the classic
// three-room world and narrates a fixed walkthrough of it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/narrate"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and environment only")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}

	err = run(cfg, logger)
	if err != nil {
		logger.Error("adventure failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run plays the walkthrough. Every resource it opens is released before it
// returns, including on error.
func run(cfg config.Config, logger *zap.Logger) error {
	start := time.Now()

	out, err := narrate.OpenTranscript(cfg.Game.Transcript)
	if err != nil {
		return err
	}
	defer out.Close()

	sess := session.New(out, logger)
	buildWorld(sess)
	logger.Info("world built",
		zap.Int("rooms", sess.World().RoomCount()),
		zap.Int64("enemies", sess.NPCs().Counters().Created()),
	)

	startRoom, ok := sess.World().FindRoom(cfg.Game.StartRoom)
	if !ok {
		return fmt.Errorf("unknown start room %q", cfg.Game.StartRoom)
	}

	tour := newWalkthrough(sess.Logger())
	end := tour.Run(startRoom, route)
	sess.Narrator().Say(fmt.Sprintf("You defeated %d enemies.", sess.NPCs().Counters().Defeated()))

	logger.Info("walkthrough finished",
		zap.String("end_room", end.Name()),
		zap.Int("items_held", len(tour.Backpack())),
		zap.Int64("defeated", sess.NPCs().Counters().Defeated()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
