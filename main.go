package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/ecs/component"
)

func main() {
	arenaFile := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	playerFile := flag.String("player", "player.yaml", "player prefab in prefabs/")
	minionFile := flag.String("minions", "minions.yaml", "minion catalog prefab in prefabs/")
	seed := flag.Uint64("seed", 0, "encounter random seed (0 picks one)")
	watch := flag.Bool("watch", true, "hot reload prefabs and scripts from disk")
	autopilot := flag.Bool("autopilot", false, "let the autopilot play")
	logLevel := flag.String("log", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := arena.Options{
		Arena:   *arenaFile,
		Player:  *playerFile,
		Minions: *minionFile,
		Logger:  logger,
	}
	if *seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}
	if *autopilot {
		opts.AutoPilot = &component.AutoPilot{Range: 220, Orbit: 1}
	}

	game, err := NewGame(opts, *watch)
	if err != nil {
		logger.Error("start", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("bossfight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(game)
	_ = game.Close()
	if err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
