package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/particles"
)

func main() {
	var (
		configPath string
		seed       int64
		width      int
		height     int
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "YAML settings file, reloaded on change")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 uses the settings seed, then the clock)")
	flag.IntVar(&width, "width", config.WindowWidth, "Initial window width")
	flag.IntVar(&height, "height", config.WindowHeight, "Initial window height")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	settings, err := config.Load(configPath)
	if err != nil {
		log.Error("load settings", "err", err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = settings.Seed
	}

	var field *particles.Field
	if seed != 0 {
		field = particles.NewSeededField(settings.Params(), seed)
	} else {
		field = particles.NewField(settings.Params(), nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var reload <-chan config.Settings
	if configPath != "" {
		reload, err = config.Watch(ctx, configPath, log)
		if err != nil {
			log.Warn("settings will not reload", "err", err)
		}
	}

	g := game.NewGame(log, settings, field, reload)
	if err := game.Run(g, "Particle Field - H: HUD, S: snapshot, R: reseed, Esc/Q: quit", width, height); err != nil {
		log.Error("run", "err", err)
		cancel()
		os.Exit(1)
	}
}
