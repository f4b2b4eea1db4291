package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/termview"
)

func main() {
	var (
		configPath string
		seed       int64
		fps        int
		logPath    string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "YAML settings file, reloaded on change")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 uses the settings seed, then the clock)")
	flag.IntVar(&fps, "fps", 60, "Frames per second")
	flag.StringVar(&logPath, "log", "", "Log file (the terminal is busy drawing)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	os.Exit(run(configPath, seed, fps, logPath, verbose))
}

func run(configPath string, seed int64, fps int, logPath string, verbose bool) int {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logOut := os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("open log", "err", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	settings, err := config.Load(configPath)
	if err != nil {
		log.Error("load settings", "err", err)
		return 1
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reload <-chan config.Settings
	if configPath != "" {
		reload, err = config.Watch(ctx, configPath, log)
		if err != nil {
			log.Warn("settings will not reload", "err", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error("open terminal", "err", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Error("init terminal", "err", err)
		return 1
	}
	defer screen.Fini()

	if err := termview.New(screen, log, settings, field, fps).Run(ctx, reload); err != nil {
		log.Error("run", "err", err)
		return 1
	}
	return 0
}
