package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/snapshot"
)

func main() {
	var (
		configPath string
		seed       int64
		width      int
		height     int
		steps      int
		pointer    string
		out        string
	)
	flag.StringVar(&configPath, "config", "", "YAML settings file")
	flag.Int64Var(&seed, "seed", 1, "Random seed")
	flag.IntVar(&width, "width", config.WindowWidth, "Viewport width")
	flag.IntVar(&height, "height", config.WindowHeight, "Viewport height")
	flag.IntVar(&steps, "steps", 0, "Frames to advance before rendering")
	flag.StringVar(&pointer, "pointer", "", "Pointer position as x,y (empty for none)")
	flag.StringVar(&out, "o", "particle-field.png", "Output PNG path")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	settings, err := config.Load(configPath)
	if err != nil {
		log.Error("load settings", "err", err)
		os.Exit(1)
	}

	field := particles.NewSeededField(settings.Params(), seed)
	field.Resize(float64(width), float64(height))
	if pointer != "" {
		x, y, err := parsePoint(pointer)
		if err != nil {
			log.Error("bad -pointer", "err", err)
			os.Exit(1)
		}
		field.SetPointer(x, y)
	}
	for i := 0; i < steps; i++ {
		field.Step()
	}

	if err := snapshot.Save(field, out, settings.BackgroundColor(), settings.Opacity); err != nil {
		log.Error("save", "err", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d, %d particles)\n", out, width, height, len(field.Particles()))
}

func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Errorf("%q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "y")
	}
	return x, y, nil
}
