package config

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/particle-field/internal/particles"
)

func TestDefaultMatchesRenderer(t *testing.T) {
	if got, want := Default().Params(), particles.DefaultParams(); got != want {
		t.Fatalf("Default().Params() = %+v, want %+v", got, want)
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestParsePartial(t *testing.T) {
	s, err := Parse([]byte(`
seed: 12
pointer_radius: 180
wide:
  max_particles: 200
spatial_index: true
`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != 12 || s.PointerRadius != 180 || !s.SpatialIndex {
		t.Errorf("parsed = %+v", s)
	}
	if s.Wide.MaxParticles != 200 || s.Wide.AreaPerParticle != 14000 || s.Wide.ConnectionDistance != 150 {
		t.Errorf("wide regime = %+v", s.Wide)
	}
	if s.Narrow != Default().Narrow {
		t.Errorf("narrow regime changed: %+v", s.Narrow)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"syntax", "wide: [", "decode settings"},
		{"area", "narrow: {area_per_particle: 0}", "narrow.area_per_particle"},
		{"cap", "wide: {max_particles: -1}", "wide.max_particles"},
		{"distance", "wide: {connection_distance: -3}", "wide.connection_distance"},
		{"pointer", "pointer_radius: 0", "pointer_radius"},
		{"speed", "speed: -1", "speed"},
		{"radius", "min_radius: 3", "radius range"},
		{"opacity", "opacity: 1.5", "opacity"},
		{"background", "background: nope", "background"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	if s, err := Load(""); err != nil || s != Default() {
		t.Fatalf("Load(\"\") = %+v, %v", s, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file loaded")
	}

	path := filepath.Join(t.TempDir(), "field.yaml")
	if err := os.WriteFile(path, []byte("speed: 0.6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Speed != 0.6 {
		t.Fatalf("speed = %v", s.Speed)
	}
}

func TestBackgroundColor(t *testing.T) {
	s := Default()
	s.Background = "#ff8000"
	if c := s.BackgroundColor(); c != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Fatalf("color = %+v", c)
	}
	s.Background = "bogus"
	if c := s.BackgroundColor(); c != (color.NRGBA{R: 10, G: 10, B: 12, A: 255}) {
		t.Fatalf("fallback color = %+v", c)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.yaml")
	if err := os.WriteFile(path, []byte("speed: 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ch, err := Watch(ctx, path, log)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("speed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("speed: 1.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The truncate and the write may surface as separate events.
	timeout := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case s := <-ch:
			reloaded = s.Speed == 1.25
		case <-timeout:
			t.Fatal("no reload delivered")
		}
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
