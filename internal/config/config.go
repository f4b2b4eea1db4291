package config

import (
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/particle-field/internal/particles"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Canvas opacity over the page background
	Opacity    = 0.7
	Background = "#0a0a0c"

	FrameRingSize = 120
)

// Regime mirrors particles.Regime with file keys.
type Regime struct {
	AreaPerParticle    float64 `yaml:"area_per_particle"`
	MaxParticles       int     `yaml:"max_particles"`
	ConnectionDistance float64 `yaml:"connection_distance"`
}

// Settings is the on-disk configuration. Keys absent from the file keep
// their defaults.
type Settings struct {
	Seed           int64   `yaml:"seed"`
	Opacity        float64 `yaml:"opacity"`
	Background     string  `yaml:"background"`
	WideBreakpoint float64 `yaml:"wide_breakpoint"`
	Wide           Regime  `yaml:"wide"`
	Narrow         Regime  `yaml:"narrow"`
	PointerRadius  float64 `yaml:"pointer_radius"`
	Speed          float64 `yaml:"speed"`
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	SpatialIndex   bool    `yaml:"spatial_index"`
}

func Default() Settings {
	p := particles.DefaultParams()
	return Settings{
		Opacity:        Opacity,
		Background:     Background,
		WideBreakpoint: p.WideBreakpoint,
		Wide:           Regime(p.Wide),
		Narrow:         Regime(p.Narrow),
		PointerRadius:  p.PointerRadius,
		Speed:          p.Speed,
		MinRadius:      p.MinRadius,
		MaxRadius:      p.MaxRadius,
		SpatialIndex:   p.SpatialIndex,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "read settings")
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(err, "decode settings")
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	for name, r := range map[string]Regime{"wide": s.Wide, "narrow": s.Narrow} {
		if r.AreaPerParticle <= 0 {
			return errors.Errorf("%s.area_per_particle must be positive, got %v", name, r.AreaPerParticle)
		}
		if r.MaxParticles < 0 {
			return errors.Errorf("%s.max_particles must not be negative, got %d", name, r.MaxParticles)
		}
		if r.ConnectionDistance <= 0 {
			return errors.Errorf("%s.connection_distance must be positive, got %v", name, r.ConnectionDistance)
		}
	}
	switch {
	case s.PointerRadius <= 0:
		return errors.Errorf("pointer_radius must be positive, got %v", s.PointerRadius)
	case s.Speed < 0:
		return errors.Errorf("speed must not be negative, got %v", s.Speed)
	case s.MinRadius <= 0 || s.MaxRadius < s.MinRadius:
		return errors.Errorf("radius range [%v, %v] is invalid", s.MinRadius, s.MaxRadius)
	case s.Opacity < 0 || s.Opacity > 1:
		return errors.Errorf("opacity must be within [0, 1], got %v", s.Opacity)
	}
	if _, err := colorful.Hex(s.Background); err != nil {
		return errors.Wrapf(err, "background %q", s.Background)
	}
	return nil
}

// Params converts the settings into renderer tuning.
func (s Settings) Params() particles.Params {
	return particles.Params{
		WideBreakpoint: s.WideBreakpoint,
		Wide:           particles.Regime(s.Wide),
		Narrow:         particles.Regime(s.Narrow),
		PointerRadius:  s.PointerRadius,
		Speed:          s.Speed,
		MinRadius:      s.MinRadius,
		MaxRadius:      s.MaxRadius,
		SpatialIndex:   s.SpatialIndex,
	}
}

// BackgroundColor parses Background, falling back to the default.
func (s Settings) BackgroundColor() color.NRGBA {
	c, err := colorful.Hex(s.Background)
	if err != nil {
		c, _ = colorful.Hex(Background)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
