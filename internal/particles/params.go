package particles

import "math"

// Regime holds the density and connection settings for one viewport class.
type Regime struct {
	AreaPerParticle    float64
	MaxParticles       int
	ConnectionDistance float64
}

// Params tunes a Field. The zero value is not usable; start from DefaultParams.
type Params struct {
	// WideBreakpoint selects Wide for widths strictly greater than it.
	WideBreakpoint float64
	Wide           Regime
	Narrow         Regime

	PointerRadius float64

	// Speed bounds each velocity component to [-Speed/2, Speed/2).
	Speed     float64
	MinRadius float64
	MaxRadius float64

	// SpatialIndex buckets particles into a uniform grid for the pair scan
	// instead of comparing every pair.
	SpatialIndex bool
}

func DefaultParams() Params {
	return Params{
		WideBreakpoint: 768,
		Wide: Regime{
			AreaPerParticle:    14000,
			MaxParticles:       100,
			ConnectionDistance: 150,
		},
		Narrow: Regime{
			AreaPerParticle:    18000,
			MaxParticles:       50,
			ConnectionDistance: 100,
		},
		PointerRadius: 250,
		Speed:         0.3,
		MinRadius:     0.5,
		MaxRadius:     2.0,
	}
}

// Regime returns the settings that apply to a viewport of the given width.
func (p Params) Regime(width float64) Regime {
	if width > p.WideBreakpoint {
		return p.Wide
	}
	return p.Narrow
}

// Count is the particle count for a w×h viewport.
func (p Params) Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	r := p.Regime(w)
	if r.AreaPerParticle <= 0 {
		return r.MaxParticles
	}
	n := int(math.Floor(w * h / r.AreaPerParticle))
	return min(r.MaxParticles, n)
}
