// Package particles implements an animated particle backdrop: drifting
// points joined by faint lines when close, highlighted in warm gold around
// the pointer.
package particles

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// FarAway is the pointer position meaning "no active pointer".
var FarAway = r2.Vec{X: -1000, Y: -1000}

type Particle struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
}

// Field owns the particle set, the viewport size and the pointer. It is not
// safe for concurrent use.
type Field struct {
	params    Params
	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64
	pointer   r2.Vec
}

// NewField returns an empty field. A nil rng seeds from the clock.
func NewField(params Params, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Field{params: params, rng: rng, pointer: FarAway}
}

// NewSeededField is NewField with a deterministic source.
func NewSeededField(params Params, seed int64) *Field {
	return NewField(params, rand.New(rand.NewSource(seed)))
}

func (f *Field) Params() Params { return f.params }

// SetParams replaces the tuning and reseeds at the current size.
func (f *Field) SetParams(p Params) {
	f.params = p
	f.Resize(f.width, f.height)
}

// Resize records the viewport and replaces every particle.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
	n := f.params.Count(w, h)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			Pos: r2.Vec{X: f.rng.Float64() * w, Y: f.rng.Float64() * h},
			Vel: r2.Vec{
				X: (f.rng.Float64() - 0.5) * f.params.Speed,
				Y: (f.rng.Float64() - 0.5) * f.params.Speed,
			},
			Radius: f.params.MinRadius + f.rng.Float64()*(f.params.MaxRadius-f.params.MinRadius),
		}
	}
	f.particles = ps
}

// Reseed regenerates the particle set without a size change.
func (f *Field) Reseed() { f.Resize(f.width, f.height) }

func (f *Field) Size() (w, h float64) { return f.width, f.height }

// Particles returns the live particle slice; callers must not retain it
// across Resize.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) SetPointer(x, y float64) { f.pointer = r2.Vec{X: x, Y: y} }

func (f *Field) ClearPointer() { f.pointer = FarAway }

func (f *Field) Pointer() r2.Vec { return f.pointer }

// ConnectionDistance is the line threshold for the current width.
func (f *Field) ConnectionDistance() float64 {
	return f.params.Regime(f.width).ConnectionDistance
}

// Step advances every particle by its velocity, reflecting off the edges.
func (f *Field) Step() {
	w, h := f.width, f.height
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos = r2.Add(p.Pos, p.Vel)
		if p.Pos.X < 0 || p.Pos.X > w {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y < 0 || p.Pos.Y > h {
			p.Vel.Y = -p.Vel.Y
		}
		p.Pos.X = clamp(p.Pos.X, 0, w)
		p.Pos.Y = clamp(p.Pos.Y, 0, h)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
