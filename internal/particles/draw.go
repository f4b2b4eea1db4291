package particles

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// Canvas is the drawing surface a host provides. Colors are not
// alpha-premultiplied.
type Canvas interface {
	Clear()
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
}

const (
	nearLineWidth    = 0.8
	nearLineAlpha    = 0.2
	neutralLineWidth = 0.3
	neutralLineAlpha = 0.035

	nearDotAlphaBase  = 0.3
	nearDotAlphaScale = 0.5
	neutralDotAlpha   = 0.1

	// A particle at the pointer is drawn at 1+growth times its radius.
	growth = 1.5
)

var (
	coolTone = colorful.Color{R: 200.0 / 255, G: 180.0 / 255, B: 140.0 / 255}
	warmTone = colorful.Color{R: 1, G: 200.0 / 255, B: 110.0 / 255}
	white    = color.NRGBA{R: 255, G: 255, B: 255}
)

// FrameStats counts what the last Draw produced.
type FrameStats struct {
	Particles     int
	Lines         int
	NearLines     int
	NearParticles int
}

// Proximity is 1 - d/radius clamped to [0,1].
func Proximity(d, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return clamp01(1 - d/radius)
}

// WarmColor blends from the neutral tone at prox 0 to gold at prox 1.
func WarmColor(prox float64) color.NRGBA {
	r, g, b := coolTone.BlendRgb(warmTone, clamp01(prox)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Draw clears c and paints the current state without advancing it.
func (f *Field) Draw(c Canvas) FrameStats {
	c.Clear()
	stats := FrameStats{Particles: len(f.particles)}
	radius := f.params.PointerRadius
	threshold := f.ConnectionDistance()

	f.eachPair(threshold, func(i, j int, dist float64) {
		a, b := f.particles[i].Pos, f.particles[j].Pos
		di := r2.Norm(r2.Sub(f.pointer, a))
		dj := r2.Norm(r2.Sub(f.pointer, b))
		fade := 1 - dist/threshold

		stats.Lines++
		if di < radius || dj < radius {
			stats.NearLines++
			prox := Proximity(math.Min(di, dj), radius)
			c.StrokeLine(a.X, a.Y, b.X, b.Y, nearLineWidth, withAlpha(WarmColor(prox), fade*nearLineAlpha))
			return
		}
		c.StrokeLine(a.X, a.Y, b.X, b.Y, neutralLineWidth, withAlpha(white, fade*neutralLineAlpha))
	})

	for _, p := range f.particles {
		d := r2.Norm(r2.Sub(f.pointer, p.Pos))
		if d < radius {
			stats.NearParticles++
			prox := Proximity(d, radius)
			col := withAlpha(WarmColor(prox), nearDotAlphaBase+prox*nearDotAlphaScale)
			c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius*(1+prox*growth), col)
			continue
		}
		c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, withAlpha(white, neutralDotAlpha))
	}
	return stats
}

// eachPair calls fn for every unordered pair no farther apart than threshold.
func (f *Field) eachPair(threshold float64, fn func(i, j int, dist float64)) {
	if f.params.SpatialIndex {
		newGrid(f.particles, f.width, f.height, threshold).eachPair(f.particles, threshold, fn)
		return
	}
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dist := r2.Norm(r2.Sub(ps[i].Pos, ps[j].Pos))
			if dist > threshold {
				continue
			}
			fn(i, j, dist)
		}
	}
}
