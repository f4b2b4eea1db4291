// Package snapshot rasterises a particle field into a PNG image.
package snapshot

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"git.sr.ht/~sbinet/gg"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/particles"
)

// Canvas is a particles.Canvas backed by a gg raster context. Every paint's
// alpha is scaled by the layer opacity before it is composited over the
// background.
type Canvas struct {
	dc      *gg.Context
	bg      color.NRGBA
	opacity float64
}

func NewCanvas(width, height int, bg color.NRGBA, opacity float64) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height), bg: bg, opacity: opacity}
}

func (c *Canvas) Clear() {
	c.dc.SetColor(c.bg)
	c.dc.Clear()
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.NRGBA) {
	c.dc.SetColor(c.fade(col))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *Canvas) FillCircle(x, y, r float64, col color.NRGBA) {
	c.dc.SetColor(c.fade(col))
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func (c *Canvas) fade(col color.NRGBA) color.NRGBA {
	col.A = uint8(math.Round(float64(col.A) * c.opacity))
	return col
}

func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error {
	return errors.Wrap(c.dc.EncodePNG(w), "encode png")
}

// Render draws the current state of f onto a new canvas the size of its
// viewport.
func Render(f *particles.Field, bg color.NRGBA, opacity float64) (*Canvas, particles.FrameStats) {
	w, h := f.Size()
	c := NewCanvas(max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1), bg, opacity)
	stats := f.Draw(c)
	return c, stats
}

// Save renders f and writes it to path as PNG.
func Save(f *particles.Field, path string, bg color.NRGBA, opacity float64) error {
	c, _ := Render(f, bg, opacity)
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	if err := c.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "close snapshot")
}
