package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// layerCanvas draws into an offscreen image that is composited onto the
// screen at the configured opacity. The target is swapped on resize.
type layerCanvas struct {
	target *ebiten.Image
}

func (c *layerCanvas) Clear() {
	c.target.Clear()
}

func (c *layerCanvas) StrokeLine(x1, y1, x2, y2, width float64, col color.NRGBA) {
	vector.StrokeLine(c.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col, true)
}

func (c *layerCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(r), col, true)
}
