package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Each terminal cell stands for a block of virtual pixels, so the field
// keeps its pixel-scale tuning.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	// Paints fainter than this after opacity are left out; a terminal
	// cell cannot show them anyway.
	minVisibleAlpha = 0.015
)

type cellCanvas struct {
	screen  tcell.Screen
	bg      colorful.Color
	opacity float64
}

func newCellCanvas(screen tcell.Screen, bg color.NRGBA, opacity float64) *cellCanvas {
	c, _ := colorful.MakeColor(bg)
	return &cellCanvas{screen: screen, bg: c, opacity: opacity}
}

func (c *cellCanvas) background() tcell.Style {
	r, g, b := c.bg.RGB255()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func (c *cellCanvas) Clear() {
	c.screen.Fill(' ', c.background())
}

// blend composites col over the background at col's alpha times opacity.
func (c *cellCanvas) blend(col color.NRGBA) (tcell.Style, bool) {
	a := float64(col.A) / 255 * c.opacity
	if a < minVisibleAlpha {
		return tcell.Style{}, false
	}
	fg := colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
	r, g, b := c.bg.BlendRgb(fg, a).Clamped().RGB255()
	return c.background().Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))), true
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

func (c *cellCanvas) StrokeLine(x1, y1, x2, y2, _ float64, col color.NRGBA) {
	style, ok := c.blend(col)
	if !ok {
		return
	}
	cx, cy := toCell(x1, y1)
	ex, ey := toCell(x2, y2)
	// Bresenham over cells
	dx, dy := abs(ex-cx), -abs(ey-cy)
	sx, sy := sign(ex-cx), sign(ey-cy)
	e := dx + dy
	for {
		c.screen.SetContent(cx, cy, '·', nil, style)
		if cx == ex && cy == ey {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx += sx
		}
		if e2 <= dx {
			e += dx
			cy += sy
		}
	}
}

func (c *cellCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	style, ok := c.blend(col)
	if !ok {
		return
	}
	glyph := '·'
	switch {
	case r >= 3:
		glyph = '●'
	case r >= 1.5:
		glyph = '•'
	}
	cx, cy := toCell(x, y)
	c.screen.SetContent(cx, cy, glyph, nil, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
