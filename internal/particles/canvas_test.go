package particles

import "image/color"

type line struct {
	x1, y1, x2, y2, width float64
	c                     color.NRGBA
}

type dot struct {
	x, y, r float64
	c       color.NRGBA
}

// recorder captures draw calls.
type recorder struct {
	clears int
	lines  []line
	dots   []dot
}

func (r *recorder) Clear() {
	r.clears++
	r.lines = r.lines[:0]
	r.dots = r.dots[:0]
}

func (r *recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.lines = append(r.lines, line{x1, y1, x2, y2, width, c})
}

func (r *recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.dots = append(r.dots, dot{x, y, radius, c})
}
