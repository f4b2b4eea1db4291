package particles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// grid buckets particle indices into square cells of the connection
// threshold, so candidate partners of a particle lie in its 3×3 block.
type grid struct {
	cell       float64
	cols, rows int
	buckets    [][]int
}

func newGrid(ps []Particle, w, h, cell float64) *grid {
	if cell <= 0 {
		cell = math.Max(w, h) + 1
	}
	g := &grid{
		cell: cell,
		cols: int(math.Floor(math.Max(w, 0)/cell)) + 1,
		rows: int(math.Floor(math.Max(h, 0)/cell)) + 1,
	}
	g.buckets = make([][]int, g.cols*g.rows)
	for i, p := range ps {
		cx, cy := g.cellOf(p.Pos)
		k := cy*g.cols + cx
		g.buckets[k] = append(g.buckets[k], i)
	}
	return g
}

func (g *grid) cellOf(v r2.Vec) (int, int) {
	cx := int(math.Floor(v.X / g.cell))
	cy := int(math.Floor(v.Y / g.cell))
	return min(max(cx, 0), g.cols-1), min(max(cy, 0), g.rows-1)
}

func (g *grid) eachPair(ps []Particle, threshold float64, fn func(i, j int, dist float64)) {
	for i, p := range ps {
		cx, cy := g.cellOf(p.Pos)
		for y := max(cy-1, 0); y <= min(cy+1, g.rows-1); y++ {
			for x := max(cx-1, 0); x <= min(cx+1, g.cols-1); x++ {
				for _, j := range g.buckets[y*g.cols+x] {
					if j <= i {
						continue
					}
					dist := r2.Norm(r2.Sub(p.Pos, ps[j].Pos))
					if dist > threshold {
						continue
					}
					fn(i, j, dist)
				}
			}
		}
	}
}
