package sampling

import (
	"math"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// grid is the background acceleration structure for neighbor lookups.
// Cell size is minDistance/sqrt(2), which guarantees a cell can hold at
// most one accepted point, so each cell stores a single point index.
// The grid only bounds search cost; correctness comes from the direct
// distance checks in farEnough.
type grid struct {
	cellSize float64
	w, h     int
	cells    []int // index into the point slice, -1 when empty
}

func newGrid(width, height, minDistance float64) *grid {
	cellSize := minDistance / math.Sqrt2
	w := int(math.Ceil(width / cellSize))
	h := int(math.Ceil(height / cellSize))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	cells := make([]int, w*h)
	for i := range cells {
		cells[i] = -1
	}
	return &grid{cellSize: cellSize, w: w, h: h, cells: cells}
}

func (g *grid) cellOf(p geo.Point2D) (int, int) {
	cx := int(p.X / g.cellSize)
	cy := int(p.Y / g.cellSize)
	if cx >= g.w {
		cx = g.w - 1
	}
	if cy >= g.h {
		cy = g.h - 1
	}
	return cx, cy
}

func (g *grid) put(p geo.Point2D, idx int) {
	cx, cy := g.cellOf(p)
	g.cells[cy*g.w+cx] = idx
}

// farEnough reports whether p keeps minDistance to every occupied cell in
// the 5x5 neighborhood around its own cell. With cellSize = minDist/sqrt(2)
// a conflicting point can never sit outside that neighborhood.
func (g *grid) farEnough(p geo.Point2D, points []geo.Point2D, minDistance float64) bool {
	cx, cy := g.cellOf(p)
	minSq := minDistance * minDistance

	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
				continue
			}
			idx := g.cells[ny*g.w+nx]
			if idx >= 0 && p.DistanceSq(points[idx]) < minSq {
				return false
			}
		}
	}
	return true
}
