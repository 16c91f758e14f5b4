package sampling

import (
	"math"
	"testing"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

func TestGridDimensions(t *testing.T) {
	g := newGrid(100, 100, 3.0)

	wantCell := 3.0 / math.Sqrt2
	if math.Abs(g.cellSize-wantCell) > 1e-9 {
		t.Errorf("cell size: got %f, want %f", g.cellSize, wantCell)
	}
	want := int(math.Ceil(100 / wantCell))
	if g.w != want || g.h != want {
		t.Errorf("grid dims: got %dx%d, want %dx%d", g.w, g.h, want, want)
	}
}

func TestGridTinyDomain(t *testing.T) {
	// Domain smaller than one cell still gets a 1x1 grid.
	g := newGrid(0.5, 0.5, 10)
	if g.w != 1 || g.h != 1 {
		t.Errorf("grid dims: got %dx%d, want 1x1", g.w, g.h)
	}
}

func TestGridFarEnough(t *testing.T) {
	g := newGrid(20, 20, 2.0)
	points := []geo.Point2D{geo.Pt(10, 10)}
	g.put(points[0], 0)

	if g.farEnough(geo.Pt(10.5, 10), points, 2.0) {
		t.Error("point 0.5 away should conflict at spacing 2")
	}
	if !g.farEnough(geo.Pt(13, 10), points, 2.0) {
		t.Error("point 3 away should be accepted at spacing 2")
	}
}

func TestGridBoundaryCell(t *testing.T) {
	// A point exactly on the far edge must clamp into the last cell
	// instead of indexing out of range.
	g := newGrid(10, 10, 2.0)
	points := []geo.Point2D{geo.Pt(10, 10)}
	g.put(points[0], 0)

	if g.farEnough(geo.Pt(9.5, 9.5), points, 2.0) {
		t.Error("corner neighbor should conflict")
	}
}
