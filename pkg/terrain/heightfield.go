// Package terrain provides a synthetic heightfield that stands in for the
// host scene's terrain raycast, so generation runs end to end without a
// 3D host. Height and normal queries interpolate a noise-displaced grid.
package terrain

import (
	"fmt"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// Heightfield is a square grid of terrain heights spanning
// [0,size) x [0,size) in the ground plane.
type Heightfield struct {
	size    float64
	res     int // vertices per side
	step    float64
	heights []float64
}

// Generate builds a heightfield of the given size, subdivided into
// subdivisions cells per side and displaced by seeded fractal noise.
func Generate(size float64, subdivisions int, noise NoiseParams, seed int64) (*Heightfield, error) {
	if size <= 0 {
		return nil, fmt.Errorf("terrain: size must be positive, got %g", size)
	}
	if subdivisions <= 0 {
		return nil, fmt.Errorf("terrain: subdivisions must be positive, got %d", subdivisions)
	}

	res := subdivisions + 1
	hf := &Heightfield{
		size:    size,
		res:     res,
		step:    size / float64(subdivisions),
		heights: make([]float64, res*res),
	}

	if noise.Strength > 0 && noise.Octaves > 0 {
		scale := noise.Scale
		if scale <= 0 {
			scale = 1
		}
		for j := 0; j < res; j++ {
			for i := 0; i < res; i++ {
				x := float64(i) * hf.step / scale
				y := float64(j) * hf.step / scale
				// Center the displacement so the mean surface sits at 0.
				hf.heights[j*res+i] = (octaveNoise2D(x, y, seed, noise) - 0.5) * noise.Strength
			}
		}
	}

	return hf, nil
}

// Flat returns a zero-height terrain of the given size. Slope filtering
// against it always sees the up normal; handy in tests.
func Flat(size float64) *Heightfield {
	hf, err := Generate(size, 1, NoiseParams{}, 0)
	if err != nil {
		panic(err)
	}
	return hf
}

// Size returns the edge length of the terrain.
func (h *Heightfield) Size() float64 {
	return h.size
}

// HeightAndNormalAt returns the interpolated surface height and unit
// normal under (x, y). ok is false when the point lies outside the
// terrain, mirroring a raycast miss.
func (h *Heightfield) HeightAndNormalAt(x, y float64) (float64, geo.Vec3, bool) {
	if x < 0 || x >= h.size || y < 0 || y >= h.size {
		return 0, geo.Vec3{}, false
	}

	height := h.bilinear(x, y)

	// Central differences give the surface gradient; the normal is the
	// cross product of the two tangents, which for a heightfield reduces
	// to (-dz/dx, -dz/dy, 1) normalized.
	eps := h.step / 2
	dzdx := (h.bilinear(clampCoord(x+eps, h.size), y) - h.bilinear(clampCoord(x-eps, h.size), y)) / (2 * eps)
	dzdy := (h.bilinear(x, clampCoord(y+eps, h.size)) - h.bilinear(x, clampCoord(y-eps, h.size))) / (2 * eps)
	normal := geo.V3(-dzdx, -dzdy, 1).Normalize()

	return height, normal, true
}

// bilinear interpolates the grid at (x, y), clamping to the edge cells.
func (h *Heightfield) bilinear(x, y float64) float64 {
	fx := x / h.step
	fy := y / h.step

	i := int(fx)
	j := int(fy)
	if i > h.res-2 {
		i = h.res - 2
	}
	if j > h.res-2 {
		j = h.res - 2
	}

	tx := fx - float64(i)
	ty := fy - float64(j)

	z00 := h.heights[j*h.res+i]
	z10 := h.heights[j*h.res+i+1]
	z01 := h.heights[(j+1)*h.res+i]
	z11 := h.heights[(j+1)*h.res+i+1]

	return lerp(lerp(z00, z10, tx), lerp(z01, z11, tx), ty)
}

func clampCoord(v, size float64) float64 {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1e-9
	}
	return v
}
