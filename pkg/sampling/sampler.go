// Package sampling generates candidate positions with blue-noise
// (Poisson-disk) statistics over a rectangular domain.
package sampling

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// Config holds the tunable parameters for Poisson-disk sampling.
type Config struct {
	// MinDistance is the guaranteed minimum pairwise spacing.
	MinDistance float64

	// MaxAttempts is the candidate budget per frontier point before the
	// point is retired. Typically 30.
	MaxAttempts int

	// Annulus selects canonical polar annulus offsets (angle and radius
	// drawn independently). The default false keeps the original
	// generator's per-axis product form: each axis offset is
	// r*u with u ~ Uniform(-1,1) and r ~ Uniform(minDist, 2*minDist).
	// The two forms produce different offset distributions; the default
	// matches the original tool's output statistics.
	Annulus bool
}

// DefaultConfig returns the standard sampling configuration for a spacing.
func DefaultConfig(minDistance float64) Config {
	return Config{
		MinDistance: minDistance,
		MaxAttempts: 30,
	}
}

// Sampler produces Poisson-disk point sets. It consumes state from its
// random source, so a single Sampler is not restartable: reproducing a
// sequence requires a freshly seeded source.
type Sampler struct {
	rng *rand.Rand
	cfg Config
}

// New creates a sampler drawing from the given random source.
func New(rng *rand.Rand, cfg Config) *Sampler {
	return &Sampler{rng: rng, cfg: cfg}
}

// Sample generates points over [0,width) x [0,height) such that every pair
// is at least MinDistance apart, using Bridson-style dart throwing. The
// frontier point to extend is chosen uniformly at random each iteration,
// so output order is only reproducible with a seeded source.
func (s *Sampler) Sample(width, height float64) ([]geo.Point2D, error) {
	if s.cfg.MinDistance <= 0 {
		return nil, fmt.Errorf("sampling: min distance must be positive, got %g", s.cfg.MinDistance)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sampling: domain must be positive, got %gx%g", width, height)
	}
	maxAttempts := s.cfg.MaxAttempts
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("sampling: attempt budget must be positive, got %d", maxAttempts)
	}

	g := newGrid(width, height, s.cfg.MinDistance)

	points := make([]geo.Point2D, 0, g.w*g.h/4)
	frontier := make([]int, 0, 128)

	insert := func(p geo.Point2D) {
		idx := len(points)
		points = append(points, p)
		frontier = append(frontier, idx)
		g.put(p, idx)
	}

	// Seed with one uniformly random point.
	insert(geo.Pt(s.rng.Float64()*width, s.rng.Float64()*height))

	for len(frontier) > 0 {
		fi := s.rng.Intn(len(frontier))
		p := points[frontier[fi]]

		found := false
		for k := 0; k < maxAttempts; k++ {
			c := s.offset(p)
			if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
				// Out of bounds: discarded before any distance check,
				// but it still spends one attempt.
				continue
			}
			if g.farEnough(c, points, s.cfg.MinDistance) {
				insert(c)
				found = true
				break
			}
		}

		if !found {
			// Retired points stay in the output and the grid; they only
			// stop spawning candidates.
			frontier[fi] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		}
	}

	return points, nil
}

// offset proposes a candidate near p at roughly MinDistance..2*MinDistance.
func (s *Sampler) offset(p geo.Point2D) geo.Point2D {
	r := s.cfg.MinDistance + s.rng.Float64()*s.cfg.MinDistance
	if s.cfg.Annulus {
		angle := s.rng.Float64() * 2 * math.Pi
		return geo.Pt(p.X+r*math.Cos(angle), p.Y+r*math.Sin(angle))
	}
	ux := s.rng.Float64()*2 - 1
	uy := s.rng.Float64()*2 - 1
	return geo.Pt(p.X+r*ux, p.Y+r*uy)
}

// Uniform generates n independent uniformly random points over
// [0,width) x [0,height), with no spacing guarantee. The planner uses this
// for ad hoc jittered placement and for topping up shortfalls.
func (s *Sampler) Uniform(width, height float64, n int) []geo.Point2D {
	points := make([]geo.Point2D, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, geo.Pt(s.rng.Float64()*width, s.rng.Float64()*height))
	}
	return points
}
