// Package placement orchestrates per-category object placement: it draws
// candidates from the Poisson-disk sampler, gates them through the slope
// and collision filters, and commits survivors as placement instructions.
package placement

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/collision"
	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
	"github.com/pochu0083/blender-terrain-gen/pkg/sampling"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

// TerrainQuery resolves surface height and normal under a ground point.
// ok is false when no surface exists there (a raycast miss); the planner
// silently drops such candidates.
type TerrainQuery interface {
	HeightAndNormalAt(x, y float64) (height float64, normal geo.Vec3, ok bool)
}

// Placement is one committed object placement instruction.
type Placement struct {
	ID       string          `json:"id"`
	Category assets.Category `json:"category"`
	Position geo.Vec3        `json:"position"`
	Radius   float64         `json:"radius"`
	Asset    assets.Metadata `json:"asset"`
}

// Request describes one category's placement pass.
type Request struct {
	Category    assets.Category
	TargetCount int

	// MinDistance is the Poisson-disk spacing for the category. Zero or
	// negative selects ad hoc jittered sampling instead (used for grass
	// patches and animals, which have no spacing parameter).
	MinDistance float64

	Width, Height float64

	UseSlopeFilter bool
	MaxSlope       float64

	// UseCollision gates candidates against both indices. With it off the
	// spacing invariant is intentionally not enforced across categories.
	UseCollision bool

	// Shared is the cross-category index. Accepted placements register
	// here so later categories respect earlier ones. May be nil.
	Shared *collision.Index

	// Annulus forwards the sampler's canonical-offset switch.
	Annulus bool
}

// ctxCheckInterval bounds how many candidates are processed between
// cooperative cancellation checks.
const ctxCheckInterval = 64

// topUpFactor bounds the jittered candidates drawn per remaining slot
// when the Poisson set falls short of the target.
const topUpFactor = 4

// Planner places objects for one generation run. It owns no cross-run
// state: terrain, library, and random source are supplied per session.
type Planner struct {
	terrain TerrainQuery
	library *assets.Library
	rng     *rand.Rand
	proxy   collision.Proxy
}

// NewPlanner creates a planner. rng must be seeded by the caller; the
// planner draws all its randomness (sampling and asset picks) from it so
// a seeded run replays exactly.
func NewPlanner(terrain TerrainQuery, library *assets.Library, rng *rand.Rand, proxy collision.Proxy) *Planner {
	return &Planner{terrain: terrain, library: library, rng: rng, proxy: proxy}
}

// Plan runs one category pass and returns the committed placements.
//
// Candidate flow: Poisson-disk points first (jittered uniform points when
// MinDistance is zero), each resolved against the terrain, slope-gated,
// then collision-gated against the category's own index and the shared
// cross-category index. If the Poisson set cannot reach the target the
// planner tops up with jittered candidates through the same filters,
// bounded at topUpFactor per missing slot; any remaining shortfall is a
// warning, never an error. Density is a target, not a guarantee.
func (p *Planner) Plan(ctx context.Context, req Request) ([]Placement, *validation.Report, error) {
	report := validation.NewReport()

	if req.TargetCount < 0 {
		return nil, nil, fmt.Errorf("placement: target count must be non-negative, got %d", req.TargetCount)
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, nil, fmt.Errorf("placement: domain must be positive, got %gx%g", req.Width, req.Height)
	}
	if !req.Category.Valid() {
		return nil, nil, fmt.Errorf("placement: unknown category %q", req.Category)
	}
	if req.TargetCount == 0 {
		return nil, report, nil
	}

	own := collision.NewIndex(p.proxy)

	var candidates []geo.Point2D
	if req.MinDistance > 0 {
		cfg := sampling.DefaultConfig(req.MinDistance)
		cfg.Annulus = req.Annulus
		sampler := sampling.New(p.rng, cfg)
		pts, err := sampler.Sample(req.Width, req.Height)
		if err != nil {
			return nil, nil, fmt.Errorf("placement: %w", err)
		}
		candidates = pts
	} else {
		sampler := sampling.New(p.rng, sampling.DefaultConfig(1))
		candidates = sampler.Uniform(req.Width, req.Height, req.TargetCount*topUpFactor)
	}

	placed, err := p.filterCandidates(ctx, req, candidates, own, req.TargetCount, nil)
	if err != nil {
		return nil, nil, err
	}

	// Top up a Poisson shortfall with jittered candidates. The same
	// filters apply, so the spacing invariant holds for every commit.
	if len(placed) < req.TargetCount && req.MinDistance > 0 {
		missing := req.TargetCount - len(placed)
		sampler := sampling.New(p.rng, sampling.DefaultConfig(req.MinDistance))
		extra := sampler.Uniform(req.Width, req.Height, missing*topUpFactor)
		placed, err = p.filterCandidates(ctx, req, extra, own, req.TargetCount, placed)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(placed) < req.TargetCount {
		report.AddWarning(validation.Result{
			Level: validation.LevelAnalytical,
			Message: fmt.Sprintf("placed %d of %d %s: domain too constrained for the requested density",
				len(placed), req.TargetCount, req.Category),
			Path:        string(req.Category),
			ActualValue: len(placed),
			Expected:    fmt.Sprintf("%d", req.TargetCount),
		})
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d %s (target %d)", len(placed), req.Category, req.TargetCount),
	})

	return placed, report, nil
}

// filterCandidates pushes candidates through the terrain, slope, and
// collision gates, committing survivors until the target is reached.
func (p *Planner) filterCandidates(
	ctx context.Context,
	req Request,
	candidates []geo.Point2D,
	own *collision.Index,
	target int,
	placed []Placement,
) ([]Placement, error) {
	for i, c := range candidates {
		if len(placed) >= target {
			break
		}
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		height, normal, ok := p.terrain.HeightAndNormalAt(c.X, c.Y)
		if !ok {
			continue
		}
		if req.UseSlopeFilter && !ValidSlope(normal, req.MaxSlope) {
			continue
		}

		asset, ok := p.library.Random(req.Category, p.rng)
		if !ok {
			asset = p.library.Default(req.Category)
		}

		pos := c.At3D(height)

		// The own-category entry radius is padded to half the category
		// spacing so two commits can never undercut MinDistance even
		// when the candidate came from the jittered top-up path.
		ownRadius := asset.BoundingRadius
		if req.MinDistance/2 > ownRadius {
			ownRadius = req.MinDistance / 2
		}

		if req.UseCollision {
			if own.Check(pos, ownRadius) {
				continue
			}
			if req.Shared != nil && req.Shared.Check(pos, asset.BoundingRadius) {
				continue
			}
		}

		placed = append(placed, Placement{
			ID:       fmt.Sprintf("%s_%05d", req.Category, len(placed)),
			Category: req.Category,
			Position: pos,
			Radius:   asset.BoundingRadius,
			Asset:    asset,
		})
		own.Add(pos, ownRadius)
		if req.Shared != nil {
			if p.proxy == collision.ProxyBox {
				req.Shared.AddBox(pos, asset.HalfExtents())
			} else {
				req.Shared.Add(pos, asset.BoundingRadius)
			}
		}
	}
	return placed, nil
}
