package placement

import (
	"context"
	"math/rand"
	"time"

	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/collision"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

// Result is the outcome of a full generation run.
type Result struct {
	Placements []Placement        `json:"placements"`
	Seed       int64              `json:"seed"`
	Report     *validation.Report `json:"report"`
}

// Generate runs every category pass over the spec's domain, sharing one
// cross-category collision index so later categories respect earlier
// placements. Category order is trees, rocks, grass, animals: the larger
// footprints claim contested ground first.
//
// A non-zero spec seed makes the whole run reproducible; seed zero draws
// a fresh seed from the clock. The seed actually used is returned so an
// unseeded run can still be replayed.
func Generate(ctx context.Context, spc *spec.ScatterSpec, terrain TerrainQuery, library *assets.Library) (*Result, error) {
	report := validation.NewReport()

	if schema := validation.ValidateSchema(spc); !schema.Valid {
		report.Merge(schema)
		return &Result{Report: report}, nil
	}

	seed := spc.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	proxy := collision.Proxy(spc.Placement.CollisionProxy)
	planner := NewPlanner(terrain, library, rng, proxy)
	shared := collision.NewIndex(proxy)

	var placements []Placement
	for _, req := range categoryRequests(spc, shared) {
		// Cancellation between category passes; Plan checks again
		// between candidate batches.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		placed, catReport, err := planner.Plan(ctx, req)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placed...)
		report.Merge(catReport)
	}

	return &Result{Placements: placements, Seed: seed, Report: report}, nil
}

// categoryRequests expands the spec into one request per category, in
// placement order.
func categoryRequests(spc *spec.ScatterSpec, shared *collision.Index) []Request {
	base := Request{
		Width:          spc.TerrainSize,
		Height:         spc.TerrainSize,
		UseSlopeFilter: spc.Placement.UseSlopeFilter,
		MaxSlope:       spc.Placement.MaxSlopeAngle,
		UseCollision:   spc.Placement.UseCollisionDetection,
		Shared:         shared,
		Annulus:        spc.Placement.AnnulusSampling,
	}

	trees := base
	trees.Category = assets.CategoryTree
	trees.TargetCount = spc.Trees.Density
	trees.MinDistance = spc.Trees.MinDistance

	rocks := base
	rocks.Category = assets.CategoryRock
	rocks.TargetCount = spc.Rocks.Density
	rocks.MinDistance = spc.Rocks.MinDistance

	// Grass and animals carry no spacing parameter: they place by
	// jittered sampling, constrained only by the collision filters.
	// Animals additionally skip the slope filter; they stand on slopes
	// the static categories avoid.
	grass := base
	grass.Category = assets.CategoryGrass
	grass.TargetCount = spc.Grass.Density

	animals := base
	animals.Category = assets.CategoryAnimal
	animals.TargetCount = spc.Animals.Count
	animals.UseSlopeFilter = false

	return []Request{trees, rocks, grass, animals}
}
