// Package analytics resolves a scatter spec into expected capacity
// figures before a run and computes spacing statistics afterwards.
package analytics

import (
	"fmt"
	"math"

	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

// poissonPackingFactor is the empirical fill density of Bridson dart
// throwing: the expected fraction of area/minDist^2 slots a full run
// actually occupies.
const poissonPackingFactor = 0.68

// CategoryPlan is the resolved expectation for one category pass.
type CategoryPlan struct {
	Category    assets.Category `json:"category"`
	Target      int             `json:"target"`
	MinDistance float64         `json:"min_distance"`

	// Capacity is the estimated maximum count the domain supports at
	// the category spacing. Zero for jittered categories, which are not
	// spacing-bound.
	Capacity int `json:"capacity"`
}

// ResolvedParameters holds the analytical view of a spec before any
// sampling runs.
type ResolvedParameters struct {
	AreaM2      float64        `json:"area_m2"`
	AreaHa      float64        `json:"area_ha"`
	TotalTarget int            `json:"total_target"`
	Plans       []CategoryPlan `json:"plans"`
}

// Resolve computes per-category capacity expectations and flags density
// targets the domain cannot meet. Capacity shortfalls are warnings:
// generation still runs and reports the real shortfall afterwards.
func Resolve(s *spec.ScatterSpec) (*ResolvedParameters, *validation.Report) {
	report := validation.NewReport()

	area := s.TerrainSize * s.TerrainSize
	params := &ResolvedParameters{
		AreaM2: area,
		AreaHa: area / 10000,
	}

	plans := []CategoryPlan{
		{Category: assets.CategoryTree, Target: s.Trees.Density, MinDistance: s.Trees.MinDistance},
		{Category: assets.CategoryRock, Target: s.Rocks.Density, MinDistance: s.Rocks.MinDistance},
		{Category: assets.CategoryGrass, Target: s.Grass.Density},
		{Category: assets.CategoryAnimal, Target: s.Animals.Count},
	}

	for i := range plans {
		p := &plans[i]
		params.TotalTarget += p.Target

		if p.MinDistance > 0 {
			p.Capacity = int(poissonPackingFactor * area / (p.MinDistance * p.MinDistance))
			if p.Target > p.Capacity {
				report.AddWarning(validation.Result{
					Level: validation.LevelAnalytical,
					Message: fmt.Sprintf("%s density %d exceeds estimated capacity %d at %.1fm spacing; expect a shortfall",
						p.Category, p.Target, p.Capacity, p.MinDistance),
					Path:        fmt.Sprintf("%ss.density", p.Category),
					ActualValue: p.Target,
					Expected:    fmt.Sprintf("<= %d", p.Capacity),
				})
			}
		}
	}
	params.Plans = plans

	report.AddInfo(validation.Result{
		Level: validation.LevelAnalytical,
		Message: fmt.Sprintf("%.2f ha domain, %d objects requested across %d categories",
			params.AreaHa, params.TotalTarget, len(plans)),
	})

	return params, report
}

// planFor returns the plan for a category, or nil.
func (p *ResolvedParameters) planFor(cat assets.Category) *CategoryPlan {
	for i := range p.Plans {
		if p.Plans[i].Category == cat {
			return &p.Plans[i]
		}
	}
	return nil
}

// TargetFor returns the requested count for a category.
func (p *ResolvedParameters) TargetFor(cat assets.Category) int {
	if plan := p.planFor(cat); plan != nil {
		return plan.Target
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
