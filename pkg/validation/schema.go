package validation

import (
	"fmt"

	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed ScatterSpec.
// Generation must not start while the report is invalid: these are the
// fail-fast preconditions ahead of any sampling.
func ValidateSchema(s *spec.ScatterSpec) *Report {
	r := NewReport()

	validateDomain(s, r)
	validateCategories(s, r)
	validatePlacement(s, r)
	validateTerrain(s, r)

	return r
}

func validateDomain(s *spec.ScatterSpec, r *Report) {
	if s.TerrainSize <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "terrain_size must be greater than 0",
			Path:        "terrain_size",
			ActualValue: s.TerrainSize,
			Expected:    "> 0",
		})
	}
	if s.RandomSeed < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "random_seed must be non-negative (0 means unseeded)",
			Path:        "random_seed",
			ActualValue: s.RandomSeed,
			Expected:    ">= 0",
		})
	}
}

func validateCategories(s *spec.ScatterSpec, r *Report) {
	counts := map[string]int{
		"trees.density": s.Trees.Density,
		"rocks.density": s.Rocks.Density,
		"grass.density": s.Grass.Density,
		"animals.count": s.Animals.Count,
	}
	for path, n := range counts {
		if n < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be non-negative", path),
				Path:        path,
				ActualValue: n,
				Expected:    ">= 0",
			})
		}
	}

	if s.Trees.Density > 0 && s.Trees.MinDistance <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "trees.min_distance must be greater than 0",
			Path:        "trees.min_distance",
			ActualValue: s.Trees.MinDistance,
			Expected:    "> 0",
		})
	}
	if s.Rocks.Density > 0 && s.Rocks.MinDistance <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "rocks.min_distance must be greater than 0",
			Path:        "rocks.min_distance",
			ActualValue: s.Rocks.MinDistance,
			Expected:    "> 0",
		})
	}
}

func validatePlacement(s *spec.ScatterSpec, r *Report) {
	p := s.Placement

	if p.UseSlopeFilter && (p.MaxSlopeAngle < 0 || p.MaxSlopeAngle > 90) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "placement.max_slope_angle must be between 0 and 90 degrees",
			Path:        "placement.max_slope_angle",
			ActualValue: p.MaxSlopeAngle,
			Expected:    "0 <= angle <= 90",
		})
	}

	switch p.CollisionProxy {
	case "", "sphere", "box":
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("placement.collision_proxy %q is not supported", p.CollisionProxy),
			Path:        "placement.collision_proxy",
			ActualValue: p.CollisionProxy,
			Expected:    `"sphere" or "box"`,
		})
	}
}

func validateTerrain(s *spec.ScatterSpec, r *Report) {
	if s.Terrain.Subdivisions <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "terrain.subdivisions must be greater than 0",
			Path:        "terrain.subdivisions",
			ActualValue: s.Terrain.Subdivisions,
			Expected:    "> 0",
		})
	}
	if s.Terrain.NoiseStrength < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "terrain.noise_strength must be non-negative",
			Path:        "terrain.noise_strength",
			ActualValue: s.Terrain.NoiseStrength,
			Expected:    ">= 0",
		})
	}
}
