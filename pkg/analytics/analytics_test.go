package analytics

import (
	"strings"
	"testing"

	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
	"github.com/pochu0083/blender-terrain-gen/pkg/placement"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

func TestResolveDefaults(t *testing.T) {
	s := spec.DefaultSpec()
	params, report := Resolve(s)

	if !report.Valid {
		t.Fatalf("default spec resolved invalid: %s", report.Summary)
	}
	if params.AreaM2 != 10000 {
		t.Errorf("AreaM2 = %v, want 10000", params.AreaM2)
	}
	if params.AreaHa != 1.0 {
		t.Errorf("AreaHa = %v, want 1.0", params.AreaHa)
	}
	want := s.Trees.Density + s.Rocks.Density + s.Grass.Density + s.Animals.Count
	if params.TotalTarget != want {
		t.Errorf("TotalTarget = %d, want %d", params.TotalTarget, want)
	}
	if len(params.Plans) != 4 {
		t.Fatalf("got %d plans, want 4", len(params.Plans))
	}
}

func TestResolveCapacity(t *testing.T) {
	s := spec.DefaultSpec()
	s.TerrainSize = 100
	s.Trees.MinDistance = 5.0

	params, _ := Resolve(s)

	// 0.68 * 10000 / 25 = 272.
	plan := params.planFor(assets.CategoryTree)
	if plan == nil {
		t.Fatal("no tree plan")
	}
	if plan.Capacity != 272 {
		t.Errorf("tree capacity = %d, want 272", plan.Capacity)
	}
}

func TestResolveWarnsOverCapacity(t *testing.T) {
	s := spec.DefaultSpec()
	s.TerrainSize = 20
	s.Trees.Density = 500
	s.Trees.MinDistance = 3.0

	_, report := Resolve(s)

	if !report.Valid {
		t.Fatal("over-capacity should warn, not invalidate")
	}
	found := false
	for _, w := range report.Warnings {
		if w.Level == validation.LevelAnalytical && strings.Contains(w.Message, "exceeds estimated capacity") {
			found = true
		}
	}
	if !found {
		t.Error("expected a capacity warning for trees")
	}
}

func TestResolveJitteredCategoriesUnbounded(t *testing.T) {
	s := spec.DefaultSpec()
	params, _ := Resolve(s)

	for _, cat := range []assets.Category{assets.CategoryGrass, assets.CategoryAnimal} {
		plan := params.planFor(cat)
		if plan == nil {
			t.Fatalf("no plan for %s", cat)
		}
		if plan.Capacity != 0 {
			t.Errorf("%s capacity = %d, want 0 (not spacing-bound)", cat, plan.Capacity)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := spec.DefaultSpec()
	s.TerrainSize = 100
	s.Trees.Density = 3

	// Three trees on a line: neighbors at 3 and 4 apart.
	placements := []placement.Placement{
		{ID: "tree_00000", Category: assets.CategoryTree, Position: geo.V3(0, 0, 0)},
		{ID: "tree_00001", Category: assets.CategoryTree, Position: geo.V3(3, 0, 0)},
		{ID: "tree_00002", Category: assets.CategoryTree, Position: geo.V3(7, 0, 2)},
		{ID: "rock_00000", Category: assets.CategoryRock, Position: geo.V3(50, 50, 0)},
	}

	sum := Summarize(s, placements)

	if sum.Total != 4 {
		t.Errorf("Total = %d, want 4", sum.Total)
	}
	var trees, rocks, grass CategoryStats
	for _, cs := range sum.Categories {
		switch cs.Category {
		case assets.CategoryTree:
			trees = cs
		case assets.CategoryRock:
			rocks = cs
		case assets.CategoryGrass:
			grass = cs
		}
	}

	if trees.Count != 3 || trees.Shortfall != 0 {
		t.Errorf("trees count/shortfall = %d/%d, want 3/0", trees.Count, trees.Shortfall)
	}
	if trees.NearestMin != 3 {
		t.Errorf("trees NearestMin = %v, want 3", trees.NearestMin)
	}
	// Nearest neighbors are 3, 3, 4: mean 10/3.
	if diff := trees.NearestMean - 10.0/3.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("trees NearestMean = %v, want %v", trees.NearestMean, 10.0/3.0)
	}
	if trees.PerHa != 3 {
		t.Errorf("trees PerHa = %v, want 3", trees.PerHa)
	}

	// Single rock has no neighbor.
	if rocks.NearestMin != 0 || rocks.NearestMean != 0 {
		t.Errorf("rocks nearest stats = %v/%v, want zeros", rocks.NearestMin, rocks.NearestMean)
	}

	if grass.Count != 0 || grass.Shortfall != s.Grass.Density {
		t.Errorf("grass count/shortfall = %d/%d, want 0/%d", grass.Count, grass.Shortfall, s.Grass.Density)
	}
}
