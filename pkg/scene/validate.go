package scene

import (
	"fmt"

	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

// ValidateGraph performs structural and spatial validation on a scene
// graph: entity integrity, group index consistency, bounds enclosure,
// and footprint overlap between entities.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene graph is nil",
		})
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndex(g, r)
	validateBoundsEnclosure(g, r)
	validateOverlaps(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("entity at index %d has empty ID", i),
				Path:     fmt.Sprintf("entities[%d].id", i),
				Expected: "non-empty string",
			})
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("duplicate entity ID %q at indices %d and %d", e.ID, prev, i),
				Path:        fmt.Sprintf("entities[%d].id", i),
				ActualValue: e.ID,
			})
		}
		seen[e.ID] = i
	}
}

func validateGroupIndex(g *Graph, r *validation.Report) {
	entityCat := make(map[string]string, len(g.Entities))
	for _, e := range g.Entities {
		entityCat[e.ID] = string(e.Category)
	}

	grouped := make(map[string]bool)
	for cat, ids := range g.Groups.Categories {
		for _, id := range ids {
			grouped[id] = true
			have, ok := entityCat[id]
			if !ok {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("group %s references non-existent entity %q", cat, id),
					Path:        fmt.Sprintf("groups.categories.%s", cat),
					ActualValue: id,
					Expected:    "existing entity ID",
				})
				continue
			}
			if have != string(cat) {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("entity %q has category %q but is grouped under %q", id, have, cat),
					Path:        fmt.Sprintf("groups.categories.%s", cat),
					ActualValue: have,
				})
			}
		}
	}

	for _, e := range g.Entities {
		if !grouped[e.ID] {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q is missing from its category group", e.ID),
				Path:        fmt.Sprintf("groups.categories.%s", e.Category),
				ActualValue: e.ID,
			})
		}
	}
}

// maxResultsPerCheck caps how many findings a single spatial check
// reports, so a badly broken graph stays readable.
const maxResultsPerCheck = 10

func validateBoundsEnclosure(g *Graph, r *validation.Report) {
	bounds := g.Metadata.Bounds
	tolerance := 1.0

	found := 0
	for _, e := range g.Entities {
		if e.Position.X < bounds.Min.X-tolerance || e.Position.X > bounds.Max.X+tolerance ||
			e.Position.Y < bounds.Min.Y-tolerance || e.Position.Y > bounds.Max.Y+tolerance {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q at (%.1f, %.1f) outside scene bounds", e.ID, e.Position.X, e.Position.Y),
				Path:        "metadata.bounds",
				ActualValue: e.ID,
			})
			found++
			if found >= maxResultsPerCheck {
				return
			}
		}
	}
}

// validateOverlaps re-checks committed footprints against each other.
// With collision detection enabled the planner makes violations
// impossible, so this is the independent check that catches planner
// regressions. It warns rather than errors because a run with collision
// detection switched off may overlap legitimately.
func validateOverlaps(g *Graph, r *validation.Report) {
	found := 0
	for i := 0; i < len(g.Entities); i++ {
		for j := i + 1; j < len(g.Entities); j++ {
			a, b := g.Entities[i], g.Entities[j]
			d := a.Position.Distance(b.Position)
			if d < a.Radius+b.Radius {
				r.AddWarning(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("entities %q and %q overlap: %.2f apart, footprints need %.2f", a.ID, b.ID, d, a.Radius+b.Radius),
					Path:        fmt.Sprintf("entities.%s", a.ID),
					ActualValue: d,
					Expected:    fmt.Sprintf(">= %.2f", a.Radius+b.Radius),
				})
				found++
				if found >= maxResultsPerCheck {
					return
				}
			}
		}
	}
}
