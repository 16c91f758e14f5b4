package scene

import (
	"time"

	"github.com/google/uuid"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
	"github.com/pochu0083/blender-terrain-gen/pkg/placement"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
)

// Assemble converts a generation result into a scene graph for the host
// to instantiate.
func Assemble(s *spec.ScatterSpec, res *placement.Result) *Graph {
	g := NewGraph()

	for _, p := range res.Placements {
		addEntity(g, Entity{
			ID:         p.ID,
			Category:   p.Category,
			Asset:      p.Asset.Name,
			Position:   p.Position,
			Radius:     p.Radius,
			Dimensions: p.Asset.Size,
			Metadata: map[string]any{
				"clustering": p.Asset.Clustering,
			},
		})
	}

	g.Metadata = Metadata{
		SpecVersion: s.SpecVersion,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:        res.Seed,
		Bounds:      computeBounds(s, g.Entities),
	}

	return g
}

// computeBounds covers the placement domain and every entity's vertical
// extent. The domain itself is the floor so an empty graph still reports
// sensible bounds.
func computeBounds(s *spec.ScatterSpec, entities []Entity) BoundingBox {
	b := BoundingBox{
		Min: geo.V3(0, 0, 0),
		Max: geo.V3(s.TerrainSize, s.TerrainSize, 0),
	}
	for _, e := range entities {
		if low := e.Position.Z; low < b.Min.Z {
			b.Min.Z = low
		}
		if high := e.Position.Z + e.Dimensions.Z; high > b.Max.Z {
			b.Max.Z = high
		}
	}
	return b
}
