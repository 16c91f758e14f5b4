package scene

import (
	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// Entity is a single placement instruction in the scene graph: which
// asset to instantiate, where, and with what footprint.
type Entity struct {
	ID         string          `json:"id"`
	Category   assets.Category `json:"category"`
	Asset      string          `json:"asset"`
	Position   geo.Vec3        `json:"position"`
	Radius     float64         `json:"radius"`
	Dimensions geo.Vec3        `json:"dimensions"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
}

// BoundingBox defines an axis-aligned bounding box.
type BoundingBox struct {
	Min geo.Vec3 `json:"min"`
	Max geo.Vec3 `json:"max"`
}

// Metadata holds scene-level information.
type Metadata struct {
	SpecVersion string      `json:"spec_version"`
	RunID       string      `json:"run_id"`
	GeneratedAt string      `json:"generated_at"`
	Seed        int64       `json:"seed"`
	Bounds      BoundingBox `json:"bounds"`
}

// Groups organizes entity IDs by category for fast filtering.
type Groups struct {
	Categories map[assets.Category][]string `json:"categories"`
}

// Graph is the complete placement output of one generation run.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
	Groups   Groups   `json:"groups"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Entities: []Entity{},
		Groups: Groups{
			Categories: make(map[assets.Category][]string),
		},
	}
}

func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)
	g.Groups.Categories[e.Category] = append(g.Groups.Categories[e.Category], e.ID)
}
