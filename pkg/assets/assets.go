// Package assets manages the metadata library of placeable objects.
// The library holds measurements and placement preferences only; mesh
// creation and rendering belong to the host scene.
package assets

import (
	"math"
	"math/rand"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// Category classifies a placeable object.
type Category string

const (
	CategoryTree   Category = "tree"
	CategoryRock   Category = "rock"
	CategoryGrass  Category = "grass"
	CategoryAnimal Category = "animal"
)

// Categories lists all categories in placement order: larger footprints
// claim contested space first, animals go last so they respect all cover.
var Categories = []Category{CategoryTree, CategoryRock, CategoryGrass, CategoryAnimal}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTree, CategoryRock, CategoryGrass, CategoryAnimal:
		return true
	}
	return false
}

const (
	defaultRadius = 1.0
	defaultHeight = 2.0
)

// Metadata describes a single asset: its measured footprint and the
// placement preferences derived from its category.
type Metadata struct {
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	BoundingRadius float64  `json:"bounding_radius"`
	Height         float64  `json:"height"`
	Size           geo.Vec3 `json:"size"`
	MinSlope       float64  `json:"min_slope"`
	MaxSlope       float64  `json:"max_slope"`
	Clustering     string   `json:"clustering_type"` // "grouped" or "scattered"
	MinSpacing     float64  `json:"min_spacing"`
}

// FromBounds builds metadata from a measured bounding box. A degenerate
// box degrades to the default radius and height instead of failing, so
// placement stays robust to malformed assets.
func FromBounds(name string, cat Category, size geo.Vec3) Metadata {
	radius := math.Max(size.X, size.Y) / 2
	height := size.Z
	if radius <= 0 {
		radius = defaultRadius
		size = geo.V3(2*defaultRadius, 2*defaultRadius, size.Z)
	}
	if height <= 0 {
		height = defaultHeight
		size.Z = defaultHeight
	}

	m := Metadata{
		Name:           name,
		Category:       cat,
		BoundingRadius: radius,
		Height:         height,
		Size:           size,
		MaxSlope:       90.0,
		Clustering:     "scattered",
		MinSpacing:     radius * 2.0,
	}
	if cat == CategoryTree {
		m.MaxSlope = 30.0
		m.Clustering = "grouped"
	}
	return m
}

// HalfExtents returns the box-proxy half extents of the asset.
func (m Metadata) HalfExtents() geo.Vec3 {
	return geo.V3(m.Size.X/2, m.Size.Y/2, m.Size.Z/2)
}

// Library is a per-category collection of asset metadata. It is an
// explicitly constructed value owned by one generation session; callers
// pass it into the planner rather than sharing a process-wide instance.
type Library struct {
	assets map[Category][]Metadata
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{assets: make(map[Category][]Metadata)}
}

// DefaultLibrary creates a library stocked with one primitive asset per
// category, sized like the original tool's fallback primitives.
func DefaultLibrary() *Library {
	lib := NewLibrary()
	lib.Add(FromBounds("Default_Tree", CategoryTree, geo.V3(2, 2, 6)))
	lib.Add(FromBounds("Default_Rock", CategoryRock, geo.V3(2, 2, 1.4)))
	lib.Add(FromBounds("Default_Grass", CategoryGrass, geo.V3(1, 1, 0.6)))
	lib.Add(FromBounds("Default_Animal", CategoryAnimal, geo.V3(2, 1, 1)))
	return lib
}

// Add appends metadata to its category. Unknown categories are ignored
// and reported false.
func (l *Library) Add(m Metadata) bool {
	if !m.Category.Valid() {
		return false
	}
	l.assets[m.Category] = append(l.assets[m.Category], m)
	return true
}

// Assets returns all metadata for a category.
func (l *Library) Assets(cat Category) []Metadata {
	return l.assets[cat]
}

// Random picks a uniformly random asset from a category, or false when
// the category is empty.
func (l *Library) Random(cat Category, rng *rand.Rand) (Metadata, bool) {
	as := l.assets[cat]
	if len(as) == 0 {
		return Metadata{}, false
	}
	return as[rng.Intn(len(as))], true
}

// Default returns the first asset of a category, falling back to a
// default-sized placeholder when the category is empty.
func (l *Library) Default(cat Category) Metadata {
	if as := l.assets[cat]; len(as) > 0 {
		return as[0]
	}
	return FromBounds("Default_"+string(cat), cat, geo.Vec3{})
}

// Has reports whether the category holds at least one asset.
func (l *Library) Has(cat Category) bool {
	return len(l.assets[cat]) > 0
}

// Count returns the number of assets in one category.
func (l *Library) Count(cat Category) int {
	return len(l.assets[cat])
}

// Total returns the number of assets across all categories.
func (l *Library) Total() int {
	n := 0
	for _, as := range l.assets {
		n += len(as)
	}
	return n
}

// ClearCategory removes all assets of a category.
func (l *Library) ClearCategory(cat Category) {
	delete(l.assets, cat)
}

// ClearAll removes every asset.
func (l *Library) ClearAll() {
	l.assets = make(map[Category][]Metadata)
}
