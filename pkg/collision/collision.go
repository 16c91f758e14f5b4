// Package collision tracks placed objects and answers coarse overlap
// queries during placement. Checks are linear scans over all entries;
// fine at the density ceilings the generator targets (hundreds of
// objects), not a general physics broadphase.
package collision

import (
	"math"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// Proxy selects how an object's footprint is approximated.
type Proxy string

const (
	ProxySphere Proxy = "sphere"
	ProxyBox    Proxy = "box"
)

// Entry is one tracked object. Both footprint representations are kept so
// an index can answer either predicate regardless of how the entry was
// added: a sphere entry gets a cube of half extent radius, a box entry
// gets the largest half extent as radius.
type Entry struct {
	Position    geo.Vec3
	Radius      float64
	HalfExtents geo.Vec3
}

// Index tracks placed objects for one generation run. It is owned by a
// single run and is not safe for concurrent use.
type Index struct {
	proxy   Proxy
	entries []Entry
}

// NewIndex creates an empty index using the given footprint proxy.
// An empty proxy defaults to spheres.
func NewIndex(proxy Proxy) *Index {
	if proxy == "" {
		proxy = ProxySphere
	}
	return &Index{proxy: proxy}
}

// Add tracks a sphere-bounded object.
func (ix *Index) Add(pos geo.Vec3, radius float64) {
	ix.entries = append(ix.entries, Entry{
		Position:    pos,
		Radius:      radius,
		HalfExtents: geo.V3(radius, radius, radius),
	})
}

// AddBox tracks a box-bounded object with the given half extents.
func (ix *Index) AddBox(pos geo.Vec3, half geo.Vec3) {
	ix.entries = append(ix.entries, Entry{
		Position:    pos,
		Radius:      math.Max(half.X, math.Max(half.Y, half.Z)),
		HalfExtents: half,
	})
}

// Check reports whether a new object with the given sphere radius would
// overlap any tracked entry, using the index's configured proxy. For the
// box proxy the radius becomes a cubic half extent.
func (ix *Index) Check(pos geo.Vec3, radius float64) bool {
	if ix.proxy == ProxyBox {
		return ix.CheckBox(pos, geo.V3(radius, radius, radius))
	}
	return ix.CheckSphere(pos, radius)
}

// CheckSphere reports whether any entry's center is closer than the sum
// of the two radii.
func (ix *Index) CheckSphere(pos geo.Vec3, radius float64) bool {
	for _, e := range ix.entries {
		if pos.Distance(e.Position) < radius+e.Radius {
			return true
		}
	}
	return false
}

// CheckBox reports whether an axis-aligned box centered at pos overlaps
// any entry. Two boxes overlap only when the per-axis center distance is
// below the summed half extents on all three axes at once.
func (ix *Index) CheckBox(pos geo.Vec3, half geo.Vec3) bool {
	for _, e := range ix.entries {
		if math.Abs(pos.X-e.Position.X) < half.X+e.HalfExtents.X &&
			math.Abs(pos.Y-e.Position.Y) < half.Y+e.HalfExtents.Y &&
			math.Abs(pos.Z-e.Position.Z) < half.Z+e.HalfExtents.Z {
			return true
		}
	}
	return false
}

// Clear removes all tracked entries.
func (ix *Index) Clear() {
	ix.entries = ix.entries[:0]
}

// Count returns the number of tracked entries.
func (ix *Index) Count() int {
	return len(ix.entries)
}
