package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

func TestSphereCollision(t *testing.T) {
	ix := NewIndex(ProxySphere)
	ix.Add(geo.V3(0, 0, 0), 1.0)

	// Distance 1.5 < summed radii 2.0: collision.
	assert.True(t, ix.Check(geo.V3(1.5, 0, 0), 1.0))
	// Distance 3.0 >= 2.0: clear.
	assert.False(t, ix.Check(geo.V3(3, 0, 0), 1.0))
	// Exactly touching is not a collision (strict less-than).
	assert.False(t, ix.Check(geo.V3(2, 0, 0), 1.0))
}

func TestSphereCollisionAllEntries(t *testing.T) {
	ix := NewIndex(ProxySphere)
	ix.Add(geo.V3(0, 0, 0), 1.0)
	ix.Add(geo.V3(10, 0, 0), 1.0)
	ix.Add(geo.V3(20, 0, 0), 1.0)

	// Only the middle entry is close; the scan must still find it.
	assert.True(t, ix.Check(geo.V3(10.5, 0, 0), 0.6))
	assert.False(t, ix.Check(geo.V3(5, 0, 0), 1.0))
}

func TestBoxCollision(t *testing.T) {
	ix := NewIndex(ProxyBox)
	ix.AddBox(geo.V3(0, 0, 0), geo.V3(1, 1, 1))

	// Overlap on all three axes.
	assert.True(t, ix.CheckBox(geo.V3(1.5, 0, 0), geo.V3(1, 1, 1)))
	// Separated on X only: boxes require overlap on every axis.
	assert.False(t, ix.CheckBox(geo.V3(2.5, 0, 0), geo.V3(1, 1, 1)))
	// Separated vertically even though the footprints align.
	assert.False(t, ix.CheckBox(geo.V3(0, 0, 5), geo.V3(1, 1, 1)))
}

func TestProxySelection(t *testing.T) {
	// Sphere and box proxies disagree near the corners: (1.5, 1.5, 0) is
	// 2.12 from the origin, clear of a radius-1 sphere pair but inside
	// the equivalent cubes.
	sphere := NewIndex(ProxySphere)
	sphere.Add(geo.V3(0, 0, 0), 1.0)
	box := NewIndex(ProxyBox)
	box.Add(geo.V3(0, 0, 0), 1.0)

	q := geo.V3(1.5, 1.5, 0)
	assert.False(t, sphere.Check(q, 1.0))
	assert.True(t, box.Check(q, 1.0))
}

func TestMixedEntriesAnswerBothPredicates(t *testing.T) {
	ix := NewIndex(ProxySphere)
	ix.AddBox(geo.V3(0, 0, 0), geo.V3(2, 1, 1))

	// A box entry carries a derived radius (its largest half extent).
	assert.True(t, ix.CheckSphere(geo.V3(2.5, 0, 0), 1.0))
	assert.False(t, ix.CheckSphere(geo.V3(4, 0, 0), 1.0))
}

func TestDefaultProxyIsSphere(t *testing.T) {
	ix := NewIndex("")
	ix.Add(geo.V3(0, 0, 0), 1.0)
	assert.True(t, ix.Check(geo.V3(1.5, 0, 0), 1.0))
}

func TestClearAndCount(t *testing.T) {
	ix := NewIndex(ProxySphere)
	require.Equal(t, 0, ix.Count())

	ix.Add(geo.V3(0, 0, 0), 1)
	ix.Add(geo.V3(5, 0, 0), 1)
	require.Equal(t, 2, ix.Count())

	ix.Clear()
	require.Equal(t, 0, ix.Count())
	assert.False(t, ix.Check(geo.V3(0, 0, 0), 1))
}
