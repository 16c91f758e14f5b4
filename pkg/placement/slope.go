package placement

import (
	"math"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

// SlopeAngle returns the angle in degrees between a surface normal and
// the world up axis. The dot product is clamped to [-1, 1] so float drift
// on a nominally unit normal cannot push acos out of its domain.
func SlopeAngle(normal geo.Vec3) float64 {
	d := normal.Dot(geo.Up)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d) * 180 / math.Pi
}

// ValidSlope reports whether the surface under a candidate is flat enough.
// The boundary is inclusive: a slope exactly at maxSlopeDegrees passes.
func ValidSlope(normal geo.Vec3, maxSlopeDegrees float64) bool {
	return SlopeAngle(normal) <= maxSlopeDegrees
}
