package geo

import "math"

// Vec3 is a 3D vector. The scene convention is Z-up: X and Y span the
// ground plane and Z carries terrain height.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Up is the world up axis.
var Up = Vec3{0, 0, 1}

// V3 is a shorthand constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the Euclidean distance from v to w.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Ground projects the vector onto the ground plane.
func (v Vec3) Ground() Point2D {
	return Point2D{X: v.X, Y: v.Y}
}
