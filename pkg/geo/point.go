package geo

import "math"

// Point2D represents a point in the XY ground plane (Z is up in the 3D scene).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSq returns the squared length, avoiding the square root.
func (p Point2D) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point2D) Normalize() Point2D {
	l := p.Length()
	if l < 1e-12 {
		return Point2D{}
	}
	return Point2D{p.X / l, p.Y / l}
}

// Dot returns the dot product of p and q.
func (p Point2D) Dot(q Point2D) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance from p to q.
func (p Point2D) DistanceSq(q Point2D) float64 {
	return p.Sub(q).LengthSq()
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// At3D lifts the ground-plane point into the scene at the given height.
func (p Point2D) At3D(height float64) Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: height}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point2D) Point2D {
	return p.Lerp(q, 0.5)
}
