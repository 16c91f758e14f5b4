package placement

import (
	"math"
	"testing"

	"github.com/pochu0083/blender-terrain-gen/pkg/geo"
)

func TestSlopeAngleFlat(t *testing.T) {
	if a := SlopeAngle(geo.V3(0, 0, 1)); math.Abs(a) > 1e-9 {
		t.Errorf("flat normal: got %f degrees, want 0", a)
	}
}

func TestSlopeAngleVertical(t *testing.T) {
	if a := SlopeAngle(geo.V3(1, 0, 0)); math.Abs(a-90) > 1e-9 {
		t.Errorf("vertical face: got %f degrees, want 90", a)
	}
}

func TestSlopeAngleClampsDot(t *testing.T) {
	// A slightly over-unit normal must not push acos out of domain.
	n := geo.V3(0, 0, 1.0000001)
	if a := SlopeAngle(n); math.IsNaN(a) {
		t.Error("over-unit normal produced NaN")
	}
	down := geo.V3(0, 0, -1.0000001)
	if a := SlopeAngle(down); math.IsNaN(a) || math.Abs(a-180) > 1e-6 {
		t.Errorf("inverted normal: got %f, want 180", a)
	}
}

func TestValidSlope(t *testing.T) {
	flat := geo.V3(0, 0, 1)
	vertical := geo.V3(1, 0, 0)
	thirty := geo.V3(math.Sin(30*math.Pi/180), 0, math.Cos(30*math.Pi/180))

	cases := []struct {
		name   string
		normal geo.Vec3
		max    float64
		want   bool
	}{
		{"flat at zero tolerance", flat, 0, true},
		{"flat at typical tolerance", flat, 30, true},
		{"vertical below 90", vertical, 89.9, false},
		{"vertical at 90", vertical, 90, true},
		{"thirty degrees at boundary is inclusive", thirty, 30, true},
		{"thirty degrees above limit", thirty, 29, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidSlope(tc.normal, tc.max); got != tc.want {
				t.Errorf("ValidSlope(%+v, %g) = %v, want %v", tc.normal, tc.max, got, tc.want)
			}
		})
	}
}
