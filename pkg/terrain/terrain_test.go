package terrain

import (
	"math"
	"testing"
)

func TestGenerateRejectsBadParams(t *testing.T) {
	if _, err := Generate(0, 10, NoiseParams{}, 1); err == nil {
		t.Error("zero size should be rejected")
	}
	if _, err := Generate(100, 0, NoiseParams{}, 1); err == nil {
		t.Error("zero subdivisions should be rejected")
	}
}

func TestFlatTerrain(t *testing.T) {
	hf := Flat(100)

	h, n, ok := hf.HeightAndNormalAt(50, 50)
	if !ok {
		t.Fatal("query inside the domain should hit")
	}
	if h != 0 {
		t.Errorf("flat terrain height: got %f, want 0", h)
	}
	if math.Abs(n.Z-1) > 1e-9 {
		t.Errorf("flat terrain normal: got %+v, want up", n)
	}
}

func TestQueryOutsideDomainMisses(t *testing.T) {
	hf := Flat(100)

	cases := [][2]float64{{-1, 50}, {50, -1}, {100, 50}, {50, 100}, {1e6, 1e6}}
	for _, c := range cases {
		if _, _, ok := hf.HeightAndNormalAt(c[0], c[1]); ok {
			t.Errorf("query at (%g, %g) should miss", c[0], c[1])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	noise := DefaultNoise(2.0, 5.0)

	a, err := Generate(100, 50, noise, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(100, 50, noise, 42)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range [][2]float64{{10, 10}, {33.3, 71.2}, {99.9, 0.1}} {
		ha, _, _ := a.HeightAndNormalAt(q[0], q[1])
		hb, _, _ := b.HeightAndNormalAt(q[0], q[1])
		if ha != hb {
			t.Errorf("same seed differs at (%g, %g): %f vs %f", q[0], q[1], ha, hb)
		}
	}
}

func TestGenerateSeedChangesSurface(t *testing.T) {
	noise := DefaultNoise(2.0, 5.0)

	a, _ := Generate(100, 50, noise, 1)
	b, _ := Generate(100, 50, noise, 2)

	same := true
	for _, q := range [][2]float64{{10, 10}, {40, 70}, {85, 25}} {
		ha, _, _ := a.HeightAndNormalAt(q[0], q[1])
		hb, _, _ := b.HeightAndNormalAt(q[0], q[1])
		if ha != hb {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced an identical surface at all probes")
	}
}

func TestLatticeHashMixesAxes(t *testing.T) {
	// (x, 0) and (0, x/2) are distinct lattice points; a hash that only
	// mixes a linear combination of the coordinates collapses such pairs
	// and degenerates the noise into diagonal ridges.
	for x := int64(2); x <= 40; x += 2 {
		a := latticeValue(x, 0, 42)
		b := latticeValue(0, x/2, 42)
		if a == b {
			t.Errorf("lattice (%d,0) and (0,%d) hash identically: %f", x, x/2, a)
		}
	}

	if a, b := valueNoise2D(6, 0, 42), valueNoise2D(0, 3, 42); a == b {
		t.Errorf("noise at (6,0) and (0,3) identical: %f", a)
	}
}

func TestDisplacementBounded(t *testing.T) {
	strength := 3.0
	hf, err := Generate(100, 50, DefaultNoise(strength, 5.0), 7)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0.0; y < 100; y += 7.3 {
		for x := 0.0; x < 100; x += 7.3 {
			h, n, ok := hf.HeightAndNormalAt(x, y)
			if !ok {
				t.Fatalf("unexpected miss at (%g, %g)", x, y)
			}
			if math.Abs(h) > strength {
				t.Errorf("height %f at (%g, %g) exceeds strength bound %f", h, x, y, strength)
			}
			if math.Abs(n.Length()-1) > 1e-6 {
				t.Errorf("normal not unit length at (%g, %g): %f", x, y, n.Length())
			}
			if n.Z <= 0 {
				t.Errorf("normal should point upward at (%g, %g): %+v", x, y, n)
			}
		}
	}
}
