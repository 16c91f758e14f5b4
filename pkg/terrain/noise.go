package terrain

import "math"

// Deterministic 2D value noise with octaves, used to displace the
// synthetic heightfield. Lattice values come from integer hashing so the
// same seed always produces the same surface.

// NoiseParams configures fractal noise displacement.
type NoiseParams struct {
	Octaves     int
	Scale       float64 // feature size in world units
	Strength    float64 // peak-to-trough displacement
	Persistence float64
	Lacunarity  float64
}

// DefaultNoise maps the generator panel's strength/scale knobs onto full
// fractal parameters.
func DefaultNoise(strength, scale float64) NoiseParams {
	return NoiseParams{
		Octaves:     4,
		Scale:       scale,
		Strength:    strength,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64-style integer hash, stable for the same inputs.
// Each coordinate is spread by its own odd multiplier before combining,
// so distinct lattice points cannot collapse onto one hash input.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0xD6E8FEB86659FD93
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, y, seed int64) float64 {
	return float64(hash2(x, y, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// valueNoise2D returns smooth noise in [0,1].
func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	fx := fade(x - x0)
	fy := fade(y - y0)

	v00 := latticeValue(int64(x0), int64(y0), seed)
	v10 := latticeValue(int64(x0)+1, int64(y0), seed)
	v01 := latticeValue(int64(x0), int64(y0)+1, seed)
	v11 := latticeValue(int64(x0)+1, int64(y0)+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

// octaveNoise2D sums octaves of value noise, normalized to [0,1].
func octaveNoise2D(x, y float64, seed int64, p NoiseParams) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < p.Octaves; i++ {
		sum += valueNoise2D(x*frequency, y*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
