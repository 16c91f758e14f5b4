package spec

// ScatterSpec is the top-level configuration for one terrain scatter run.
// Field defaults mirror the original generator panel; see DefaultSpec.
type ScatterSpec struct {
	SpecVersion string `yaml:"spec_version" json:"spec_version"`

	// TerrainSize is the edge length of the square placement domain in meters.
	TerrainSize float64 `yaml:"terrain_size" json:"terrain_size"`

	Trees   TreeDef   `yaml:"trees" json:"trees"`
	Rocks   RockDef   `yaml:"rocks" json:"rocks"`
	Grass   GrassDef  `yaml:"grass" json:"grass"`
	Animals AnimalDef `yaml:"animals" json:"animals"`

	Placement PlacementDef `yaml:"placement" json:"placement"`
	Terrain   TerrainDef   `yaml:"terrain" json:"terrain"`

	// RandomSeed seeds the whole run. Zero means non-deterministic
	// (seeded from the clock at generation time).
	RandomSeed int64 `yaml:"random_seed" json:"random_seed"`

	// AssetLibrary optionally names a JSON asset metadata file to load.
	AssetLibrary string `yaml:"asset_library,omitempty" json:"asset_library,omitempty"`
}

// TreeDef configures tree placement.
type TreeDef struct {
	Density     int     `yaml:"density" json:"density"`
	MinDistance float64 `yaml:"min_distance" json:"min_distance"`
}

// RockDef configures rock placement.
type RockDef struct {
	Density     int     `yaml:"density" json:"density"`
	MinDistance float64 `yaml:"min_distance" json:"min_distance"`
}

// GrassDef configures grass patch placement.
type GrassDef struct {
	Density int `yaml:"density" json:"density"`
}

// AnimalDef configures animal placement.
type AnimalDef struct {
	Count int `yaml:"count" json:"count"`
}

// PlacementDef configures the acceptance filters applied to every candidate.
type PlacementDef struct {
	UseSlopeFilter        bool    `yaml:"use_slope_filter" json:"use_slope_filter"`
	MaxSlopeAngle         float64 `yaml:"max_slope_angle" json:"max_slope_angle"`
	UseCollisionDetection bool    `yaml:"use_collision_detection" json:"use_collision_detection"`

	// CollisionProxy selects the collision footprint: "sphere" or "box".
	CollisionProxy string `yaml:"collision_proxy" json:"collision_proxy"`

	// AnnulusSampling switches the Poisson sampler to canonical polar
	// annulus offsets instead of the original per-axis product form.
	AnnulusSampling bool `yaml:"annulus_sampling" json:"annulus_sampling"`
}

// TerrainDef configures the synthetic heightfield used when no host
// terrain query is supplied.
type TerrainDef struct {
	Subdivisions  int     `yaml:"subdivisions" json:"subdivisions"`
	NoiseStrength float64 `yaml:"noise_strength" json:"noise_strength"`
	NoiseScale    float64 `yaml:"noise_scale" json:"noise_scale"`
}

// DefaultSpec returns a spec populated with the original panel defaults:
// 100m terrain, 50 trees at 3m spacing, 30 rocks at 2m, 100 grass patches,
// 10 animals, slope filter at 30 degrees, collision detection on.
func DefaultSpec() *ScatterSpec {
	return &ScatterSpec{
		SpecVersion: "1.0",
		TerrainSize: 100.0,
		Trees:       TreeDef{Density: 50, MinDistance: 3.0},
		Rocks:       RockDef{Density: 30, MinDistance: 2.0},
		Grass:       GrassDef{Density: 100},
		Animals:     AnimalDef{Count: 10},
		Placement: PlacementDef{
			UseSlopeFilter:        true,
			MaxSlopeAngle:         30.0,
			UseCollisionDetection: true,
			CollisionProxy:        "sphere",
		},
		Terrain: TerrainDef{
			Subdivisions:  50,
			NoiseStrength: 2.0,
			NoiseScale:    5.0,
		},
		RandomSeed: 0,
	}
}
