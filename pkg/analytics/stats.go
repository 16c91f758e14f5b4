package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/placement"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
)

// CategoryStats summarizes one category of a finished run.
type CategoryStats struct {
	Category  assets.Category `json:"category"`
	Count     int             `json:"count"`
	Target    int             `json:"target"`
	Shortfall int             `json:"shortfall"`
	PerHa     float64         `json:"per_hectare"`

	// Nearest-neighbor distances within the category. Zero when the
	// category has fewer than two placements.
	NearestMin    float64 `json:"nearest_min"`
	NearestMean   float64 `json:"nearest_mean"`
	NearestStdDev float64 `json:"nearest_stddev"`
}

// Summary is the post-run statistical view of a placement result.
type Summary struct {
	Total      int             `json:"total"`
	AreaHa     float64         `json:"area_ha"`
	Categories []CategoryStats `json:"categories"`
}

// Summarize computes per-category counts, densities, and
// nearest-neighbor spacing statistics for a finished run.
func Summarize(s *spec.ScatterSpec, placements []placement.Placement) *Summary {
	params, _ := Resolve(s)

	byCat := make(map[assets.Category][]placement.Placement)
	for _, p := range placements {
		byCat[p.Category] = append(byCat[p.Category], p)
	}

	sum := &Summary{
		Total:  len(placements),
		AreaHa: params.AreaHa,
	}
	for _, cat := range assets.Categories {
		group := byCat[cat]
		cs := CategoryStats{
			Category: cat,
			Count:    len(group),
			Target:   params.TargetFor(cat),
		}
		if cs.Target > cs.Count {
			cs.Shortfall = cs.Target - cs.Count
		}
		if params.AreaHa > 0 {
			cs.PerHa = roundTo(float64(cs.Count)/params.AreaHa, 2)
		}
		if dists := nearestNeighbors(group); len(dists) > 0 {
			sort.Float64s(dists)
			cs.NearestMin = dists[0]
			cs.NearestMean = stat.Mean(dists, nil)
			cs.NearestStdDev = stat.StdDev(dists, nil)
		}
		sum.Categories = append(sum.Categories, cs)
	}
	return sum
}

// nearestNeighbors returns each placement's ground-plane distance to
// its closest neighbor in the same group. O(n^2), fine at scatter
// scale.
func nearestNeighbors(group []placement.Placement) []float64 {
	if len(group) < 2 {
		return nil
	}
	dists := make([]float64, len(group))
	for i := range group {
		best := math.Inf(1)
		for j := range group {
			if i == j {
				continue
			}
			if d := group[i].Position.Ground().Distance(group[j].Position.Ground()); d < best {
				best = d
			}
		}
		dists[i] = best
	}
	return dists
}
