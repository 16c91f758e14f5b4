package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/placement"
)

var categoryColors = map[assets.Category]string{
	assets.CategoryTree:   "#35b779",
	assets.CategoryRock:   "#9e9e9e",
	assets.CategoryGrass:  "#b5de2b",
	assets.CategoryAnimal: "#ff5252",
}

var categorySymbolSizes = map[assets.Category]int{
	assets.CategoryTree:   8,
	assets.CategoryRock:   6,
	assets.CategoryGrass:  3,
	assets.CategoryAnimal: 7,
}

// handlePreview renders the last run as a top-down scatter plot so the
// distribution can be eyeballed without opening Blender.
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	scatterSpec, result, _ := s.snapshot()
	if result == nil {
		writeError(w, http.StatusNotFound, "no run yet; POST /api/generate first")
		return
	}

	byCat := make(map[assets.Category][]placement.Placement)
	for _, p := range result.Placements {
		byCat[p.Category] = append(byCat[p.Category], p)
	}

	size := scatterSpec.TerrainSize
	pad := size * 0.02

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "TerraScatter Preview", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Scatter Preview",
			Subtitle: fmt.Sprintf("placements=%d seed=%d size=%.0fm", len(result.Placements), result.Seed, size),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: size + pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: size + pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	for _, cat := range assets.Categories {
		group := byCat[cat]
		data := make([]opts.ScatterData, 0, len(group))
		for _, p := range group {
			data = append(data, opts.ScatterData{Value: []interface{}{p.Position.X, p.Position.Y, p.Position.Z}})
		}
		scatter.AddSeries(string(cat), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: categorySymbolSizes[cat]}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: categoryColors[cat]}),
		)
	}

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
