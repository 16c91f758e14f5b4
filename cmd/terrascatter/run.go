package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pochu0083/blender-terrain-gen/pkg/analytics"
	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/placement"
	"github.com/pochu0083/blender-terrain-gen/pkg/sampling"
	"github.com/pochu0083/blender-terrain-gen/pkg/scene"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
	"github.com/pochu0083/blender-terrain-gen/pkg/terrain"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

// loadAndValidate loads the spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.ScatterSpec, *validation.Report, error) {
	scatterSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	schemaReport := validation.ValidateSchema(scatterSpec)
	return scatterSpec, schemaReport, nil
}

func runValidate(projectPath string) error {
	scatterSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Capacity estimates feed analytical validation.
	_, analyticalReport := analytics.Resolve(scatterSpec)
	schemaReport.Merge(analyticalReport)

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

// runPipeline executes the full generation flow shared by generate and
// stats.
func runPipeline(ctx context.Context, projectPath string) (*spec.ScatterSpec, *placement.Result, error) {
	scatterSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return nil, nil, fmt.Errorf("spec has validation errors")
	}

	field, err := terrain.Generate(scatterSpec.TerrainSize, scatterSpec.Terrain.Subdivisions,
		terrain.DefaultNoise(scatterSpec.Terrain.NoiseStrength, scatterSpec.Terrain.NoiseScale),
		scatterSpec.RandomSeed)
	if err != nil {
		return nil, nil, fmt.Errorf("generating terrain: %w", err)
	}

	library := assets.DefaultLibrary()
	if scatterSpec.AssetLibrary != "" {
		if err := library.LoadFile(scatterSpec.AssetLibrary); err != nil {
			return nil, nil, fmt.Errorf("loading asset library: %w", err)
		}
	}

	result, err := placement.Generate(ctx, scatterSpec, field, library)
	if err != nil {
		return nil, nil, fmt.Errorf("generating placements: %w", err)
	}
	return scatterSpec, result, nil
}

func runGenerate(ctx context.Context, projectPath, outPath string) error {
	scatterSpec, result, err := runPipeline(ctx, projectPath)
	if err != nil {
		return err
	}
	if !result.Report.Valid {
		printValidationReport(result.Report)
		return fmt.Errorf("generation failed validation")
	}

	graph := scene.Assemble(scatterSpec, result)

	sceneReport := scene.ValidateGraph(graph)
	result.Report.Merge(sceneReport)

	params, _ := analytics.Resolve(scatterSpec)
	output := map[string]any{
		"parameters":  params,
		"validation":  result.Report,
		"scene_graph": graph,
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runStats(ctx context.Context, projectPath string) error {
	scatterSpec, result, err := runPipeline(ctx, projectPath)
	if err != nil {
		return err
	}

	summary := analytics.Summarize(scatterSpec, result.Placements)
	printStatsSummary(summary, result.Seed)

	if len(result.Report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(result.Report)
	}
	return nil
}

func runSample(size, minDist float64, attempts int, seed int64, annulus bool) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := sampling.DefaultConfig(minDist)
	cfg.MaxAttempts = attempts
	cfg.Annulus = annulus

	sampler := sampling.New(rand.New(rand.NewSource(seed)), cfg)
	points, err := sampler.Sample(size, size)
	if err != nil {
		return err
	}

	output := map[string]any{
		"seed":         seed,
		"size":         size,
		"min_distance": minDist,
		"count":        len(points),
		"points":       points,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
