// Package server hosts the local development server: JSON endpoints
// over the last generation run plus an HTML scatter preview.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/pochu0083/blender-terrain-gen/pkg/analytics"
	"github.com/pochu0083/blender-terrain-gen/pkg/assets"
	"github.com/pochu0083/blender-terrain-gen/pkg/placement"
	"github.com/pochu0083/blender-terrain-gen/pkg/scene"
	"github.com/pochu0083/blender-terrain-gen/pkg/spec"
	"github.com/pochu0083/blender-terrain-gen/pkg/terrain"
	"github.com/pochu0083/blender-terrain-gen/pkg/validation"
)

// Server is the local development server for iterating on a scatter
// project. State is the result of the most recent generation run.
type Server struct {
	projectPath string
	port        int

	mu     sync.Mutex
	spec   *spec.ScatterSpec
	result *placement.Result
	graph  *scene.Graph
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("TerraScatter server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// generate reloads the project spec and runs the full pipeline,
// replacing the cached result.
func (s *Server) generate(ctx context.Context) error {
	scatterSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	field, err := terrain.Generate(scatterSpec.TerrainSize, scatterSpec.Terrain.Subdivisions,
		terrain.DefaultNoise(scatterSpec.Terrain.NoiseStrength, scatterSpec.Terrain.NoiseScale),
		scatterSpec.RandomSeed)
	if err != nil {
		return fmt.Errorf("generating terrain: %w", err)
	}

	library := assets.DefaultLibrary()
	if scatterSpec.AssetLibrary != "" {
		if err := library.LoadFile(scatterSpec.AssetLibrary); err != nil {
			return fmt.Errorf("loading asset library: %w", err)
		}
	}

	result, err := placement.Generate(ctx, scatterSpec, field, library)
	if err != nil {
		return fmt.Errorf("generating placements: %w", err)
	}

	s.mu.Lock()
	s.spec = scatterSpec
	s.result = result
	s.graph = scene.Assemble(scatterSpec, result)
	s.mu.Unlock()

	log.Printf("Generated %d placements (seed %d)", len(result.Placements), result.Seed)
	return nil
}

func (s *Server) snapshot() (*spec.ScatterSpec, *placement.Result, *scene.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec, s.result, s.graph
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>TerraScatter</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>TerraScatter</h1>
<p>POST <code>/api/generate</code> to run a scatter, then open <a href="/preview" style="color:#6ece58">/preview</a>.</p>
</div>
</body></html>`)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := s.generate(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_, result, _ := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"placements": len(result.Placements),
		"seed":       result.Seed,
		"summary":    result.Report.Summary,
	})
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	scatterSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scatterSpec)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	_, _, graph := s.snapshot()
	if graph == nil {
		writeError(w, http.StatusNotFound, "no scene yet; POST /api/generate first")
		return
	}
	writeJSON(w, http.StatusOK, graph)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	scatterSpec, _, _ := s.snapshot()
	if scatterSpec == nil {
		// Validate the on-disk spec when no run has happened yet.
		loaded, err := spec.LoadProject(s.projectPath)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		report := validation.ValidateSchema(loaded)
		_, analyticalReport := analytics.Resolve(loaded)
		report.Merge(analyticalReport)
		writeJSON(w, http.StatusOK, report)
		return
	}

	_, result, _ := s.snapshot()
	writeJSON(w, http.StatusOK, result.Report)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	scatterSpec, result, _ := s.snapshot()
	if result == nil {
		writeError(w, http.StatusNotFound, "no run yet; POST /api/generate first")
		return
	}
	writeJSON(w, http.StatusOK, analytics.Summarize(scatterSpec, result.Placements))
}
