package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a scatter spec from a YAML file. Fields absent from the file
// keep their panel defaults.
func Load(path string) (*ScatterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	spec := DefaultSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return spec, nil
}

// LoadProject loads a scatter spec from a project directory.
// It looks for terrain.yaml in the given directory.
func LoadProject(projectDir string) (*ScatterSpec, error) {
	specPath := filepath.Join(projectDir, "terrain.yaml")
	return Load(specPath)
}
