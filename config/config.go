// Package config loads case files: a YAML description of the mesh and of
// the fields to create on it.
//
//	version: 1
//	mesh:
//	  geometry: tet
//	  etov: [[0, 1, 2, 3], [1, 2, 3, 4]]
//	fields:
//	  - name: pressure
//	    domain: cell
//	    kind: scalar
//	    default: [101325]
//	    patches:
//	      - indices: [1]
//	        value: [2e5]
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/notargets/DGField/mesh"
	"gopkg.in/yaml.v3"
)

// Config is a complete case description
type Config struct {
	Version int           `yaml:"version"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Fields  []FieldConfig `yaml:"fields"`
}

// MeshConfig names a mesh file or carries an inline element to vertex table
type MeshConfig struct {
	File     string  `yaml:"file,omitempty"`
	Geometry string  `yaml:"geometry,omitempty"` // Inline meshes only, defaults to tet
	EToV     [][]int `yaml:"etov,omitempty"`
}

// FieldConfig describes one field to build
type FieldConfig struct {
	Name    string        `yaml:"name"`
	Domain  string        `yaml:"domain"`
	Kind    string        `yaml:"kind"`
	Default []float64     `yaml:"default,omitempty"` // Components, zero value when empty
	Strict  bool          `yaml:"strict,omitempty"`  // Fail on wrong-kind transform results
	Patches []PatchConfig `yaml:"patches,omitempty"`
}

// PatchConfig overwrites the values at Indices after construction
type PatchConfig struct {
	Indices []int     `yaml:"indices"`
	Value   []float64 `yaml:"value"`
}

// LoadFromPath reads and validates the case file at path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a case file
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Marshal encodes the config back to YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Mesh.File == "" && c.Mesh.Geometry == "" {
		c.Mesh.Geometry = "tet"
	}
}

// Validate checks the case for errors that can be found without building it
func (c *Config) Validate() error {
	var errs []error
	if c.Mesh.File == "" && len(c.Mesh.EToV) == 0 {
		errs = append(errs, errors.New("mesh: either file or etov is required"))
	}
	if c.Mesh.File != "" && len(c.Mesh.EToV) != 0 {
		errs = append(errs, errors.New("mesh: file and etov are mutually exclusive"))
	}
	if c.Mesh.File == "" {
		if _, err := mesh.ParseGeometry(c.Mesh.Geometry); err != nil {
			errs = append(errs, fmt.Errorf("mesh: %w", err))
		}
	}
	seen := make(map[string]bool)
	for i, fc := range c.Fields {
		if fc.Name == "" {
			errs = append(errs, fmt.Errorf("fields[%d]: name is required", i))
		} else if seen[fc.Name] {
			errs = append(errs, fmt.Errorf("fields[%d]: duplicate name %q", i, fc.Name))
		}
		seen[fc.Name] = true
		if _, err := fc.Resolve(); err != nil {
			errs = append(errs, fmt.Errorf("fields[%d] %s: %w", i, fc.Name, err))
		}
	}
	return errors.Join(errs...)
}
