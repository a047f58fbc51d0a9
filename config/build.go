package config

import (
	"fmt"

	"github.com/notargets/DGField/field"
	"github.com/notargets/DGField/mesh"
	"github.com/notargets/DGField/variable"
)

// FieldSpec is a FieldConfig with its strings and components resolved
type FieldSpec struct {
	Name    string
	Domain  field.Domain
	Default variable.Variable
	Strict  bool
	Patches []Patch
}

// Patch is a resolved PatchConfig
type Patch struct {
	Indices []int
	Value   variable.Variable
}

// Resolve parses domain, kind and component lists
func (fc FieldConfig) Resolve() (*FieldSpec, error) {
	d, err := field.ParseDomain(fc.Domain)
	if err != nil {
		return nil, err
	}
	k, err := variable.ParseKind(fc.Kind)
	if err != nil {
		return nil, err
	}
	def := variable.Zero(k)
	if len(fc.Default) != 0 {
		if def, err = variable.FromComponents(k, fc.Default); err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
	}
	spec := &FieldSpec{Name: fc.Name, Domain: d, Default: def, Strict: fc.Strict}
	for i, p := range fc.Patches {
		v, err := variable.FromComponents(k, p.Value)
		if err != nil {
			return nil, fmt.Errorf("patches[%d]: %w", i, err)
		}
		spec.Patches = append(spec.Patches, Patch{Indices: p.Indices, Value: v})
	}
	return spec, nil
}

// Connectivity loads or builds the case mesh
func (m MeshConfig) Connectivity() (*mesh.Connectivity, error) {
	if m.File != "" {
		return mesh.FromFile(m.File)
	}
	geom, err := mesh.ParseGeometry(m.Geometry)
	if err != nil {
		return nil, err
	}
	return mesh.NewConnectivity(geom, m.EToV)
}

// Build creates the field described by spec on a mesh with the given counts
// and applies its patches in order
func (spec *FieldSpec) Build(counts mesh.Counts) (*field.Field[variable.Variable], error) {
	var opts []field.Option
	if spec.Strict {
		opts = append(opts, field.WithStrictWriteBack())
	}
	f, err := mesh.NewField(counts, spec.Domain, spec.Default, opts...)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", spec.Name, err)
	}
	for i, p := range spec.Patches {
		value := p.Value
		err := f.At(p.Indices, func(variable.Variable) (variable.Variable, bool) {
			return value, true
		})
		if err != nil {
			return nil, fmt.Errorf("field %s patch %d: %w", spec.Name, i, err)
		}
	}
	return f, nil
}
