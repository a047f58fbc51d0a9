package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notargets/DGField/field"
	"github.com/notargets/DGField/mesh"
	"github.com/notargets/DGField/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTets = `
mesh:
  etov: [[0, 1, 2, 3], [1, 2, 3, 4]]
fields:
  - name: pressure
    domain: cell
    kind: scalar
    default: [1]
    patches:
      - indices: [1]
        value: [2]
  - name: velocity
    domain: node
    kind: vector
  - name: stress
    domain: face
    kind: tensor
    strict: true
    default: [1, 0, 0, 0, 1, 0, 0, 0, 1]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(twoTets))
	require.NoError(t, err)

	want := &Config{
		Version: 1,
		Mesh: MeshConfig{
			Geometry: "tet",
			EToV:     [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}},
		},
		Fields: []FieldConfig{
			{
				Name: "pressure", Domain: "cell", Kind: "scalar", Default: []float64{1},
				Patches: []PatchConfig{{Indices: []int{1}, Value: []float64{2}}},
			},
			{Name: "velocity", Domain: "node", Kind: "vector"},
			{
				Name: "stress", Domain: "face", Kind: "tensor", Strict: true,
				Default: []float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
			},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(twoTets))
	require.NoError(t, err)
	data, err := cfg.Marshal()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cfg, again))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"NoMesh", "fields: []"},
		{"FileAndEToV", "mesh: {file: a.neu, etov: [[0, 1, 2, 3]]}"},
		{"BadGeometry", "mesh: {geometry: blob, etov: [[0, 1, 2]]}"},
		{"NoName", "mesh: {etov: [[0, 1, 2, 3]]}\nfields: [{domain: cell, kind: scalar}]"},
		{"Duplicate", "mesh: {etov: [[0, 1, 2, 3]]}\nfields: [{name: a, domain: cell, kind: scalar}, {name: a, domain: node, kind: scalar}]"},
		{"BadDomain", "mesh: {etov: [[0, 1, 2, 3]]}\nfields: [{name: a, domain: edge, kind: scalar}]"},
		{"BadKind", "mesh: {etov: [[0, 1, 2, 3]]}\nfields: [{name: a, domain: cell, kind: spinor}]"},
		{"BadDefault", "mesh: {etov: [[0, 1, 2, 3]]}\nfields: [{name: a, domain: cell, kind: vector, default: [1]}]"},
		{"BadPatch", "mesh: {etov: [[0, 1, 2, 3]]}\nfields: [{name: a, domain: cell, kind: scalar, patches: [{indices: [0], value: [1, 2]}]}]"},
		{"NotYAML", "mesh: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoTets), 0644))
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Fields, 3)

	_, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(twoTets))
	require.NoError(t, err)
	conn, err := cfg.Mesh.Connectivity()
	require.NoError(t, err)
	counts := conn.Counts()

	specs := make(map[string]*FieldSpec)
	for _, fc := range cfg.Fields {
		spec, err := fc.Resolve()
		require.NoError(t, err)
		specs[fc.Name] = spec
	}

	p, err := specs["pressure"].Build(counts)
	require.NoError(t, err)
	assert.Equal(t, field.Cell, p.Domain())
	assert.Equal(t, []variable.Variable{variable.NewScalar(1), variable.NewScalar(2)}, p.Values())

	v, err := specs["velocity"].Build(counts)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, variable.VectorKind, v.Kind())

	s, err := specs["stress"].Build(counts)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Len())
	assert.True(t, s.Strict())
	assert.True(t, s.Default().Equal(variable.Identity()))
}

func TestBuildPatchOutOfRange(t *testing.T) {
	fc := FieldConfig{
		Name: "p", Domain: "cell", Kind: "scalar",
		Patches: []PatchConfig{{Indices: []int{0, 9}, Value: []float64{1}}},
	}
	spec, err := fc.Resolve()
	require.NoError(t, err)
	_, err = spec.Build(mesh.Counts{Cells: 2, Faces: 7, Nodes: 5})
	assert.ErrorIs(t, err, field.ErrIndexOutOfRange)
}
