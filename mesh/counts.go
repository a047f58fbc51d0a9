// Package mesh derives the per-domain element counts that size fields:
// number of cells, faces and nodes of a mesh.
package mesh

import (
	"fmt"

	"github.com/notargets/DGField/field"
	"github.com/notargets/DGField/variable"
)

// Counts holds the number of elements in each field domain
type Counts struct {
	Cells int
	Faces int
	Nodes int
}

// For returns the element count of domain d, 0 for an unknown domain
func (c Counts) For(d field.Domain) int {
	switch d {
	case field.Cell:
		return c.Cells
	case field.Face:
		return c.Faces
	case field.Node:
		return c.Nodes
	default:
		return 0
	}
}

func (c Counts) String() string {
	return fmt.Sprintf("cells=%d faces=%d nodes=%d", c.Cells, c.Faces, c.Nodes)
}

// NewField creates a field on domain d sized by the mesh counts
func NewField[V variable.Variable](c Counts, d field.Domain, def V, opts ...field.Option) (*field.Field[V], error) {
	return field.New(d, c.For(d), def, opts...)
}
