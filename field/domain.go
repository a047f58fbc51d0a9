package field

import (
	"fmt"
	"strings"

	"github.com/notargets/DGField/variable"
)

// Domain is the mesh element category a field's values are attached to
type Domain uint8

const (
	Cell Domain = iota // Cell centers
	Face               // Face centers
	Node               // Mesh vertices
)

func (d Domain) String() string {
	switch d {
	case Cell:
		return "cell"
	case Face:
		return "face"
	case Node:
		return "node"
	default:
		return fmt.Sprintf("domain(%d)", uint8(d))
	}
}

// FieldName returns the name of the field variant for this domain
func (d Domain) FieldName() string {
	switch d {
	case Cell:
		return "CellField"
	case Face:
		return "FaceField"
	case Node:
		return "NodeField"
	default:
		return "Field"
	}
}

// ParseDomain converts "cell", "face" or "node" (any case) into a Domain
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cell":
		return Cell, nil
	case "face":
		return Face, nil
	case "node":
		return Node, nil
	}
	return 0, fmt.Errorf("unknown field domain %q", s)
}

// NewCellField creates a field holding one value per cell, all set to def
func NewCellField[V variable.Variable](numCells int, def V, opts ...Option) (*Field[V], error) {
	return New(Cell, numCells, def, opts...)
}

// NewFaceField creates a field holding one value per face, all set to def
func NewFaceField[V variable.Variable](numFaces int, def V, opts ...Option) (*Field[V], error) {
	return New(Face, numFaces, def, opts...)
}

// NewNodeField creates a field holding one value per node, all set to def
func NewNodeField[V variable.Variable](numNodes int, def V, opts ...Option) (*Field[V], error) {
	return New(Node, numNodes, def, opts...)
}
