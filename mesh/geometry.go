package mesh

import "fmt"

// GeometryType identifies the shape of an element
type GeometryType uint8

const (
	// 3D element types
	Tet     GeometryType = iota // Tetrahedron
	Hex                         // Hexahedron
	Prism                       // Triangular prism
	Pyramid                     // Square-based pyramid

	// 2D element types
	Tri       // Triangle
	Rectangle // Rectangle/Quadrilateral

	// 1D element type
	Line // Line segment
)

func (g GeometryType) String() string {
	switch g {
	case Tet:
		return "tet"
	case Hex:
		return "hex"
	case Prism:
		return "prism"
	case Pyramid:
		return "pyramid"
	case Tri:
		return "tri"
	case Rectangle:
		return "rectangle"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("geometry(%d)", uint8(g))
	}
}

// ParseGeometry converts a geometry name as printed by String into a GeometryType
func ParseGeometry(s string) (GeometryType, error) {
	for g := Tet; g <= Line; g++ {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown element geometry %q", s)
}

// faceVertices lists, per geometry, which local vertices form each face.
// In 2D the faces are edges, in 1D they are the end points.
var faceVertices = map[GeometryType][][]int{
	Tet: {
		{0, 1, 2}, // Face 0
		{0, 1, 3}, // Face 1
		{1, 2, 3}, // Face 2
		{0, 2, 3}, // Face 3
	},
	Hex: {
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	},
	Prism: {
		{0, 1, 2},
		{3, 4, 5},
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	},
	Pyramid: {
		{0, 1, 2, 3},
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	},
	Tri:       {{0, 1}, {1, 2}, {2, 0}},
	Rectangle: {{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	Line:      {{0}, {1}},
}

var numVertices = map[GeometryType]int{
	Tet: 4, Hex: 8, Prism: 6, Pyramid: 5, Tri: 3, Rectangle: 4, Line: 2,
}

// NumVertices returns the number of vertices defining one element
func (g GeometryType) NumVertices() int { return numVertices[g] }

// NumFaces returns the number of faces bounding one element
func (g GeometryType) NumFaces() int { return len(faceVertices[g]) }
