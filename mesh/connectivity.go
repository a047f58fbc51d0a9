package mesh

import (
	"fmt"
	"slices"
)

// Connectivity holds the face adjacency of a single-geometry mesh built
// from its element to vertex table
type Connectivity struct {
	Geometry GeometryType
	K        int // Total elements
	Nfaces   int // Faces per element

	EToV [][]int // Element → vertex IDs
	// EToE[k][f] is the element across face f of element k, EToF[k][f] the
	// matching face on that element. Boundary faces connect to themselves.
	EToE [][]int
	EToF [][]int

	NumFaces         int // Unique faces in the mesh
	NumBoundaryFaces int // Faces with a single owning element
	NumNodes         int // Unique vertices referenced by EToV
}

type faceOwner struct {
	elem, face int
}

// NewConnectivity builds face connectivity from EToV
func NewConnectivity(geom GeometryType, EToV [][]int) (*Connectivity, error) {
	Nv := geom.NumVertices()
	if Nv == 0 {
		return nil, fmt.Errorf("unsupported geometry %v", geom)
	}
	K := len(EToV)
	if K == 0 {
		return nil, fmt.Errorf("invalid dimensions: K=%d", K)
	}
	nodes := make(map[int]struct{})
	for k, verts := range EToV {
		if len(verts) != Nv {
			return nil, fmt.Errorf("element %d has %d vertices, %v needs %d", k, len(verts), geom, Nv)
		}
		for _, v := range verts {
			if v < 0 {
				return nil, fmt.Errorf("element %d has invalid vertex ID %d", k, v)
			}
			nodes[v] = struct{}{}
		}
	}

	c := &Connectivity{
		Geometry: geom,
		K:        K,
		Nfaces:   geom.NumFaces(),
		EToV:     EToV,
		NumNodes: len(nodes),
	}
	if err := c.buildFaces(); err != nil {
		return nil, err
	}
	return c, nil
}

// buildFaces matches faces through a canonical signature of their sorted vertex IDs
func (c *Connectivity) buildFaces() error {
	c.EToE = make([][]int, c.K)
	c.EToF = make([][]int, c.K)
	for e := 0; e < c.K; e++ {
		c.EToE[e] = make([]int, c.Nfaces)
		c.EToF[e] = make([]int, c.Nfaces)
		for f := 0; f < c.Nfaces; f++ {
			c.EToE[e][f] = e // Self-connection by default
			c.EToF[e][f] = f
		}
	}

	faceMap := make(map[string]faceOwner)
	matched := make(map[string]bool)
	fv := faceVertices[c.Geometry]
	for e := 0; e < c.K; e++ {
		for f := 0; f < c.Nfaces; f++ {
			v := make([]int, len(fv[f]))
			for i, lv := range fv[f] {
				v[i] = c.EToV[e][lv]
			}
			slices.Sort(v)
			key := fmt.Sprint(v)

			existing, found := faceMap[key]
			switch {
			case !found:
				faceMap[key] = faceOwner{e, f}
			case matched[key] || existing.elem == e:
				return fmt.Errorf("non-manifold face %v at element %d face %d", v, e, f)
			default:
				c.EToE[e][f] = existing.elem
				c.EToF[e][f] = existing.face
				c.EToE[existing.elem][existing.face] = e
				c.EToF[existing.elem][existing.face] = f
				matched[key] = true
			}
		}
	}

	c.NumFaces = len(faceMap)
	c.NumBoundaryFaces = len(faceMap) - len(matched)
	return nil
}

// IsBoundary reports whether face f of element k has no neighbor
func (c *Connectivity) IsBoundary(k, f int) bool {
	return c.EToE[k][f] == k && c.EToF[k][f] == f
}

// Counts returns the number of cells, faces and nodes of the mesh
func (c *Connectivity) Counts() Counts {
	return Counts{Cells: c.K, Faces: c.NumFaces, Nodes: c.NumNodes}
}

// Verify checks that the adjacency is symmetric and the face totals add up
func (c *Connectivity) Verify() error {
	interior := 0
	for k := 0; k < c.K; k++ {
		for f := 0; f < c.Nfaces; f++ {
			if c.IsBoundary(k, f) {
				continue
			}
			interior++
			nk, nf := c.EToE[k][f], c.EToF[k][f]
			if nk < 0 || nk >= c.K || nf < 0 || nf >= c.Nfaces {
				return fmt.Errorf("element %d face %d points outside the mesh: (%d,%d)", k, f, nk, nf)
			}
			if c.EToE[nk][nf] != k || c.EToF[nk][nf] != f {
				return fmt.Errorf("asymmetric connection: (%d,%d) -> (%d,%d) -> (%d,%d)",
					k, f, nk, nf, c.EToE[nk][nf], c.EToF[nk][nf])
			}
		}
	}
	if total := c.K * c.Nfaces; interior/2+c.NumBoundaryFaces != c.NumFaces || interior+c.NumBoundaryFaces != total {
		return fmt.Errorf("conservation error: %d interior face sides, %d boundary faces, %d unique faces, %d element faces",
			interior, c.NumBoundaryFaces, c.NumFaces, total)
	}
	return nil
}
