package mesh

import (
	"fmt"

	"github.com/notargets/gocfd/DG3D/mesh/readers"
)

// FromFile reads a tetrahedral mesh file (Gambit .neu, SU2, Gmsh) and
// builds its connectivity
func FromFile(path string) (*Connectivity, error) {
	msh, err := readers.ReadMeshFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mesh %s: %w", path, err)
	}
	c, err := NewConnectivity(Tet, msh.EtoV)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}
	// Vertices not referenced by any element still carry node values
	if nv := len(msh.Vertices); nv > c.NumNodes {
		c.NumNodes = nv
	}
	return c, nil
}
