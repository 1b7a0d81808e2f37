package beam

// Mesh is a uniform 1D discretization of the beam axis. Element e joins
// node e and node e+1; it never changes after NewMesh.
type Mesh struct {
	Length        float64 // L (m)
	Elements      int     // n
	Nodes         int     // n + 1
	DOFs          int     // 2(n + 1)
	ElementLength float64 // Le = L/n (m)

	X            []float64 // node coordinates from the first node (m)
	Connectivity [][4]int  // global DOFs of each element
}

// DOF returns the global index of a nodal degree of freedom, numbered
// node-major, field-minor
func DOF(node int, f Field) int {
	return DOFsPerNode*node + int(f)
}

// NewMesh partitions length into elements equal elements
func NewMesh(length float64, elements int) (*Mesh, error) {
	if elements < 1 {
		return nil, invalidf("element count must be at least 1, got %d", elements)
	}
	if !(length > 0) {
		return nil, invalidf("length must be positive, got %g", length)
	}

	m := &Mesh{
		Length:        length,
		Elements:      elements,
		Nodes:         elements + 1,
		DOFs:          DOFsPerNode * (elements + 1),
		ElementLength: length / float64(elements),
	}

	m.X = make([]float64, m.Nodes)
	for i := range m.X {
		m.X[i] = length * float64(i) / float64(elements)
	}

	m.Connectivity = make([][4]int, elements)
	for e := range m.Connectivity {
		m.Connectivity[e] = [4]int{
			DOF(e, Translation), DOF(e, Rotation),
			DOF(e+1, Translation), DOF(e+1, Rotation),
		}
	}

	return m, nil
}

// NodeOf returns the node and field a global DOF belongs to
func NodeOf(dof int) (int, Field) {
	return dof / DOFsPerNode, Field(dof % DOFsPerNode)
}
