package beam

import (
	"fmt"
	"sort"
	"strings"
)

// DOFsPerNode is the number of degrees of freedom carried by each node
const DOFsPerNode = 2

// Field identifies one of the two nodal degrees of freedom
type Field int

const (
	Translation Field = iota // transverse displacement v
	Rotation                 // slope θ
)

func (f Field) String() string {
	switch f {
	case Translation:
		return "translation"
	case Rotation:
		return "rotation"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler
func (f Field) MarshalText() ([]byte, error) {
	if f != Translation && f != Rotation {
		return nil, fmt.Errorf("invalid field %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Field) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "translation", "displacement", "v":
		*f = Translation
	case "rotation", "theta", "θ":
		*f = Rotation
	default:
		return fmt.Errorf("unknown field %q (want translation or rotation)", text)
	}
	return nil
}

// Support fixes one degree of freedom of one node. A negative node counts
// from the free end: -1 is the last node.
type Support struct {
	Node  int   `json:"node" toml:"node"`
	Field Field `json:"field" toml:"field"`
}

func (s Support) String() string {
	return fmt.Sprintf("node %d %s", s.Node, s.Field)
}

// Cantilever fixes translation and rotation at node 0
func Cantilever() []Support {
	return []Support{{Node: 0, Field: Translation}, {Node: 0, Field: Rotation}}
}

var supportPresets = map[string][]Support{
	"cantilever":    Cantilever(),
	"pinned-pinned": {{0, Translation}, {-1, Translation}},
	"fixed-fixed":   {{0, Translation}, {0, Rotation}, {-1, Translation}, {-1, Rotation}},
	"fixed-pinned":  {{0, Translation}, {0, Rotation}, {-1, Translation}},
}

// SupportPreset returns the supports of a named boundary condition
func SupportPreset(name string) ([]Support, error) {
	s, ok := supportPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, invalidf("unknown support %q (available: %s)", name, strings.Join(SupportPresetNames(), ", "))
	}
	return append([]Support(nil), s...), nil
}

// SupportPresetNames lists the available boundary condition presets
func SupportPresetNames() []string {
	names := make([]string, 0, len(supportPresets))
	for k := range supportPresets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ConstrainedDOFs resolves supports into sorted, unique global DOF indices
// for a mesh with the given node count
func ConstrainedDOFs(supports []Support, nodes int) ([]int, error) {
	seen := make(map[int]bool, len(supports))
	dofs := make([]int, 0, len(supports))
	for _, s := range supports {
		node := s.Node
		if node < 0 {
			node += nodes
		}
		if node < 0 || node >= nodes {
			return nil, invalidf("support %v outside mesh with %d nodes", s, nodes)
		}
		if s.Field != Translation && s.Field != Rotation {
			return nil, invalidf("support %v has invalid field", s)
		}
		d := DOF(node, s.Field)
		if !seen[d] {
			seen[d] = true
			dofs = append(dofs, d)
		}
	}
	sort.Ints(dofs)
	return dofs, nil
}
