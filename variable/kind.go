package variable

import (
	"fmt"
	"strings"
)

// Kind tags the shape of a physical variable
type Kind uint8

const (
	ScalarKind Kind = iota // Single value
	VectorKind             // 3 components
	TensorKind             // 3x3 components, row-major
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case VectorKind:
		return "vector"
	case TensorKind:
		return "tensor"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// NumComponents returns the number of float64 components carried by a value of this kind
func (k Kind) NumComponents() int {
	switch k {
	case ScalarKind:
		return 1
	case VectorKind:
		return 3
	case TensorKind:
		return 9
	default:
		return 0
	}
}

// ParseKind converts "scalar", "vector" or "tensor" (any case) into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return ScalarKind, nil
	case "vector":
		return VectorKind, nil
	case "tensor":
		return TensorKind, nil
	}
	return 0, fmt.Errorf("unknown variable kind %q", s)
}
