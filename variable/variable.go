// Package variable provides the physical values stored in fields: scalars,
// 3-vectors and 3x3 tensors.
//
// Operations between two values require both to be of the same Kind. Mixing
// kinds panics; callers holding values of unknown kind check Kind() first.
package variable

import "fmt"

// Variable is a physical value with a fixed Kind
type Variable interface {
	Kind() Kind

	Add(other Variable) Variable
	Sub(other Variable) Variable
	Scale(f float64) Variable
	Div(f float64) Variable
	Neg() Variable
	Abs() Variable

	Equal(other Variable) bool
	EqualApprox(other Variable, tol float64) bool

	// Magnitude is |s| for scalars, the Euclidean norm for vectors and the
	// Frobenius norm for tensors
	Magnitude() float64
	// Components returns a copy of the raw values, row-major for tensors
	Components() []float64

	isVariable()
}

// Valid reports whether v is one of the concrete Scalar, Vector or Tensor
// types of this package. Types wrapping them report a kind but are not valid.
func Valid(v Variable) bool {
	switch v.(type) {
	case Scalar, Vector, Tensor:
		return true
	default:
		return false
	}
}

// Zero returns the additive identity of the given kind
func Zero(k Kind) Variable {
	switch k {
	case ScalarKind:
		return NewScalar(0)
	case VectorKind:
		return NewVector(0, 0, 0)
	case TensorKind:
		return NewTensor(make([]float64, 9))
	default:
		panic(fmt.Sprintf("variable: no zero value for %v", k))
	}
}

// FromComponents builds a value of kind k from its raw components
func FromComponents(k Kind, c []float64) (Variable, error) {
	if n := k.NumComponents(); n == 0 || len(c) != n {
		return nil, fmt.Errorf("%v needs %d components, got %d", k, k.NumComponents(), len(c))
	}
	switch k {
	case ScalarKind:
		return NewScalar(c[0]), nil
	case VectorKind:
		return NewVector(c[0], c[1], c[2]), nil
	default:
		return NewTensor(c), nil
	}
}

func mustMatch(op string, a, b Variable) {
	if !Valid(b) || a.Kind() != b.Kind() {
		var bk any = "nil"
		if b != nil {
			bk = fmt.Sprintf("%T", b)
		}
		panic(fmt.Sprintf("variable: %s between %v and %v", op, a.Kind(), bk))
	}
}
