package variable

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Scalar is a single real value
type Scalar float64

// NewScalar returns v as a scalar Variable
func NewScalar(v float64) Scalar { return Scalar(v) }

func (s Scalar) isVariable() {}

func (s Scalar) Kind() Kind { return ScalarKind }

// Value returns the underlying float64
func (s Scalar) Value() float64 { return float64(s) }

func (s Scalar) Add(other Variable) Variable {
	mustMatch("add", s, other)
	return s + other.(Scalar)
}

func (s Scalar) Sub(other Variable) Variable {
	mustMatch("sub", s, other)
	return s - other.(Scalar)
}

func (s Scalar) Scale(f float64) Variable { return Scalar(float64(s) * f) }

func (s Scalar) Div(f float64) Variable { return Scalar(float64(s) / f) }

func (s Scalar) Neg() Variable { return -s }

func (s Scalar) Abs() Variable { return Scalar(math.Abs(float64(s))) }

func (s Scalar) Equal(other Variable) bool {
	o, ok := other.(Scalar)
	return ok && o == s
}

func (s Scalar) EqualApprox(other Variable, tol float64) bool {
	o, ok := other.(Scalar)
	return ok && scalar.EqualWithinAbs(float64(s), float64(o), tol)
}

func (s Scalar) Magnitude() float64 { return math.Abs(float64(s)) }

func (s Scalar) Components() []float64 { return []float64{float64(s)} }
