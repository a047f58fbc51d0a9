package variable

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a 3-component physical vector
type Vector struct {
	r3.Vec
}

// NewVector returns the vector (x, y, z)
func NewVector(x, y, z float64) Vector {
	return Vector{r3.Vec{X: x, Y: y, Z: z}}
}

func (v Vector) isVariable() {}

func (v Vector) Kind() Kind { return VectorKind }

func (v Vector) Add(other Variable) Variable {
	mustMatch("add", v, other)
	return Vector{r3.Add(v.Vec, other.(Vector).Vec)}
}

func (v Vector) Sub(other Variable) Variable {
	mustMatch("sub", v, other)
	return Vector{r3.Sub(v.Vec, other.(Vector).Vec)}
}

func (v Vector) Scale(f float64) Variable { return Vector{r3.Scale(f, v.Vec)} }

func (v Vector) Div(f float64) Variable {
	return NewVector(v.X/f, v.Y/f, v.Z/f)
}

func (v Vector) Neg() Variable { return Vector{r3.Scale(-1, v.Vec)} }

// Abs is componentwise
func (v Vector) Abs() Variable {
	return NewVector(math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z))
}

func (v Vector) Equal(other Variable) bool {
	o, ok := other.(Vector)
	return ok && o.Vec == v.Vec
}

func (v Vector) EqualApprox(other Variable, tol float64) bool {
	o, ok := other.(Vector)
	return ok &&
		scalar.EqualWithinAbs(v.X, o.X, tol) &&
		scalar.EqualWithinAbs(v.Y, o.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, o.Z, tol)
}

func (v Vector) Magnitude() float64 { return r3.Norm(v.Vec) }

func (v Vector) Components() []float64 { return []float64{v.X, v.Y, v.Z} }
