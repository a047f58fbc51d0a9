package variable

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tensor is a 3x3 second order tensor. Tensor values are immutable, every
// operation returns a new Tensor and accessors hand out copies.
// The zero Tensor is the zero tensor.
type Tensor struct {
	m *mat.Dense
}

// NewTensor builds a tensor from 9 row-major components
func NewTensor(c []float64) Tensor {
	if len(c) != 9 {
		panic(fmt.Sprintf("variable: tensor needs 9 components, got %d", len(c)))
	}
	data := make([]float64, 9)
	copy(data, c)
	return Tensor{m: mat.NewDense(3, 3, data)}
}

// Identity returns the 3x3 identity tensor
func Identity() Tensor {
	return NewTensor([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

func (t Tensor) dense() *mat.Dense {
	if t.m == nil {
		return mat.NewDense(3, 3, nil)
	}
	return t.m
}

func (t Tensor) isVariable() {}

func (t Tensor) Kind() Kind { return TensorKind }

// At returns component (i,j)
func (t Tensor) At(i, j int) float64 { return t.dense().At(i, j) }

// Dense returns a copy of the tensor as a gonum matrix
func (t Tensor) Dense() *mat.Dense { return mat.DenseCopyOf(t.dense()) }

func (t Tensor) Add(other Variable) Variable {
	mustMatch("add", t, other)
	var r mat.Dense
	r.Add(t.dense(), other.(Tensor).dense())
	return Tensor{m: &r}
}

func (t Tensor) Sub(other Variable) Variable {
	mustMatch("sub", t, other)
	var r mat.Dense
	r.Sub(t.dense(), other.(Tensor).dense())
	return Tensor{m: &r}
}

func (t Tensor) Scale(f float64) Variable {
	var r mat.Dense
	r.Scale(f, t.dense())
	return Tensor{m: &r}
}

func (t Tensor) Div(f float64) Variable {
	var r mat.Dense
	r.Apply(func(_, _ int, v float64) float64 { return v / f }, t.dense())
	return Tensor{m: &r}
}

func (t Tensor) Neg() Variable { return t.Scale(-1) }

// Abs is componentwise
func (t Tensor) Abs() Variable {
	var r mat.Dense
	r.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) }, t.dense())
	return Tensor{m: &r}
}

func (t Tensor) Equal(other Variable) bool {
	o, ok := other.(Tensor)
	return ok && mat.Equal(t.dense(), o.dense())
}

func (t Tensor) EqualApprox(other Variable, tol float64) bool {
	o, ok := other.(Tensor)
	return ok && mat.EqualApprox(t.dense(), o.dense(), tol)
}

// Magnitude is the Frobenius norm
func (t Tensor) Magnitude() float64 { return mat.Norm(t.dense(), 2) }

func (t Tensor) Components() []float64 {
	c := make([]float64, 9)
	d := t.dense()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[3*i+j] = d.At(i, j)
		}
	}
	return c
}

func (t Tensor) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.dense(), mat.Squeeze()))
}
