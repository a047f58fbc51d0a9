package field

import (
	"math"
	"testing"

	"github.com/notargets/DGField/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := scalars(t, Cell, 1, 2, 3)
	b := scalars(t, Cell, 10, 20, 30)

	sum, err := a.Add(Of(b))
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, raw(sum))
	assert.Equal(t, Cell, sum.Domain())
	assert.Equal(t, a.Default(), sum.Default())

	diff, err := b.Sub(Of(a))
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27}, raw(diff))

	shifted, err := a.Sub(Const(variable.NewScalar(1)))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, raw(shifted))

	// Operands are never mutated
	assert.Equal(t, []float64{1, 2, 3}, raw(a))
	assert.Equal(t, []float64{10, 20, 30}, raw(b))
}

func TestAdditiveIdentity(t *testing.T) {
	kinds := []variable.Variable{
		variable.NewScalar(2.5),
		variable.NewVector(1, -2, 3),
		variable.Identity(),
	}
	for _, d := range kinds {
		t.Run(d.Kind().String(), func(t *testing.T) {
			f, err := NewNodeField(4, d)
			require.NoError(t, err)
			require.NoError(t, f.Set(2, d.Scale(3)))
			g, err := f.Add(Const(variable.Zero(d.Kind())))
			require.NoError(t, err)
			assert.True(t, g.Equal(f))
		})
	}
}

func TestCompatibilitySymmetry(t *testing.T) {
	short := scalars(t, Cell, 1, 2)
	long := scalars(t, Cell, 1, 2, 3)
	face := scalars(t, Face, 1, 2, 3)
	vec, err := NewCellField[variable.Variable](3, variable.NewVector(0, 0, 0))
	require.NoError(t, err)
	sc, err := NewCellField[variable.Variable](3, variable.NewScalar(0))
	require.NoError(t, err)

	for _, p := range [][2]*Field[variable.Scalar]{{short, long}, {long, face}} {
		_, err1 := p[0].Add(Of(p[1]))
		_, err2 := p[1].Add(Of(p[0]))
		assert.ErrorIs(t, err1, ErrIncompatibleFields)
		assert.ErrorIs(t, err2, ErrIncompatibleFields)
	}
	_, err1 := vec.Sub(Of(sc))
	_, err2 := sc.Sub(Of(vec))
	assert.ErrorIs(t, err1, ErrIncompatibleFields)
	assert.ErrorIs(t, err2, ErrIncompatibleFields)
}

func TestAddValueKindMismatch(t *testing.T) {
	f, err := NewFaceField[variable.Variable](3, variable.NewVector(1, 0, 0))
	require.NoError(t, err)
	_, err = f.Add(Const[variable.Variable](variable.NewScalar(1)))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = f.Sub(Const[variable.Variable](nil))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	g, err := f.Add(Const[variable.Variable](variable.NewVector(0, 1, 0)))
	require.NoError(t, err)
	v, err := g.Get(1)
	require.NoError(t, err)
	assert.True(t, v.Equal(variable.NewVector(1, 1, 0)))
}

func TestUnary(t *testing.T) {
	f := scalars(t, Node, -1, 2, -3)
	assert.Equal(t, []float64{1, -2, 3}, raw(f.Neg()))
	assert.Equal(t, []float64{1, 2, 3}, raw(f.Abs()))
	assert.Equal(t, []float64{-1, 2, -3}, raw(f))
	assert.Equal(t, Node, f.Abs().Domain())
}

func TestMulDiv(t *testing.T) {
	f := scalars(t, Cell, 1, 2, 3)

	factors := []any{
		2.0, float32(2), 2, int8(2), int16(2), int32(2), int64(2),
		uint(2), uint8(2), uint16(2), uint32(2), uint64(2), variable.NewScalar(2),
	}
	for _, k := range factors {
		g, err := f.Mul(k)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 4, 6}, raw(g))
	}

	_, err := f.Mul(f)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = f.Mul(variable.NewVector(1, 1, 1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = f.Div("2")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	h, err := f.Div(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, raw(h))

	inf, err := f.Div(0.0)
	require.NoError(t, err)
	for _, v := range raw(inf) {
		assert.True(t, math.IsInf(v, 1))
	}
	assert.Equal(t, []float64{1, 2, 3}, raw(f))
}

func TestTensorField(t *testing.T) {
	f, err := NewCellField(2, variable.Identity())
	require.NoError(t, err)
	g := f.Scale(3)
	s, err := g.Sub(Of(f))
	require.NoError(t, err)
	want := variable.Identity().Scale(2)
	for _, v := range s.All() {
		assert.True(t, v.EqualApprox(want, 1.e-14))
	}
	assert.True(t, f.Neg().Abs().EqualApprox(f, 0))
}

func TestReductions(t *testing.T) {
	f, err := NewCellField(3, variable.NewVector(0, 0, 0))
	require.NoError(t, err)
	require.NoError(t, f.Set(1, variable.NewVector(3, 4, 0)))
	require.NoError(t, f.Set(2, variable.NewVector(0, 0, -1)))

	assert.InDeltaSlice(t, []float64{0, 5, 1}, f.Magnitudes(), 1.e-12)
	mx, imx := f.MaxMagnitude()
	assert.InDelta(t, 5.0, mx, 1.e-12)
	assert.Equal(t, 1, imx)
	mn, imn := f.MinMagnitude()
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 0, imn)
	assert.InDelta(t, math.Sqrt(26), f.L2Norm(), 1.e-12)
}

func TestReductionsOnZeroValueField(t *testing.T) {
	var f Field[variable.Scalar]
	assert.NotPanics(t, func() {
		mx, imx := f.MaxMagnitude()
		mn, imn := f.MinMagnitude()
		assert.Equal(t, 0.0, mx)
		assert.Equal(t, -1, imx)
		assert.Equal(t, 0.0, mn)
		assert.Equal(t, -1, imn)
		assert.Equal(t, 0.0, f.L2Norm())
	})
}
