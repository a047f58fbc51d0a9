package field

import (
	"github.com/notargets/DGField/variable"
)

// Operand is the right hand side of a binary field operation: either a
// whole field or a single value applied to every slot
type Operand[V variable.Variable] struct {
	field   *Field[V]
	value   V
	isField bool
}

// Of wraps a field as an operand
func Of[V variable.Variable](f *Field[V]) Operand[V] {
	return Operand[V]{field: f, isField: true}
}

// Const wraps a single value as an operand
func Const[V variable.Variable](v V) Operand[V] {
	return Operand[V]{value: v}
}

// Add returns f + o elementwise as a new field
func (f *Field[V]) Add(o Operand[V]) (*Field[V], error) {
	return f.binary("add", o, variable.Variable.Add)
}

// Sub returns f - o elementwise as a new field
func (f *Field[V]) Sub(o Operand[V]) (*Field[V], error) {
	return f.binary("sub", o, variable.Variable.Sub)
}

func (f *Field[V]) binary(op string, o Operand[V], fn func(a, b variable.Variable) variable.Variable) (*Field[V], error) {
	r := f.like()
	if o.isField {
		if err := f.compatible(op, o.field); err != nil {
			return nil, err
		}
		for i, v := range f.values {
			r.values[i] = as[V](fn(v, o.field.values[i]))
		}
		return r, nil
	}
	if err := f.checkKind(op, o.value); err != nil {
		return nil, err
	}
	for i, v := range f.values {
		r.values[i] = as[V](fn(v, o.value))
	}
	return r, nil
}

// Neg returns -f as a new field
func (f *Field[V]) Neg() *Field[V] {
	return f.unary(variable.Variable.Neg)
}

// Abs returns |f| elementwise as a new field
func (f *Field[V]) Abs() *Field[V] {
	return f.unary(variable.Variable.Abs)
}

// Scale returns k*f as a new field
func (f *Field[V]) Scale(k float64) *Field[V] {
	return f.unary(func(v variable.Variable) variable.Variable { return v.Scale(k) })
}

// Mul returns factor*f as a new field. factor must be a plain scalar: any
// Go integer or floating point type, or variable.Scalar.
func (f *Field[V]) Mul(factor any) (*Field[V], error) {
	k, err := plainScalar("mul", factor)
	if err != nil {
		return nil, err
	}
	return f.Scale(k), nil
}

// Div returns f/divisor as a new field. divisor follows the same rules as
// Mul's factor. Division by zero follows IEEE-754 semantics of the values.
func (f *Field[V]) Div(divisor any) (*Field[V], error) {
	k, err := plainScalar("div", divisor)
	if err != nil {
		return nil, err
	}
	return f.unary(func(v variable.Variable) variable.Variable { return v.Div(k) }), nil
}

func (f *Field[V]) unary(fn func(v variable.Variable) variable.Variable) *Field[V] {
	r := f.like()
	for i, v := range f.values {
		r.values[i] = as[V](fn(v))
	}
	return r
}

func plainScalar(op string, x any) (float64, error) {
	switch s := x.(type) {
	case float64:
		return s, nil
	case float32:
		return float64(s), nil
	case int:
		return float64(s), nil
	case int8:
		return float64(s), nil
	case int16:
		return float64(s), nil
	case int32:
		return float64(s), nil
	case int64:
		return float64(s), nil
	case uint:
		return float64(s), nil
	case uint8:
		return float64(s), nil
	case uint16:
		return float64(s), nil
	case uint32:
		return float64(s), nil
	case uint64:
		return float64(s), nil
	case variable.Scalar:
		return s.Value(), nil
	default:
		return 0, newError(op, ErrTypeMismatch, "%T is not a plain scalar", x)
	}
}
