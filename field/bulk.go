package field

import (
	"slices"
)

// Transform computes a replacement for a value. Returning false leaves the
// slot unchanged.
type Transform[V any] func(v V) (V, bool)

// Predicate selects values
type Predicate[V any] func(v V) bool

// Filter returns, in ascending order, the indices of every value satisfying pred
func (f *Field[V]) Filter(pred Predicate[V]) ([]int, error) {
	if pred == nil {
		return nil, newError("filter", ErrInvalidCallable, "nil predicate")
	}
	var idx []int
	for i, v := range f.values {
		if pred(v) {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

// ForEach applies fn to every value in ascending index order and writes
// back each result of the field's kind
func (f *Field[V]) ForEach(fn Transform[V]) error {
	if fn == nil {
		return newError("for_each", ErrInvalidCallable, "nil transform")
	}
	idx := make([]int, len(f.values))
	for i := range idx {
		idx[i] = i
	}
	return f.apply("for_each", idx, fn)
}

// At applies fn to the values at the given indices. Each distinct index is
// visited once, in ascending order. An empty index set is a no-op.
func (f *Field[V]) At(indices []int, fn Transform[V]) error {
	if fn == nil {
		return newError("at", ErrInvalidCallable, "nil transform")
	}
	if len(indices) == 0 {
		return nil
	}
	lo, hi := slices.Min(indices), slices.Max(indices)
	if lo < 0 || hi >= len(f.values) {
		return newError("at", ErrIndexOutOfRange, "indices span [%d,%d], field length %d", lo, hi, len(f.values))
	}
	idx := slices.Clone(indices)
	slices.Sort(idx)
	return f.apply("at", slices.Compact(idx), fn)
}

// apply runs fn over idx into a scratch buffer and commits only if every
// result passes the write-back policy
func (f *Field[V]) apply(op string, idx []int, fn Transform[V]) error {
	type update struct {
		i int
		v V
	}
	updates := make([]update, 0, len(idx))
	for _, i := range idx {
		res, ok := fn(f.values[i])
		if !ok {
			continue
		}
		if err := f.checkKind(op, res); err != nil {
			if f.strict {
				return newError(op, ErrTypeMismatch, "transform result at index %d: %s", i, err.(*Error).Detail)
			}
			continue
		}
		updates = append(updates, update{i, res})
	}
	for _, u := range updates {
		f.values[u.i] = u.v
	}
	return nil
}

// Assign replaces the contents of f with a copy of a compatible field's
// values, or sets every slot to a single value of the field's kind
func (f *Field[V]) Assign(src Operand[V]) error {
	if src.isField {
		if err := f.compatible("assign", src.field); err != nil {
			return err
		}
		copy(f.values, src.field.values)
		return nil
	}
	if err := f.checkKind("assign", src.value); err != nil {
		return err
	}
	for i := range f.values {
		f.values[i] = src.value
	}
	return nil
}
