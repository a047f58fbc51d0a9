// Package field provides fixed size homogeneous containers of physical
// variables attached to a mesh domain (cells, faces or nodes).
//
// A Field owns its storage. Binary operations and assignment require both
// fields to be compatible: same length, same variable kind, same domain.
// Every contract check runs before any slot is written, so a failed call
// leaves the field untouched.
//
// Fields are not safe for concurrent mutation. Concurrent readers are fine
// as long as no writer (Set, Assign, ForEach, At) runs at the same time.
package field

import (
	"fmt"
	"iter"

	"github.com/notargets/DGField/variable"
)

// Field is a fixed length sequence of values of a single variable kind
type Field[V variable.Variable] struct {
	domain Domain
	def    V
	values []V
	strict bool
}

// Option configures a Field at construction
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictWriteBack makes ForEach and At fail with ErrTypeMismatch when a
// transform returns a value of the wrong kind. By default such results are
// skipped and the slot keeps its value.
func WithStrictWriteBack() Option {
	return func(o *options) { o.strict = true }
}

// New creates a field of count values on domain d, all set to def. The kind
// of def is the kind of the field for its whole lifetime.
func New[V variable.Variable](d Domain, count int, def V, opts ...Option) (*Field[V], error) {
	if count <= 0 {
		return nil, newError("new", ErrInvalidSize, "count=%d, must be positive", count)
	}
	if d > Node {
		return nil, newError("new", ErrInvalidDomain, "%v", d)
	}
	if isNil(def) {
		return nil, newError("new", ErrTypeMismatch, "default value has no kind")
	}
	if !variable.Valid(def) {
		return nil, newError("new", ErrTypeMismatch, "unsupported value type %T", def)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	f := &Field[V]{
		domain: d,
		def:    def,
		values: make([]V, count),
		strict: o.strict,
	}
	for i := range f.values {
		f.values[i] = def
	}
	return f, nil
}

// like returns a new field sharing shape, default and settings with f
func (f *Field[V]) like() *Field[V] {
	return &Field[V]{
		domain: f.domain,
		def:    f.def,
		values: make([]V, len(f.values)),
		strict: f.strict,
	}
}

// Kind returns the variable kind of every value in the field
func (f *Field[V]) Kind() variable.Kind { return f.def.Kind() }

// Domain returns the mesh domain the field is attached to
func (f *Field[V]) Domain() Domain { return f.domain }

// Default returns the value used to fill the field at construction
func (f *Field[V]) Default() V { return f.def }

// Len returns the number of values in the field
func (f *Field[V]) Len() int { return len(f.values) }

// Strict reports whether wrong-kind transform results are errors
func (f *Field[V]) Strict() bool { return f.strict }

// Get returns the value at index i
func (f *Field[V]) Get(i int) (v V, err error) {
	if err = f.checkIndex("get", i); err != nil {
		return
	}
	return f.values[i], nil
}

// Set overwrites the value at index i
func (f *Field[V]) Set(i int, v V) error {
	if err := f.checkIndex("set", i); err != nil {
		return err
	}
	if err := f.checkKind("set", v); err != nil {
		return err
	}
	f.values[i] = v
	return nil
}

// All iterates over (index, value) pairs in ascending index order. The
// yielded values are copies, mutation goes through Set, ForEach or At.
func (f *Field[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range f.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the stored values
func (f *Field[V]) Values() []V {
	out := make([]V, len(f.values))
	copy(out, f.values)
	return out
}

// Compatible returns nil when f and other may be combined, otherwise an
// ErrIncompatibleFields error naming the first mismatch found
func (f *Field[V]) Compatible(other *Field[V]) error {
	return f.compatible("compatible", other)
}

func (f *Field[V]) compatible(op string, other *Field[V]) error {
	switch {
	case other == nil:
		return newError(op, ErrIncompatibleFields, "nil field")
	case len(f.values) != len(other.values):
		return newError(op, ErrIncompatibleFields, "length %d != %d", len(f.values), len(other.values))
	case f.Kind() != other.Kind():
		return newError(op, ErrIncompatibleFields, "kind %v != %v", f.Kind(), other.Kind())
	case f.domain != other.domain:
		return newError(op, ErrIncompatibleFields, "domain %v != %v", f.domain, other.domain)
	}
	return nil
}

// Equal reports whether other is compatible with f and holds equal values
func (f *Field[V]) Equal(other *Field[V]) bool {
	if f.Compatible(other) != nil {
		return false
	}
	for i, v := range f.values {
		if !v.Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// EqualApprox is Equal with an absolute tolerance per component
func (f *Field[V]) EqualApprox(other *Field[V], tol float64) bool {
	if f.Compatible(other) != nil {
		return false
	}
	for i, v := range f.values {
		if !v.EqualApprox(other.values[i], tol) {
			return false
		}
	}
	return true
}

func (f *Field[V]) String() string {
	return fmt.Sprintf("%s[%v] len=%d", f.domain.FieldName(), f.Kind(), len(f.values))
}

func (f *Field[V]) checkIndex(op string, i int) error {
	if i < 0 || i >= len(f.values) {
		return newError(op, ErrIndexOutOfRange, "index %d not in [0,%d)", i, len(f.values))
	}
	return nil
}

func (f *Field[V]) checkKind(op string, v V) error {
	if isNil(v) {
		return newError(op, ErrTypeMismatch, "nil value (expected %v)", f.Kind())
	}
	if !variable.Valid(v) {
		return newError(op, ErrTypeMismatch, "unsupported value type %T (expected %v)", v, f.Kind())
	}
	if v.Kind() != f.Kind() {
		return newError(op, ErrTypeMismatch, "%v (expected %v)", v.Kind(), f.Kind())
	}
	return nil
}

func isNil[V variable.Variable](v V) bool {
	return any(v) == nil
}

// as converts the result of a Variable operation back to the field's value type
func as[V variable.Variable](v variable.Variable) V {
	return v.(V)
}
