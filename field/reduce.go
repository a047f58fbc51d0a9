package field

import "gonum.org/v1/gonum/floats"

// Magnitudes returns the magnitude of every value in index order
func (f *Field[V]) Magnitudes() []float64 {
	m := make([]float64, len(f.values))
	for i, v := range f.values {
		m[i] = v.Magnitude()
	}
	return m
}

// MaxMagnitude returns the largest value magnitude and its index, or
// (0, -1) for a field with no values
func (f *Field[V]) MaxMagnitude() (float64, int) {
	m := f.Magnitudes()
	if len(m) == 0 {
		return 0, -1
	}
	i := floats.MaxIdx(m)
	return m[i], i
}

// MinMagnitude returns the smallest value magnitude and its index, or
// (0, -1) for a field with no values
func (f *Field[V]) MinMagnitude() (float64, int) {
	m := f.Magnitudes()
	if len(m) == 0 {
		return 0, -1
	}
	i := floats.MinIdx(m)
	return m[i], i
}

// L2Norm returns sqrt(sum |v_i|^2)
func (f *Field[V]) L2Norm() float64 {
	if len(f.values) == 0 {
		return 0
	}
	return floats.Norm(f.Magnitudes(), 2)
}
