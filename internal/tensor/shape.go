package tensor

import "fmt"

// Shape holds tensor dimensions, outermost first. The model works with
// rank-3 shapes (batch, time, channel) almost exclusively; an empty
// Shape denotes a scalar.
type Shape []int

// NumElements returns the element count, 1 for a scalar.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate reports the first non-positive dimension as an error.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether the two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if dim != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// ComputeStrides returns the row-major strides: the innermost dimension
// is contiguous and each outer stride is the element count of the
// sub-tensor below it.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// BroadcastShapes resolves the output shape of an elementwise operation
// on operands of shapes a and b under NumPy alignment: dimensions pair
// up from the right, missing leading dimensions count as 1, and a
// 1-sized dimension stretches to match its partner. The primary client
// is mask application, where a (B, T, 1) mask multiplies a (B, T, C)
// tensor.
//
// The bool result is true when at least one dimension had to stretch,
// letting callers skip the coordinate-walking path for same-shape
// operands. Incompatible dimensions (unequal, neither 1) produce an
// error.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	rank := max(len(a), len(b))
	out := make(Shape, rank)
	stretched := false

	for i := 1; i <= rank; i++ {
		ad, bd := 1, 1
		if i <= len(a) {
			ad = a[len(a)-i]
		}
		if i <= len(b) {
			bd = b[len(b)-i]
		}

		if ad != bd {
			if ad != 1 && bd != 1 {
				return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
					a, b, rank-i, ad, bd)
			}
			stretched = true
		}
		// With compatibility established, the output dimension is
		// whichever side is not 1.
		out[rank-i] = max(ad, bd)
	}

	return out, stretched, nil
}
