package tensor

import "fmt"

// Tensor is the high-level tensor type: a RawTensor bound to the backend
// that computes on it. Methods dispatch to the backend and wrap results,
// so pipeline code reads as chained tensor expressions.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 10, 128}, backend)
//	y := x.Abs().SumDim(2, true)  // (2, 10, 1)
type Tensor struct {
	raw     *RawTensor
	backend Backend
}

// New creates a tensor from a raw tensor and a backend.
func New(raw *RawTensor, backend Backend) *Tensor {
	if raw == nil {
		panic("tensor: nil raw tensor")
	}
	return &Tensor{raw: raw, backend: backend}
}

// Raw returns the underlying raw tensor.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the compute backend bound to this tensor.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// Data returns the underlying float32 buffer (shared, not copied).
func (t *Tensor) Data() []float32 {
	return t.raw.Data()
}

// Clone returns a deep copy bound to the same backend.
func (t *Tensor) Clone() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// Fill sets every element to v.
func (t *Tensor) Fill(v float32) {
	t.raw.Fill(v)
}

// Reshape returns a view with a new shape. Element count must match.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	return New(t.raw.Reshape(Shape(dims)), t.backend)
}

// Add performs element-wise addition with broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return New(t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return New(t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor) AddScalar(s float32) *Tensor {
	return New(t.backend.AddScalar(t.raw, s), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor) MulScalar(s float32) *Tensor {
	return New(t.backend.MulScalar(t.raw, s), t.backend)
}

// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return New(t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Abs returns the element-wise absolute value.
func (t *Tensor) Abs() *Tensor {
	return New(t.backend.Abs(t.raw), t.backend)
}

// SumDim sums along a dimension, optionally keeping it as size 1.
func (t *Tensor) SumDim(dim int, keepDim bool) *Tensor {
	return New(t.backend.SumDim(t.raw, dim, keepDim), t.backend)
}

// NotEqualScalar returns a 0/1 float mask: 1 where the element != s.
func (t *Tensor) NotEqualScalar(s float32) *Tensor {
	return New(t.backend.NotEqualScalar(t.raw, s), t.backend)
}

// Cat concatenates tensors along a dimension. All tensors must share a
// backend and agree on every dimension except dim.
func Cat(tensors []*Tensor, dim int) *Tensor {
	if len(tensors) == 0 {
		panic("cat: no tensors to concatenate")
	}

	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}

	backend := tensors[0].backend
	return New(backend.Cat(raws, dim), backend)
}

// At returns the element at the given multi-dimensional index.
// Intended for tests and diagnostics, not inner loops.
func (t *Tensor) At(indices ...int) float32 {
	shape := t.raw.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("at: expected %d indices for shape %v, got %d", len(shape), shape, len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("at: index %d out of range for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * t.raw.Strides()[i]
	}
	return t.raw.Data()[offset]
}
