package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, backend Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return New(raw, backend)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, backend Backend) *Tensor {
	return Full(shape, 1.0, backend)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32, backend Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("full: %v", err))
	}
	raw.Fill(value)
	return New(raw, backend)
}

// FromSlice creates a tensor from a Go slice. The slice is used directly
// without copying; length must match the shape's element count.
func FromSlice(data []float32, shape Shape, backend Backend) (*Tensor, error) {
	raw, err := FromData(data, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, backend), nil
}

// Randn creates a tensor filled with values drawn from N(0, 1) using the
// provided source. Callers that need reproducibility pass a seeded Rand.
func Randn(shape Shape, rng *rand.Rand, backend Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("randn: %v", err))
	}

	data := raw.Data()
	for i := range data {
		data[i] = float32(rng.NormFloat64())
	}
	return New(raw, backend)
}
