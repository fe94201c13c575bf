// Copyright 2026 Chrawr ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float32 tensor type and the backend
// interface the model layers are written against.
package tensor

import (
	"math/rand"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float32 tensor bound to a compute backend.
type Tensor = tensor.Tensor

// Backend defines the compute operations a tensor device must provide.
type Backend = tensor.Backend

// Zeros creates a tensor of the given shape filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func Zeros(shape Shape, backend Backend) *Tensor {
	return tensor.Zeros(shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, backend Backend) *Tensor {
	return tensor.Ones(shape, backend)
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, value float32, backend Backend) *Tensor {
	return tensor.Full(shape, value, backend)
}

// FromSlice creates a tensor from a flat data slice. The slice length
// must match the shape's element count.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
func FromSlice(data []float32, shape Shape, backend Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, backend)
}

// Randn creates a tensor with standard-normal entries drawn from rng.
func Randn(shape Shape, rng *rand.Rand, backend Backend) *Tensor {
	return tensor.Randn(shape, rng, backend)
}

// Cat concatenates tensors along the given dimension. All other
// dimensions must match.
func Cat(tensors []*Tensor, dim int) *Tensor {
	return tensor.Cat(tensors, dim)
}
