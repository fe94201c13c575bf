package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// MaxPool1D is a same-padded 1D max pooling layer over the time
// dimension. It has no learnable parameters.
//
// Input shape:  [batch, time, channels]
// Output shape: [batch, ceil(time/stride), channels]
//
// The extractor uses window == stride, so pooling compresses the time
// dimension by the pooling factor.
type MaxPool1D struct {
	window  int
	stride  int
	backend tensor.Backend
}

// NewMaxPool1D creates a new MaxPool1D layer.
func NewMaxPool1D(window, stride int, backend tensor.Backend) *MaxPool1D {
	if window <= 0 {
		panic(fmt.Sprintf("maxpool1d: invalid window %d", window))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("maxpool1d: invalid stride %d", stride))
	}

	return &MaxPool1D{
		window:  window,
		stride:  stride,
		backend: backend,
	}
}

// Forward performs the forward pass.
//
// Input: [batch, time, channels]
// Output: [batch, ceil(time/stride), channels].
func (m *MaxPool1D) Forward(input *tensor.Tensor) *tensor.Tensor {
	inputShape := input.Shape()
	if len(inputShape) != 3 {
		panic(fmt.Sprintf("maxpool1d: expected 3D input [B,T,C], got %dD", len(inputShape)))
	}

	outputRaw := m.backend.MaxPool1D(input.Raw(), m.window, m.stride)
	return tensor.New(outputRaw, m.backend)
}

// Parameters returns an empty slice (MaxPool1D has no learnable parameters).
func (m *MaxPool1D) Parameters() []*Parameter {
	return []*Parameter{}
}

// Window returns the pooling window size.
func (m *MaxPool1D) Window() int {
	return m.window
}

// Stride returns the stride.
func (m *MaxPool1D) Stride() int {
	return m.stride
}

// ComputeOutputLen returns the pooled time dimension for an input length:
// ceil(inputLen / stride).
func (m *MaxPool1D) ComputeOutputLen(inputLen int) int {
	return (inputLen + m.stride - 1) / m.stride
}

// String returns a string representation of the layer.
func (m *MaxPool1D) String() string {
	return fmt.Sprintf("MaxPool1D(window=%d, stride=%d, padding=same)", m.window, m.stride)
}
