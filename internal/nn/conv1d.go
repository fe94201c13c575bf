package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Conv1D is a stride-1, same-padded 1D convolutional layer over the time
// dimension of a (batch, time, channel) tensor.
//
// Input shape:  [batch, time, in_channels]
// Output shape: [batch, time, out_channels]
//
// With kernelSize 1 this is a pure per-position linear projection, which
// is how the pipeline rescales and restores channel width.
//
// Weights are initialized with Xavier/Glorot; biases with zeros.
//
// Example:
//
//	backend := cpu.New()
//	conv := nn.NewConv1D("kernel_3", 128, 200, 3, backend)
//
//	input := tensor.Zeros(tensor.Shape{2, 10, 128}, backend)
//	output := conv.Forward(input) // [2, 10, 200]
type Conv1D struct {
	name        string
	inChannels  int
	outChannels int
	kernelSize  int
	weight      *Parameter // [kernel_size, in_channels, out_channels]
	bias        *Parameter // [out_channels]
	backend     tensor.Backend
}

// NewConv1D creates a new Conv1D layer.
//
// The name scopes the layer's parameter names, mirroring how the rest of
// the pipeline labels its branches (e.g. "kernel_3" for a width-3 branch).
func NewConv1D(name string, inChannels, outChannels, kernelSize int, backend tensor.Backend) *Conv1D {
	if inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv1d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelSize <= 0 {
		panic(fmt.Sprintf("conv1d: invalid kernel size %d", kernelSize))
	}

	fanIn := inChannels * kernelSize
	fanOut := outChannels * kernelSize
	weightShape := tensor.Shape{kernelSize, inChannels, outChannels}
	weight := Xavier(fanIn, fanOut, weightShape, backend)

	bias := Zeros(tensor.Shape{outChannels}, backend)

	return &Conv1D{
		name:        name,
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  kernelSize,
		weight:      NewParameter(name+".weight", weight),
		bias:        NewParameter(name+".bias", bias),
		backend:     backend,
	}
}

// Forward performs the forward pass.
//
// Input: [batch, time, in_channels]
// Output: [batch, time, out_channels].
func (c *Conv1D) Forward(input *tensor.Tensor) *tensor.Tensor {
	inputShape := input.Shape()
	if len(inputShape) != 3 {
		panic(fmt.Sprintf("conv1d: expected 3D input [B,T,C], got %dD", len(inputShape)))
	}
	if inputShape[2] != c.inChannels {
		panic(fmt.Sprintf("conv1d: input channels %d != expected %d", inputShape[2], c.inChannels))
	}

	outputRaw := c.backend.Conv1D(input.Raw(), c.weight.Tensor().Raw(), c.bias.Tensor().Raw())
	return tensor.New(outputRaw, c.backend)
}

// Parameters returns the weight and bias parameters.
func (c *Conv1D) Parameters() []*Parameter {
	return []*Parameter{c.weight, c.bias}
}

// Weight returns the weight parameter.
func (c *Conv1D) Weight() *Parameter {
	return c.weight
}

// Bias returns the bias parameter.
func (c *Conv1D) Bias() *Parameter {
	return c.bias
}

// KernelSize returns the convolution window width.
func (c *Conv1D) KernelSize() int {
	return c.kernelSize
}

// OutChannels returns the number of output channels.
func (c *Conv1D) OutChannels() int {
	return c.outChannels
}

// String returns a string representation of the layer.
func (c *Conv1D) String() string {
	return fmt.Sprintf("Conv1D(in_channels=%d, out_channels=%d, kernel_size=%d, padding=same)",
		c.inChannels, c.outChannels, c.kernelSize)
}
