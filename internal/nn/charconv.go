package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// CharConv is the multi-kernel convolutional feature extractor.
//
// It runs K parallel branches over a masked (batch, time, channel)
// embedding tensor. Branch i applies a same-padded width-kernels[i]
// convolution producing features[i] channels, the configured
// nonlinearity, re-masking, and same-padded max pooling with window and
// stride both equal to the pooling size. Branch outputs are concatenated
// along the channel dimension (skipped when there is a single branch).
//
// The convolution window crosses the padding boundary, so signal leaks
// into padding positions; multiplying by the broadcast input mask before
// pooling removes the leakage.
//
// Input: [batch, time, in_channels] plus its [batch, time, 1] mask.
// Output: [batch, ceil(time/pool), sum(features)].
type CharConv struct {
	kernels  []int
	features []int
	convs    []*Conv1D
	pool     *MaxPool1D
	act      Activation
	backend  tensor.Backend
}

// NewCharConv creates the extractor.
//
// kernels and features are parallel lists: one convolution branch per
// pair. A length mismatch is a fatal configuration error and panics
// before any weight tensor is allocated.
func NewCharConv(inChannels int, kernels, features []int, poolSize int, act Activation, backend tensor.Backend) *CharConv {
	if len(kernels) != len(features) {
		panic(fmt.Sprintf("charconv: kernels and features must have the same length, got %d and %d",
			len(kernels), len(features)))
	}
	if len(kernels) == 0 {
		panic("charconv: at least one kernel is required")
	}
	if act == nil {
		panic("charconv: nil activation")
	}

	convs := make([]*Conv1D, len(kernels))
	for i, k := range kernels {
		convs[i] = NewConv1D(fmt.Sprintf("kernel_%d", k), inChannels, features[i], k, backend)
	}

	return &CharConv{
		kernels:  append([]int(nil), kernels...),
		features: append([]int(nil), features...),
		convs:    convs,
		pool:     NewMaxPool1D(poolSize, poolSize, backend),
		act:      act,
		backend:  backend,
	}
}

// Forward runs all branches and concatenates their pooled outputs.
//
// input is the masked embedding tensor [batch, time, in_channels];
// mask is its [batch, time, 1] padding mask.
// Output: [batch, ceil(time/pool), sum(features)].
func (c *CharConv) Forward(input, mask *tensor.Tensor) *tensor.Tensor {
	pooled := make([]*tensor.Tensor, len(c.convs))
	for i, conv := range c.convs {
		branch := c.act(conv.Forward(input))
		branch = branch.Mul(mask) // remove values convolved across the padding boundary
		pooled[i] = c.pool.Forward(branch)
	}

	if len(pooled) == 1 {
		return pooled[0]
	}
	return tensor.Cat(pooled, 2)
}

// OutChannels returns the concatenated channel count: sum of all branch
// feature counts.
func (c *CharConv) OutChannels() int {
	total := 0
	for _, f := range c.features {
		total += f
	}
	return total
}

// PoolSize returns the pooling window/stride.
func (c *CharConv) PoolSize() int {
	return c.pool.Stride()
}

// ComputeOutputLen returns the pooled time dimension for an input length.
func (c *CharConv) ComputeOutputLen(inputLen int) int {
	return c.pool.ComputeOutputLen(inputLen)
}

// Parameters returns the parameters of all convolution branches.
func (c *CharConv) Parameters() []*Parameter {
	var params []*Parameter
	for _, conv := range c.convs {
		params = append(params, conv.Parameters()...)
	}
	return params
}
