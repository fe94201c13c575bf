package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrawr-ml/chrawr/internal/backend/cpu"
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestNewCharConv_LengthMismatch tests that mismatched kernel and
// feature lists panic before any weight is allocated.
func TestNewCharConv_LengthMismatch(t *testing.T) {
	backend := cpu.New()

	assert.Panics(t, func() {
		NewCharConv(8, []int{1, 2, 3}, []int{4, 5}, 2, Tanh, backend)
	})
}

// TestNewCharConv_EmptyKernels tests that an empty branch list panics.
func TestNewCharConv_EmptyKernels(t *testing.T) {
	backend := cpu.New()

	assert.Panics(t, func() {
		NewCharConv(8, nil, nil, 2, Tanh, backend)
	})
}

// TestCharConv_OutChannels tests the concatenated channel count.
func TestCharConv_OutChannels(t *testing.T) {
	backend := cpu.New()

	conv := NewCharConv(8, []int{1, 2, 3}, []int{4, 5, 6}, 2, Tanh, backend)
	assert.Equal(t, 15, conv.OutChannels())
}

// TestCharConv_ForwardShape tests the output shape for single and
// multi-branch extractors.
func TestCharConv_ForwardShape(t *testing.T) {
	backend := cpu.New()

	input := tensor.Ones(tensor.Shape{2, 10, 8}, backend)
	mask := tensor.Ones(tensor.Shape{2, 10, 1}, backend)

	t.Run("SingleBranch", func(t *testing.T) {
		conv := NewCharConv(8, []int{3}, []int{5}, 5, Tanh, backend)
		out := conv.Forward(input, mask)
		assert.True(t, out.Shape().Equal(tensor.Shape{2, 2, 5}), "got %v", out.Shape())
	})

	t.Run("MultiBranch", func(t *testing.T) {
		conv := NewCharConv(8, []int{1, 2, 3}, []int{4, 5, 6}, 3, Tanh, backend)
		out := conv.Forward(input, mask)
		// ceil(10/3) = 4 pooled positions, 15 channels.
		assert.True(t, out.Shape().Equal(tensor.Shape{2, 4, 15}), "got %v", out.Shape())
	})
}

// TestCharConv_MaskRemovesLeakage tests that convolution values leaking
// across the padding boundary are zeroed before pooling: a pooling
// window that covers only padding positions pools to exactly zero.
func TestCharConv_MaskRemovesLeakage(t *testing.T) {
	backend := cpu.New()

	// [1, 4, 1] input with positions 2, 3 as padding; a width-3 kernel
	// writes nonzero values into position 2 before re-masking.
	input, err := tensor.FromSlice([]float32{1, 2, 0, 0}, tensor.Shape{1, 4, 1}, backend)
	require.NoError(t, err)
	mask := PaddingMask(input)

	conv := NewCharConv(1, []int{3}, []int{4}, 2, Tanh, backend)
	out := conv.Forward(input, mask)

	require.True(t, out.Shape().Equal(tensor.Shape{1, 2, 4}), "got %v", out.Shape())

	// Pooled position 1 covers input positions 2 and 3, both padding.
	for c := 0; c < 4; c++ {
		assert.Equal(t, float32(0), out.At(0, 1, c), "channel %d", c)
	}
}

// TestCharConv_ComputeOutputLen tests the pooled length helper.
func TestCharConv_ComputeOutputLen(t *testing.T) {
	backend := cpu.New()

	conv := NewCharConv(8, []int{1}, []int{4}, 5, Tanh, backend)
	assert.Equal(t, 2, conv.ComputeOutputLen(10))
	assert.Equal(t, 3, conv.ComputeOutputLen(11))
	assert.Equal(t, 1, conv.ComputeOutputLen(1))
}

// TestCharConv_Parameters tests that every branch contributes its
// weight and bias.
func TestCharConv_Parameters(t *testing.T) {
	backend := cpu.New()

	conv := NewCharConv(8, []int{1, 2}, []int{4, 4}, 2, Tanh, backend)
	assert.Len(t, conv.Parameters(), 4)
}
