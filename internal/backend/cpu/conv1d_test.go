package cpu

import (
	"testing"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestConv1D_Identity tests a width-1 identity kernel.
func TestConv1D_Identity(t *testing.T) {
	backend := newTestBackend()

	// [1, 4, 1] input.
	input := rawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 4, 1})
	// [1, 1, 1] kernel with weight 1: output equals input.
	kernel := rawFrom(t, []float32{1}, tensor.Shape{1, 1, 1})

	output := backend.Conv1D(input, kernel, nil)

	if !output.Shape().Equal(tensor.Shape{1, 4, 1}) {
		t.Fatalf("Output shape: got %v, want [1 4 1]", output.Shape())
	}
	if !float32SliceEqual(output.Data(), input.Data()) {
		t.Errorf("Identity conv failed: got %v, want %v", output.Data(), input.Data())
	}
}

// TestConv1D_SamePadding tests that a width-3 averaging kernel keeps the
// time dimension and pads with zeros at the boundaries.
func TestConv1D_SamePadding(t *testing.T) {
	backend := newTestBackend()

	// [1, 4, 1] input: 1, 2, 3, 4.
	input := rawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 4, 1})
	// Width-3 kernel with all weights 1: sliding window sums.
	kernel := rawFrom(t, []float32{1, 1, 1}, tensor.Shape{3, 1, 1})

	output := backend.Conv1D(input, kernel, nil)

	if !output.Shape().Equal(tensor.Shape{1, 4, 1}) {
		t.Fatalf("Output shape: got %v, want [1 4 1]", output.Shape())
	}

	// t=0: 0+1+2, t=1: 1+2+3, t=2: 2+3+4, t=3: 3+4+0.
	expected := []float32{3, 6, 9, 7}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("Same-padded conv failed: got %v, want %v", output.Data(), expected)
	}
}

// TestConv1D_Bias tests that the bias is added per output channel.
func TestConv1D_Bias(t *testing.T) {
	backend := newTestBackend()

	// [1, 2, 1] input of zeros: output is the bias alone.
	input := rawFrom(t, []float32{0, 0}, tensor.Shape{1, 2, 1})
	kernel := rawFrom(t, []float32{1, 1}, tensor.Shape{1, 1, 2})
	bias := rawFrom(t, []float32{0.5, -1}, tensor.Shape{2})

	output := backend.Conv1D(input, kernel, bias)

	expected := []float32{0.5, -1, 0.5, -1}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("Bias failed: got %v, want %v", output.Data(), expected)
	}
}

// TestConv1D_MultiChannel tests input/output channel mixing.
func TestConv1D_MultiChannel(t *testing.T) {
	backend := newTestBackend()

	// [1, 2, 2] input.
	input := rawFrom(t, []float32{
		1, 2,
		3, 4,
	}, tensor.Shape{1, 2, 2})

	// [1, 2, 2] kernel: out0 = in0 + in1, out1 = in0 - in1.
	kernel := rawFrom(t, []float32{
		1, 1,
		1, -1,
	}, tensor.Shape{1, 2, 2})

	output := backend.Conv1D(input, kernel, nil)

	expected := []float32{3, -1, 7, -1}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("Multi-channel conv failed: got %v, want %v", output.Data(), expected)
	}
}

// TestConv1D_ChannelMismatch tests the shape precondition.
func TestConv1D_ChannelMismatch(t *testing.T) {
	backend := newTestBackend()

	input := rawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
	kernel := rawFrom(t, []float32{1, 2, 3}, tensor.Shape{1, 3, 1})

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for input/kernel channel mismatch")
		}
	}()
	backend.Conv1D(input, kernel, nil)
}
