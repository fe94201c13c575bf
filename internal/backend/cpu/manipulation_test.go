package cpu

import (
	"testing"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestCat_ChannelDim tests concatenation along the channel dimension,
// the branch-merging case.
func TestCat_ChannelDim(t *testing.T) {
	backend := newTestBackend()

	// Two [1, 2, 2] tensors.
	a := rawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
	b := rawFrom(t, []float32{5, 6, 7, 8}, tensor.Shape{1, 2, 2})

	result := backend.Cat([]*tensor.RawTensor{a, b}, 2)

	if !result.Shape().Equal(tensor.Shape{1, 2, 4}) {
		t.Fatalf("Cat shape: got %v, want [1 2 4]", result.Shape())
	}
	expected := []float32{1, 2, 5, 6, 3, 4, 7, 8}
	if !float32SliceEqual(result.Data(), expected) {
		t.Errorf("Cat failed: got %v, want %v", result.Data(), expected)
	}
}

// TestCat_TimeDim tests concatenation along the time dimension.
func TestCat_TimeDim(t *testing.T) {
	backend := newTestBackend()

	a := rawFrom(t, []float32{1, 2}, tensor.Shape{1, 1, 2})
	b := rawFrom(t, []float32{3, 4, 5, 6}, tensor.Shape{1, 2, 2})

	result := backend.Cat([]*tensor.RawTensor{a, b}, 1)

	if !result.Shape().Equal(tensor.Shape{1, 3, 2}) {
		t.Fatalf("Cat shape: got %v, want [1 3 2]", result.Shape())
	}
	expected := []float32{1, 2, 3, 4, 5, 6}
	if !float32SliceEqual(result.Data(), expected) {
		t.Errorf("Cat failed: got %v, want %v", result.Data(), expected)
	}
}

// TestCat_Single tests that a single tensor is copied, not shared.
func TestCat_Single(t *testing.T) {
	backend := newTestBackend()

	a := rawFrom(t, []float32{1, 2, 3}, tensor.Shape{3})
	result := backend.Cat([]*tensor.RawTensor{a}, 0)

	if !float32SliceEqual(result.Data(), a.Data()) {
		t.Fatalf("Cat single failed: got %v", result.Data())
	}

	result.Data()[0] = 99
	if a.Data()[0] == 99 {
		t.Error("Cat single shares the input buffer")
	}
}
