package cpu

import (
	"testing"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestMaxPool1D_EvenLength tests pooling with window=stride=2 over an
// evenly divisible length.
func TestMaxPool1D_EvenLength(t *testing.T) {
	backend := newTestBackend()

	// [1, 6, 1] input.
	input := rawFrom(t, []float32{1, 3, 2, 5, 4, 0}, tensor.Shape{1, 6, 1})

	output := backend.MaxPool1D(input, 2, 2)

	if !output.Shape().Equal(tensor.Shape{1, 3, 1}) {
		t.Fatalf("Output shape: got %v, want [1 3 1]", output.Shape())
	}
	expected := []float32{3, 5, 4}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("MaxPool failed: got %v, want %v", output.Data(), expected)
	}
}

// TestMaxPool1D_CeilOutput tests that the output length is
// ceil(time/stride) and the last truncated window still pools the
// remaining positions.
func TestMaxPool1D_CeilOutput(t *testing.T) {
	backend := newTestBackend()

	// [1, 5, 1] input, window=stride=2: output length ceil(5/2)=3.
	input := rawFrom(t, []float32{1, 3, 2, 5, 4}, tensor.Shape{1, 5, 1})

	output := backend.MaxPool1D(input, 2, 2)

	if !output.Shape().Equal(tensor.Shape{1, 3, 1}) {
		t.Fatalf("Output shape: got %v, want [1 3 1]", output.Shape())
	}
	expected := []float32{3, 5, 4}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("MaxPool failed: got %v, want %v", output.Data(), expected)
	}
}

// TestMaxPool1D_WindowFive tests the base configuration's pooling size.
func TestMaxPool1D_WindowFive(t *testing.T) {
	backend := newTestBackend()

	// [1, 10, 1] input, window=stride=5: two windows.
	input := rawFrom(t, []float32{0, 1, 9, 2, 3, 4, 8, 5, 6, 7}, tensor.Shape{1, 10, 1})

	output := backend.MaxPool1D(input, 5, 5)

	if !output.Shape().Equal(tensor.Shape{1, 2, 1}) {
		t.Fatalf("Output shape: got %v, want [1 2 1]", output.Shape())
	}
	expected := []float32{9, 8}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("MaxPool failed: got %v, want %v", output.Data(), expected)
	}
}

// TestMaxPool1D_StrideOne tests the degenerate no-shortening setup
// (chr_maxpool_size=1): output equals input.
func TestMaxPool1D_StrideOne(t *testing.T) {
	backend := newTestBackend()

	input := rawFrom(t, []float32{4, 1, 3, 2}, tensor.Shape{1, 4, 1})

	output := backend.MaxPool1D(input, 1, 1)

	if !output.Shape().Equal(tensor.Shape{1, 4, 1}) {
		t.Fatalf("Output shape: got %v, want [1 4 1]", output.Shape())
	}
	if !float32SliceEqual(output.Data(), input.Data()) {
		t.Errorf("Stride-1 pool changed values: got %v", output.Data())
	}
}

// TestMaxPool1D_Channels tests that pooling is independent per channel.
func TestMaxPool1D_Channels(t *testing.T) {
	backend := newTestBackend()

	// [1, 4, 2] input: channel 0 rising, channel 1 falling.
	input := rawFrom(t, []float32{
		1, 8,
		2, 7,
		3, 6,
		4, 5,
	}, tensor.Shape{1, 4, 2})

	output := backend.MaxPool1D(input, 2, 2)

	expected := []float32{2, 8, 4, 6}
	if !float32SliceEqual(output.Data(), expected) {
		t.Errorf("Per-channel pooling failed: got %v, want %v", output.Data(), expected)
	}
}
