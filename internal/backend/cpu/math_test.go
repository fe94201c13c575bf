package cpu

import (
	"math"
	"testing"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestCPUBackend_Scalars tests AddScalar and MulScalar.
func TestCPUBackend_Scalars(t *testing.T) {
	backend := newTestBackend()
	x := rawFrom(t, []float32{1, 2, 3}, tensor.Shape{3})

	t.Run("AddScalar", func(t *testing.T) {
		result := backend.AddScalar(x, 10)
		expected := []float32{11, 12, 13}
		if !float32SliceEqual(result.Data(), expected) {
			t.Errorf("AddScalar failed: got %v, want %v", result.Data(), expected)
		}
	})

	t.Run("MulScalar", func(t *testing.T) {
		result := backend.MulScalar(x, -2)
		expected := []float32{-2, -4, -6}
		if !float32SliceEqual(result.Data(), expected) {
			t.Errorf("MulScalar failed: got %v, want %v", result.Data(), expected)
		}
	})
}

// TestCPUBackend_Abs tests element-wise absolute value.
func TestCPUBackend_Abs(t *testing.T) {
	backend := newTestBackend()

	x := rawFrom(t, []float32{-1, 0, 2, -3.5}, tensor.Shape{4})
	result := backend.Abs(x)

	expected := []float32{1, 0, 2, 3.5}
	if !float32SliceEqual(result.Data(), expected) {
		t.Errorf("Abs failed: got %v, want %v", result.Data(), expected)
	}
}

// TestCPUBackend_Activations tests the element-wise nonlinearities
// against reference values.
func TestCPUBackend_Activations(t *testing.T) {
	backend := newTestBackend()
	x := rawFrom(t, []float32{-1, 0, 1}, tensor.Shape{3})

	t.Run("Tanh", func(t *testing.T) {
		result := backend.Tanh(x)
		th := float32(math.Tanh(1))
		expected := []float32{-th, 0, th}
		if !float32SliceEqual(result.Data(), expected) {
			t.Errorf("Tanh failed: got %v, want %v", result.Data(), expected)
		}
	})

	t.Run("Sigmoid", func(t *testing.T) {
		result := backend.Sigmoid(x)
		s := float32(1 / (1 + math.Exp(-1)))
		expected := []float32{1 - s, 0.5, s}
		if !float32SliceEqual(result.Data(), expected) {
			t.Errorf("Sigmoid failed: got %v, want %v", result.Data(), expected)
		}
	})

	t.Run("ReLU", func(t *testing.T) {
		result := backend.ReLU(x)
		expected := []float32{0, 0, 1}
		if !float32SliceEqual(result.Data(), expected) {
			t.Errorf("ReLU failed: got %v, want %v", result.Data(), expected)
		}
	})

	t.Run("ELU", func(t *testing.T) {
		result := backend.ELU(x)
		e := float32(math.Exp(-1) - 1)
		expected := []float32{e, 0, 1}
		if !float32SliceEqual(result.Data(), expected) {
			t.Errorf("ELU failed: got %v, want %v", result.Data(), expected)
		}
	})
}
