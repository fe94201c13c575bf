package cpu

import (
	"testing"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestMatMul tests the BLAS-backed matrix product.
func TestMatMul(t *testing.T) {
	backend := newTestBackend()

	// [2, 3] @ [3, 2] -> [2, 2].
	a := rawFrom(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := rawFrom(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)

	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("MatMul shape: got %v, want [2 2]", result.Shape())
	}
	expected := []float32{58, 64, 139, 154}
	if !float32SliceEqual(result.Data(), expected) {
		t.Errorf("MatMul failed: got %v, want %v", result.Data(), expected)
	}
}

// TestMatMul_Identity tests multiplication by the identity matrix.
func TestMatMul_Identity(t *testing.T) {
	backend := newTestBackend()

	a := rawFrom(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	eye := rawFrom(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})

	result := backend.MatMul(a, eye)

	if !float32SliceEqual(result.Data(), a.Data()) {
		t.Errorf("Identity matmul failed: got %v, want %v", result.Data(), a.Data())
	}
}
