package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
//
// Dispatches to gonum's float32 BLAS (sgemm), which is the hot path of
// every 1x1 convolution in the embedding pipeline.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2D tensors, got %v @ %v", aShape, bShape))
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", aShape, bShape))
	}

	m, k, n := aShape[0], aShape[1], bShape[1]

	result, err := tensor.NewRaw(tensor.Shape{m, n})
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	aMat := blas32.General{Rows: m, Cols: k, Stride: k, Data: a.Data()}
	bMat := blas32.General{Rows: k, Cols: n, Stride: n, Data: b.Data()}
	cMat := blas32.General{Rows: m, Cols: n, Stride: n, Data: result.Data()}

	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1.0, aMat, bMat, 0.0, cMat)

	return result
}
