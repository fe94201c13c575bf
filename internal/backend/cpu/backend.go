// Package cpu implements the CPU backend for the chrawr tensor core.
package cpu

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// CPUBackend implements tensor operations with plain Go loops, using
// gonum's float32 BLAS for matrix multiplication.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("div", a, b, func(x, y float32) float32 { return x / y })
}

// binaryOp applies f element-wise over two tensors, broadcasting shapes
// as needed. Same-shape inputs take a flat fast path.
func binaryOp(name string, a, b *tensor.RawTensor, f func(x, y float32) float32) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	aData := a.Data()
	bData := b.Data()
	outData := result.Data()

	if !needsBroadcast {
		for i := range outData {
			outData[i] = f(aData[i], bData[i])
		}
		return result
	}

	// Broadcast path: walk output coordinates, mapping each to source
	// offsets with stride 0 on broadcast (size-1 or missing) dimensions.
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	coords := make([]int, len(outShape))
	for i := range outData {
		aOff, bOff := 0, 0
		for d := range coords {
			aOff += coords[d] * aStrides[d]
			bOff += coords[d] * bStrides[d]
		}
		outData[i] = f(aData[aOff], bData[bOff])

		// Increment coordinates, last dimension fastest.
		for d := len(coords) - 1; d >= 0; d-- {
			coords[d]++
			if coords[d] < outShape[d] {
				break
			}
			coords[d] = 0
		}
	}

	return result
}

// broadcastStrides returns strides for src aligned to the (longer or
// equal) out shape, with 0 where src broadcasts along a dimension.
func broadcastStrides(src, out tensor.Shape) []int {
	srcStrides := src.ComputeStrides()
	strides := make([]int, len(out))

	offset := len(out) - len(src)
	for d := range out {
		srcDim := d - offset
		if srcDim < 0 || src[srcDim] == 1 {
			strides[d] = 0
		} else {
			strides[d] = srcStrides[srcDim]
		}
	}
	return strides
}
