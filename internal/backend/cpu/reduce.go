package cpu

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// SumDim sums along a dimension.
//
// With keepDim the reduced dimension remains as size 1 (broadcastable);
// otherwise it is removed from the shape.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for shape %v", dim, shape))
	}

	// outer: elements before dim, inner: elements after dim.
	outer, inner := 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	dimSize := shape[dim]

	outShape := make(tensor.Shape, 0, len(shape))
	for i, d := range shape {
		switch {
		case i != dim:
			outShape = append(outShape, d)
		case keepDim:
			outShape = append(outShape, 1)
		}
	}
	if len(outShape) == 0 {
		outShape = tensor.Shape{1}
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("sumdim: failed to create result tensor: %v", err))
	}

	xData := x.Data()
	outData := result.Data()

	for o := 0; o < outer; o++ {
		base := o * dimSize * inner
		outBase := o * inner
		for d := 0; d < dimSize; d++ {
			row := xData[base+d*inner : base+(d+1)*inner]
			out := outData[outBase : outBase+inner]
			for i, v := range row {
				out[i] += v
			}
		}
	}

	return result
}

// NotEqualScalar returns a 0/1 float mask: 1 where x != scalar.
func (cpu *CPUBackend) NotEqualScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 {
		if v != scalar {
			return 1
		}
		return 0
	})
}
