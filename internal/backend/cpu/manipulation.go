package cpu

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Cat concatenates tensors along a dimension.
//
// All tensors must have the same rank and agree on every dimension
// except dim. The multi-kernel extractor uses this to join pooled
// feature maps along the channel dimension.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: no tensors to concatenate")
	}
	if len(tensors) == 1 {
		return tensors[0].Clone()
	}

	first := tensors[0].Shape()
	if dim < 0 || dim >= len(first) {
		panic(fmt.Sprintf("cat: dimension %d out of range for shape %v", dim, first))
	}

	catSize := 0
	for i, t := range tensors {
		shape := t.Shape()
		if len(shape) != len(first) {
			panic(fmt.Sprintf("cat: rank mismatch: tensor %d has shape %v, want rank %d", i, shape, len(first)))
		}
		for d := range shape {
			if d != dim && shape[d] != first[d] {
				panic(fmt.Sprintf("cat: shape mismatch at dimension %d: %v vs %v", d, shape, first))
			}
		}
		catSize += shape[dim]
	}

	outShape := first.Clone()
	outShape[dim] = catSize

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("cat: failed to create result tensor: %v", err))
	}

	// outer: elements before dim; each source contributes a contiguous
	// block of blockSize elements per outer slot.
	outer := 1
	for i := 0; i < dim; i++ {
		outer *= first[i]
	}
	inner := 1
	for i := dim + 1; i < len(first); i++ {
		inner *= first[i]
	}

	outData := result.Data()
	outBlock := catSize * inner

	offset := 0
	for _, t := range tensors {
		blockSize := t.Shape()[dim] * inner
		src := t.Data()
		for o := 0; o < outer; o++ {
			copy(outData[o*outBlock+offset:o*outBlock+offset+blockSize],
				src[o*blockSize:(o+1)*blockSize])
		}
		offset += blockSize
	}

	return result
}
