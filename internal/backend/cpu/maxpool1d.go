package cpu

import (
	"fmt"
	"math"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// MaxPool1D performs same-padded max pooling over the time dimension of
// a (batch, time, channel) tensor.
//
// Input shape:  [batch, time, channels]
// Output shape: [batch, ceil(time/stride), channels]
//
// SAME padding follows the TensorFlow rule: the output length is
// ceil(time/stride) and windows that extend past either boundary are
// truncated (padded positions never win the max).
func (cpu *CPUBackend) MaxPool1D(input *tensor.RawTensor, window, stride int) *tensor.RawTensor {
	inShape := input.Shape()
	if len(inShape) != 3 {
		panic(fmt.Sprintf("maxpool1d: expected 3D input [B,T,C], got %dD", len(inShape)))
	}
	if window <= 0 {
		panic(fmt.Sprintf("maxpool1d: invalid window %d", window))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("maxpool1d: invalid stride %d", stride))
	}

	B, T, C := inShape[0], inShape[1], inShape[2]

	TOut := (T + stride - 1) / stride
	padTotal := (TOut-1)*stride + window - T
	if padTotal < 0 {
		padTotal = 0
	}
	padLeft := padTotal / 2

	output, err := tensor.NewRaw(tensor.Shape{B, TOut, C})
	if err != nil {
		panic(fmt.Sprintf("maxpool1d: failed to create output: %v", err))
	}

	inData := input.Data()
	outData := output.Data()

	for b := 0; b < B; b++ {
		batchIn := inData[b*T*C : (b+1)*T*C]
		batchOut := outData[b*TOut*C : (b+1)*TOut*C]

		for ot := 0; ot < TOut; ot++ {
			out := batchOut[ot*C : (ot+1)*C]
			for c := range out {
				out[c] = float32(math.Inf(-1))
			}

			start := ot*stride - padLeft
			for k := 0; k < window; k++ {
				t := start + k
				if t < 0 || t >= T {
					continue
				}

				in := batchIn[t*C : (t+1)*C]
				for c, v := range in {
					if v > out[c] {
						out[c] = v
					}
				}
			}
		}
	}

	return output
}
