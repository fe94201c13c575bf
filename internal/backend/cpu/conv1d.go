package cpu

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Conv1D performs a stride-1, same-padded 1D convolution over the time
// dimension of a (batch, time, channel) tensor.
//
// Input shape:  [batch, time, in_channels]
// Kernel shape: [width, in_channels, out_channels]
// Bias shape:   [out_channels] (nil for no bias)
// Output shape: [batch, time, out_channels]
//
// SAME padding: pad_left = (width-1)/2, pad_right = width-1-pad_left,
// so the output time dimension equals the input time dimension. Padded
// positions contribute zero, matching zero-padding of the input.
func (cpu *CPUBackend) Conv1D(input, kernel, bias *tensor.RawTensor) *tensor.RawTensor {
	inShape := input.Shape()
	kShape := kernel.Shape()

	if len(inShape) != 3 {
		panic(fmt.Sprintf("conv1d: expected 3D input [B,T,C], got %dD", len(inShape)))
	}
	if len(kShape) != 3 {
		panic(fmt.Sprintf("conv1d: expected 3D kernel [K,Cin,Cout], got %dD", len(kShape)))
	}
	if inShape[2] != kShape[1] {
		panic(fmt.Sprintf("conv1d: input channels %d != kernel channels %d", inShape[2], kShape[1]))
	}

	B, T, Cin := inShape[0], inShape[1], inShape[2]
	K, Cout := kShape[0], kShape[2]

	if bias != nil && !bias.Shape().Equal(tensor.Shape{Cout}) {
		panic(fmt.Sprintf("conv1d: bias shape %v, want [%d]", bias.Shape(), Cout))
	}

	// A width-1 convolution is a per-position linear projection:
	// [B*T, Cin] @ [Cin, Cout], done in one sgemm call.
	if K == 1 {
		flat := input.Reshape(tensor.Shape{B * T, Cin})
		out := cpu.MatMul(flat, kernel.Reshape(tensor.Shape{Cin, Cout}))
		if bias != nil {
			outData := out.Data()
			biasData := bias.Data()
			for i := 0; i < B*T; i++ {
				row := outData[i*Cout : (i+1)*Cout]
				for o, bv := range biasData {
					row[o] += bv
				}
			}
		}
		return out.Reshape(tensor.Shape{B, T, Cout})
	}

	output, err := tensor.NewRaw(tensor.Shape{B, T, Cout})
	if err != nil {
		panic(fmt.Sprintf("conv1d: failed to create output: %v", err))
	}

	padLeft := (K - 1) / 2

	inData := input.Data()
	kData := kernel.Data()
	outData := output.Data()

	var biasData []float32
	if bias != nil {
		biasData = bias.Data()
	}

	for b := 0; b < B; b++ {
		batchIn := inData[b*T*Cin : (b+1)*T*Cin]
		batchOut := outData[b*T*Cout : (b+1)*T*Cout]

		for t := 0; t < T; t++ {
			out := batchOut[t*Cout : (t+1)*Cout]

			if biasData != nil {
				copy(out, biasData)
			}

			for k := 0; k < K; k++ {
				src := t + k - padLeft
				if src < 0 || src >= T {
					continue
				}

				in := batchIn[src*Cin : (src+1)*Cin]
				kernelTap := kData[k*Cin*Cout : (k+1)*Cin*Cout]

				for c := 0; c < Cin; c++ {
					v := in[c]
					if v == 0 {
						continue
					}
					w := kernelTap[c*Cout : (c+1)*Cout]
					for o := range out {
						out[o] += v * w[o]
					}
				}
			}
		}
	}

	return output
}
