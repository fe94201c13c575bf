package nn

import (
	"fmt"
	"math"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Default timescale bounds for the sinusoidal timing signal.
const (
	minTimescale = 1.0
	maxTimescale = 1.0e4
)

// TimingSignal1D builds the fixed sinusoidal positional signal for a
// sequence of the given length and channel count.
//
// Each channel pair uses a different geometric timescale between 1 and
// 10000; the first half of the channels carries sines, the second half
// cosines, and an odd channel count leaves the last channel zero:
//
//	signal[t, i]                  = sin(t * inv_timescale_i)   i < C/2
//	signal[t, C/2 + i]            = cos(t * inv_timescale_i)   i < C/2
//
// The signal is non-learned and allows attending by relative position,
// since the encoding of pos+k is a linear function of the encoding of pos.
//
// Returns shape [1, length, channels] for broadcasting over the batch.
func TimingSignal1D(length, channels int, backend tensor.Backend) *tensor.Tensor {
	if length <= 0 {
		panic(fmt.Sprintf("timing signal: length must be positive, got %d", length))
	}
	if channels <= 0 {
		panic(fmt.Sprintf("timing signal: channels must be positive, got %d", channels))
	}

	numTimescales := channels / 2
	logTimescaleIncrement := math.Log(maxTimescale/minTimescale) / math.Max(float64(numTimescales-1), 1)

	signal := tensor.Zeros(tensor.Shape{1, length, channels}, backend)
	data := signal.Data()

	for pos := 0; pos < length; pos++ {
		row := data[pos*channels : (pos+1)*channels]
		for i := 0; i < numTimescales; i++ {
			invTimescale := minTimescale * math.Exp(float64(i)*-logTimescaleIncrement)
			scaledTime := float64(pos) * invTimescale

			row[i] = float32(math.Sin(scaledTime))
			row[numTimescales+i] = float32(math.Cos(scaledTime))
		}
		// Odd channel counts leave the final channel at zero.
	}

	return signal
}

// AddTimingSignal1D adds the sinusoidal positional signal to a
// (batch, time, channel) tensor.
//
// The signal is additive and nonzero at every position, so callers must
// re-apply the padding mask afterwards to restore the padding invariant.
func AddTimingSignal1D(x *tensor.Tensor) *tensor.Tensor {
	shape := x.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("timing signal: expected 3D input [B,T,C], got %dD", len(shape)))
	}

	signal := TimingSignal1D(shape[1], shape[2], x.Backend())
	return x.Add(signal)
}
