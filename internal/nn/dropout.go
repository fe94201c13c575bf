package nn

import (
	"fmt"
	"math/rand"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Dropout randomly zeroes elements of the input with probability rate.
//
// Uses inverted dropout: surviving elements are scaled by 1/(1-rate) so
// that expected activations are unchanged. Dropout is active only in
// training mode; in evaluation mode (the default) the input passes
// through untouched. With rate 0 the layer is the identity in both
// modes, which keeps forward passes bit-deterministic.
type Dropout struct {
	rate     float32
	training bool
	rng      *rand.Rand
}

// NewDropout creates a new Dropout layer with its own random source.
//
// rate is the probability of zeroing an element, in [0, 1).
func NewDropout(rate float32, seed int64) *Dropout {
	if rate < 0 || rate >= 1 {
		panic(fmt.Sprintf("dropout: rate must be in [0, 1), got %v", rate))
	}

	return &Dropout{
		rate: rate,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Train switches the layer between training and evaluation mode.
func (d *Dropout) Train(training bool) {
	d.training = training
}

// Rate returns the drop probability.
func (d *Dropout) Rate() float32 {
	return d.rate
}

// Forward performs the forward pass.
//
// In evaluation mode, or with rate 0, the input is returned unchanged.
func (d *Dropout) Forward(input *tensor.Tensor) *tensor.Tensor {
	if !d.training || d.rate == 0 {
		return input
	}

	scale := 1.0 / (1.0 - d.rate)

	output := input.Clone()
	data := output.Data()
	for i := range data {
		if d.rng.Float32() < d.rate {
			data[i] = 0
		} else {
			data[i] *= scale
		}
	}
	return output
}

// Parameters returns an empty slice (Dropout has no learnable parameters).
func (d *Dropout) Parameters() []*Parameter {
	return []*Parameter{}
}
