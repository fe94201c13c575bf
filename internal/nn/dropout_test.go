package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrawr-ml/chrawr/internal/backend/cpu"
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// TestDropout_EvalIdentity tests that evaluation mode passes the input
// through untouched.
func TestDropout_EvalIdentity(t *testing.T) {
	backend := cpu.New()

	drop := NewDropout(0.5, 1)
	input := tensor.Ones(tensor.Shape{2, 3, 4}, backend)

	out := drop.Forward(input)
	assert.Same(t, input, out)
}

// TestDropout_RateZeroIdentity tests that rate 0 is the identity even
// in training mode.
func TestDropout_RateZeroIdentity(t *testing.T) {
	backend := cpu.New()

	drop := NewDropout(0, 1)
	drop.Train(true)
	input := tensor.Ones(tensor.Shape{2, 3, 4}, backend)

	out := drop.Forward(input)
	assert.Same(t, input, out)
}

// TestDropout_TrainingScales tests inverted dropout: every surviving
// element is scaled by 1/(1-rate), dropped elements are zero.
func TestDropout_TrainingScales(t *testing.T) {
	backend := cpu.New()

	drop := NewDropout(0.5, 42)
	drop.Train(true)
	input := tensor.Ones(tensor.Shape{10, 10, 4}, backend)

	out := drop.Forward(input)

	zeros, scaled := 0, 0
	for _, v := range out.Data() {
		switch v {
		case 0:
			zeros++
		case 2:
			scaled++
		default:
			t.Fatalf("unexpected value %v, want 0 or 2", v)
		}
	}
	assert.Greater(t, zeros, 0, "no elements dropped")
	assert.Greater(t, scaled, 0, "all elements dropped")
	// Input must stay untouched.
	assert.Equal(t, float32(1), input.Data()[0])
}

// TestDropout_InvalidRate tests the rate precondition.
func TestDropout_InvalidRate(t *testing.T) {
	assert.Panics(t, func() { NewDropout(-0.1, 1) })
	assert.Panics(t, func() { NewDropout(1, 1) })
}
