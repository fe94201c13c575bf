package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// DefaultHighwayGateBias is the initial bias of the transform gates.
// Negative so that gates start mostly closed and the layers favor the
// pass-through path early in training (cf. http://arxiv.org/abs/1505.00387).
const DefaultHighwayGateBias = -2.0

// Highway is a stack of gated highway layers:
//
//	t = sigmoid(W_t y + b_t)
//	z = t * g(W_g y + b_g) + (1 - t) * y
//
// where g is the configured nonlinearity, t the transform gate and
// (1 - t) the carry gate. Both projections are per-position (width-1
// convolutions) and width-preserving, so the output shape equals the
// input shape for any layer count. Each layer owns its two projections;
// nothing is shared across layers.
type Highway struct {
	size      int
	gates     []*Conv1D
	transform []*Conv1D
	act       Activation
}

// NewHighway creates a stack of numLayers highway layers over inputs of
// channel width size.
//
// gateBias initializes the transform-gate bias (use
// DefaultHighwayGateBias unless tuning). numLayers must be at least 1: a
// zero-layer stack has no defined output.
func NewHighway(size, numLayers int, gateBias float32, act Activation, backend tensor.Backend) *Highway {
	if size <= 0 {
		panic(fmt.Sprintf("highway: invalid size %d", size))
	}
	if numLayers < 1 {
		panic(fmt.Sprintf("highway: at least one layer is required, got %d", numLayers))
	}
	if act == nil {
		panic("highway: nil activation")
	}

	gates := make([]*Conv1D, numLayers)
	transform := make([]*Conv1D, numLayers)
	for i := 0; i < numLayers; i++ {
		gates[i] = NewConv1D(fmt.Sprintf("highway_lin_%d", i), size, size, 1, backend)
		gates[i].Bias().Tensor().Fill(gateBias)
		transform[i] = NewConv1D(fmt.Sprintf("highway_gate_%d", i), size, size, 1, backend)
	}

	return &Highway{
		size:      size,
		gates:     gates,
		transform: transform,
		act:       act,
	}
}

// Forward applies the highway layers in sequence.
//
// Input and output: [batch, time, size].
func (h *Highway) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("highway: expected 3D input [B,T,C], got %dD", len(shape)))
	}
	if shape[2] != h.size {
		panic(fmt.Sprintf("highway: input width %d != expected %d", shape[2], h.size))
	}

	output := input
	for i := range h.gates {
		t := Sigmoid(h.gates[i].Forward(output))
		g := h.act(h.transform[i].Forward(output))

		// z = t*g + (1-t)*y, a per-channel convex combination.
		carry := t.MulScalar(-1).AddScalar(1)
		output = t.Mul(g).Add(carry.Mul(output))
	}

	return output
}

// NumLayers returns the number of highway layers.
func (h *Highway) NumLayers() int {
	return len(h.gates)
}

// Size returns the preserved channel width.
func (h *Highway) Size() int {
	return h.size
}

// Parameters returns the parameters of all layers.
func (h *Highway) Parameters() []*Parameter {
	var params []*Parameter
	for i := range h.gates {
		params = append(params, h.gates[i].Parameters()...)
		params = append(params, h.transform[i].Parameters()...)
	}
	return params
}
