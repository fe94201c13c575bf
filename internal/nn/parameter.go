package nn

import (
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Parameter represents a learned weight tensor owned by a layer.
//
// Each parameter is uniquely owned by the layer that constructed it;
// no two layers share or mutate the same weights.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter creates a new parameter.
//
// The tensor should be initialized before creating the Parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name (e.g. "kernel_3.weight").
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}
