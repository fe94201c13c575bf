package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Activation is an element-wise nonlinearity applied to a tensor.
//
// The hyperparameter bundle references activations by name; ActivationNamed
// resolves a name to the function used in the convolution and highway
// candidate branches.
type Activation func(*tensor.Tensor) *tensor.Tensor

// Tanh applies the hyperbolic tangent element-wise.
func Tanh(x *tensor.Tensor) *tensor.Tensor {
	return tensor.New(x.Backend().Tanh(x.Raw()), x.Backend())
}

// Sigmoid applies the logistic sigmoid element-wise.
func Sigmoid(x *tensor.Tensor) *tensor.Tensor {
	return tensor.New(x.Backend().Sigmoid(x.Raw()), x.Backend())
}

// ReLU applies the rectified linear unit element-wise.
func ReLU(x *tensor.Tensor) *tensor.Tensor {
	return tensor.New(x.Backend().ReLU(x.Raw()), x.Backend())
}

// ELU applies the exponential linear unit element-wise.
func ELU(x *tensor.Tensor) *tensor.Tensor {
	return tensor.New(x.Backend().ELU(x.Raw()), x.Backend())
}

var activations = map[string]Activation{
	"tanh":    Tanh,
	"sigmoid": Sigmoid,
	"relu":    ReLU,
	"elu":     ELU,
}

// ActivationNamed resolves an activation function by name.
//
// Supported names: "tanh", "sigmoid", "relu", "elu".
func ActivationNamed(name string) (Activation, error) {
	act, ok := activations[name]
	if !ok {
		return nil, fmt.Errorf("unknown activation %q (supported: tanh, sigmoid, relu, elu)", name)
	}
	return act, nil
}

// MustActivation resolves an activation by name and panics if unknown.
// For use at graph-construction time, where an invalid nonlinearity
// reference is a fatal configuration error.
func MustActivation(name string) Activation {
	act, err := ActivationNamed(name)
	if err != nil {
		panic(fmt.Sprintf("activation: %v", err))
	}
	return act
}
