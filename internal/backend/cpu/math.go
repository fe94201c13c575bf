package cpu

import (
	"math"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 { return v + scalar })
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 { return v * scalar })
}

// Abs computes the element-wise absolute value.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Tanh computes the element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 {
		return float32(math.Tanh(float64(v)))
	})
}

// Sigmoid computes the element-wise logistic sigmoid: 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 {
		return float32(1.0 / (1.0 + math.Exp(float64(-v))))
	})
}

// ReLU computes the element-wise rectified linear unit: max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// ELU computes the element-wise exponential linear unit:
// x for x > 0, exp(x) - 1 otherwise.
func (cpu *CPUBackend) ELU(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(x, func(v float32) float32 {
		if v > 0 {
			return v
		}
		return float32(math.Exp(float64(v)) - 1.0)
	})
}

// unaryOp applies f element-wise into a fresh tensor.
func unaryOp(x *tensor.RawTensor, f func(float32) float32) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape())
	if err != nil {
		panic(err)
	}

	xData := x.Data()
	outData := result.Data()
	for i := range outData {
		outData[i] = f(xData[i])
	}
	return result
}
