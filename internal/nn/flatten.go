package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Flatten4D3D collapses a 4D (batch, time, inner, channel) tensor into
// 3D (batch, time*inner, channel).
//
// Upstream embedding lookups produce an extra inner dimension (one slot
// per character position); the pipeline consumes the flattened form.
func Flatten4D3D(x *tensor.Tensor) *tensor.Tensor {
	shape := x.Shape()
	if len(shape) != 4 {
		panic(fmt.Sprintf("flatten4d3d: expected 4D input, got %dD", len(shape)))
	}

	return x.Reshape(shape[0], shape[1]*shape[2], shape[3])
}
