// Package nn implements the layers of the character-aware embedding
// pipeline.
//
// Building blocks:
//   - Module interface: base interface for all layers
//   - Parameter: named weight tensors owned by their layer
//   - Conv1D, MaxPool1D: sequence convolution and pooling
//   - Highway: gated highway transform stack
//   - CharConv: multi-kernel convolutional feature extractor
//   - CharAwareEmbedding: the full pipeline orchestrator
//   - PaddingMask, AddTimingSignal1D, EncoderPrep: mask and encoder
//     preparation helpers
//
// Every layer owns its weights as explicit Parameter objects constructed
// once and threaded through calls; there is no implicit variable-scope
// registry or shared mutable state.
package nn

import (
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules compose: the pipeline orchestrator is itself a Module whose
// Parameters() aggregate those of its sub-layers.
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Returns an empty slice for
	// modules without trainable parameters.
	Parameters() []*Parameter
}
