package nn

import (
	"fmt"

	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// attentionPaddingBias is added to attention logits at padding
// positions; large enough to zero them out after softmax.
const attentionPaddingBias = -1e9

// AttentionBiasIgnorePadding converts a [batch, time, 1] padding mask
// into an additive attention bias of shape [batch, 1, 1, time]: zero at
// real positions, -1e9 at padding positions. The two singleton
// dimensions broadcast over attention heads and query positions.
func AttentionBiasIgnorePadding(mask *tensor.Tensor) *tensor.Tensor {
	shape := mask.Shape()
	if len(shape) != 3 || shape[2] != 1 {
		panic(fmt.Sprintf("attention bias: expected mask [B,T,1], got %v", shape))
	}

	// mask is 1 at real positions and 0 at padding, so
	// (mask - 1) * 1e9 yields 0 and -1e9 respectively.
	bias := mask.AddScalar(-1).MulScalar(-attentionPaddingBias)
	return bias.Reshape(shape[0], 1, 1, shape[1])
}

// EncoderPrep prepares character-aware embeddings for the encoder
// stack: it derives the attention biases from the padding mask, adds a
// learned target-space embedding, and adds the positional timing
// signal.
//
// The target-space embedding is a single vector per output language
// (or task), broadcast over every position, letting one encoder serve
// several target spaces.
type EncoderPrep struct {
	targetSpace *Embedding
}

// NewEncoderPrep creates the preparation stage for numTargetSpaces
// target spaces and encoder width hiddenSize.
func NewEncoderPrep(numTargetSpaces, hiddenSize int, backend tensor.Backend) *EncoderPrep {
	return &EncoderPrep{
		targetSpace: NewEmbedding("target_space_embedding", numTargetSpaces, hiddenSize, backend),
	}
}

// Prepare transforms inputs [batch, time, hidden] into the encoder
// input plus the self-attention and encoder-decoder attention biases.
//
// Padding positions are not re-zeroed here: the attention biases carry
// the padding information into the encoder stack.
func (p *EncoderPrep) Prepare(inputs *tensor.Tensor, targetSpaceID int) (encoderInput, selfAttnBias, encDecAttnBias *tensor.Tensor) {
	mask := PaddingMask(inputs)
	bias := AttentionBiasIgnorePadding(mask)

	// [1, 1, hidden], broadcast over batch and time.
	spaceEmb := p.targetSpace.Forward([][]int{{targetSpaceID}})

	encoderInput = inputs.Add(spaceEmb)
	encoderInput = AddTimingSignal1D(encoderInput)

	return encoderInput, bias, bias
}

// Parameters returns the target-space embedding weight.
func (p *EncoderPrep) Parameters() []*Parameter {
	return p.targetSpace.Parameters()
}
