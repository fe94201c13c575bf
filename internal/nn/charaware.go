package nn

import (
	"fmt"
	"math/rand"

	"github.com/chrawr-ml/chrawr/internal/hparams"
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// MaskObserver receives named padding masks as the pipeline computes
// them. Observers are for diagnostics (mask images, logging); they must
// not mutate the tensor.
type MaskObserver func(name string, mask *tensor.Tensor)

// CharAwareEmbedding reshapes token embeddings through a
// character-aware convolutional pipeline:
//
//	mask -> rescale -> (timing signal) -> conv+pool -> highway -> restore
//
// Channel width is first reduced to reduced_input_size, then expanded
// by the multi-kernel convolution to the sum of the kernel feature
// counts, and finally projected to hidden_size. Pooling shortens the
// time dimension to ceil(T / chr_maxpool_size).
//
// Every projection is re-masked so the padding invariant holds on the
// output: a position is padding exactly when its channel vector is
// all-zero.
type CharAwareEmbedding struct {
	rescale  *Conv1D
	conv     *CharConv
	highway  *Highway
	restore  *Conv1D
	drop1    *Dropout
	drop2    *Dropout
	posEnc   bool
	observer MaskObserver
}

// NewCharAwareEmbedding builds the pipeline for inputs of channel width
// inputDepth, configured by hp.
//
// Panics if the bundle fails validation or does not configure the
// character-aware options; construction is a programming-error boundary,
// config loading validates with Hparams.Validate beforehand.
func NewCharAwareEmbedding(inputDepth int, hp *hparams.Hparams, backend tensor.Backend) *CharAwareEmbedding {
	if err := hp.Validate(); err != nil {
		panic(fmt.Sprintf("charaware: invalid hparams: %v", err))
	}
	if !hp.UsesCharAware() {
		panic("charaware: hparams bundle has no chr_kernels configured")
	}
	if inputDepth <= 0 {
		panic(fmt.Sprintf("charaware: invalid input depth %d", inputDepth))
	}

	act := MustActivation(hp.ChrNonlinearity)

	conv := NewCharConv(hp.ReducedInputSize, hp.ChrKernels, hp.ChrKernelFeatures, hp.ChrMaxpoolSize, act, backend)

	return &CharAwareEmbedding{
		rescale:  NewConv1D("rescaled_embedding", inputDepth, hp.ReducedInputSize, 1, backend),
		conv:     conv,
		highway:  NewHighway(conv.OutChannels(), hp.NumHighwayLayers, DefaultHighwayGateBias, act, backend),
		restore:  NewConv1D("restored_embedding", conv.OutChannels(), hp.HiddenSize, 1, backend),
		drop1:    NewDropout(hp.ChrDropoutRate, rand.Int63()),
		drop2:    NewDropout(hp.ChrDropoutRate, rand.Int63()),
		posEnc:   hp.ChrPosEnc,
		observer: nil,
	}
}

// Observe registers an observer for the masks the pipeline computes.
// The pipeline emits "emb_mask" (input-resolution mask, before pooling)
// and "emb_mask_in" (pooled-resolution mask). Pass nil to disable.
func (c *CharAwareEmbedding) Observe(fn MaskObserver) {
	c.observer = fn
}

// Train toggles dropout between training and inference behavior.
func (c *CharAwareEmbedding) Train(training bool) {
	c.drop1.Train(training)
	c.drop2.Train(training)
}

// Forward runs the pipeline.
//
// Input: [batch, time, inputDepth]. Output: [batch, ceil(time/pool),
// hidden_size]. Padding positions in the input stay all-zero in the
// output; a pooled position is padding only when its whole pooling
// window was padding.
func (c *CharAwareEmbedding) Forward(emb *tensor.Tensor) *tensor.Tensor {
	restored, _ := c.ForwardWithFeatures(emb)
	return restored
}

// ForwardWithFeatures runs the pipeline and additionally returns the
// dropout-regularized highway features at the pooled resolution,
// shape [batch, ceil(time/pool), conv channels]. The restored output is
// projected from the masked highway features directly; the second
// dropout applies only to the features return value, so at inference
// (or rate 0) the two share the same underlying data.
func (c *CharAwareEmbedding) ForwardWithFeatures(emb *tensor.Tensor) (restored, features *tensor.Tensor) {
	mask := PaddingMask(emb)
	c.emit("emb_mask", mask)

	emb = c.rescale.Forward(emb)
	if c.posEnc {
		emb = AddTimingSignal1D(emb)
	}
	// The rescale projection bias and the timing signal write nonzero
	// values into padding positions; zero them again.
	emb = emb.Mul(mask)

	emb = c.conv.Forward(emb, mask)

	// Pooling changed the time dimension, so the mask is recomputed at
	// the pooled resolution rather than downsampled from the input mask.
	maskIn := PaddingMask(emb)
	c.emit("emb_mask_in", maskIn)

	emb = c.drop1.Forward(emb)
	emb = c.highway.Forward(emb)
	emb = emb.Mul(maskIn)

	features = c.drop2.Forward(emb)

	restored = c.restore.Forward(emb)
	restored = restored.Mul(maskIn)

	return restored, features
}

// OutputLen returns the pipeline's output time dimension for an input
// of length inputLen.
func (c *CharAwareEmbedding) OutputLen(inputLen int) int {
	return c.conv.ComputeOutputLen(inputLen)
}

// HiddenSize returns the output channel width.
func (c *CharAwareEmbedding) HiddenSize() int {
	return c.restore.OutChannels()
}

// Parameters returns the parameters of all trainable stages.
func (c *CharAwareEmbedding) Parameters() []*Parameter {
	var params []*Parameter
	params = append(params, c.rescale.Parameters()...)
	params = append(params, c.conv.Parameters()...)
	params = append(params, c.highway.Parameters()...)
	params = append(params, c.restore.Parameters()...)
	return params
}

func (c *CharAwareEmbedding) emit(name string, mask *tensor.Tensor) {
	if c.observer != nil {
		c.observer(name, mask)
	}
}
