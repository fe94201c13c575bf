// Copyright 2026 Chrawr ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network layers of the character-aware
// embedding pipeline and the pipeline itself.
package nn

import (
	"github.com/chrawr-ml/chrawr/hparams"
	"github.com/chrawr-ml/chrawr/internal/nn"
	"github.com/chrawr-ml/chrawr/internal/tensor"
)

// Module is the common interface for all layers.
type Module = nn.Module

// Parameter represents a trainable parameter in a layer.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Conv1D is a same-padded, stride-1 1D convolution over
// (batch, time, channel) tensors.
type Conv1D = nn.Conv1D

// NewConv1D creates a new 1D convolutional layer with Xavier
// initialization.
//
// Example:
//
//	backend := cpu.New()
//	conv := nn.NewConv1D("kernel_3", 128, 250, 3, backend)
func NewConv1D(name string, inChannels, outChannels, kernelSize int, backend tensor.Backend) *Conv1D {
	return nn.NewConv1D(name, inChannels, outChannels, kernelSize, backend)
}

// MaxPool1D is a same-padded 1D max pooling layer.
type MaxPool1D = nn.MaxPool1D

// NewMaxPool1D creates a new 1D max pooling layer.
//
// Example:
//
//	backend := cpu.New()
//	pool := nn.NewMaxPool1D(5, 5, backend)  // window=5, stride=5
func NewMaxPool1D(window, stride int, backend tensor.Backend) *MaxPool1D {
	return nn.NewMaxPool1D(window, stride, backend)
}

// Dropout randomly zeroes elements during training, scaling survivors
// so expected activations are unchanged.
type Dropout = nn.Dropout

// NewDropout creates a new Dropout layer with its own random source.
func NewDropout(rate float32, seed int64) *Dropout {
	return nn.NewDropout(rate, seed)
}

// Embedding is a token id to dense vector lookup table.
type Embedding = nn.Embedding

// NewEmbedding creates a new embedding table.
func NewEmbedding(name string, numEmbeddings, embeddingDim int, backend tensor.Backend) *Embedding {
	return nn.NewEmbedding(name, numEmbeddings, embeddingDim, backend)
}

// Character-aware pipeline

// CharConv is the multi-kernel convolutional feature extractor.
type CharConv = nn.CharConv

// NewCharConv creates the extractor. kernels and features are parallel
// lists; a length mismatch panics.
//
// Example:
//
//	backend := cpu.New()
//	conv := nn.NewCharConv(128, []int{1, 2, 3}, []int{200, 200, 250}, 5, nn.Tanh, backend)
func NewCharConv(inChannels int, kernels, features []int, poolSize int, act Activation, backend tensor.Backend) *CharConv {
	return nn.NewCharConv(inChannels, kernels, features, poolSize, act, backend)
}

// Highway is a stack of gated highway layers.
type Highway = nn.Highway

// DefaultHighwayGateBias is the initial transform-gate bias.
const DefaultHighwayGateBias = nn.DefaultHighwayGateBias

// NewHighway creates a stack of numLayers highway layers over inputs of
// channel width size.
func NewHighway(size, numLayers int, gateBias float32, act Activation, backend tensor.Backend) *Highway {
	return nn.NewHighway(size, numLayers, gateBias, act, backend)
}

// CharAwareEmbedding is the full character-aware embedding pipeline.
type CharAwareEmbedding = nn.CharAwareEmbedding

// MaskObserver receives named padding masks for diagnostics.
type MaskObserver = nn.MaskObserver

// NewCharAwareEmbedding builds the pipeline for inputs of channel width
// inputDepth, configured by the hyperparameter bundle.
//
// Example:
//
//	backend := cpu.New()
//	hp := hparams.ChrawrBase()
//	emb := nn.NewCharAwareEmbedding(512, hp, backend)
//	out := emb.Forward(x) // [B, ceil(T/5), 512]
func NewCharAwareEmbedding(inputDepth int, hp *hparams.Hparams, backend tensor.Backend) *CharAwareEmbedding {
	return nn.NewCharAwareEmbedding(inputDepth, hp, backend)
}

// EncoderPrep prepares pipeline outputs for the encoder stack.
type EncoderPrep = nn.EncoderPrep

// NewEncoderPrep creates the encoder preparation stage.
func NewEncoderPrep(numTargetSpaces, hiddenSize int, backend tensor.Backend) *EncoderPrep {
	return nn.NewEncoderPrep(numTargetSpaces, hiddenSize, backend)
}

// Functions

// Activation is an element-wise nonlinearity.
type Activation = nn.Activation

// Built-in activations.
var (
	Tanh    Activation = nn.Tanh
	Sigmoid Activation = nn.Sigmoid
	ReLU    Activation = nn.ReLU
	ELU     Activation = nn.ELU
)

// ActivationNamed resolves an activation by its configuration name
// ("tanh", "sigmoid", "relu", "elu").
func ActivationNamed(name string) (Activation, error) {
	return nn.ActivationNamed(name)
}

// PaddingMask computes the [batch, time, 1] padding mask of a
// (batch, time, channel) tensor: 1 where any channel is nonzero, 0 at
// all-zero positions.
func PaddingMask(emb *tensor.Tensor) *tensor.Tensor {
	return nn.PaddingMask(emb)
}

// TimingSignal1D builds the fixed sinusoidal positional signal of shape
// [1, length, channels].
func TimingSignal1D(length, channels int, backend tensor.Backend) *tensor.Tensor {
	return nn.TimingSignal1D(length, channels, backend)
}

// AddTimingSignal1D adds the sinusoidal positional signal to a
// (batch, time, channel) tensor.
func AddTimingSignal1D(x *tensor.Tensor) *tensor.Tensor {
	return nn.AddTimingSignal1D(x)
}

// AttentionBiasIgnorePadding converts a [batch, time, 1] padding mask
// into a broadcastable additive attention bias [batch, 1, 1, time].
func AttentionBiasIgnorePadding(mask *tensor.Tensor) *tensor.Tensor {
	return nn.AttentionBiasIgnorePadding(mask)
}

// Flatten4D3D flattens [batch, time, x, channels] to
// [batch, time*x, channels].
func Flatten4D3D(x *tensor.Tensor) *tensor.Tensor {
	return nn.Flatten4D3D(x)
}
