// Package hparams defines the hyperparameter bundle for the
// character-aware transformer variants and the catalogue of named
// presets used for experimentation.
//
// Presets are pure data: each is a function deriving a bundle from its
// parent, registered by name. Models consume a bundle at construction
// time; nothing here touches tensors.
package hparams

import (
	"fmt"
	"slices"
)

// Hparams is the hyperparameter bundle.
//
// The chr_* options configure the character-aware embedding pipeline;
// the remaining options describe the outer transformer and training
// setup and are carried for the preset catalogue (the encoder/decoder
// stack and the training loop live outside this module).
type Hparams struct {
	// Outer transformer.
	HiddenSize                 int     `yaml:"hidden_size"`
	NumHiddenLayers            int     `yaml:"num_hidden_layers"`
	FilterSize                 int     `yaml:"filter_size"`
	NumHeads                   int     `yaml:"num_heads"`
	LayerPrepostprocessDropout float32 `yaml:"layer_prepostprocess_dropout"`
	MaxLength                  int     `yaml:"max_length"`
	TargetModality             string  `yaml:"target_modality"`
	NumExperts                 int     `yaml:"n_experts"`

	// Training setup.
	BatchSize               int     `yaml:"batch_size"`
	LearningRateWarmupSteps int     `yaml:"learning_rate_warmup_steps"`
	OptimizerAdamBeta2      float64 `yaml:"optimizer_adam_beta2"`

	// Character-aware embedding pipeline.
	NumHighwayLayers  int     `yaml:"num_highway_layers"`
	ReducedInputSize  int     `yaml:"reduced_input_size"`
	ChrKernels        []int   `yaml:"chr_kernels"`
	ChrKernelFeatures []int   `yaml:"chr_kernel_features"`
	ChrMaxpoolSize    int     `yaml:"chr_maxpool_size"`
	ChrNonlinearity   string  `yaml:"chr_nonlinearity"`
	ChrDropoutRate    float32 `yaml:"chr_dropout_rate"`
	ChrPosEnc         bool    `yaml:"chr_pos_enc"`
}

// Nonlinearities the pipeline layers implement. Kept in sync with the
// activation registry in internal/nn (which cannot be imported here
// without a cycle).
var knownNonlinearities = []string{"tanh", "sigmoid", "relu", "elu"}

// UsesCharAware reports whether the bundle configures the
// character-aware embedding pipeline. Plain transformer presets (the
// mixture-of-softmaxes variants) leave the chr_* options unset.
func (h *Hparams) UsesCharAware() bool {
	return len(h.ChrKernels) > 0
}

// Validate checks the bundle for configuration errors.
//
// The kernel/feature length precondition is validated here, before any
// layer is constructed, so a mismatch fails fast as a plain error rather
// than mid-graph.
func (h *Hparams) Validate() error {
	if h.HiddenSize <= 0 {
		return fmt.Errorf("hidden_size must be positive, got %d", h.HiddenSize)
	}

	if !h.UsesCharAware() {
		return nil
	}

	if len(h.ChrKernels) != len(h.ChrKernelFeatures) {
		return fmt.Errorf("chr_kernels and chr_kernel_features must have the same length, got %d and %d",
			len(h.ChrKernels), len(h.ChrKernelFeatures))
	}
	for i, k := range h.ChrKernels {
		if k <= 0 {
			return fmt.Errorf("chr_kernels[%d] must be positive, got %d", i, k)
		}
		if h.ChrKernelFeatures[i] <= 0 {
			return fmt.Errorf("chr_kernel_features[%d] must be positive, got %d", i, h.ChrKernelFeatures[i])
		}
	}
	if h.ChrMaxpoolSize <= 0 {
		return fmt.Errorf("chr_maxpool_size must be positive, got %d", h.ChrMaxpoolSize)
	}
	if h.ReducedInputSize <= 0 {
		return fmt.Errorf("reduced_input_size must be positive, got %d", h.ReducedInputSize)
	}
	if h.NumHighwayLayers < 1 {
		return fmt.Errorf("num_highway_layers must be at least 1, got %d", h.NumHighwayLayers)
	}
	if !slices.Contains(knownNonlinearities, h.ChrNonlinearity) {
		return fmt.Errorf("unknown chr_nonlinearity %q (supported: %v)", h.ChrNonlinearity, knownNonlinearities)
	}
	if h.ChrDropoutRate < 0 || h.ChrDropoutRate >= 1 {
		return fmt.Errorf("chr_dropout_rate must be in [0, 1), got %v", h.ChrDropoutRate)
	}

	return nil
}

// Clone returns a deep copy of the bundle. Preset derivation mutates
// clones, never parents.
func (h *Hparams) Clone() *Hparams {
	clone := *h
	clone.ChrKernels = append([]int(nil), h.ChrKernels...)
	clone.ChrKernelFeatures = append([]int(nil), h.ChrKernelFeatures...)
	return &clone
}
