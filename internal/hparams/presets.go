package hparams

import (
	"fmt"
	"sort"
)

// registry maps preset names to constructors. Presets are registered at
// package initialization; Register is exported so experiments can add
// their own variants.
var registry = map[string]func() *Hparams{}

// Register adds a named preset constructor. Re-registering a name panics:
// two presets with one name is a programming error.
func Register(name string, fn func() *Hparams) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("hparams: preset %q registered twice", name))
	}
	registry[name] = fn
}

// Get builds a fresh bundle for the named preset.
func Get(name string) (*Hparams, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown hparams preset %q", name)
	}
	return fn(), nil
}

// Names returns all registered preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// transformerBase is the plain transformer baseline the variants derive
// from. The chr_* options stay unset: this bundle does not use the
// character-aware pipeline.
func transformerBase() *Hparams {
	return &Hparams{
		HiddenSize:                 512,
		NumHiddenLayers:            6,
		FilterSize:                 2048,
		NumHeads:                   8,
		LayerPrepostprocessDropout: 0.1,
		MaxLength:                  256,
		TargetModality:             "default",
		BatchSize:                  4096,
		LearningRateWarmupSteps:    4000,
		OptimizerAdamBeta2:         0.997,
	}
}

// ChrawrBase is the base configuration for the transformer with
// character-aware embedding.
func ChrawrBase() *Hparams {
	h := transformerBase()
	h.NumHighwayLayers = 4
	h.ReducedInputSize = 128
	h.HiddenSize = 512
	h.ChrKernels = []int{1, 2, 3, 4, 5, 6, 7, 8}
	h.ChrKernelFeatures = []int{200, 200, 250, 250, 300, 300, 300, 300}
	h.ChrMaxpoolSize = 5
	h.ChrNonlinearity = "tanh"
	h.ChrDropoutRate = 0
	h.ChrPosEnc = false

	h.TargetModality = "symbol:tgtemb"

	return h
}

func chrawrBig() *Hparams {
	h := ChrawrBase()
	h.HiddenSize = 1024
	h.FilterSize = 4096
	h.NumHeads = 16
	h.LayerPrepostprocessDropout = 0.3
	return h
}

func chrawrBigSingleGPU() *Hparams {
	h := chrawrBig()
	h.LayerPrepostprocessDropout = 0.1
	h.LearningRateWarmupSteps = 16000
	h.OptimizerAdamBeta2 = 0.998
	return h
}

func chrawrBaseSingleGPU() *Hparams {
	h := ChrawrBase()
	h.BatchSize = 2048
	h.LearningRateWarmupSteps = 16000
	return h
}

// chrawrL2 is the two-layer configuration used for fast experiments.
func chrawrL2() *Hparams {
	h := ChrawrBase()
	h.NumHiddenLayers = 2
	return h
}

// smallKernels narrows the kernel catalogue for the test presets.
func smallKernels(h *Hparams) {
	h.ChrKernels = []int{1, 2, 3, 4, 5}
	h.ChrKernelFeatures = []int{250, 250, 300, 300, 300}
}

func init() {
	Register("transformer_chrawr_base", ChrawrBase)
	Register("transformer_chrawr_big", chrawrBig)
	Register("transformer_chrawr_big_single_gpu", chrawrBigSingleGPU)
	Register("transformer_chrawr_base_single_gpu", chrawrBaseSingleGPU)
	Register("transformer_chrawr_l2", chrawrL2)

	// Fast-test variants: each toggles one or two knobs off the
	// two-layer baseline.
	Register("transformer_chrawr_test0", chrawrL2)
	Register("transformer_chrawr_test1", func() *Hparams { // small kernel, small pooling
		h := chrawrL2()
		smallKernels(h)
		h.ChrMaxpoolSize = 3
		return h
	})
	Register("transformer_chrawr_test2", func() *Hparams { // small kernel
		h := chrawrL2()
		smallKernels(h)
		return h
	})
	Register("transformer_chrawr_test3", func() *Hparams { // small pooling
		h := chrawrL2()
		h.ChrMaxpoolSize = 3
		return h
	})
	Register("transformer_chrawr_test4", func() *Hparams { // small highway
		h := chrawrL2()
		h.NumHighwayLayers = 1
		return h
	})
	Register("transformer_chrawr_test5", func() *Hparams { // no target emb sharing
		h := chrawrL2()
		h.TargetModality = "default"
		return h
	})
	Register("transformer_chrawr_test6", func() *Hparams { // relu
		h := chrawrL2()
		h.ChrNonlinearity = "relu"
		return h
	})
	Register("transformer_chrawr_test7", func() *Hparams { // elu
		h := chrawrL2()
		h.ChrNonlinearity = "elu"
		return h
	})
	Register("transformer_chrawr_test8", func() *Hparams { // dropout
		h := chrawrL2()
		h.ChrDropoutRate = 0.2
		return h
	})
	Register("transformer_chrawr_test9", func() *Hparams { // positional encoding
		h := chrawrL2()
		h.ChrPosEnc = true
		return h
	})
	Register("transformer_chrawr_test10", func() *Hparams { // smaller pooling
		h := chrawrL2()
		h.ChrMaxpoolSize = 2
		return h
	})
	Register("transformer_chrawr_test11", func() *Hparams { // smaller pooling, small kernels
		h := chrawrL2()
		h.ChrMaxpoolSize = 2
		smallKernels(h)
		return h
	})
	Register("transformer_chrawr_test12", func() *Hparams { // smaller pooling, positional encoding
		h := chrawrL2()
		h.ChrMaxpoolSize = 2
		h.ChrPosEnc = true
		return h
	})
	Register("transformer_chrawr_test13", func() *Hparams { // smaller pooling, small kernels, positional encoding
		h := chrawrL2()
		h.ChrMaxpoolSize = 2
		smallKernels(h)
		h.ChrPosEnc = true
		return h
	})
	Register("transformer_chrawr_test14", func() *Hparams {
		// smaller pooling, small kernels, positional encoding, small
		// highway, relu, no target emb sharing
		h := chrawrL2()
		h.ChrMaxpoolSize = 2
		smallKernels(h)
		h.ChrPosEnc = true
		h.NumHighwayLayers = 1
		h.ChrNonlinearity = "relu"
		h.TargetModality = "default"
		return h
	})

	// Mixture-of-softmaxes variants.
	Register("transformer_mos", func() *Hparams {
		h := transformerBase()
		h.NumExperts = 15
		h.TargetModality = "symbol:mos"
		return h
	})
	Register("transformer_mos_single_gpu", func() *Hparams {
		h := transformerBase()
		h.BatchSize = 2048
		h.LearningRateWarmupSteps = 16000
		h.NumExperts = 15
		h.TargetModality = "symbol:mos"
		return h
	})
	Register("transformer_chrawr_mos", func() *Hparams {
		h := ChrawrBase()
		h.NumExperts = 15
		h.TargetModality = "symbol:mos"
		return h
	})
	Register("transformer_chrawr_mos_single_gpu", func() *Hparams {
		h := chrawrBaseSingleGPU()
		h.NumExperts = 15
		h.TargetModality = "symbol:mos"
		return h
	})

	// Pooling/feature sweeps.
	Register("transformer_chrawr_long_single_gpu", func() *Hparams {
		h := chrawrBaseSingleGPU()
		h.ChrMaxpoolSize = 1
		return h
	})
	Register("transformer_chrawr_many_single_gpu", func() *Hparams {
		h := chrawrBaseSingleGPU()
		h.BatchSize = 2 * h.BatchSize
		h.ChrKernelFeatures = []int{224, 224, 224, 224, 224, 224, 224, 224}
		h.ChrMaxpoolSize = 3
		return h
	})
	Register("transformer_chrawr_general_single_gpu", func() *Hparams {
		h := chrawrBaseSingleGPU()
		h.ChrKernelFeatures = []int{224, 224, 224, 224, 224, 224, 224, 224}
		h.ChrMaxpoolSize = 3
		return h
	})
	Register("transformer_chrawr_general_long_single_gpu", func() *Hparams {
		h := chrawrBaseSingleGPU()
		h.ChrKernelFeatures = []int{224, 224, 224, 224, 224, 224, 224, 224}
		h.ChrMaxpoolSize = 1
		return h
	})
}
