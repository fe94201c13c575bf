package hparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_AllPresets tests that every registered preset validates.
func TestValidate_AllPresets(t *testing.T) {
	for _, name := range Names() {
		hp, err := Get(name)
		require.NoError(t, err, name)
		assert.NoError(t, hp.Validate(), name)
	}
}

// TestValidate_Errors tests each configuration error.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Hparams)
	}{
		{"HiddenSize", func(h *Hparams) { h.HiddenSize = 0 }},
		{"KernelFeatureMismatch", func(h *Hparams) { h.ChrKernelFeatures = h.ChrKernelFeatures[:3] }},
		{"NonPositiveKernel", func(h *Hparams) { h.ChrKernels[0] = 0 }},
		{"NonPositiveFeature", func(h *Hparams) { h.ChrKernelFeatures[0] = -1 }},
		{"PoolSize", func(h *Hparams) { h.ChrMaxpoolSize = 0 }},
		{"ReducedInputSize", func(h *Hparams) { h.ReducedInputSize = 0 }},
		{"HighwayLayers", func(h *Hparams) { h.NumHighwayLayers = 0 }},
		{"Nonlinearity", func(h *Hparams) { h.ChrNonlinearity = "swish" }},
		{"DropoutRate", func(h *Hparams) { h.ChrDropoutRate = 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hp := ChrawrBase()
			tc.mutate(hp)
			assert.Error(t, hp.Validate())
		})
	}
}

// TestValidate_SkipsChrOptionsWhenUnused tests that plain transformer
// bundles skip the character-aware checks.
func TestValidate_SkipsChrOptionsWhenUnused(t *testing.T) {
	hp, err := Get("transformer_mos")
	require.NoError(t, err)

	require.False(t, hp.UsesCharAware())
	assert.NoError(t, hp.Validate())
}

// TestUsesCharAware tests the pipeline gate.
func TestUsesCharAware(t *testing.T) {
	assert.True(t, ChrawrBase().UsesCharAware())
	assert.False(t, transformerBase().UsesCharAware())
}

// TestClone_Independent tests that clones do not share slices.
func TestClone_Independent(t *testing.T) {
	hp := ChrawrBase()
	clone := hp.Clone()

	clone.ChrKernels[0] = 99
	clone.ChrKernelFeatures[0] = 99
	clone.HiddenSize = 1

	assert.Equal(t, 1, hp.ChrKernels[0])
	assert.Equal(t, 200, hp.ChrKernelFeatures[0])
	assert.Equal(t, 512, hp.HiddenSize)
}
