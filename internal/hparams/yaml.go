package hparams

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToYAML renders the bundle as YAML, using the canonical option names
// (hidden_size, chr_kernels, ...).
func (h *Hparams) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshal hparams: %w", err)
	}
	return data, nil
}

// ApplyOverrides unmarshals YAML into the bundle. Only options present
// in the document are overridden; the result is re-validated.
func (h *Hparams) ApplyOverrides(data []byte) error {
	if err := yaml.Unmarshal(data, h); err != nil {
		return fmt.Errorf("parse hparams overrides: %w", err)
	}
	return h.Validate()
}

// ApplyOverridesFile applies overrides from a YAML file.
func (h *Hparams) ApplyOverridesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read hparams overrides: %w", err)
	}
	return h.ApplyOverrides(data)
}
