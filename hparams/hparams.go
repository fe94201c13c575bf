// Copyright 2026 Chrawr ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hparams exposes the hyperparameter bundle and the catalogue
// of named presets.
package hparams

import (
	"github.com/chrawr-ml/chrawr/internal/hparams"
)

// Hparams is the hyperparameter bundle consumed by model constructors.
type Hparams = hparams.Hparams

// Register adds a named preset constructor. Re-registering a name
// panics.
func Register(name string, fn func() *Hparams) {
	hparams.Register(name, fn)
}

// Get builds a fresh bundle for the named preset.
//
// Example:
//
//	hp, err := hparams.Get("transformer_chrawr_base")
func Get(name string) (*Hparams, error) {
	return hparams.Get(name)
}

// Names returns all registered preset names, sorted.
func Names() []string {
	return hparams.Names()
}

// ChrawrBase returns the base configuration of the character-aware
// transformer.
func ChrawrBase() *Hparams {
	return hparams.ChrawrBase()
}
