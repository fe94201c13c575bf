// Copyright 2026 Chrawr ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
package cpu

import (
	internalcpu "github.com/chrawr-ml/chrawr/internal/backend/cpu"
	"github.com/chrawr-ml/chrawr/tensor"
)

// Backend is the CPU backend implementation.
//
// All tensor operations are implemented in pure Go; matrix products go
// through the BLAS sgemm kernel.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/chrawr-ml/chrawr/backend/cpu"
//	    "github.com/chrawr-ml/chrawr/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
