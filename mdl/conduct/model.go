// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements lateral-conductivity amplifier models. The
// amplifier multiplies the Darcy flux of one cell side; macropore soils
// respond exponentially once the saturated head exceeds a base value.
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model computes the conductivity amplification factor for one cell as a
// function of its saturated depth
type Model interface {
	Init(prms dbf.Params) error      // initialises model with parameters
	Factor(ysat float64) float64     // amplification factor
}

// New returns a new conductivity-amplifier model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
