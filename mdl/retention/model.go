// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements moisture-capacity models for the shallow
// groundwater formulation. A model maps the unsaturated-zone deficit
// D = B − y_sat to the pair
//
//	G  -- capacity factor dividing the saturated-storage derivative
//	GI -- slope coupling the unsaturated derivative to the saturated one
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the moisture-capacity pair as a function of the deficit
type Model interface {
	Init(prms dbf.Params) error // initialises model with parameters
	Capacity(D float64) float64 // G(D)
	Slope(D float64) float64    // GI(D)
}

// New returns a new moisture-capacity model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
