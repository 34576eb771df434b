// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements the constant moisture capacity G = φ, GI = 0.
// With this model the saturated storage responds with the plain porosity
// and the unsaturated store is frozen; useful for box tests where the
// retention curve must not interfere with the mass balance.
type Lin struct {
	por float64 // effective porosity
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "por":
			o.por = p.V
		case "alp", "bet":
			// accepted and ignored so soil parameter sets can be reused
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// Capacity computes G(D)
func (o *Lin) Capacity(D float64) float64 {
	return o.por
}

// Slope computes GI(D)
func (o *Lin) Slope(D float64) float64 {
	return 0
}
