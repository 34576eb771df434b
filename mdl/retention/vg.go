// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements the van Genuchten style moisture-capacity pair
//
//	G(D)  = 1e-4 + φ·(1 − (1+(αD)^β)^(-(β+1)/β))
//	GI(D) =      − (1+(αD)^β)^(-(β+1)/β)
//
// The 1e-4 floor keeps the capacity away from zero when the water table
// reaches the surface (D → 0).
type VanGen struct {
	α   float64 // curve parameter 1
	β   float64 // curve parameter 2
	por float64 // effective porosity
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "bet":
			o.β = p.V
		case "por":
			o.por = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.β <= 0 {
		return chk.Err("vg: parameter bet must be positive")
	}
	return
}

// term computes (1+(αD)^β)^(-(β+1)/β)
func (o *VanGen) term(D float64) float64 {
	return math.Pow(1+math.Pow(o.α*D, o.β), -(o.β+1)/o.β)
}

// Capacity computes G(D)
func (o *VanGen) Capacity(D float64) float64 {
	return 1e-4 + o.por*(1-o.term(D))
}

// Slope computes GI(D)
func (o *VanGen) Slope(D float64) float64 {
	return -o.term(D)
}
