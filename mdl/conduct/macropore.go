// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cte is the regular-soil amplifier: factor 1 regardless of head
type Cte struct{}

// Macropore amplifies the conductivity once the saturated head rises above
// the base value:
//
//	f(y) = 10^(γ·(y/base − 1))   for y > base
//	f(y) = 1                     otherwise
type Macropore struct {
	base float64 // head above which macropores respond
	γ    float64 // amplifier exponent
}

// add models to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
	allocators["macropore"] = func() Model { return new(Macropore) }
}

// Init initialises model
func (o *Cte) Init(prms dbf.Params) error { return nil }

// Factor returns the amplification factor
func (o *Cte) Factor(ysat float64) float64 { return 1 }

// Init initialises model
func (o *Macropore) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "base":
			o.base = p.V
		case "gam":
			o.γ = p.V
		default:
			return chk.Err("macropore: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.base <= 0 {
		return chk.Err("macropore: parameter base must be positive")
	}
	return
}

// Factor returns the amplification factor
func (o *Macropore) Factor(ysat float64) float64 {
	if ysat > o.base {
		return math.Pow(10, o.γ*(ysat/o.base-1))
	}
	return 1
}
