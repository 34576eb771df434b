// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package et

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_penman01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("penman01. vapour pressure terms")

	// the tabulated slope approximates d(es)/dT; the Magnus-style exponent
	// and the FAO denominator differ by about 2 percent at 20°C
	T := 20.0
	es := SatVaporPressure(T)
	dnum := num.DerivCen5(T, 1e-3, func(x float64) float64 { return SatVaporPressure(x) })
	slope := SatSlope(T, es)
	if slope < 0.95*dnum || slope > 1.05*dnum {
		tst.Errorf("slope %g too far from numerical derivative %g\n", slope, dnum)
		return
	}

	// saturation pressure rises with temperature
	if SatVaporPressure(30) <= es {
		tst.Errorf("saturation pressure must rise with temperature\n")
		return
	}

	// psychrometric constant is linear in pressure
	chk.Float64(tst, "gamma", 1e-12, Psychrometric(101.325), 1e-3*1.013*101.325/(0.622*2.50036))
}

func Test_penman02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("penman02. potential rate")

	// zero forcing gives zero demand: no radiation surplus and no vapour
	// deficit term (dry air but no wind, no pressure)
	chk.Float64(tst, "etp zero", 1e-15, PotentialRate(0, 0, 10, 0, 0, 0), 0)

	// saturated air and no radiation surplus gives zero demand
	chk.Float64(tst, "etp saturated", 1e-15, PotentialRate(100, 100, 25, 2, 1, 101.325), 0)

	// pin one mid-range value through the literal constant chain
	Rn, G, T, vel, H, P := 300.0, 30.0, 25.0, 2.0, 0.6, 101.325
	es := SatVaporPressure(T)
	ea := es * H
	gamma := Psychrometric(P)
	delta := SatSlope(T, es)
	correct := (1e-3 / 1440) * (0.408*0.0864*delta*(Rn-G) + gamma*900*vel*(es-ea)/(T+273)) /
		(delta + gamma*(1+0.34*vel))
	chk.Float64(tst, "etp", 1e-17, PotentialRate(Rn, G, T, vel, H, P), correct)
	if correct <= 0 {
		tst.Errorf("potential rate must be positive for a dry sunny day\n")
	}
}
