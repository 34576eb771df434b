// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/pihmadmin/pihm/inp"
)

func Test_rhs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs01. impervious box at rest")

	// single element, zero forcing, surf = 0.1, sat = B/2: nothing moves
	sim := SingleBox()
	dom := NewDomain(sim, nil)
	dom.InitState()
	dom.UpdateIS(0, 5)

	f := la.NewVector(dom.N)
	dom.Rhs(f, 0, dom.Y)
	chk.Array(tst, "dY", 1e-15, f, []float64{0, 0, 0})
	chk.Float64(tst, "Q", 1e-15, dom.Q, 0)
}

func Test_rhs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs02. shallow-groundwater infiltration partition")

	// precipitation 0.001 m/min, infiltration capacity 0.0005 m/min
	sim := SingleBox()
	sim.Forc.Prep = []inp.TimeSeries{CteTS(0.001)}
	sim.Ele[0].Prep = 1
	sim.Inc[0] = CteTS(0.0005)
	sim.EleIC[0].Surf = 0

	dom := NewDomain(sim, nil)
	dom.InitState()
	dom.UpdateIS(0, 5)

	f := la.NewVector(dom.N)
	dom.Rhs(f, 0, dom.Y)

	ne := dom.NumEle
	e := &dom.Ele[0]
	deficit := dom.B(0) - dom.Y[0+2*ne]
	g := e.Reten.Capacity(deficit)
	gi := e.Reten.Slope(deficit)

	chk.Float64(tst, "dSurf", 1e-15, f[0], 0.001-0.0005)
	chk.Float64(tst, "dSat", 1e-15, f[0+2*ne], 0.0005/g)
	chk.Float64(tst, "dUnsat", 1e-15, f[0+ne], gi*0.0005/g)
}

func Test_rhs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs03. explicit unsaturated layer recharge")

	sim := SingleBox()
	sim.Ctl.UnsatMode = 2
	sim.EleIC[0] = inp.ElemIC{Surf: 0, Unsat: 0.05, Sat: 5}

	dom := NewDomain(sim, nil)
	dom.InitState()
	dom.UpdateIS(0, 5)

	f := la.NewVector(dom.N)
	dom.Rhs(f, 0, dom.Y)

	ne := dom.NumEle
	e := &dom.Ele[0]
	deficit := dom.B(0) - dom.Y[0+2*ne]
	ph := 1 - math.Exp(-e.Ksat*deficit)
	rech := e.Ksat * (ph - e.Alpha*0.05) / (1e-7 + e.Alpha*deficit - ph)

	chk.Float64(tst, "recharge", 1e-15, dom.Recharge[0], rech)
	chk.Float64(tst, "dUnsat", 1e-15, f[0+ne], rech/e.Porosity)
	chk.Float64(tst, "dSat", 1e-15, f[0+2*ne], -rech/e.Porosity)

	// the moist layer drains downward here
	if rech >= 0 {
		tst.Errorf("expected negative recharge for this state\n")
	}
}

func Test_rhs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs04. one-sided bound guards")

	// full column: the saturated derivative may not push past B
	sim := SingleBox()
	sim.Forc.Prep = []inp.TimeSeries{CteTS(0.001)}
	sim.Ele[0].Prep = 1
	sim.Inc[0] = CteTS(0.01)
	sim.EleIC[0] = inp.ElemIC{Surf: 0.2, Unsat: 0, Sat: 10.05}

	dom := NewDomain(sim, nil)
	dom.InitState()
	dom.UpdateIS(0, 5)

	f := la.NewVector(dom.N)
	dom.Rhs(f, 0, dom.Y)
	ne := dom.NumEle
	if f[0+2*ne] > 0 {
		tst.Errorf("saturated derivative must be clamped at the top bound\n")
	}
}
