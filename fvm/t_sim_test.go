// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pihmadmin/pihm/inp"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. closed box stays at rest for an hour")

	sim := SingleBox()
	dom := NewDomain(sim, nil)
	dom.InitState()
	ne := dom.NumEle

	dom.Run(nil)

	chk.Float64(tst, "surf", 1e-9, dom.Y[0], 0.1)
	chk.Float64(tst, "unsat", 1e-9, dom.Y[0+ne], 0)
	chk.Float64(tst, "sat", 1e-9, dom.Y[0+2*ne], 5)
	chk.Float64(tst, "Q", 1e-15, dom.Q, 0)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. mass balance under uniform rain")

	// closed two-element watershed, 0.001 m/min for an hour, no ET, no
	// infiltration: everything the sky delivers must sit on the surface
	sim := TwoStrip()
	sim.Forc.Prep = []inp.TimeSeries{CteTS(0.001)}
	sim.Ele[0].Prep = 1
	sim.Ele[1].Prep = 1

	dom := NewDomain(sim, nil)
	dom.InitState()
	ne := dom.NumEle

	stored := func() (tot float64) {
		for i := 0; i < ne; i++ {
			tot += dom.Ele[i].Area * (dom.Y[i] + dom.Y[i+ne] + dom.Y[i+2*ne])
		}
		return
	}
	before := stored()

	dom.Run(nil)

	var area float64
	for i := 0; i < ne; i++ {
		area += dom.Ele[i].Area
	}
	added := 0.001 * 60 * area
	chk.Float64(tst, "mass balance", 1e-6, stored()-before, added)

	// both elements saw the same rain and stayed symmetric
	chk.Float64(tst, "symmetry", 1e-9, dom.Y[0], dom.Y[1])
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. output grid")

	c := inp.Control{StartTime: 0, EndTime: 60, A: 1, B: 10}
	c.DeriveGrid()
	chk.Int(tst, "NumSteps", c.NumSteps, 6)
	chk.Array(tst, "Tout", 1e-12, c.Tout, []float64{0, 10, 20, 30, 40, 50, 60})

	// geometric grid, last entry clamped to the end time
	c = inp.Control{StartTime: 0, EndTime: 100, A: 2, B: 10}
	c.DeriveGrid()
	chk.Float64(tst, "T0", 1e-15, c.Tout[0], 0)
	chk.Float64(tst, "T1", 1e-15, c.Tout[1], 10)
	chk.Float64(tst, "T2", 1e-15, c.Tout[2], 30)
	chk.Float64(tst, "last", 1e-15, c.Tout[c.NumSteps], 100)
}
