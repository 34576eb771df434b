// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. vcatch input set")

	sim := ReadSim("data", "vcatch", chk.Verbose)

	// mesh
	chk.Int(tst, "NumEle", sim.NumEle, 2)
	chk.Int(tst, "NumNode", sim.NumNode, 4)
	chk.Ints(tst, "e1 nodes", sim.Ele[0].Node[:], []int{1, 2, 3})
	chk.Ints(tst, "e1 nabrs", sim.Ele[0].Nabr[:], []int{0, 2, 0})
	chk.Ints(tst, "e2 nabrs", sim.Ele[1].Nabr[:], []int{0, 0, 1})
	chk.Float64(tst, "n4 x", 1e-15, sim.Node[3].X, 7.5)
	chk.Float64(tst, "n4 zmax", 1e-15, sim.Node[3].Zmax, 10)

	// attributes
	chk.Int(tst, "e2 soil", sim.Ele[1].Soil, 1)
	chk.Int(tst, "e2 lc", sim.Ele[1].Lc, 1)
	chk.Int(tst, "e2 BC", sim.Ele[1].BC, 0)
	chk.Int(tst, "e2 LAI series", sim.Ele[1].LAI, 1)
	chk.Int(tst, "e2 source", sim.Ele[1].Source, 0)

	// soils, infiltration series and land cover
	chk.Int(tst, "NumSoil", sim.NumSoil, 1)
	chk.Float64(tst, "Ksat", 1e-15, sim.Soil[0].Ksat, 1e-5)
	chk.Float64(tst, "porosity", 1e-15, sim.Soil[0].Porosity(), 0.3)
	chk.Int(tst, "NumInc", sim.NumInc, 1)
	chk.Float64(tst, "inc value", 1e-15, sim.Inc[0].Interp(0), 0.0005)
	chk.Int(tst, "NumLC", sim.NumLC, 2)
	chk.Float64(tst, "lc2 vegfrac", 1e-15, sim.LC[1].VegFrac, 0.6)

	// river
	chk.Int(tst, "NumRiv", sim.NumRiv, 1)
	chk.Int(tst, "down", sim.Riv[0].Down, -4)
	chk.Int(tst, "left", sim.Riv[0].Left, 1)
	chk.Float64(tst, "width", 1e-15, sim.RivShape[0].Width, 2)
	chk.Float64(tst, "Cwr", 1e-15, sim.RivMat[0].Cwr, 0.6)
	chk.Float64(tst, "riv IC", 1e-15, sim.RivIC[0], 0.5)
	chk.Float64(tst, "riv BC", 1e-15, sim.RivBC[0].Interp(0), 0.5)

	// forcings
	chk.Int(tst, "NumPrep", len(sim.Forc.Prep), 1)
	chk.Float64(tst, "prep", 1e-15, sim.Forc.Prep[0].Interp(0), 0.001)
	chk.Float64(tst, "temp mid", 1e-12, sim.Forc.Temp[0].Interp(50*1440), 11)
	chk.Float64(tst, "SIFactor", 1e-15, sim.Forc.SIFactor[0], 0.002)

	// boundary and initial conditions
	chk.Int(tst, "Num1BC", sim.Num1BC, 0)
	chk.Int(tst, "NumEleIC", sim.NumEleIC, 1)
	chk.Float64(tst, "IC unsat", 1e-15, sim.EleIC[0].Unsat, 0.08)

	// control and output grid
	c := &sim.Ctl
	chk.Int(tst, "UnsatMode", c.UnsatMode, 1)
	chk.Int(tst, "Solver", c.Solver, 1)
	chk.Float64(tst, "abstol", 1e-15, c.Abstol, 1e-5)
	chk.Float64(tst, "ETStep", 1e-15, c.ETStep, 5)
	chk.Int(tst, "NumSteps", c.NumSteps, 6)
	chk.Array(tst, "Tout", 1e-12, c.Tout, []float64{0, 10, 20, 30, 40, 50, 60})
}
