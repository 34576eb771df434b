// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import "github.com/pihmadmin/pihm/inp"

// Fixture builders used by the package tests: small catchments assembled
// directly in memory, bypassing the input files.

// CteTS returns a single-point series held constant everywhere
func CteTS(v float64) inp.TimeSeries {
	return inp.TimeSeries{T: []float64{0}, V: []float64{v}}
}

// testCtl returns run control defaults for the fixtures
func testCtl() inp.Control {
	c := inp.Control{
		IntType:   1,
		UnsatMode: 1,
		SurfMode:  1,
		RivMode:   1,
		Solver:    1,
		Abstol:    1e-9,
		Reltol:    1e-9,
		InitStep:  0.1,
		MaxStep:   10,
		ETStep:    5,
		StartTime: 0,
		EndTime:   60,
		OutType:   0,
		A:         1,
		B:         10,
	}
	c.DeriveGrid()
	return c
}

// testSoil returns a frictionless impervious-capacity soil with porosity 0.3
func testSoil() inp.Soil {
	return inp.Soil{
		Ksat:   1e-5,
		ThetaS: 0.45,
		ThetaR: 0.15,
		Alpha:  1.0,
		Beta:   2.0,
		Sf:     0,
		Rough:  0.05,
		Inf:    1,
	}
}

// SingleBox returns a one-element closed catchment: no neighbors, natural
// boundaries, no river, zero forcing, B = 10
func SingleBox() *inp.Simulation {
	sim := &inp.Simulation{
		FnKey:   "box",
		NumEle:  1,
		NumNode: 3,
		Ele: []inp.Element{{
			Node: [3]int{1, 2, 3},
			Soil: 1, IC: 1,
		}},
		Node: []inp.Node{
			{X: 0, Y: 0, Zmin: 0, Zmax: 10},
			{X: 100, Y: 0, Zmin: 0, Zmax: 10},
			{X: 0, Y: 100, Zmin: 0, Zmax: 10},
		},
		NumSoil:  1,
		Soil:     []inp.Soil{testSoil()},
		NumInc:   1,
		Inc:      []inp.TimeSeries{CteTS(0)},
		NumEleIC: 1,
		EleIC:    []inp.ElemIC{{IS: 0, Surf: 0.1, Unsat: 0, Sat: 5}},
		Ctl:      testCtl(),
	}
	return sim
}

// TwoStrip returns two elements sharing a 10 m edge with centroids 5 m
// apart, equal surface elevations, natural boundaries everywhere else.
// The shared edge is edge 1 of element 1 and edge 2 of element 2.
func TwoStrip() *inp.Simulation {
	sim := &inp.Simulation{
		FnKey:   "strip",
		NumEle:  2,
		NumNode: 4,
		Ele: []inp.Element{
			{Node: [3]int{1, 2, 3}, Nabr: [3]int{0, 2, 0}, Soil: 1, IC: 1},
			{Node: [3]int{2, 4, 3}, Nabr: [3]int{0, 0, 1}, Soil: 1, IC: 1},
		},
		Node: []inp.Node{
			{X: -7.5, Y: 0, Zmin: 0, Zmax: 10},
			{X: 0, Y: 0, Zmin: 0, Zmax: 10},
			{X: 0, Y: 10, Zmin: 0, Zmax: 10},
			{X: 7.5, Y: 0, Zmin: 0, Zmax: 10},
		},
		NumSoil:  1,
		Soil:     []inp.Soil{testSoil()},
		NumInc:   1,
		Inc:      []inp.TimeSeries{CteTS(0)},
		NumEleIC: 1,
		EleIC:    []inp.ElemIC{{Surf: 0, Unsat: 0, Sat: 5}},
		Ctl:      testCtl(),
	}
	return sim
}

// Channel returns a single 100 m river segment with a Dirichlet outlet
// (down = -1), no adjacent elements and no catchment elements. The bank is
// at 10 m, the bed at 8 m, the outlet bed at 8 m, width 2 m, Manning
// n = 0.03, friction slope 0.005.
func Channel() *inp.Simulation {
	sim := &inp.Simulation{
		FnKey:   "channel",
		NumNode: 2,
		Node: []inp.Node{
			{X: 0, Y: 0, Zmin: 6, Zmax: 10},
			{X: 100, Y: 0, Zmin: 6, Zmax: 10},
		},
		NumSoil: 1,
		Soil:    []inp.Soil{testSoil()},
		NumInc:  1,
		Inc:     []inp.TimeSeries{CteTS(0)},
		NumRiv:  1,
		Riv: []inp.Riv{{
			From: 1, To: 2, Down: -1,
			Shape: 1, Material: 1, IC: 1, BC: 1,
		}},
		RivShape: []inp.RivShape{{Width: 2, Depth: 2, Bed: 2}},
		RivMat:   []inp.RivMat{{Rough: 0.03, Cwr: 0.6, Sf: 0.005}},
		RivIC:    []float64{1.0},
		RivBC:    []inp.TimeSeries{CteTS(0.5)},
		Ctl:      testCtl(),
	}
	return sim
}

// BankStrip returns the TwoStrip pair with a river segment running along
// the shared edge: element 1 on the left bank, element 2 on the right,
// critical-depth outlet
func BankStrip() *inp.Simulation {
	sim := TwoStrip()
	sim.FnKey = "bank"
	sim.NumRiv = 1
	sim.Riv = []inp.Riv{{
		From: 2, To: 3, Down: -4,
		Left: 1, Right: 2,
		Shape: 1, Material: 1, IC: 1,
	}}
	sim.RivShape = []inp.RivShape{{Width: 2, Depth: 2, Bed: 0}}
	sim.RivMat = []inp.RivMat{{Rough: 0.03, Cwr: 0.6, Sf: 0}}
	sim.RivIC = []float64{0.5}
	return sim
}
