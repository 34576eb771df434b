// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_flux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux01. kinematic overland flux across one edge")

	// two elements, 1 m of surface head difference, average depth 1 m,
	// shared edge 10 m, centroid distance 5 m, n = 0.05, Sf = 0
	sim := TwoStrip()
	dom := NewDomain(sim, nil)
	dom.InitState()
	ne := dom.NumEle
	dom.Y[0] = 1.5
	dom.Y[1] = 0.5

	copy(dom.Yw, dom.Y)
	dom.assemble(0, dom.Yw)

	expected := 60 * math.Sqrt(0.2) * math.Pow(1.0, 2.0/3.0) * (1.0 * 10.0) / 0.05
	chk.Float64(tst, "flux 1->2", 1e-8, dom.FluxSurf[0][1], expected)
	chk.Float64(tst, "flux 2->1", 1e-8, dom.FluxSurf[1][2], -expected)
	chk.Float64(tst, "magnitude", 1e-8, expected, 5366.563145999495)

	// friction dominates: same gradient, threshold above it, flux exactly 0
	for i := 0; i < ne; i++ {
		dom.Ele[i].Sf = 0.5
	}
	copy(dom.Yw, dom.Y)
	dom.assemble(0, dom.Yw)
	chk.Float64(tst, "friction 1->2", 1e-15, dom.FluxSurf[0][1], 0)
	chk.Float64(tst, "friction 2->1", 1e-15, dom.FluxSurf[1][2], 0)
}

func Test_flux02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux02. pairwise antisymmetry of lateral fluxes")

	sim := TwoStrip()
	dom := NewDomain(sim, nil)
	dom.InitState()
	ne := dom.NumEle

	rnd.Init(0)
	for trial := 0; trial < 20; trial++ {
		dom.Y[0] = rnd.Float64(0, 2)
		dom.Y[1] = rnd.Float64(0, 2)
		dom.Y[0+2*ne] = rnd.Float64(0.1, 9)
		dom.Y[1+2*ne] = rnd.Float64(0.1, 9)
		copy(dom.Yw, dom.Y)
		dom.assemble(0, dom.Yw)
		chk.Float64(tst, "surf antisymmetry", 1e-12, dom.FluxSurf[0][1]+dom.FluxSurf[1][2], 0)
		chk.Float64(tst, "sub antisymmetry", 1e-12, dom.FluxSub[0][1]+dom.FluxSub[1][2], 0)
	}

	// empty donor: raise the dry cell so the gradient points out of it and
	// check that the flux is clamped to zero
	dom.Ele[0].Zmax = 11
	dom.Ele[0].Zmin = 4
	dom.Y[0] = 0
	dom.Y[1] = 0.5
	dom.Y[0+2*ne] = 0
	dom.Y[1+2*ne] = 3
	copy(dom.Yw, dom.Y)
	dom.assemble(0, dom.Yw)
	chk.Float64(tst, "dry surf donor", 1e-15, dom.FluxSurf[0][1], 0)
	chk.Float64(tst, "dry sub donor", 1e-15, dom.FluxSub[0][1], 0)
}

func Test_flux03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux03. weir exchange and edge override at the banks")

	sim := BankStrip()
	dom := NewDomain(sim, nil)
	dom.InitState()
	ne := dom.NumEle
	nr := 3 * ne

	// river above the bank, left element wet but lower
	dom.Y[0] = 0.2
	dom.Y[1] = 0.0
	dom.Y[0+2*ne] = 3
	dom.Y[1+2*ne] = 3
	dom.Y[nr] = 2.5

	copy(dom.Yw, dom.Y)
	dom.assemble(0, dom.Yw)

	r := &dom.Riv[0]
	totalY := 2.5 + r.Zmin // 10.5
	bank := 10.0
	c := r.Cwr * 60 * 2.0 * math.Sqrt(2*9.81) * r.Length / 3.0

	// left element: water surface 10.2 above the bank
	left := c * math.Sqrt(totalY-10.2) * (totalY - bank)
	chk.Float64(tst, "left weir", 1e-10, dom.FluxRiv[0][2], left)

	// right element: dry, water surface at the bank
	right := c * math.Sqrt(totalY-bank) * (totalY - bank)
	chk.Float64(tst, "right weir", 1e-10, dom.FluxRiv[0][3], right)

	// the channel replaces the overland flux on the shared edge
	chk.Float64(tst, "left override", 1e-15, dom.FluxSurf[0][1], -dom.FluxRiv[0][2])
	chk.Float64(tst, "right override", 1e-15, dom.FluxSurf[1][2], -dom.FluxRiv[0][3])

	// bank groundwater exchange, left side
	e := &dom.Ele[0]
	sub := r.Length * (0.5*r.Width + 2.5) * e.Ksat * (totalY - (3 + e.Zmin)) / r.DistLeft
	chk.Float64(tst, "left bank sub", 1e-12, dom.FluxRiv[0][4], sub)

	// critical-depth outlet
	out := 60 * r.Width * 2.5 * math.Sqrt(9.81*2.5)
	chk.Float64(tst, "outlet", 1e-10, dom.FluxRiv[0][1], out)
	chk.Float64(tst, "Q", 1e-10, dom.Q, out)
}
