// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01. capacity pair")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "alp", V: 6.3},
		&dbf.P{N: "bet", V: 2.5},
		&dbf.P{N: "por", V: 0.25},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// saturated column: capacity at its floor, slope at -1
	chk.Float64(tst, "G(0)", 1e-14, mdl.Capacity(0), 1e-4)
	chk.Float64(tst, "GI(0)", 1e-14, mdl.Slope(0), -1)

	// deep water table: capacity approaches the porosity, slope vanishes
	chk.Float64(tst, "G(1e3)", 1e-8, mdl.Capacity(1e3), 1e-4+0.25)
	chk.Float64(tst, "GI(1e3)", 1e-8, mdl.Slope(1e3), 0)

	// the pair is tied: G = 1e-4 + por·(1 + GI)
	for _, D := range []float64{0.01, 0.1, 0.5, 1, 2, 5} {
		chk.Float64(tst, io.Sf("pair D=%g", D), 1e-15, mdl.Capacity(D), 1e-4+0.25*(1+mdl.Slope(D)))
	}

	// capacity grows monotonically with the deficit
	prev := mdl.Capacity(0)
	for _, D := range []float64{0.05, 0.2, 0.8, 3} {
		g := mdl.Capacity(D)
		if g <= prev {
			tst.Errorf("capacity is not monotone at D=%g\n", D)
			return
		}
		prev = g
	}
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. constant capacity")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "por", V: 0.3}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "G", 1e-15, mdl.Capacity(0.7), 0.3)
	chk.Float64(tst, "GI", 1e-15, mdl.Slope(0.7), 0)

	// unknown models are refused
	if _, err := New("richards"); err == nil {
		tst.Errorf("test failed: unknown model must be refused\n")
	}
}
