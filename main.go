// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pihm runs the semi-discrete finite-volume hydrologic simulator:
// fully-coupled overland, unsaturated, groundwater and channel storage over
// an unstructured triangular mesh, driven by tabular atmospheric forcings.
// The single argument is the filename stem of the seven input files.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/io"

	"github.com/pihmadmin/pihm/fvm"
	"github.com/pihmadmin/pihm/inp"
)

func main() {

	// input data
	fnkey := "shalehills"
	verbose := true

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// simulation filename stem
	flag.Parse()
	if flag.NArg() > 0 {
		fnkey = flag.Arg(0)
	}

	// message
	io.PfWhite("\nPIHM -- semi-discrete finite-volume hydrologic model\n\n")

	// read input files and build the domain
	sim := inp.ReadSim(".", fnkey, verbose)
	dom := fvm.NewDomain(sim, nil)
	dom.InitState()
	if sim.Ctl.Debug {
		dom.PrintData()
	}

	// open result streams
	out := fvm.NewOutput(dom)
	defer out.Close()

	// run
	io.Pf("\nSolving ODE system ...\n")
	dom.Run(out)

	// statistics
	io.PfGreen("\nSuccess: %d output steps, %d right-hand-side evaluations\n",
		sim.Ctl.NumSteps, dom.Nfeval)
}
