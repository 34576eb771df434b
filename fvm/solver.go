// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Run integrates the model over the configured time window. The outer loop
// walks the output grid; the inner loop advances in ETStep substeps, each
// one alternating the interception update, the implicit stiff solve and the
// ET depletion. Every Solve call restarts from the current state vector, so
// the operator-split adjustments made outside the solver are always picked
// up. Solver failures panic and abort the run.
func (o *Domain) Run(out *Output) {
	c := o.Ctl
	if c.Solver != 1 && c.Solver != 2 {
		chk.Panic("solver type %d is invalid", c.Solver)
	}
	if c.ETStep <= 0 {
		chk.Panic("ET step must be positive")
	}

	// both solver codes run the implicit Radau5 core with scalar
	// tolerances; the Krylov parameters of code 2 are kept for file
	// compatibility
	conf := ode.NewConfig("radau5", "")
	conf.SetTols(c.Abstol, c.Reltol)
	if c.InitStep > 0 {
		conf.IniH = c.InitStep
	}
	fcn := func(f la.Vector, dx, x float64, y la.Vector) {
		o.Rhs(f, x, y)
	}
	sol := ode.NewSolver(o.N, conf, fcn, nil, nil)
	defer sol.Free()

	t := c.StartTime
	for k := 0; k < c.NumSteps; k++ {

		for t < c.Tout[k+1] {
			next := t + c.ETStep
			if next >= c.Tout[k+1] {
				next = c.Tout[k+1]
			}
			dt := next - t

			o.AdvanceCursors(t)
			o.UpdateIS(t, dt)

			// advance in windows no longer than the maximum step
			for t < next {
				tb := next
				if c.MaxStep > 0 && t+c.MaxStep < next {
					tb = t + c.MaxStep
				}
				sol.Solve(o.Y, t, tb)
				t = tb
			}

			o.UpdateET(t, dt, o.Y)
			if out != nil {
				out.StepQ(t)
			}
		}

		if c.Verbose {
			io.Pf("  step %4d / %d   t = %12.4f   nfeval = %d\n", k+1, c.NumSteps, t, o.Nfeval)
		}
		if out != nil {
			out.Step(t)
		}
	}

	if out != nil {
		out.WriteRestart()
	}
}
