// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Rhs evaluates the time derivatives of the full state vector at (t, y).
// It is a pure function of its arguments and the domain-owned scratch
// arrays: y is copied into the working vector before the in-kernel clamps,
// so the solver's own vector is never written and the evaluation may be
// repeated at non-monotone times within one implicit step.
func (o *Domain) Rhs(f la.Vector, t float64, y la.Vector) {
	o.Nfeval++
	copy(o.Yw, y)
	o.assemble(t, o.Yw)
	switch o.Ctl.UnsatMode {
	case 1:
		o.rhsShallow(f, t, o.Yw)
	default:
		o.rhsUnsatLayer(f, t, o.Yw)
	}
}

// rhsShallow composes the derivatives under the shallow-groundwater
// assumption: infiltration feeds the saturated store directly and the
// unsaturated store follows through the moisture-capacity pair
func (o *Domain) rhsShallow(f la.Vector, t float64, y la.Vector) {
	ne := o.NumEle

	for i := 0; i < ne; i++ {
		e := &o.Ele[i]
		b := o.B(i)

		var deficit float64
		if y[i+2*ne] >= b {
			deficit = 0
			o.EleVic[i] = 0
		} else {
			deficit = b - y[i+2*ne]
			o.EleVic[i] = o.calib.Vic * sample(o.Sim.Inc, o.Sim.Soil[e.Soil-1].Inf, t)
		}

		// precipitation and infiltration
		if y[i+ne] <= deficit {
			if y[i] > 0 || o.EleNetPrep[i] > o.EleVic[i] {
				f[i] = o.EleNetPrep[i] - o.EleVic[i]
				f[i+2*ne] = o.EleVic[i]
			} else {
				f[i] = 0
				f[i+2*ne] = o.EleNetPrep[i]
			}
		} else {
			// unsaturated store exceeds the deficit: accept the state and
			// divert all precipitation to the surface
			f[i] = o.EleNetPrep[i]
			f[i+2*ne] = 0
			if deficit > 0 {
				y[i+ne] = b - y[i+2*ne]
			} else {
				y[i+2*ne] = b
				y[i+ne] = 0
			}
		}

		for j := 0; j < 3; j++ {
			f[i] -= o.FluxSurf[i][j] / e.Area
		}
		for j := 0; j < 3; j++ {
			f[i+2*ne] -= o.FluxSub[i][j] / e.Area
		}
	}

	o.rhsRivers(f, t, y)

	for i := 0; i < ne; i++ {
		e := &o.Ele[i]
		b := o.B(i)
		deficit := b - y[i+2*ne]
		g := e.Reten.Capacity(deficit)
		gi := e.Reten.Slope(deficit)

		f[i+2*ne] /= g
		f[i+ne] = gi * f[i+2*ne]

		if e.Source > 0 {
			f[i+2*ne] -= sample(o.Sim.Forc.Source, e.Source, t) / (e.Porosity * e.Area)
		}

		// one-sided bound guards
		if y[i+ne] > deficit && f[i+ne] > 0 {
			f[i+ne] = 0
		}
		if y[i+ne] < 0 && f[i+ne] < 0 {
			f[i+ne] = 0
		}
		if y[i+2*ne] > b && f[i+2*ne] > 0 {
			f[i+2*ne] = 0
		}
		if y[i+2*ne] < 0 && f[i+2*ne] < 0 {
			f[i+2*ne] = 0
		}
	}
}

// rhsUnsatLayer composes the derivatives with an explicit unsaturated
// layer: infiltration feeds the unsaturated store and a recharge closure
// passes water down to the saturated store
func (o *Domain) rhsUnsatLayer(f la.Vector, t float64, y la.Vector) {
	ne := o.NumEle

	for i := 0; i < ne; i++ {
		e := &o.Ele[i]
		b := o.B(i)
		deficit := b - y[i+2*ne]
		o.EleVic[i] = o.calib.Vic * sample(o.Sim.Inc, o.Sim.Soil[e.Soil-1].Inf, t)

		if y[i+ne] < deficit {
			if y[i] > 0 || o.EleNetPrep[i] > o.EleVic[i] {
				f[i] = o.EleNetPrep[i] - o.EleVic[i]
				f[i+ne] = o.EleVic[i]
			} else {
				f[i] = 0
				f[i+ne] = o.EleNetPrep[i]
			}
		} else {
			f[i] = o.EleNetPrep[i]
			f[i+ne] = 0
		}

		for j := 0; j < 3; j++ {
			f[i] -= o.FluxSurf[i][j] / e.Area
		}
		if y[i] <= 0 && f[i] < 0 {
			f[i] = 0
			f[i+ne] = o.EleNetPrep[i]
		}

		// recharge closure
		ph := 1 - math.Exp(-e.Ksat*deficit)
		rech := e.Ksat * (ph - e.Alpha*y[i+ne]) / (1e-7 + e.Alpha*deficit - ph)
		if y[i+ne] < 0 && rech < 0 {
			rech = 0
		}
		if y[i+2*ne] < 0 && rech > 0 {
			rech = 0
		}
		o.Recharge[i] = rech

		f[i+ne] = (f[i+ne] + rech) / e.Porosity
		if y[i+ne] > deficit && f[i+ne] > 0 {
			f[i+ne] = 0
		}
		if y[i+ne] < 0 && f[i+ne] < 0 {
			f[i+ne] = 0
		}

		f[i+2*ne] = -rech
		for j := 0; j < 3; j++ {
			f[i+2*ne] -= o.FluxSub[i][j] / e.Area
		}
	}

	o.rhsRivers(f, t, y)

	for i := 0; i < ne; i++ {
		e := &o.Ele[i]
		b := o.B(i)
		if e.Source > 0 {
			f[i+2*ne] -= sample(o.Sim.Forc.Source, e.Source, t) / e.Area
		}
		f[i+2*ne] /= e.Porosity
		if y[i+2*ne] > b && f[i+2*ne] > 0 {
			f[i+2*ne] = 0
		}
		if y[i+2*ne] < 0 && f[i+2*ne] < 0 {
			f[i+2*ne] = 0
		}
	}
}

// rhsRivers composes the channel storage derivatives and feeds the bank
// groundwater exchange back into the adjacent saturated stores
func (o *Domain) rhsRivers(f la.Vector, t float64, y la.Vector) {
	ne := o.NumEle
	for i := 0; i < o.NumRiv; i++ {
		r := &o.Riv[i]

		// rainfall collected by the segment: mean of the adjacent elements'
		// precipitation
		var rivPrep float64
		switch {
		case r.Left > 0 && r.Right > 0:
			rivPrep = (sample(o.Sim.Forc.Prep, o.Ele[r.Left-1].Prep, t) +
				sample(o.Sim.Forc.Prep, o.Ele[r.Right-1].Prep, t)) / 2
		case r.Left > 0:
			rivPrep = sample(o.Sim.Forc.Prep, o.Ele[r.Left-1].Prep, t)
		case r.Right > 0:
			rivPrep = sample(o.Sim.Forc.Prep, o.Ele[r.Right-1].Prep, t)
		}

		fr := o.FluxRiv[i]
		f[i+3*ne] = (rivPrep + fr[0] - fr[1] - fr[2] - fr[3] - fr[4] - fr[5]) /
			(r.Length * r.Width)

		if r.Left > 0 {
			f[r.Left-1+2*ne] += fr[4] / o.Ele[r.Left-1].Area
		}
		if r.Right > 0 {
			f[r.Right-1+2*ne] += fr[5] / o.Ele[r.Right-1].Area
		}
	}
}
