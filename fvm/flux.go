// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// assemble rewrites every lateral element flux and every river flux for
// state y at time t. y is the working copy: the unconfined safety valve may
// bleed saturated overshoot back to the surface in place. Before the river
// overrides, interior fluxes are antisymmetric across each shared edge;
// positive river flux means downstream / out of the channel.
func (o *Domain) assemble(t float64, y la.Vector) {
	ne := o.NumEle

	for i := 0; i < ne; i++ {
		e := &o.Ele[i]

		// unconfined condition: bleed overshoot back to the surface
		if b := o.B(i); y[i+2*ne] >= b+0.1 {
			y[i] += e.Porosity * (y[i+2*ne] - (b + 0.1))
			y[i+ne] = 0
			y[i+2*ne] = b + 0.1
		}

		for j := 0; j < 3; j++ {
			if nb := e.Nabr[j]; nb > 0 {
				n := &o.Ele[nb-1]
				dist := e.NabrDist[j]

				// groundwater interaction, Darcy's law with macropore factor
				avgY := (y[i+2*ne] + y[nb-1+2*ne]) / 2
				dif := (y[i+2*ne] + e.Zmin) - (y[nb-1+2*ne] + n.Zmin)
				avgK := (e.Ksat + n.Ksat) / 2
				grad := dif / dist
				mp := 1.0
				if e.Mpore && n.Mpore {
					mp = (e.Cond.Factor(y[i+2*ne]) + n.Cond.Factor(y[nb-1+2*ne])) / 2
				}
				fs := mp * avgK * grad * avgY * e.Edge[j]
				if y[i+2*ne] <= 0 && fs > 0 {
					fs = 0
				}
				if y[nb-1+2*ne] <= 0 && fs < 0 {
					fs = 0
				}
				o.FluxSub[i][j] = fs

				// surface interaction
				avgYs := (y[i] + y[nb-1]) / 2
				difs := (y[i] + e.Zmax) - (y[nb-1] + n.Zmax)
				grads := difs / dist
				avgSf := (e.Sf + n.Sf) / 2
				avgRough := (e.Rough + n.Rough) / 2
				fo := o.surfFlux(avgYs, grads, avgSf, avgRough, avgYs*e.Edge[j])
				if y[i] <= 0 && fo > 0 {
					fo = 0
				}
				if y[nb-1] <= 0 && fo < 0 {
					fo = 0
				}
				o.FluxSurf[i][j] = fo

			} else {

				// boundary edge: natural (no flow) unless a BC code is set
				o.FluxSurf[i][j] = 0
				o.FluxSub[i][j] = 0
				if e.BC > 0 {
					// Dirichlet head from its series
					head := o.Sim.EleBC[e.BC-1].Interp(t)
					avgY := (y[i+2*ne] + (head - e.Zmin)) / 2
					dif := (y[i+2*ne] + e.Zmin) - head
					o.FluxSub[i][j] = e.Ksat * (dif / e.BndDist[j]) * avgY * e.Edge[j]
				} else if e.BC < 0 {
					// Neumann flux straight from its series
					o.FluxSub[i][j] = o.Sim.EleBC[-e.BC-1+o.Sim.Num1BC].Interp(t)
				}
				if y[i+2*ne] <= 0 && o.FluxSub[i][j] > 0 {
					o.FluxSub[i][j] = 0
				}
			}
		}
	}

	for i := 0; i < o.NumRiv; i++ {
		for j := 0; j < 6; j++ {
			o.FluxRiv[i][j] = 0
		}
	}

	// river segments are listed from upstream to downstream
	for i := 0; i < o.NumRiv; i++ {
		r := &o.Riv[i]
		totalY := y[i+3*ne] + r.Zmin

		if r.Down > 0 {

			// downstream routing between two segments
			d := &o.Riv[r.Down-1]
			totalYdown := y[r.Down-1+3*ne] + d.Zmin
			avgWid := (r.Width + d.Width) / 2
			avgY := (y[i+3*ne] + y[r.Down-1+3*ne]) / 2
			avgRough := (r.Rough + d.Rough) / 2
			grad := (totalY - totalYdown) / r.DistDown
			avgSf := (r.Sf + d.Sf) / 2
			f := o.rivFlux(avgY, avgWid, grad, avgSf, avgRough)
			if y[i+3*ne] <= 0 && f > 0 {
				f = 0
			} else if y[r.Down-1+3*ne] <= 0 && f < 0 {
				f = 0
			}
			o.FluxRiv[i][1] = f

			// accumulate the in-flow of the downstream segment
			o.FluxRiv[r.Down-1][0] += f

		} else {

			var f float64
			switch r.Down {
			case -1:
				// Dirichlet stage at the outlet node
				totalYdown := sample(o.Sim.RivBC, r.BC, t) + r.OutBed
				grad := (totalY - totalYdown) / r.DistToNode
				f = o.rivFlux(y[i+3*ne], r.Width, grad, r.Sf, r.Rough)
			case -2:
				// Neumann flux
				f = sample(o.Sim.RivBC, r.BC, t)
			case -3:
				// zero-depth-gradient Manning outflow on the bed slope
				grad := (r.Zmin - r.OutBed) / r.DistToNode
				f = 60 * r.Width * math.Pow(y[i+3*ne], 5.0/3.0) * math.Sqrt(grad) / r.Rough
			case -4:
				// critical depth
				f = 60 * r.Width * y[i+3*ne] * math.Sqrt(9.81*y[i+3*ne])
			default:
				chk.Panic("river routing boundary condition type %d is invalid", r.Down)
			}
			if y[i+3*ne] <= 0 && f > 0 {
				f = 0
			}
			o.FluxRiv[i][1] = f

			// outlet discharge
			o.Q = f
		}

		// surface exchange with the bank elements: weir flow over the
		// controlling bank, replacing the overland flux on the edge the
		// channel occupies
		if r.Left > 0 {
			e := &o.Ele[r.Left-1]
			eleYH := y[r.Left-1] + e.Zmax
			bank := r.Zmax
			if bank < e.Zmax {
				bank = e.Zmax
			}
			f := weirFlux(r.Cwr, r.Length, totalY, eleYH, bank)
			if y[i+3*ne] <= 0 && f > 0 {
				f = 0
			}
			if y[r.Left-1] <= 0 && f < 0 {
				f = 0
			}
			o.FluxRiv[i][2] = f
			for j := 0; j < 3; j++ {
				if e.Nabr[j] == r.Right {
					o.FluxSurf[r.Left-1][j] = -f
					break
				}
			}
		}
		if r.Right > 0 {
			e := &o.Ele[r.Right-1]
			eleYH := y[r.Right-1] + e.Zmax
			bank := r.Zmax
			if bank < e.Zmax {
				bank = e.Zmax
			}
			f := weirFlux(r.Cwr, r.Length, totalY, eleYH, bank)
			if y[i+3*ne] <= 0 && f > 0 {
				f = 0
			}
			if y[r.Right-1] <= 0 && f < 0 {
				f = 0
			}
			o.FluxRiv[i][3] = f
			for j := 0; j < 3; j++ {
				if e.Nabr[j] == r.Left {
					o.FluxSurf[r.Right-1][j] = -f
					break
				}
			}
		}

		// groundwater exchange with the bank elements
		if r.Left > 0 {
			e := &o.Ele[r.Left-1]
			eleYH := y[r.Left-1+2*ne] + e.Zmin
			mp := e.Cond.Factor(y[r.Left-1+2*ne])
			f := mp * r.Length * (0.5*r.Width + y[i+3*ne]) * e.Ksat * o.calib.RivKsat *
				(totalY - eleYH) / r.DistLeft
			if y[i+3*ne] <= 0 && f > 0 {
				f = 0
			}
			if y[r.Left-1+2*ne] <= 0 && f < 0 {
				f = 0
			}
			o.FluxRiv[i][4] = f
		}
		if r.Right > 0 {
			e := &o.Ele[r.Right-1]
			eleYH := y[r.Right-1+2*ne] + e.Zmin
			mp := e.Cond.Factor(y[r.Right-1+2*ne])
			f := mp * r.Length * (0.5*r.Width + y[i+3*ne]) * e.Ksat * o.calib.RivKsat *
				(totalY - eleYH) / r.DistRight
			if y[i+3*ne] <= 0 && f > 0 {
				f = 0
			}
			if y[r.Right-1+2*ne] <= 0 && f < 0 {
				f = 0
			}
			o.FluxRiv[i][5] = f
		}
	}
}
