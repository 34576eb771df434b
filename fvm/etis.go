// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/la"

	"github.com/pihmadmin/pihm/mdl/et"
)

// UpdateIS runs the interception operator before the implicit solve of one
// substep (t, t+dt): precipitation fills the canopy store up to the
// LAI-derived capacity and the remainder becomes net precipitation. The
// store never decreases here and net precipitation is never negative.
// Every element is handled independently.
func (o *Domain) UpdateIS(t, dt float64) {
	for i := 0; i < o.NumEle; i++ {
		e := &o.Ele[i]
		o.ElePrep[i] = sample(o.Sim.Forc.Prep, e.Prep, t)

		lai := sample(o.Sim.Forc.LAI, e.LAI, t)
		if lai > e.LAImax {
			lai = e.LAImax
		}
		var si float64
		if e.LAI >= 1 && e.LAI <= len(o.Sim.Forc.SIFactor) {
			si = o.Sim.Forc.SIFactor[e.LAI-1]
		}
		o.EleISmax[i] = o.calib.IS * e.VegFrac * si * lai

		if o.IS[i] >= o.EleISmax[i] {
			o.Ele2IS[i] = 0
		} else if o.IS[i]+o.ElePrep[i]*dt >= o.EleISmax[i] {
			o.Ele2IS[i] = (o.EleISmax[i] - o.IS[i]) / dt
			o.IS[i] = o.EleISmax[i]
		} else {
			o.Ele2IS[i] = o.ElePrep[i]
			o.IS[i] += o.ElePrep[i] * dt
		}

		o.EleNetPrep[i] = o.ElePrep[i] - o.Ele2IS[i]
	}
}

// UpdateET runs the evapotranspiration operator after the implicit solve of
// one substep: the Penman-Monteith demand over dt is drawn as a cascade
// from canopy, surface and saturated stores, recording the four components
func (o *Domain) UpdateET(t, dt float64, y la.Vector) {
	for i := 0; i < o.NumEle; i++ {
		e := &o.Ele[i]
		rn := sample(o.Sim.Forc.Rn, e.Rn, t) * (1 - e.Albedo)
		g := sample(o.Sim.Forc.G, e.G, t)
		temp := sample(o.Sim.Forc.Temp, e.Temp, t)
		vel := sample(o.Sim.Forc.WindVel, e.WindVel, t)
		hum := sample(o.Sim.Forc.Humidity, e.Humidity, t)
		press := sample(o.Sim.Forc.Pressure, e.Pressure, t)

		o.EleETP[i] = et.PotentialRate(rn, g, temp, vel, hum, press)
		o.Cascade(i, o.EleETP[i]*dt, y)
	}
}

// Cascade draws the demand volume from the stores of element i in order:
// canopy, surface, then the saturated column (recorded in the unsaturated
// slot and deducted through the porosity); whatever cannot be met is
// recorded in the saturated slot as unfulfilled demand
func (o *Domain) Cascade(i int, demand float64, y la.Vector) {
	ne := o.NumEle
	rec := o.EleET[i]

	if o.IS[i] >= demand {
		o.IS[i] -= demand
		rec[0], rec[1], rec[2], rec[3] = demand, 0, 0, 0
		return
	}
	rec[0] = o.IS[i]
	remain := demand - o.IS[i]
	o.IS[i] = 0

	if y[i] >= remain {
		rec[1], rec[2], rec[3] = remain, 0, 0
		y[i] -= remain
		return
	}
	if y[i] > 0 {
		rec[1] = y[i]
		remain -= y[i]
		y[i] = 0
	} else {
		rec[1] = 0
	}

	if y[i+2*ne] >= remain {
		rec[2], rec[3] = remain, 0
		y[i+2*ne] -= remain / o.Ele[i].Porosity
		return
	}
	if y[i+2*ne] >= 0 {
		rec[2] = y[i+2*ne]
		y[i+2*ne] = 0
		rec[3] = remain - rec[2]
	} else {
		rec[2] = 0
		rec[3] = remain
	}
}
