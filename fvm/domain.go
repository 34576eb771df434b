// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the coupled finite-volume water-balance kernel:
// flux assembly, right-hand-side evaluation, the interception/ET operator
// split and the stiff-ODE integration driver
package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/pihmadmin/pihm/inp"
	"github.com/pihmadmin/pihm/mdl/conduct"
	"github.com/pihmadmin/pihm/mdl/retention"
)

// Ele holds the derived geometry and resolved attributes of one element.
// All cross references are one-based indices into the domain arrays.
type Ele struct {

	// topology
	Nabr [3]int // neighbor across edge j (≤ 0: boundary)

	// derived geometry
	Edge     [3]float64 // edge lengths
	NabrDist [3]float64 // centroid distance to neighbor (interior edges)
	BndDist  [3]float64 // distance used on Dirichlet boundary edges
	Area     float64    // element area
	X, Y     float64    // element centre
	Zmin     float64    // mean bedrock elevation
	Zmax     float64    // mean surface elevation

	// resolved hydraulic attributes
	Ksat     float64
	Porosity float64
	Alpha    float64
	Beta     float64
	Sf       float64
	Rough    float64
	Mpore    bool

	// resolved land-cover attributes
	LAImax  float64
	Rmin    float64
	Albedo  float64
	VegFrac float64

	// selectors
	Soil, IC, BC                                                int
	Prep, Temp, Humidity, WindVel, Rn, G, Pressure, LAI, Source int

	// constitutive models (shared per soil class)
	Reten retention.Model
	Cond  conduct.Model
}

// RivSeg holds the derived geometry and resolved attributes of one river
// segment
type RivSeg struct {

	// topology
	Down        int // downstream segment or outlet code (≤ 0)
	Left, Right int // bank elements (0 if absent)
	IC, BC      int

	// derived geometry
	X, Y   float64 // midpoint
	Zmin   float64 // bed elevation
	Zmax   float64 // bank elevation
	Depth  float64
	Length float64
	OutBed float64 // bed elevation at the downstream node (outlet segments)

	// resolved shape and material
	Width float64
	Rough float64
	Sf    float64
	Cwr   float64

	// precomputed distances
	DistDown   float64 // to downstream segment midpoint
	DistToNode float64 // to downstream node (outlet segments)
	DistLeft   float64 // to left-bank element centre
	DistRight  float64 // to right-bank element centre
}

// Domain owns every topology, parameter, state and scratch array of one
// simulation. All arrays are sized once here; the integrator and the
// operators mutate the state in place and the flux/rate arrays are
// rewritten on every right-hand-side evaluation.
type Domain struct {

	// input and control
	Sim   *inp.Simulation
	Ctl   *inp.Control
	calib *Calib

	// sizes
	NumEle int
	NumRiv int
	N      int // 3·NumEle + NumRiv

	// derived tables
	Ele []Ele
	Riv []RivSeg

	// state
	Y  la.Vector // surf | unsat | sat | river stage
	IS []float64 // interception storage

	// per-step rates
	ElePrep    []float64 // gross precipitation rate
	Ele2IS     []float64 // to-interception rate
	EleNetPrep []float64 // net precipitation rate
	EleISmax   []float64 // interception capacity
	EleVic     []float64 // infiltration-capacity rate
	Recharge   []float64 // sat→unsat exchange rate (mode 2); negative moves water down
	EleETP     []float64 // potential ET rate
	EleET      [][]float64

	// flux scratch
	Yw       la.Vector // working copy of the state for in-kernel clamping
	FluxSurf [][]float64
	FluxSub  [][]float64
	FluxRiv  [][]float64
	Q        float64 // outlet discharge

	// mode closures
	surfFlux surfFluxFn
	rivFlux  rivFluxFn

	// per-soil constitutive models
	retens []retention.Model
	conds  []conduct.Model

	// statistics
	Nfeval int // number of right-hand-side evaluations
}

// NewDomain derives geometry, resolves attributes and calibration, builds
// the constitutive models and allocates state and scratch. The state itself
// is set by InitState.
func NewDomain(sim *inp.Simulation, calib *Calib) (o *Domain) {
	if calib == nil {
		calib = DefaultCalib()
	}
	o = &Domain{
		Sim:    sim,
		Ctl:    &sim.Ctl,
		calib:  calib,
		NumEle: sim.NumEle,
		NumRiv: sim.NumRiv,
		N:      3*sim.NumEle + sim.NumRiv,
	}

	// mode closures
	var err error
	o.surfFlux, err = surfFluxFunc(o.Ctl.SurfMode)
	if err != nil {
		chk.Panic("%v", err)
	}
	o.rivFlux, err = rivFluxFunc(o.Ctl.RivMode)
	if err != nil {
		chk.Panic("%v", err)
	}
	if o.Ctl.UnsatMode != 1 && o.Ctl.UnsatMode != 2 {
		chk.Panic("unsaturated layer mode %d is invalid", o.Ctl.UnsatMode)
	}

	// constitutive models, one per soil class
	o.retens = make([]retention.Model, sim.NumSoil)
	o.conds = make([]conduct.Model, sim.NumSoil)
	for s := 0; s < sim.NumSoil; s++ {
		soil := o.resolvedSoil(s)
		o.retens[s], err = retention.New("vg")
		if err == nil {
			err = o.retens[s].Init(soil.RetenPrms())
		}
		if err != nil {
			chk.Panic("cannot build retention model for soil %d:\n%v", s+1, err)
		}
		name := "cte"
		if soil.Macropore == 1 {
			name = "macropore"
		}
		o.conds[s], err = conduct.New(name)
		if err == nil {
			err = o.conds[s].Init(soil.ConductPrms())
		}
		if err != nil {
			chk.Panic("cannot build conductivity model for soil %d:\n%v", s+1, err)
		}
	}

	o.deriveElements()
	o.deriveRivers()

	// state and scratch
	o.Y = la.NewVector(o.N)
	o.Yw = la.NewVector(o.N)
	o.IS = make([]float64, o.NumEle)
	o.ElePrep = make([]float64, o.NumEle)
	o.Ele2IS = make([]float64, o.NumEle)
	o.EleNetPrep = make([]float64, o.NumEle)
	o.EleISmax = make([]float64, o.NumEle)
	o.EleVic = make([]float64, o.NumEle)
	o.Recharge = make([]float64, o.NumEle)
	o.EleETP = make([]float64, o.NumEle)
	o.EleET = utl.Alloc(o.NumEle, 4)
	o.FluxSurf = utl.Alloc(o.NumEle, 3)
	o.FluxSub = utl.Alloc(o.NumEle, 3)
	o.FluxRiv = utl.Alloc(o.NumRiv, 6)
	return
}

// resolvedSoil returns soil s with the calibration multipliers applied
func (o *Domain) resolvedSoil(s int) (soil inp.Soil) {
	soil = o.Sim.Soil[s]
	soil.Ksat *= o.calib.Ksat
	soil.ThetaS = soil.ThetaR + o.calib.Porosity*(soil.ThetaS-soil.ThetaR)
	soil.Alpha *= o.calib.Alpha
	soil.Sf *= o.calib.Sf
	soil.Rough *= o.calib.Rough
	return
}

// deriveElements computes the element geometry and resolves attributes
func (o *Domain) deriveElements() {
	sim := o.Sim
	o.Ele = make([]Ele, o.NumEle)
	for i := 0; i < o.NumEle; i++ {
		in := &sim.Ele[i]
		e := &o.Ele[i]
		e.Nabr = in.Nabr

		a := &sim.Node[in.Node[0]-1]
		b := &sim.Node[in.Node[1]-1]
		c := &sim.Node[in.Node[2]-1]

		e.Area = 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
		e.Zmin = (a.Zmin + b.Zmin + c.Zmin) / 3.0
		e.Zmax = (a.Zmax + b.Zmax + c.Zmax) / 3.0
		if e.Zmax <= e.Zmin {
			chk.Panic("element %d: aquifer thickness is not positive", i+1)
		}

		// squared edge lengths first: the circumcenter formula uses them
		e0 := (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)
		e1 := (b.X-c.X)*(b.X-c.X) + (b.Y-c.Y)*(b.Y-c.Y)
		e2 := (c.X-a.X)*(c.X-a.X) + (c.Y-a.Y)*(c.Y-a.Y)
		if o.Ctl.Circumcenter {
			e.X = a.X - ((b.Y-a.Y)*e2-(c.Y-a.Y)*e0)/(4*e.Area)
			e.Y = a.Y + ((b.X-a.X)*e2-(c.X-a.X)*e0)/(4*e.Area)
		} else {
			e.X = (a.X + b.X + c.X) / 3.0
			e.Y = (a.Y + b.Y + c.Y) / 3.0
		}
		e.Edge[0] = math.Sqrt(e0)
		e.Edge[1] = math.Sqrt(e1)
		e.Edge[2] = math.Sqrt(e2)

		// attributes
		soil := o.resolvedSoil(in.Soil - 1)
		e.Ksat = soil.Ksat
		e.Porosity = soil.Porosity()
		e.Alpha = soil.Alpha
		e.Beta = soil.Beta
		e.Sf = soil.Sf
		e.Rough = soil.Rough
		e.Mpore = soil.Macropore == 1
		e.Reten = o.retens[in.Soil-1]
		e.Cond = o.conds[in.Soil-1]

		// land cover (neutral when the table is absent)
		e.LAImax = math.MaxFloat64
		e.VegFrac = 1
		if sim.NumLC > 0 {
			lc := &sim.LC[in.Lc-1]
			e.LAImax = lc.LAImax
			e.Rmin = lc.Rmin
			e.Albedo = lc.Albedo
			e.VegFrac = lc.VegFrac
		}

		e.Soil = in.Soil
		e.IC = in.IC
		e.BC = in.BC
		e.Prep = in.Prep
		e.Temp = in.Temp
		e.Humidity = in.Humidity
		e.WindVel = in.WindVel
		e.Rn = in.Rn
		e.G = in.G
		e.Pressure = in.Pressure
		e.LAI = in.LAI
		e.Source = in.Source
	}

	// neighbor and boundary distances need all centres first
	for i := 0; i < o.NumEle; i++ {
		e := &o.Ele[i]
		p := &gm.Point{X: e.X, Y: e.Y}
		for j := 0; j < 3; j++ {
			if nb := e.Nabr[j]; nb > 0 {
				n := &o.Ele[nb-1]
				e.NabrDist[j] = gm.DistPointPoint(p, &gm.Point{X: n.X, Y: n.Y})
			} else {
				// inradius-style distance for prescribed-head edges
				r := e.Edge[0] * e.Edge[1] * e.Edge[2] / (4 * e.Area)
				e.BndDist[j] = math.Sqrt(r*r - e.Edge[j]*e.Edge[j]/4)
			}
		}
	}
}

// deriveRivers computes the river geometry and resolves shape and material
func (o *Domain) deriveRivers() {
	sim := o.Sim
	o.Riv = make([]RivSeg, o.NumRiv)
	for i := 0; i < o.NumRiv; i++ {
		in := &sim.Riv[i]
		r := &o.Riv[i]
		from := &sim.Node[in.From-1]
		to := &sim.Node[in.To-1]
		shp := &sim.RivShape[in.Shape-1]
		mat := &sim.RivMat[in.Material-1]

		r.Down = in.Down
		r.Left = in.Left
		r.Right = in.Right
		r.IC = in.IC
		r.BC = in.BC

		r.X = (from.X + to.X) / 2
		r.Y = (from.Y + to.Y) / 2
		r.Zmax = (from.Zmax + to.Zmax) / 2
		r.Depth = shp.Depth * o.calib.RivDepth
		r.Zmin = r.Zmax - r.Depth
		r.Length = gm.DistPointPoint(&gm.Point{X: from.X, Y: from.Y}, &gm.Point{X: to.X, Y: to.Y})
		r.OutBed = to.Zmin + shp.Bed

		r.Width = shp.Width * o.calib.RivWidth
		r.Rough = mat.Rough * o.calib.RivRough
		r.Sf = mat.Sf
		r.Cwr = mat.Cwr

		r.DistToNode = gm.DistPointPoint(&gm.Point{X: r.X, Y: r.Y}, &gm.Point{X: to.X, Y: to.Y})
	}

	// midpoint-to-midpoint and bank distances need all midpoints first
	for i := 0; i < o.NumRiv; i++ {
		r := &o.Riv[i]
		p := &gm.Point{X: r.X, Y: r.Y}
		if r.Down > 0 {
			d := &o.Riv[r.Down-1]
			r.DistDown = gm.DistPointPoint(p, &gm.Point{X: d.X, Y: d.Y})
		}
		if r.Left > 0 {
			e := &o.Ele[r.Left-1]
			r.DistLeft = gm.DistPointPoint(p, &gm.Point{X: e.X, Y: e.Y})
		}
		if r.Right > 0 {
			e := &o.Ele[r.Right-1]
			r.DistRight = gm.DistPointPoint(p, &gm.Point{X: e.X, Y: e.Y})
		}
	}
}

// SetRetention swaps the moisture-capacity model of every soil class
func (o *Domain) SetRetention(name string) {
	for s := range o.retens {
		mdl, err := retention.New(name)
		if err == nil {
			err = mdl.Init(o.resolvedSoil(s).RetenPrms())
		}
		if err != nil {
			chk.Panic("cannot swap retention model:\n%v", err)
		}
		o.retens[s] = mdl
	}
	for i := range o.Ele {
		o.Ele[i].Reten = o.retens[o.Ele[i].Soil-1]
	}
}

// B returns the aquifer thickness of element i
func (o *Domain) B(i int) float64 {
	return o.Ele[i].Zmax - o.Ele[i].Zmin
}

// InitState sets the initial state according to the initialisation type:
// 0 relax constants, 1 per-element IC table, otherwise restart snapshot
func (o *Domain) InitState() {
	ne := o.NumEle
	switch o.Ctl.IntType {
	case 0:
		for i := 0; i < ne; i++ {
			o.IS[i] = 0
			o.Y[i] = 0
			o.Y[i+ne] = 0.08
			o.Y[i+2*ne] = o.B(i) - 0.1
		}
		for i := 0; i < o.NumRiv; i++ {
			o.Y[i+3*ne] = 0
		}
	case 1:
		for i := 0; i < ne; i++ {
			e := &o.Ele[i]
			if e.IC < 1 || e.IC > o.Sim.NumEleIC {
				chk.Panic("element %d: IC row %d out of range", i+1, e.IC)
			}
			ic := &o.Sim.EleIC[e.IC-1]
			o.IS[i] = ic.IS
			o.Y[i] = ic.Surf
			o.Y[i+ne] = ic.Unsat
			o.Y[i+2*ne] = ic.Sat
			if o.Y[i+ne]+o.Y[i+2*ne] >= o.B(i) {
				o.Y[i+ne] = (o.B(i) - o.Y[i+2*ne]) * 0.9
				if o.Y[i+ne] < 0 {
					o.Y[i+ne] = 0
				}
			}
		}
		for i := 0; i < o.NumRiv; i++ {
			r := &o.Riv[i]
			if r.IC < 1 || r.IC > len(o.Sim.RivIC) {
				chk.Panic("river segment %d: IC row %d out of range", i+1, r.IC)
			}
			o.Y[i+3*ne] = o.Sim.RivIC[r.IC-1]
		}
	default:
		unsat, sat := inp.ReadInit(o.Sim.InitPath(), ne)
		for i := 0; i < ne; i++ {
			u, s := unsat[i], sat[i]
			if u <= 0 {
				u = 0.01
			}
			if s <= 0 {
				s = 0.01
			}
			if s >= o.B(i) {
				s = o.B(i) - 0.01
			}
			o.IS[i] = 0
			o.Y[i] = 0
			o.Y[i+ne] = u
			o.Y[i+2*ne] = s
		}
		for i := 0; i < o.NumRiv; i++ {
			o.Y[i+3*ne] = 0
		}
	}
}

// sample returns the value of series idx at time t, or 0 when no series is
// attached (idx < 1)
func sample(ts []inp.TimeSeries, idx int, t float64) float64 {
	if idx < 1 || idx > len(ts) {
		return 0
	}
	return ts[idx-1].Interp(t)
}

// AdvanceCursors moves every time-series cursor forward to time t. This is
// the only place cursors move; the right-hand side only reads them.
func (o *Domain) AdvanceCursors(t float64) {
	adv := func(ts []inp.TimeSeries) {
		for i := range ts {
			ts[i].AdvanceCursor(t)
		}
	}
	f := &o.Sim.Forc
	adv(f.Prep)
	adv(f.Temp)
	adv(f.Humidity)
	adv(f.WindVel)
	adv(f.Rn)
	adv(f.G)
	adv(f.Pressure)
	adv(f.LAI)
	adv(f.Source)
	adv(o.Sim.Inc)
	adv(o.Sim.EleBC)
	adv(o.Sim.RivBC)
}
