// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the reading of the seven simulation input files
// sharing one filename stem: .mesh, .att, .soil, .riv, .forc, .ibc, .para
package inp

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Control holds the solver and run control data read from the .para file
type Control struct {

	// verbosity
	Verbose bool // progress messages
	Debug   bool // dump model data after initialisation

	// initialisation
	IntType int // 0: relax, 1: IC table, 2: restart from .init

	// output selection
	ResOut  bool // write .res
	FluxOut bool // write .flux
	QOut    bool // write .q
	EtisOut bool // write .etis

	// physics modes
	UnsatMode int // 1: shallow groundwater, 2: explicit unsaturated layer
	SurfMode  int // 1: kinematic wave, 2: diffusion wave
	RivMode   int // 1: kinematic wave, 2: diffusion wave

	// solver selection
	Solver int     // 1: dense Newton, 2: Krylov (both run the same implicit solver)
	GSType int     // Gram-Schmidt type (Solver 2)
	MaxK   int     // maximum Krylov dimension (Solver 2)
	Delt   float64 // Krylov convergence factor (Solver 2)

	// tolerances and steps
	Abstol   float64 // absolute tolerance
	Reltol   float64 // relative tolerance
	InitStep float64 // initial step hint [min]
	MaxStep  float64 // maximum step [min]
	ETStep   float64 // operator-split substep [min]

	// time window and output grid parameters
	StartTime float64 // start [min]
	EndTime   float64 // end [min]
	OutType   int     // 0: geometric grid from a,b; >0: fixed interval [min]
	A         float64 // output grid growth factor
	B         float64 // output grid base interval [min]

	// derived
	Circumcenter bool      // use circumcenter instead of centroid for element (x,y)
	NumSteps     int       // number of output steps
	Tout         []float64 // output time grid [min]
}

// Simulation aggregates all input data of one model run
type Simulation struct {

	// identification
	DirIn string // input directory
	FnKey string // filename stem

	// mesh and attributes
	NumEle  int // number of elements
	NumNode int // number of nodes
	Ele     []Element
	Node    []Node

	// soils, infiltration capacity and land cover
	NumSoil int
	Soil    []Soil
	NumInc  int
	Inc     []TimeSeries
	NumLC   int
	LC      []LandCover

	// river network
	NumRiv   int
	Riv      []Riv
	RivShape []RivShape
	RivMat   []RivMat
	RivIC    []float64
	RivBC    []TimeSeries

	// forcings
	Forc Forcing

	// element boundary and initial conditions
	Num1BC   int
	Num2BC   int
	EleBC    []TimeSeries
	NumEleIC int
	EleIC    []ElemIC

	// control
	Ctl Control
}

// ReadSim reads all input files with stem fnkey in directory dir.
// Malformed or missing files are fatal.
func ReadSim(dir, fnkey string, verbose bool) (o *Simulation) {
	o = &Simulation{DirIn: dir, FnKey: fnkey}
	read := func(ext string, fcn func(string)) {
		path := filepath.Join(dir, fnkey+ext)
		if verbose {
			io.Pf("> reading %s\n", path)
		}
		fcn(path)
	}
	read(".mesh", o.readMesh)
	read(".att", o.readAtt)
	read(".soil", o.readSoil)
	read(".riv", o.readRiv)
	read(".forc", o.readForc)
	read(".ibc", o.readIbc)
	read(".para", o.readPara)
	o.check()
	return
}

// InitPath returns the path of the restart snapshot file
func (o *Simulation) InitPath() string {
	return filepath.Join(o.DirIn, o.FnKey+".init")
}

// readPara reads the .para file and derives the output time grid
func (o *Simulation) readPara(path string) {
	s := newScanner(path)
	c := &o.Ctl
	c.Verbose = s.Int("verbose flag") != 0
	c.Debug = s.Int("debug flag") != 0
	c.IntType = s.Int("initialisation type")
	c.ResOut = s.Int("res output flag") != 0
	c.FluxOut = s.Int("flux output flag") != 0
	c.QOut = s.Int("q output flag") != 0
	c.EtisOut = s.Int("etis output flag") != 0
	c.UnsatMode = s.Int("unsaturated mode")
	c.SurfMode = s.Int("surface mode")
	c.RivMode = s.Int("river mode")
	c.Solver = s.Int("solver type")
	if c.Solver == 2 {
		c.GSType = s.Int("Gram-Schmidt type")
		c.MaxK = s.Int("max Krylov dimension")
		c.Delt = s.Float("Krylov delt")
	}
	c.Abstol = s.Float("absolute tolerance")
	c.Reltol = s.Float("relative tolerance")
	c.InitStep = s.Float("initial step")
	c.MaxStep = s.Float("maximum step")
	c.ETStep = s.Float("ET step")
	c.StartTime = s.Float("start time")
	c.EndTime = s.Float("end time")
	c.OutType = s.Int("output grid type")
	if c.OutType == 0 {
		c.A = s.Float("output grid factor a")
		c.B = s.Float("output grid base b")
	} else {
		c.A = 1
		c.B = float64(c.OutType)
	}
	c.DeriveGrid()
}

// DeriveGrid computes the output time grid T[k] = T[k-1] + b·a^(k-1),
// with the last entry clamped to EndTime
func (o *Control) DeriveGrid() {
	span := o.EndTime - o.StartTime
	var numTout int
	if o.A != 1.0 {
		numTout = int(math.Log(1-span*(1-o.A)/o.B) / math.Log(o.A))
	} else {
		q := span / o.B
		if q == math.Trunc(q) {
			numTout = int(q) - 1
		} else {
			numTout = int(q)
		}
	}
	o.NumSteps = numTout + 1
	o.Tout = make([]float64, o.NumSteps+1)
	o.Tout[0] = o.StartTime
	for k := 1; k <= o.NumSteps; k++ {
		o.Tout[k] = o.Tout[k-1] + o.B*math.Pow(o.A, float64(k-1))
	}
	o.Tout[o.NumSteps] = o.EndTime
}

// check validates cross-file indices after all files were read
func (o *Simulation) check() {
	for i := range o.Ele {
		e := &o.Ele[i]
		for j := 0; j < 3; j++ {
			if e.Node[j] < 1 || e.Node[j] > o.NumNode {
				chk.Panic("file %s.mesh: element %d: node index %d out of range", o.FnKey, i+1, e.Node[j])
			}
			if e.Nabr[j] > o.NumEle {
				chk.Panic("file %s.mesh: element %d: neighbor index %d out of range", o.FnKey, i+1, e.Nabr[j])
			}
		}
		if e.Soil < 1 || e.Soil > o.NumSoil {
			chk.Panic("file %s.att: element %d: soil class %d out of range", o.FnKey, i+1, e.Soil)
		}
		if e.BC > o.Num1BC || -e.BC > o.Num2BC {
			chk.Panic("file %s.att: element %d: BC code %d has no series", o.FnKey, i+1, e.BC)
		}
		if o.NumLC > 0 && (e.Lc < 1 || e.Lc > o.NumLC) {
			chk.Panic("file %s.att: element %d: land-cover class %d out of range", o.FnKey, i+1, e.Lc)
		}
		if e.Prep > len(o.Forc.Prep) || e.Temp > len(o.Forc.Temp) ||
			e.Humidity > len(o.Forc.Humidity) || e.WindVel > len(o.Forc.WindVel) ||
			e.Rn > len(o.Forc.Rn) || e.G > len(o.Forc.G) ||
			e.Pressure > len(o.Forc.Pressure) || e.LAI > len(o.Forc.LAI) ||
			e.Source > len(o.Forc.Source) {
			chk.Panic("file %s.att: element %d: forcing series index out of range", o.FnKey, i+1)
		}
	}
	for i := range o.Soil {
		if o.Soil[i].Inf > o.NumInc {
			chk.Panic("file %s.soil: soil %d: infiltration series %d out of range", o.FnKey, i+1, o.Soil[i].Inf)
		}
	}
	for i := range o.Riv {
		r := &o.Riv[i]
		if r.Shape < 1 || r.Shape > len(o.RivShape) {
			chk.Panic("file %s.riv: segment %d: shape index %d out of range", o.FnKey, i+1, r.Shape)
		}
		if r.Material < 1 || r.Material > len(o.RivMat) {
			chk.Panic("file %s.riv: segment %d: material index %d out of range", o.FnKey, i+1, r.Material)
		}
		if r.From < 1 || r.From > o.NumNode || r.To < 1 || r.To > o.NumNode {
			chk.Panic("file %s.riv: segment %d: node index out of range", o.FnKey, i+1)
		}
		if r.Down > o.NumRiv {
			chk.Panic("file %s.riv: segment %d: downstream index %d out of range", o.FnKey, i+1, r.Down)
		}
		if r.Left > o.NumEle || r.Right > o.NumEle {
			chk.Panic("file %s.riv: segment %d: bank element index out of range", o.FnKey, i+1)
		}
	}
}
