// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// Riv is one directed river segment. Segments must be listed from upstream
// to downstream; Down ≤ 0 marks an outlet whose code selects the boundary
// treatment (-1 Dirichlet, -2 Neumann, -3 zero-depth-gradient, -4 critical
// depth). Left/Right are the adjacent element indices (0 if absent).
type Riv struct {
	From     int // upstream node
	To       int // downstream node
	Down     int // downstream segment, or outlet code when ≤ 0
	Left     int // left-bank element
	Right    int // right-bank element
	Shape    int // shape row
	Material int // material row
	IC       int // initial-condition row
	BC       int // boundary-condition series
	Res      int // reservoir flag (unsupported)
}

// RivShape holds one rectangular channel shape
type RivShape struct {
	Width float64 // channel width
	Depth float64 // maximum depth
	Bed   float64 // bed elevation offset
}

// RivMat holds one channel material
type RivMat struct {
	Rough float64 // Manning roughness
	Cwr   float64 // weir discharge coefficient
	Sf    float64 // friction slope threshold
}

// readRiv reads the .riv file: segment table, then the shape, material,
// initial-condition and boundary-series tables, then the reservoir count
func (o *Simulation) readRiv(path string) {
	s := newScanner(path)
	o.NumRiv = s.Int("number of river segments")
	o.Riv = make([]Riv, o.NumRiv)
	for i := 0; i < o.NumRiv; i++ {
		r := &o.Riv[i]
		s.Int("river index")
		r.From = s.Int("river from-node")
		r.To = s.Int("river to-node")
		r.Down = s.Int("river downstream")
		r.Left = s.Int("river left element")
		r.Right = s.Int("river right element")
		r.Shape = s.Int("river shape")
		r.Material = s.Int("river material")
		r.IC = s.Int("river IC")
		r.BC = s.Int("river BC")
		r.Res = s.Int("river reservoir")
	}

	s.Str("shape label")
	n := s.Int("number of river shapes")
	o.RivShape = make([]RivShape, n)
	for i := 0; i < n; i++ {
		s.Int("shape index")
		o.RivShape[i].Width = s.Float("shape width")
		o.RivShape[i].Depth = s.Float("shape depth")
		o.RivShape[i].Bed = s.Float("shape bed")
	}

	s.Str("material label")
	n = s.Int("number of river materials")
	o.RivMat = make([]RivMat, n)
	for i := 0; i < n; i++ {
		s.Int("material index")
		o.RivMat[i].Rough = s.Float("material roughness")
		o.RivMat[i].Cwr = s.Float("material Cwr")
		o.RivMat[i].Sf = s.Float("material Sf")
	}

	s.Str("IC label")
	n = s.Int("number of river ICs")
	o.RivIC = make([]float64, n)
	for i := 0; i < n; i++ {
		s.Int("river IC index")
		o.RivIC[i] = s.Float("river IC value")
	}

	s.Str("BC label")
	n = s.Int("number of river BC series")
	o.RivBC = make([]TimeSeries, n)
	for i := 0; i < n; i++ {
		o.RivBC[i] = readTS(s, "river BC")
	}

	s.Str("reservoir label")
	if nres := s.Int("number of reservoirs"); nres > 0 {
		chk.Panic("file %q: %d reservoirs requested but reservoir dynamics are not available", path, nres)
	}
}
