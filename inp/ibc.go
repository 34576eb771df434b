// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// ElemIC is one element initial-condition row
type ElemIC struct {
	IS    float64 // interception storage
	Surf  float64 // surface depth
	Unsat float64 // unsaturated equivalent depth
	Sat   float64 // saturated depth
}

// readIbc reads the .ibc file: Dirichlet and Neumann boundary series for
// elements, then the element initial-condition table. Dirichlet series come
// first in EleBC; Neumann series follow at offset Num1BC.
func (o *Simulation) readIbc(path string) {
	s := newScanner(path)
	o.Num1BC = s.Int("number of Dirichlet BC series")
	o.Num2BC = s.Int("number of Neumann BC series")
	o.EleBC = make([]TimeSeries, o.Num1BC+o.Num2BC)
	for i := range o.EleBC {
		o.EleBC[i] = readTS(s, "element BC")
	}

	o.NumEleIC = s.Int("number of element ICs")
	o.EleIC = make([]ElemIC, o.NumEleIC)
	for i := 0; i < o.NumEleIC; i++ {
		c := &o.EleIC[i]
		s.Int("element IC index")
		c.IS = s.Float("element IC interception")
		c.Surf = s.Float("element IC surf")
		c.Unsat = s.Float("element IC unsat")
		c.Sat = s.Float("element IC sat")
	}
}

// ReadInit reads a .init restart snapshot: all unsaturated depths then all
// saturated depths, one value per line
func ReadInit(path string, numEle int) (unsat, sat []float64) {
	s := newScanner(path)
	unsat = make([]float64, numEle)
	sat = make([]float64, numEle)
	for i := 0; i < numEle; i++ {
		unsat[i] = s.Float("restart unsat")
	}
	for i := 0; i < numEle; i++ {
		sat[i] = s.Float("restart sat")
	}
	return
}
