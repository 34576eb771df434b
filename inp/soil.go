// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/fun/dbf"

// Soil holds the hydraulic attributes of one soil class
type Soil struct {
	Ksat      float64 // saturated conductivity
	ThetaS    float64 // saturated moisture content
	ThetaR    float64 // residual moisture content
	Alpha     float64 // unsaturated curve parameter 1
	Beta      float64 // unsaturated curve parameter 2
	Macropore int     // 1: macropore soil, 0: regular
	Base      float64 // macropore base head
	Gamma     float64 // macropore amplifier exponent
	Sf        float64 // friction slope threshold
	Rough     float64 // Manning roughness
	Inf       int     // infiltration-capacity series index
}

// Porosity returns the effective porosity θs − θr
func (o *Soil) Porosity() float64 {
	return o.ThetaS - o.ThetaR
}

// RetenPrms returns the parameters for the moisture-capacity model
func (o *Soil) RetenPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "alp", V: o.Alpha},
		&dbf.P{N: "bet", V: o.Beta},
		&dbf.P{N: "por", V: o.Porosity()},
	}
}

// ConductPrms returns the parameters for the conductivity-amplifier model
func (o *Soil) ConductPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "base", V: o.Base},
		&dbf.P{N: "gam", V: o.Gamma},
	}
}

// LandCover holds the vegetation attributes of one land-cover class.
// A missing land-cover table leaves every class neutral so the water
// balance reduces to the bare formulas.
type LandCover struct {
	LAImax  float64 // maximum leaf-area index
	Rmin    float64 // minimum stomatal resistance
	Albedo  float64 // albedo
	VegFrac float64 // vegetation fraction
}

// readSoil reads the .soil file: soil table, infiltration-capacity series
// and the optional trailing land-cover table
func (o *Simulation) readSoil(path string) {
	s := newScanner(path)
	o.NumSoil = s.Int("number of soils")
	o.Soil = make([]Soil, o.NumSoil)
	for i := 0; i < o.NumSoil; i++ {
		m := &o.Soil[i]
		s.Int("soil index")
		m.Ksat = s.Float("soil Ksat")
		m.ThetaS = s.Float("soil thetaS")
		m.ThetaR = s.Float("soil thetaR")
		m.Alpha = s.Float("soil alpha")
		m.Beta = s.Float("soil beta")
		m.Macropore = s.Int("soil macropore flag")
		m.Base = s.Float("soil base")
		m.Gamma = s.Float("soil gamma")
		m.Sf = s.Float("soil Sf")
		m.Rough = s.Float("soil roughness")
		m.Inf = s.Int("soil infiltration index")
	}

	o.NumInc = s.Int("number of infiltration series")
	o.Inc = make([]TimeSeries, o.NumInc)
	for i := 0; i < o.NumInc; i++ {
		o.Inc[i] = readTS(s, "infiltration")
	}

	// optional land-cover table
	if s.More() {
		o.NumLC = s.Int("number of land covers")
		o.LC = make([]LandCover, o.NumLC)
		for i := 0; i < o.NumLC; i++ {
			c := &o.LC[i]
			s.Int("land-cover index")
			c.LAImax = s.Float("land-cover LAImax")
			c.Rmin = s.Float("land-cover Rmin")
			c.Albedo = s.Float("land-cover albedo")
			c.VegFrac = s.Float("land-cover vegfrac")
		}
	}
}
