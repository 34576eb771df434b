// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Forcing holds all atmospheric forcing series. LAI series carry their
// interception factor (SIFactor) read from the series header line.
type Forcing struct {
	Prep     []TimeSeries // precipitation
	Temp     []TimeSeries // temperature [°C]
	Humidity []TimeSeries // relative humidity [-]
	WindVel  []TimeSeries // wind velocity
	Rn       []TimeSeries // net radiation
	G        []TimeSeries // ground heat flux
	Pressure []TimeSeries // barometric pressure
	LAI      []TimeSeries // leaf-area index
	Source   []TimeSeries // source/well discharge
	SIFactor []float64    // interception capacity per unit LAI
}

// readForc reads the .forc file: nine counts then every series in order
func (o *Simulation) readForc(path string) {
	s := newScanner(path)
	nPrep := s.Int("number of prep series")
	nTemp := s.Int("number of temp series")
	nHum := s.Int("number of humidity series")
	nWind := s.Int("number of wind series")
	nRn := s.Int("number of Rn series")
	nG := s.Int("number of G series")
	nP := s.Int("number of pressure series")
	nLAI := s.Int("number of LAI series")
	nSrc := s.Int("number of source series")

	read := func(n int, what string) []TimeSeries {
		ts := make([]TimeSeries, n)
		for i := 0; i < n; i++ {
			ts[i] = readTS(s, what)
		}
		return ts
	}

	o.Forc.Prep = read(nPrep, "prep")
	o.Forc.Temp = read(nTemp, "temp")
	o.Forc.Humidity = read(nHum, "humidity")
	o.Forc.WindVel = read(nWind, "wind")
	o.Forc.Rn = read(nRn, "Rn")
	o.Forc.G = read(nG, "G")
	o.Forc.Pressure = read(nP, "pressure")

	// LAI headers carry the SIFactor after the length
	o.Forc.LAI = make([]TimeSeries, nLAI)
	o.Forc.SIFactor = make([]float64, nLAI)
	for i := 0; i < nLAI; i++ {
		ts := &o.Forc.LAI[i]
		ts.Name = s.Str("LAI name")
		s.Int("LAI index")
		n := s.Int("LAI length")
		o.Forc.SIFactor[i] = s.Float("LAI SIFactor")
		ts.T = make([]float64, n)
		ts.V = make([]float64, n)
		for j := 0; j < n; j++ {
			ts.T[j] = s.Float("LAI time")
			ts.V[j] = s.Float("LAI value")
		}
	}

	o.Forc.Source = read(nSrc, "source")
}
