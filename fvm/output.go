// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Output owns the result streams of one run: state (.res), fluxes (.flux),
// interception and ET components (.etis), outlet discharge (.q), and the
// restart snapshot (.init). Files are opened once, appended every output
// step and closed after the final step.
type Output struct {
	dom  *Domain
	res  *os.File
	flux *os.File
	etis *os.File
	q    *os.File
}

// NewOutput opens the result streams selected by the control flags and
// writes their headers
func NewOutput(d *Domain) (o *Output) {
	o = &Output{dom: d}
	open := func(ext string) *os.File {
		path := filepath.Join(d.Sim.DirIn, d.Sim.FnKey+ext)
		f, err := os.Create(path)
		if err != nil {
			chk.Panic("cannot create output file %q", path)
		}
		return f
	}
	c := d.Ctl
	if c.ResOut {
		o.res = open(".res")
		o.res.WriteString(io.Sf("State variables: NumEle = %d  NumRiv = %d  N = %d\n",
			d.NumEle, d.NumRiv, d.N))
	}
	if c.FluxOut {
		o.flux = open(".flux")
		o.flux.WriteString(io.Sf("Fluxes: NumEle = %d  NumRiv = %d\n", d.NumEle, d.NumRiv))
	}
	if c.EtisOut {
		o.etis = open(".etis")
		o.etis.WriteString(io.Sf("Interception and ET components: NumEle = %d\n", d.NumEle))
	}
	if c.QOut {
		o.q = open(".q")
		o.q.WriteString("Outlet discharge\n")
	}
	return
}

// Step appends the post-ET state, fluxes and ET components at output time t
func (o *Output) Step(t float64) {
	d := o.dom
	ne := d.NumEle
	if o.res != nil {
		o.res.WriteString(io.Sf("Current time = %10.4f\n", t))
		for i := 0; i < ne; i++ {
			o.res.WriteString(io.Sf("%6d%14.6f%14.6f%14.6f\n", i+1,
				d.Y[i], d.Y[i+ne], d.Y[i+2*ne]))
		}
		for i := 0; i < d.NumRiv; i++ {
			o.res.WriteString(io.Sf("%6d%14.6f\n", i+1, d.Y[i+3*ne]))
		}
	}
	if o.flux != nil {
		o.flux.WriteString(io.Sf("Current time = %10.4f\n", t))
		for i := 0; i < ne; i++ {
			o.flux.WriteString(io.Sf("%6d%14.6f%14.6f%14.6f%14.6f%14.6f%14.6f\n", i+1,
				d.FluxSurf[i][0], d.FluxSurf[i][1], d.FluxSurf[i][2],
				d.FluxSub[i][0], d.FluxSub[i][1], d.FluxSub[i][2]))
		}
		for i := 0; i < d.NumRiv; i++ {
			o.flux.WriteString(io.Sf("%6d%14.6f%14.6f%14.6f%14.6f%14.6f%14.6f\n", i+1,
				d.FluxRiv[i][0], d.FluxRiv[i][1], d.FluxRiv[i][2],
				d.FluxRiv[i][3], d.FluxRiv[i][4], d.FluxRiv[i][5]))
		}
	}
	if o.etis != nil {
		o.etis.WriteString(io.Sf("Current time = %10.4f\n", t))
		for i := 0; i < ne; i++ {
			o.etis.WriteString(io.Sf("%6d%14.6f%14.6f%14.6f%14.6f%14.6f\n", i+1,
				d.IS[i], d.EleET[i][0], d.EleET[i][1], d.EleET[i][2], d.EleET[i][3]))
		}
	}
}

// StepQ appends the outlet discharge after one inner substep
func (o *Output) StepQ(t float64) {
	if o.q != nil {
		o.q.WriteString(io.Sf("%12.4f%16.6f\n", t, o.dom.Q))
	}
}

// WriteRestart writes the .init snapshot: all unsaturated depths then all
// saturated depths, one value per line
func (o *Output) WriteRestart() {
	d := o.dom
	ne := d.NumEle
	f, err := os.Create(d.Sim.InitPath())
	if err != nil {
		chk.Panic("cannot create restart file %q", d.Sim.InitPath())
	}
	defer f.Close()
	for i := 0; i < ne; i++ {
		f.WriteString(io.Sf("%.8f\n", d.Y[i+ne]))
	}
	for i := 0; i < ne; i++ {
		f.WriteString(io.Sf("%.8f\n", d.Y[i+2*ne]))
	}
}

// Close closes every open stream
func (o *Output) Close() {
	for _, f := range []*os.File{o.res, o.flux, o.etis, o.q} {
		if f != nil {
			f.Close()
		}
	}
}

// PrintData dumps the derived model tables; enabled by the debug flag
func (o *Domain) PrintData() {
	io.Pf("\nElements\n")
	io.Pf("%6s%12s%12s%12s%12s%12s\n", "index", "x", "y", "zmin", "zmax", "area")
	for i := range o.Ele {
		e := &o.Ele[i]
		io.Pf("%6d%12.4f%12.4f%12.4f%12.4f%12.4f\n", i+1, e.X, e.Y, e.Zmin, e.Zmax, e.Area)
	}
	io.Pf("\nSoils\n")
	io.Pf("%6s%12s%10s%10s%10s%10s%10s\n", "index", "Ksat", "por", "alpha", "beta", "Sf", "rough")
	for i := range o.Sim.Soil {
		s := &o.Sim.Soil[i]
		io.Pf("%6d%12.6f%10.4f%10.4f%10.4f%10.4f%10.4f\n", i+1,
			s.Ksat, s.Porosity(), s.Alpha, s.Beta, s.Sf, s.Rough)
	}
	if o.Sim.NumLC > 0 {
		io.Pf("\nLand covers\n")
		io.Pf("%6s%10s%10s%10s%10s\n", "index", "LAImax", "Rmin", "albedo", "vegfrac")
		for i := range o.Sim.LC {
			c := &o.Sim.LC[i]
			io.Pf("%6d%10.4f%10.4f%10.4f%10.4f\n", i+1, c.LAImax, c.Rmin, c.Albedo, c.VegFrac)
		}
	}
	io.Pf("\nRiver segments\n")
	io.Pf("%6s%12s%12s%12s%12s%6s%6s%6s\n", "index", "x", "y", "zmin", "length", "down", "left", "right")
	for i := range o.Riv {
		r := &o.Riv[i]
		io.Pf("%6d%12.4f%12.4f%12.4f%12.4f%6d%6d%6d\n", i+1,
			r.X, r.Y, r.Zmin, r.Length, r.Down, r.Left, r.Right)
	}
}
