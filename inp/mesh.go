// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Node is one vertex of the triangulation. Immutable after load.
type Node struct {
	X    float64 // x coordinate
	Y    float64 // y coordinate
	Zmin float64 // bedrock elevation
	Zmax float64 // surface elevation
}

// Element is one triangular cell as read from the mesh and attribute files.
// Node and neighbor references are one-based indices; a neighbor value ≤ 0
// marks a boundary edge governed by the element's BC code.
type Element struct {

	// mesh (.mesh)
	Node [3]int // vertices, counter-clockwise
	Nabr [3]int // neighbor across edge j (≤ 0: boundary)

	// attributes (.att)
	Soil int // soil class
	Lc   int // land-cover class
	IC   int // initial-condition row
	BC   int // boundary code: 0 natural, >0 Dirichlet series, <0 Neumann series

	// forcing-series selectors (.att)
	Prep     int
	Temp     int
	Humidity int
	WindVel  int
	Rn       int
	G        int
	Pressure int
	LAI      int
	Source   int
}

// readMesh reads the .mesh file: counts, element connectivity, node table
func (o *Simulation) readMesh(path string) {
	s := newScanner(path)
	o.NumEle = s.Int("number of elements")
	o.NumNode = s.Int("number of nodes")
	o.Ele = make([]Element, o.NumEle)
	o.Node = make([]Node, o.NumNode)
	for i := 0; i < o.NumEle; i++ {
		e := &o.Ele[i]
		s.Int("element index")
		for j := 0; j < 3; j++ {
			e.Node[j] = s.Int("element node")
		}
		for j := 0; j < 3; j++ {
			e.Nabr[j] = s.Int("element neighbor")
		}
	}
	for i := 0; i < o.NumNode; i++ {
		n := &o.Node[i]
		s.Int("node index")
		n.X = s.Float("node x")
		n.Y = s.Float("node y")
		n.Zmin = s.Float("node zmin")
		n.Zmax = s.Float("node zmax")
	}
}

// readAtt reads the .att file: one attribute row per element
func (o *Simulation) readAtt(path string) {
	s := newScanner(path)
	for i := 0; i < o.NumEle; i++ {
		e := &o.Ele[i]
		s.Int("attribute index")
		e.Soil = s.Int("soil class")
		e.Lc = s.Int("land-cover class")
		e.IC = s.Int("IC index")
		e.BC = s.Int("BC code")
		e.Prep = s.Int("prep series")
		e.Temp = s.Int("temp series")
		e.Humidity = s.Int("humidity series")
		e.WindVel = s.Int("wind series")
		e.Rn = s.Int("net-radiation series")
		e.G = s.Int("ground-heat series")
		e.Pressure = s.Int("pressure series")
		e.LAI = s.Int("LAI series")
		e.Source = s.Int("source series")
	}
}
