// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// TimeSeries holds one tabular forcing record: (t, value) pairs with t in
// days, strictly increasing. Values are piecewise linear in the interior and
// held constant outside the tabulated range. A monotone cursor accelerates
// the repeated lookups of a forward-marching simulation; the cursor is only
// moved by AdvanceCursor, never by Interp, so the right-hand side may probe
// non-monotone times freely.
type TimeSeries struct {
	Name   string    // name of series
	T      []float64 // times [days]
	V      []float64 // values
	cursor int       // last interval start known to be ≤ current time
}

// Interp returns the series value at time t [min]. An empty series gives 0.
func (o *TimeSeries) Interp(t float64) float64 {
	n := len(o.T)
	if n == 0 {
		return 0
	}
	td := t / 1440.0 // minutes to days
	if td <= o.T[0] {
		return o.V[0]
	}
	if td >= o.T[n-1] {
		return o.V[n-1]
	}

	// consult the cursor first; fall back to a forward scan
	i := 1
	if c := o.cursor; c < n && td >= o.T[c] {
		i = c + 1
	}
	for i < n && td > o.T[i] {
		i++
	}
	return ((o.T[i]-td)*o.V[i-1] + (td-o.T[i-1])*o.V[i]) / (o.T[i] - o.T[i-1])
}

// AdvanceCursor moves the cursor forward (never backward) so that the
// interval starting at the cursor still covers time t [min]
func (o *TimeSeries) AdvanceCursor(t float64) {
	td := t / 1440.0
	for o.cursor+1 < len(o.T) && td > o.T[o.cursor+1] {
		o.cursor++
	}
}

// Cursor returns the current cursor position
func (o *TimeSeries) Cursor() int {
	return o.cursor
}

// readTS reads one time series: name, id, length and then length (t,v) rows
func readTS(s *scanner, what string) (ts TimeSeries) {
	ts.Name = s.Str(what + " name")
	s.Int(what + " index")
	n := s.Int(what + " length")
	ts.T = make([]float64, n)
	ts.V = make([]float64, n)
	for j := 0; j < n; j++ {
		ts.T[j] = s.Float(what + " time")
		ts.V[j] = s.Float(what + " value")
	}
	return
}
