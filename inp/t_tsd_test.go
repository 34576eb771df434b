// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_tsd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsd01. interpolation and clamping")

	// times in days, lookups in minutes
	ts := TimeSeries{T: []float64{0, 1, 2}, V: []float64{0, 10, 20}}

	// every tabulated point comes back exactly
	chk.Float64(tst, "t=0", 1e-15, ts.Interp(0), 0)
	chk.Float64(tst, "t=1d", 1e-15, ts.Interp(1440), 10)
	chk.Float64(tst, "t=2d", 1e-15, ts.Interp(2880), 20)

	// linear blend in the interior
	chk.Float64(tst, "t=0.5d", 1e-12, ts.Interp(720), 5)
	chk.Float64(tst, "t=1.25d", 1e-12, ts.Interp(1800), 12.5)

	// held constant outside the range
	chk.Float64(tst, "before", 1e-15, ts.Interp(-500), 0)
	chk.Float64(tst, "after", 1e-15, ts.Interp(1e6), 20)

	// an empty series reads as zero
	empty := TimeSeries{}
	chk.Float64(tst, "empty", 1e-15, empty.Interp(100), 0)
}

func Test_tsd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsd02. cursor advances monotonically")

	ts := TimeSeries{T: []float64{0, 1, 2, 3, 4}, V: []float64{0, 1, 2, 3, 4}}
	chk.Int(tst, "start", ts.Cursor(), 0)

	ts.AdvanceCursor(1440 * 1.5)
	chk.Int(tst, "after 1.5d", ts.Cursor(), 1)

	// a backward time never moves the cursor back
	ts.AdvanceCursor(0)
	chk.Int(tst, "backward", ts.Cursor(), 1)

	ts.AdvanceCursor(1440 * 3.5)
	chk.Int(tst, "after 3.5d", ts.Cursor(), 3)

	// lookups are still exact with the cursor ahead or behind
	chk.Float64(tst, "ahead", 1e-12, ts.Interp(1440*3.25), 3.25)
	chk.Float64(tst, "behind", 1e-12, ts.Interp(1440*0.5), 0.5)

	// the cursor never runs past the last point
	ts.AdvanceCursor(1e9)
	chk.Int(tst, "end", ts.Cursor(), 4)

	// reading never moves the cursor
	ts.Interp(1440 * 2.5)
	chk.Int(tst, "read-only", ts.Cursor(), 4)
}
