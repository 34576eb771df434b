// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// scanner walks the whitespace-separated tokens of one input file.
// All input files are fixed-order number tables; any missing or malformed
// token is fatal and the diagnostic names the file and the field.
type scanner struct {
	path string   // file being read
	toks []string // all tokens
	pos  int      // next token
}

// newScanner reads the whole file at path and splits it into tokens
func newScanner(path string) (o *scanner) {
	b := io.ReadFile(path)
	return &scanner{path: path, toks: strings.Fields(string(b))}
}

// More tells whether there are tokens left
func (o *scanner) More() bool {
	return o.pos < len(o.toks)
}

// Str returns the next token
func (o *scanner) Str(field string) string {
	if o.pos >= len(o.toks) {
		chk.Panic("file %q: missing %s", o.path, field)
	}
	s := o.toks[o.pos]
	o.pos++
	return s
}

// Int returns the next token converted to int
func (o *scanner) Int(field string) int {
	s := o.Str(field)
	v, err := strconv.Atoi(s)
	if err != nil {
		chk.Panic("file %q: field %s: cannot parse integer from %q", o.path, field, s)
	}
	return v
}

// Float returns the next token converted to float64
func (o *scanner) Float(field string) float64 {
	s := o.Str(field)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		chk.Panic("file %q: field %s: cannot parse number from %q", o.path, field, s)
	}
	return v
}
