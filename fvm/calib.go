// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

// Calib holds the calibration multipliers. The soil and river shape and
// roughness multipliers are applied once while the domain is built; IS, Vic
// and RivKsat are applied wherever the interception capacity, infiltration
// capacity and bank groundwater exchange are computed. Retrieval of
// calibrated values is an external concern; the neutral defaults leave every
// physical parameter exactly as read from the input files.
type Calib struct {

	// soil
	Ksat     float64 // horizontal conductivity multiplier
	Porosity float64 // effective porosity multiplier
	Alpha    float64 // soil alpha multiplier
	Rough    float64 // element Manning roughness multiplier
	Sf       float64 // friction slope multiplier

	// canopy and infiltration
	IS  float64 // maximum interception storage multiplier
	Vic float64 // infiltration-capacity rate multiplier

	// river
	RivRough float64 // channel roughness multiplier
	RivWidth float64 // channel width multiplier
	RivDepth float64 // channel depth multiplier
	RivKsat  float64 // river-element interface conductivity multiplier
}

// DefaultCalib returns the neutral calibration set
func DefaultCalib() *Calib {
	return &Calib{
		Ksat:     1,
		Porosity: 1,
		Alpha:    1,
		Rough:    1,
		Sf:       1,
		IS:       1,
		Vic:      1,
		RivRough: 1,
		RivWidth: 1,
		RivDepth: 1,
		RivKsat:  1,
	}
}
