// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// surfFluxFn computes the signed overland momentum flux across one edge
// from the average depth, total-head gradient, friction threshold, Manning
// roughness and cross-section area. Flux is zero while friction dominates.
type surfFluxFn func(avgY, grad, sf, rough, cross float64) float64

// rivFluxFn computes the signed channel momentum flux between two stages
// from the average stage, average width, total-head gradient, friction
// threshold and roughness
type rivFluxFn func(avgY, avgWid, grad, sf, rough float64) float64

// surfFluxFunc resolves the overland mode: 1 kinematic-wave Manning,
// 2 diffusion-wave Gottardi-Venutelli. The factor 60 converts the m/s
// constitutive relation to m/min.
func surfFluxFunc(mode int) (surfFluxFn, error) {
	switch mode {
	case 1:
		return func(avgY, grad, sf, rough, cross float64) float64 {
			if math.Abs(grad) <= sf {
				return 0
			}
			alfa := math.Sqrt(math.Abs(grad)-sf) / rough
			beta := math.Pow(avgY, 2.0/3.0)
			if grad < 0 {
				return -60 * alfa * beta * cross
			}
			return 60 * alfa * beta * cross
		}, nil
	case 2:
		return func(avgY, grad, sf, rough, cross float64) float64 {
			if math.Abs(grad) <= sf {
				return 0
			}
			alfa := math.Pow(avgY, 2.0/3.0) / rough
			beta := alfa / math.Sqrt(math.Abs(grad)-sf)
			return 60 * cross * beta * grad
		}, nil
	}
	return nil, chk.Err("surface overland mode %d is invalid", mode)
}

// rivFluxFunc resolves the river routing mode: 1 kinematic-wave Manning,
// 2 diffusion-wave Gottardi-Venutelli
func rivFluxFunc(mode int) (rivFluxFn, error) {
	switch mode {
	case 1:
		return func(avgY, avgWid, grad, sf, rough float64) float64 {
			if math.Abs(grad) <= sf {
				return 0
			}
			alfa := math.Sqrt(math.Abs(grad)-sf) / (rough * math.Pow(avgWid+2*avgY, 2.0/3.0))
			cross := avgY * avgWid
			if grad < 0 {
				return -60 * alfa * math.Pow(cross, 5.0/3.0)
			}
			return 60 * alfa * math.Pow(cross, 5.0/3.0)
		}, nil
	case 2:
		return func(avgY, avgWid, grad, sf, rough float64) float64 {
			if math.Abs(grad) <= sf {
				return 0
			}
			alfa := math.Pow(avgY, 2.0/3.0) / rough
			beta := alfa / math.Sqrt(math.Abs(grad)-sf)
			return 60 * avgY * avgWid * beta * grad
		}, nil
	}
	return nil, chk.Err("river routing mode %d is invalid", mode)
}

// weirFlux computes the bank overflow exchange between a river segment and
// one adjacent element. Positive means river to element. totalY is the
// river total stage, eleYH the element water surface, bank the controlling
// bank elevation. When neither surface is above the bank there is no
// exchange.
func weirFlux(cwr, length, totalY, eleYH, bank float64) float64 {
	if totalY <= bank && eleYH <= bank {
		return 0
	}
	c := cwr * 60 * 2.0 * math.Sqrt(2*9.81) * length / 3.0
	if totalY > eleYH {
		if eleYH > bank {
			return c * math.Sqrt(totalY-eleYH) * (totalY - bank)
		}
		return c * math.Sqrt(totalY-bank) * (totalY - bank)
	}
	if totalY > bank {
		return -c * math.Sqrt(eleYH-totalY) * (eleYH - bank)
	}
	return -c * math.Sqrt(eleYH-bank) * (eleYH - bank)
}
