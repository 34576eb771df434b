// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package et implements the reference-evapotranspiration closure: the
// reduced FAO-56 Penman-Monteith equation driven by net radiation, ground
// heat, temperature, wind, humidity and pressure. The constant chain mixes
// MJ/m²/day and mm/day before the final conversion to m/min; it is kept
// literally for reproducibility.
package et

import "math"

// SatVaporPressure returns the saturation vapour pressure at temperature
// T [°C]
func SatVaporPressure(T float64) float64 {
	return 2.53e8 * math.Exp(-5.42e3/(T+273))
}

// SatSlope returns the slope of the saturation vapour pressure curve at
// temperature T [°C], given es = SatVaporPressure(T)
func SatSlope(T, es float64) float64 {
	return 4098 * es / ((237.3 + T) * (237.3 + T))
}

// Psychrometric returns the psychrometric constant for barometric
// pressure P
func Psychrometric(P float64) float64 {
	return 1e-3 * 1.013 * P / (0.622 * 2.50036)
}

// PotentialRate returns the potential evapotranspiration rate [m/min]
// for net radiation Rn, ground heat G, temperature T [°C], wind velocity
// vel, relative humidity H [-] and barometric pressure P
func PotentialRate(Rn, G, T, vel, H, P float64) float64 {
	es := SatVaporPressure(T)
	ea := es * H
	gamma := Psychrometric(P)
	delta := SatSlope(T, es)
	return (1e-3 / 1440) * (0.408*0.0864*delta*(Rn-G) + gamma*900*vel*(es-ea)/(T+273)) /
		(delta + gamma*(1+0.34*vel))
}
