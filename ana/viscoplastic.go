// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// PowerLawFlowStress returns the uniaxial stress at steady viscoplastic flow with axial
// plastic stretching rate d
//  Dp = diag(d, -d/2, -d/2) thus |Dp| = √(3/2) |d| and |M'| = √(2/3) |σ|. From the
//  power law |Dp| = d0 (|M'|/Y)^(1/m):
//   σ = √(3/2) Y (√(3/2) |d| / d0)^m
func PowerLawFlowStress(Y, d, d0, m float64) float64 {
	c := math.Sqrt(1.5)
	σ := c * Y * math.Pow(c*math.Abs(d)/d0, m)
	if d < 0 {
		return -σ
	}
	return σ
}

// PowerLawStrainRate returns the equivalent plastic strain rate √(2/3) |Dp| at uniaxial stress σ
func PowerLawStrainRate(Y, σ, d0, m float64) float64 {
	return math.Sqrt(2.0/3.0) * d0 * math.Pow(math.Sqrt(2.0/3.0)*math.Abs(σ)/Y, 1.0/m)
}
