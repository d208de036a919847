// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ften implements fixed-size second and fourth order tensors for finite strain mechanics
//  Notes:
//   1) all tensors are values; operations return new tensors and never modify their receivers
//   2) components are Cartesian; no Mandel/Voigt scaling is applied
package ften

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ten2 holds the components of a second order tensor
type Ten2 [3][3]float64

// I2 returns the second order identity tensor
func I2() (a Ten2) {
	a[0][0], a[1][1], a[2][2] = 1, 1, 1
	return
}

// NewTen2 returns a tensor from a [3][3] slice
func NewTen2(a [][]float64) (b Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[i][j]
		}
	}
	return
}

// Diag returns a diagonal tensor
func Diag(a0, a1, a2 float64) (a Ten2) {
	a[0][0], a[1][1], a[2][2] = a0, a1, a2
	return
}

// Deep2 returns the components as a slice of slices
func (a Ten2) Deep2() [][]float64 {
	return [][]float64{
		{a[0][0], a[0][1], a[0][2]},
		{a[1][0], a[1][1], a[1][2]},
		{a[2][0], a[2][1], a[2][2]},
	}
}

// T returns the transpose
func (a Ten2) T() (b Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[j][i]
		}
	}
	return
}

// Tr returns the trace
func (a Ten2) Tr() float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Det returns the determinant
func (a Ten2) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inv returns the inverse. An error is returned if the tensor is singular
func (a Ten2) Inv() (ai Ten2, err error) {
	det := a.Det()
	if math.Abs(det) < MINDET {
		err = chk.Err("cannot invert tensor with determinant = %g", det)
		return
	}
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}

// Dev returns the deviatoric part
func (a Ten2) Dev() (b Ten2) {
	b = a
	p := a.Tr() / 3.0
	b[0][0] -= p
	b[1][1] -= p
	b[2][2] -= p
	return
}

// Sym returns the symmetric part
func (a Ten2) Sym() (b Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = (a[i][j] + a[j][i]) / 2.0
		}
	}
	return
}

// Norm returns the Frobenius norm
func (a Ten2) Norm() float64 {
	return math.Sqrt(a.Ddot(a))
}

// Ddot returns the double contraction a:b = aij bij
func (a Ten2) Ddot(b Ten2) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// Mul returns the single contraction a·b
func (a Ten2) Mul(b Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return
}

// Add returns a + b
func (a Ten2) Add(b Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Sub returns a - b
func (a Ten2) Sub(b Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] - b[i][j]
		}
	}
	return
}

// Scale returns s * a
func (a Ten2) Scale(s float64) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = s * a[i][j]
		}
	}
	return
}

// MaxDiff returns the maximum absolute difference between components of a and b
func (a Ten2) MaxDiff(b Ten2) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res = math.Max(res, math.Abs(a[i][j]-b[i][j]))
		}
	}
	return
}

// IsIdentity tells whether a equals the identity within tol
func (a Ten2) IsIdentity(tol float64) bool {
	return a.MaxDiff(I2()) <= tol
}

// RotationZ returns the rotation about the z-axis by angle θ (radians)
func RotationZ(θ float64) (q Ten2) {
	c, s := math.Cos(θ), math.Sin(θ)
	q[0][0], q[0][1] = c, -s
	q[1][0], q[1][1] = s, c
	q[2][2] = 1
	return
}

// Rotation returns the rotation by angle θ about the given axis (Rodrigues' formula)
func Rotation(θ float64, axis [3]float64) (q Ten2) {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n < MINDET {
		return I2()
	}
	k := [3]float64{axis[0] / n, axis[1] / n, axis[2] / n}
	var w Ten2 // skew tensor of k
	w[0][1], w[0][2] = -k[2], k[1]
	w[1][0], w[1][2] = k[2], -k[0]
	w[2][0], w[2][1] = -k[1], k[0]
	return I2().Add(w.Scale(math.Sin(θ))).Add(w.Mul(w).Scale(1.0 - math.Cos(θ)))
}
