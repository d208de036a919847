// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ften

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// ToVec packs a into v[off:off+9] using the non-symmetric vector ordering of tsr:
//  00, 11, 22, 01, 12, 02, 10, 21, 20
func ToVec(v la.Vector, off int, a Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[off+tsr.SecToVecI[i][j]] = a[i][j]
		}
	}
}

// FromVec unpacks v[off:off+9]; see ToVec
func FromVec(v la.Vector, off int) (a Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = v[off+tsr.SecToVecI[i][j]]
		}
	}
	return
}

// ToMat packs t into the 9×9 block of m starting at (0,0) such that
//  m[I][J] = Tijkl with I = vec(i,j) and J = vec(k,l)
func ToMat(m *la.Matrix, t Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			I := tsr.SecToVecI[i][j]
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					m.Set(I, tsr.SecToVecI[k][l], t[i][j][k][l])
				}
			}
		}
	}
}

// FromMat unpacks the 9×9 block of m starting at (0,0); see ToMat
func FromMat(m *la.Matrix) (t Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			I := tsr.SecToVecI[i][j]
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = m.Get(I, tsr.SecToVecI[k][l])
				}
			}
		}
	}
	return
}

// VecIndex returns the position of component (i,j) in the packed vector; see ToVec
func VecIndex(i, j int) int {
	return tsr.SecToVecI[i][j]
}
