// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ften

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// SymEigen computes the eigenvalues and eigenvectors of the symmetric part of a
//  Output:
//   λ -- eigenvalues in ascending order
//   q -- eigenvectors as columns; i.e. a = Σ λ[k] q[:,k] ⊗ q[:,k]
func SymEigen(a Ten2) (λ [3]float64, q Ten2, err error) {
	s := a.Sym()
	sym := mat.NewSymDense(3, []float64{
		s[0][0], s[0][1], s[0][2],
		s[1][0], s[1][1], s[1][2],
		s[2][0], s[2][1], s[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		err = chk.Err("eigen decomposition of symmetric tensor failed:\n%v", s)
		return
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for k := 0; k < 3; k++ {
		λ[k] = vals[k]
		for i := 0; i < 3; i++ {
			q[i][k] = vecs.At(i, k)
		}
	}
	return
}

// SpectralCompose computes b = Σ f(λ[k]) q[:,k] ⊗ q[:,k]
func SpectralCompose(f func(x float64) float64, λ [3]float64, q Ten2) (b Ten2) {
	for k := 0; k < 3; k++ {
		fk := f(λ[k])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				b[i][j] += fk * q[i][k] * q[j][k]
			}
		}
	}
	return
}

// SymLog computes the logarithm of a symmetric positive-definite tensor
func SymLog(a Ten2) (b Ten2, err error) {
	λ, q, err := SymEigen(a)
	if err != nil {
		return
	}
	if λ[0] <= 0 {
		err = chk.Err("cannot compute logarithm of tensor with non-positive eigenvalue λ = %g", λ[0])
		return
	}
	return SpectralCompose(math.Log, λ, q), nil
}

// SymExp computes the exponential of a symmetric tensor
func SymExp(a Ten2) (b Ten2, err error) {
	λ, q, err := SymEigen(a)
	if err != nil {
		return
	}
	return SpectralCompose(math.Exp, λ, q), nil
}

// SymLogDeriv computes L = ∂ln(a)/∂a for a symmetric positive-definite tensor a
//  Notes:
//   1) L is minor-symmetric; i.e. it acts on symmetric increments da only
//   2) uses the Daleckii-Krein formula: dln(a) = Σ θab (na·da·nb) na⊗nb with
//      θab = (ln λa - ln λb)/(λa - λb) or 1/λa if λa ≈ λb
func SymLogDeriv(a Ten2) (L Ten4, err error) {
	λ, q, err := SymEigen(a)
	if err != nil {
		return
	}
	if λ[0] <= 0 {
		err = chk.Err("cannot compute derivative of logarithm with non-positive eigenvalue λ = %g", λ[0])
		return
	}
	var θ [3][3]float64
	for α := 0; α < 3; α++ {
		for β := 0; β < 3; β++ {
			Δ := λ[α] - λ[β]
			if math.Abs(Δ) <= EIGTOL*math.Max(λ[α], λ[β]) {
				θ[α][β] = 2.0 / (λ[α] + λ[β])
			} else {
				θ[α][β] = (math.Log(λ[α]) - math.Log(λ[β])) / Δ
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var s float64
					for α := 0; α < 3; α++ {
						for β := 0; β < 3; β++ {
							s += θ[α][β] * q[i][α] * q[j][β] * (q[k][α]*q[l][β] + q[l][α]*q[k][β])
						}
					}
					L[i][j][k][l] = s / 2.0
				}
			}
		}
	}
	return
}
