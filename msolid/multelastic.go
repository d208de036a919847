// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/mrbuche/conspire.rs-sub002/ften"
	"gonum.org/v1/gonum/mat"
)

// symPairs maps the 6 unknowns of a symmetric tensor to its indices
var symPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {0, 2}}

// MultiplicativeElastic combines two elastic models in series with F = F1 · F2
//  F2 = U2 is symmetric positive-definite and is found from the balance at the interface
//   sym(P2(U2) - F1ᵀ P1(F1) U2⁻ᵀ) = 0
//  which makes ψ1(F1) + ψ2(U2) stationary with respect to U2. Then P = P1(F1) U2⁻ᵀ
type MultiplicativeElastic struct {
	First  Model         // model evaluated at F1
	Second Model         // model evaluated at F2
	Conf   *SolverConfig // Newton parameters for the split
}

// NewMultiplicativeElastic returns a new series combination of two elastic models
func NewMultiplicativeElastic(first, second Model) (o *MultiplicativeElastic, err error) {
	if first.InitState() != nil || second.InitState() != nil {
		return nil, chk.Err("multiplicative combination of elastic models requires stateless models: %w", ErrStateShape)
	}
	return &MultiplicativeElastic{First: first, Second: second, Conf: NewSolverConfig()}, nil
}

// Name returns the name of this model
func (o *MultiplicativeElastic) Name() string {
	return io.Sf("multelastic(%s,%s)", o.First.Name(), o.Second.Name())
}

// InitState returns nil since both models are elastic
func (o *MultiplicativeElastic) InitState() *State { return nil }

// Evolution returns nil since both models are elastic
func (o *MultiplicativeElastic) Evolution(F ften.Ten2, s *State) (*State, error) { return nil, nil }

// Split computes F1 and F2 such that F = F1 · F2
func (o *MultiplicativeElastic) Split(F ften.Ten2, s *State) (F1, F2 ften.Ten2, err error) {
	_, err = checkJacobian(o.Name(), F)
	if err != nil {
		return
	}

	// initial guess: U2 = (FᵀF)^(1/4)
	λ, q, err := ften.SymEigen(F.T().Mul(F))
	if err != nil {
		return F1, F2, o.wrap(err)
	}
	U2 := ften.SpectralCompose(func(x float64) float64 { return math.Pow(x, 0.25) }, λ, q)
	u := la.NewVector(6)
	for p, ij := range symPairs {
		u[p] = U2[ij[0]][ij[1]]
	}

	// solve
	conf := o.Conf
	if conf == nil {
		conf = NewSolverConfig()
	}
	if err = conf.check(); err != nil {
		return
	}
	var sol num.NlSolver
	ffcn := func(r, x la.Vector) {
		G, _, e := o.balance(F, x, false)
		if e != nil {
			panic(e)
		}
		for p, ij := range symPairs {
			r[p] = (G[ij[0]][ij[1]] + G[ij[1]][ij[0]]) / 2.0
		}
	}
	jfcn := func(dfdx *la.Matrix, x la.Vector) {
		_, dG, e := o.balance(F, x, true)
		if e != nil {
			panic(e)
		}
		for p, ij := range symPairs {
			for q, kl := range symPairs {
				dfdx.Set(p, q, symSlot(dG, ij, kl))
			}
		}
	}
	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(r)
			}
		}()
		sol.Init(6, ffcn, nil, jfcn, true, false, conf.prms())
		sol.Solve(u, !conf.Verbose)
		return
	}()
	if err != nil {
		return F1, F2, o.wrap(chk.Err("cannot split deformation gradient after %d iterations: %w", sol.It, err))
	}

	// results
	F2 = fromSym(u)
	F2i, err := F2.Inv()
	if err != nil {
		return F1, F2, o.wrap(err)
	}
	F1 = F.Mul(F2i)
	return
}

// CauchyStress computes σ
func (o *MultiplicativeElastic) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	P, err := o.FirstPiola(F, s)
	if err != nil {
		return
	}
	return FirstPiolaToCauchy(P, F)
}

// CauchyTangent computes ∂σ/∂F
func (o *MultiplicativeElastic) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
	P, err := o.FirstPiola(F, s)
	if err != nil {
		return
	}
	A, err := o.FirstPiolaTangent(F, s)
	if err != nil {
		return
	}
	return CauchyTangentFromFirstPiola(P, A, F)
}

// FirstPiola computes P = P1(F1) F2⁻ᵀ
func (o *MultiplicativeElastic) FirstPiola(F ften.Ten2, s *State) (P ften.Ten2, err error) {
	F1, F2, err := o.Split(F, s)
	if err != nil {
		return
	}
	P1, err := FirstPiolaStress(o.First, F1, nil)
	if err != nil {
		return P, o.wrap(err)
	}
	F2i, err := F2.Inv()
	if err != nil {
		return P, o.wrap(err)
	}
	return P1.Mul(F2i.T()), nil
}

// FirstPiolaTangent computes dP/dF including the change of the split with F
//  dP/dF = ∂P/∂F + ∂P/∂U2 : dU2/dF  where  ∂r/∂U2 : dU2/dF = -∂r/∂F
func (o *MultiplicativeElastic) FirstPiolaTangent(F ften.Ten2, s *State) (A ften.Ten4, err error) {
	F1, U2, err := o.Split(F, s)
	if err != nil {
		return
	}
	Ui, err := U2.Inv()
	if err != nil {
		return A, o.wrap(err)
	}
	P1, err := FirstPiolaStress(o.First, F1, nil)
	if err != nil {
		return A, o.wrap(err)
	}
	T1, err := FirstPiolaTangent(o.First, F1, nil)
	if err != nil {
		return A, o.wrap(err)
	}
	u := la.NewVector(6)
	for p, ij := range symPairs {
		u[p] = U2[ij[0]][ij[1]]
	}
	_, dG, err := o.balance(F, u, true)
	if err != nil {
		return
	}

	// ∂P_iJ/∂F_kL at fixed U2
	A = T1.Leg(3, Ui).Leg(1, Ui)

	// ∂P_iJ/∂U2_kL = -T1_iMcD F1_ck U2⁻¹_LD U2⁻¹_JM - P1_iM U2⁻¹_Jk U2⁻¹_LM
	var dPdU ften.Ten4
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					var sum float64
					for M := 0; M < 3; M++ {
						for c := 0; c < 3; c++ {
							for D := 0; D < 3; D++ {
								sum -= T1[i][M][c][D] * F1[c][k] * Ui[L][D] * Ui[J][M]
							}
						}
						sum -= P1[i][M] * Ui[J][k] * Ui[L][M]
					}
					dPdU[i][J][k][L] = sum
				}
			}
		}
	}

	// ∂A_MN/∂F_kL = U2⁻¹_LM (P1 U2⁻ᵀ)_kN + F1_aM T1_aBkC U2⁻¹_LC U2⁻¹_NB  with  A = F1ᵀ P1 U2⁻ᵀ
	PUit := P1.Mul(Ui.T())
	var dAdF ften.Ten4
	for M := 0; M < 3; M++ {
		for N := 0; N < 3; N++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					sum := Ui[L][M] * PUit[k][N]
					for a := 0; a < 3; a++ {
						for B := 0; B < 3; B++ {
							for C := 0; C < 3; C++ {
								sum += F1[a][M] * T1[a][B][k][C] * Ui[L][C] * Ui[N][B]
							}
						}
					}
					dAdF[M][N][k][L] = sum
				}
			}
		}
	}

	// solve (∂r/∂u) X = -∂r/∂F for X = du/dF
	Jr := mat.NewDense(6, 6, nil)
	rhs := mat.NewDense(6, 9, nil)
	for p, ij := range symPairs {
		for q, kl := range symPairs {
			Jr.Set(p, q, symSlot(dG, ij, kl))
		}
		for k := 0; k < 3; k++ {
			for L := 0; L < 3; L++ {
				rhs.Set(p, ften.VecIndex(k, L), (dAdF[ij[0]][ij[1]][k][L]+dAdF[ij[1]][ij[0]][k][L])/2.0)
			}
		}
	}
	var lu mat.LU
	lu.Factorize(Jr)
	var X mat.Dense
	if e := lu.SolveTo(&X, false, rhs); e != nil {
		return A, o.wrap(chk.Err("cannot compute tangent of split: %v: %w", e, ErrNoConvergence))
	}

	// add ∂P/∂U2 : dU2/dF
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					col := ften.VecIndex(k, L)
					for a := 0; a < 3; a++ {
						for b := 0; b < 3; b++ {
							A[i][J][k][L] += dPdU[i][J][a][b] * X.At(symIndex(a, b), col)
						}
					}
				}
			}
		}
	}
	return
}

// Energy computes ψ = ψ1(F1) + ψ2(F2)
func (o *MultiplicativeElastic) Energy(F ften.Ten2, s *State) (ψ float64, err error) {
	F1, F2, err := o.Split(F, s)
	if err != nil {
		return
	}
	ψ1, err := Energy(o.First, F1, nil)
	if err != nil {
		return 0, o.wrap(err)
	}
	ψ2, err := Energy(o.Second, F2, nil)
	if err != nil {
		return 0, o.wrap(err)
	}
	return ψ1 + ψ2, nil
}

// balance computes G = P2(U2) - F1ᵀ P1(F1) U2⁻ᵀ and, optionally, ∂G/∂U2 at fixed F
//  ∂A_MN/∂U2_kL = -U2⁻¹_LM A_kN - F1_aM T1_aBcD F1_ck U2⁻¹_LD U2⁻¹_NB - U2⁻¹_Nk A_ML
func (o *MultiplicativeElastic) balance(F ften.Ten2, u la.Vector, withDeriv bool) (G ften.Ten2, dG ften.Ten4, err error) {
	U2 := fromSym(u)
	Ui, err := U2.Inv()
	if err != nil {
		return G, dG, o.wrap(err)
	}
	F1 := F.Mul(Ui)
	P1, err := FirstPiolaStress(o.First, F1, nil)
	if err != nil {
		return G, dG, o.wrap(err)
	}
	P2, err := FirstPiolaStress(o.Second, U2, nil)
	if err != nil {
		return G, dG, o.wrap(err)
	}
	A := F1.T().Mul(P1).Mul(Ui.T())
	G = P2.Sub(A)
	if !withDeriv {
		return
	}
	T1, err := FirstPiolaTangent(o.First, F1, nil)
	if err != nil {
		return G, dG, o.wrap(err)
	}
	T2, err := FirstPiolaTangent(o.Second, U2, nil)
	if err != nil {
		return G, dG, o.wrap(err)
	}
	for M := 0; M < 3; M++ {
		for N := 0; N < 3; N++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					dA := -Ui[L][M]*A[k][N] - Ui[N][k]*A[M][L]
					for a := 0; a < 3; a++ {
						for B := 0; B < 3; B++ {
							for c := 0; c < 3; c++ {
								for D := 0; D < 3; D++ {
									dA -= F1[a][M] * T1[a][B][c][D] * F1[c][k] * Ui[L][D] * Ui[N][B]
								}
							}
						}
					}
					dG[M][N][k][L] = T2[M][N][k][L] - dA
				}
			}
		}
	}
	return
}

func (o *MultiplicativeElastic) wrap(err error) error {
	return chk.Err("%s: %w", o.Name(), err)
}

// fromSym builds a symmetric tensor from its 6 unknowns
func fromSym(u la.Vector) (a ften.Ten2) {
	for p, ij := range symPairs {
		a[ij[0]][ij[1]] = u[p]
		a[ij[1]][ij[0]] = u[p]
	}
	return
}

// symIndex returns the position of a_ij in the 6 unknowns of a symmetric tensor
func symIndex(i, j int) int {
	for p, ij := range symPairs {
		if (ij[0] == i && ij[1] == j) || (ij[0] == j && ij[1] == i) {
			return p
		}
	}
	return -1
}

// symSlot returns the derivative of sym(G)_ij with respect to the symmetric unknown kl
func symSlot(dG ften.Ten4, ij, kl [2]int) float64 {
	i, j, k, l := ij[0], ij[1], kl[0], kl[1]
	v := (dG[i][j][k][l] + dG[j][i][k][l]) / 2.0
	if k != l {
		v += (dG[i][j][l][k] + dG[j][i][l][k]) / 2.0
	}
	return v
}
