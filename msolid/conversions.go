// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// stress measures ////////////////////////////////////////////////////////////////////////////////

// CauchyToFirstPiola computes P = J σ F⁻ᵀ
func CauchyToFirstPiola(σ, F ften.Ten2) (P ften.Ten2, err error) {
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	return σ.Mul(Fi.T()).Scale(F.Det()), nil
}

// FirstPiolaToCauchy computes σ = J⁻¹ P Fᵀ
func FirstPiolaToCauchy(P, F ften.Ten2) (σ ften.Ten2, err error) {
	J := F.Det()
	if J <= 0 {
		return σ, &JacobianError{Model: "conversion", F: F, J: J}
	}
	return P.Mul(F.T()).Scale(1.0 / J), nil
}

// FirstPiolaToSecondPiola computes S = F⁻¹ P
func FirstPiolaToSecondPiola(P, F ften.Ten2) (S ften.Ten2, err error) {
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	return Fi.Mul(P), nil
}

// SecondPiolaToFirstPiola computes P = F S
func SecondPiolaToFirstPiola(S, F ften.Ten2) (P ften.Ten2) {
	return F.Mul(S)
}

// CauchyToSecondPiola computes S = J F⁻¹ σ F⁻ᵀ
func CauchyToSecondPiola(σ, F ften.Ten2) (S ften.Ten2, err error) {
	P, err := CauchyToFirstPiola(σ, F)
	if err != nil {
		return
	}
	return FirstPiolaToSecondPiola(P, F)
}

// SecondPiolaToCauchy computes σ = J⁻¹ F S Fᵀ
func SecondPiolaToCauchy(S, F ften.Ten2) (σ ften.Ten2, err error) {
	return FirstPiolaToCauchy(SecondPiolaToFirstPiola(S, F), F)
}

// tangents ///////////////////////////////////////////////////////////////////////////////////////

// FirstPiolaTangentFromCauchy computes ∂P/∂F from σ and ∂σ/∂F
//  ∂P_iJ/∂F_kL = P_iJ F⁻ᵀ_kL + J ∂σ_ia/∂F_kL F⁻¹_Ja - P_iL F⁻¹_Jk
func FirstPiolaTangentFromCauchy(σ ften.Ten2, Dσ ften.Ten4, F ften.Ten2) (A ften.Ten4, err error) {
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	J := F.Det()
	P := σ.Mul(Fi.T()).Scale(J)
	A = ften.Dyad(P, Fi.T())
	A = A.Add(Dσ.Leg(1, Fi).Scale(J))
	A = A.Sub(ften.DyadX(P, Fi))
	return
}

// CauchyTangentFromFirstPiola computes ∂σ/∂F from P and ∂P/∂F
//  ∂σ_ij/∂F_kL = -σ_ij F⁻ᵀ_kL + J⁻¹ ∂P_iA/∂F_kL F_jA + J⁻¹ P_iL δ_jk
func CauchyTangentFromFirstPiola(P ften.Ten2, A ften.Ten4, F ften.Ten2) (Dσ ften.Ten4, err error) {
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	J := F.Det()
	σ := P.Mul(F.T()).Scale(1.0 / J)
	Dσ = ften.Dyad(σ, Fi.T()).Scale(-1)
	Dσ = Dσ.Add(A.Leg(1, F).Scale(1.0 / J))
	Dσ = Dσ.Add(ften.DyadX(P, ften.I2()).Scale(1.0 / J))
	return
}

// SecondPiolaTangentFromFirstPiola computes ∂S/∂F from P and ∂P/∂F
//  ∂S_IJ/∂F_kL = -F⁻¹_Ik S_LJ + F⁻¹_Ia ∂P_aJ/∂F_kL
func SecondPiolaTangentFromFirstPiola(P ften.Ten2, A ften.Ten4, F ften.Ten2) (B ften.Ten4, err error) {
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	S := Fi.Mul(P)
	B = A.Leg(0, Fi).Sub(ften.DyadO(Fi, S.T()))
	return
}

// FirstPiolaTangentFromSecondPiola computes ∂P/∂F from S and ∂S/∂F
//  ∂P_iJ/∂F_kL = δ_ik S_LJ + F_iA ∂S_AJ/∂F_kL
func FirstPiolaTangentFromSecondPiola(S ften.Ten2, B ften.Ten4, F ften.Ten2) (A ften.Ten4) {
	return ften.DyadO(ften.I2(), S.T()).Add(B.Leg(0, F))
}

// model-level helpers ////////////////////////////////////////////////////////////////////////////

// Jacobian returns J = det(F) checking that it is positive
func Jacobian(m Model, F ften.Ten2) (J float64, err error) {
	return checkJacobian(m.Name(), F)
}

// FirstPiolaStress computes P(F, s) using the native measure of the model
func FirstPiolaStress(m Model, F ften.Ten2, s *State) (P ften.Ten2, err error) {
	if pm, ok := m.(PiolaModel); ok {
		return pm.FirstPiola(F, s)
	}
	σ, err := m.CauchyStress(F, s)
	if err != nil {
		return
	}
	return CauchyToFirstPiola(σ, F)
}

// FirstPiolaTangent computes ∂P/∂F using the native measure of the model
func FirstPiolaTangent(m Model, F ften.Ten2, s *State) (A ften.Ten4, err error) {
	if pm, ok := m.(PiolaModel); ok {
		return pm.FirstPiolaTangent(F, s)
	}
	σ, err := m.CauchyStress(F, s)
	if err != nil {
		return
	}
	Dσ, err := m.CauchyTangent(F, s)
	if err != nil {
		return
	}
	return FirstPiolaTangentFromCauchy(σ, Dσ, F)
}

// SecondPiolaStress computes S(F, s)
func SecondPiolaStress(m Model, F ften.Ten2, s *State) (S ften.Ten2, err error) {
	P, err := FirstPiolaStress(m, F, s)
	if err != nil {
		return
	}
	return FirstPiolaToSecondPiola(P, F)
}

// SecondPiolaTangent computes ∂S/∂F
func SecondPiolaTangent(m Model, F ften.Ten2, s *State) (B ften.Ten4, err error) {
	P, err := FirstPiolaStress(m, F, s)
	if err != nil {
		return
	}
	A, err := FirstPiolaTangent(m, F, s)
	if err != nil {
		return
	}
	return SecondPiolaTangentFromFirstPiola(P, A, F)
}

// MandelStress computes M = Fᵀ P(F, s) of the model evaluated at F
//  Note: for an elastic part F = Fe this is the stress driving plastic flow
func MandelStress(m Model, F ften.Ten2, s *State) (M ften.Ten2, err error) {
	P, err := FirstPiolaStress(m, F, s)
	if err != nil {
		return
	}
	return F.T().Mul(P), nil
}

// Energy computes the Helmholtz free energy of hyperelastic models
func Energy(m Model, F ften.Ten2, s *State) (ψ float64, err error) {
	h, ok := m.(Hyperelastic)
	if !ok {
		return 0, chk.Err("%s: %w", m.Name(), ErrNotHyperelastic)
	}
	return h.Energy(F, s)
}

// VonMises returns the von Mises equivalent stress √(3/2) |dev σ|
func VonMises(σ ften.Ten2) float64 {
	return math.Sqrt(1.5) * σ.Dev().Norm()
}
