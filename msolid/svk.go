// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// SaintVenantKirchhoff implements the hyperelastic model linear in the Green-Lagrange strain E = ½(C - I)
//  S = 2G dev(E) + K tr(E) I
//  ψ = G |dev(E)|² + K/2 tr(E)²
type SaintVenantKirchhoff struct {
	stateless
	Moduli
}

// add model to factory
func init() {
	register("saint-venant-kirchhoff", func() Primitive { return new(SaintVenantKirchhoff) })
}

// Name returns the name of this model
func (o *SaintVenantKirchhoff) Name() string { return "saint-venant-kirchhoff" }

// Init initialises model
func (o *SaintVenantKirchhoff) Init(prms dbf.Params) (err error) {
	return o.Moduli.read(o.Name(), prms)
}

// GetPrms gets (an example) of parameters
func (o *SaintVenantKirchhoff) GetPrms(example bool) dbf.Params {
	return o.Moduli.prms(example)
}

// SecondPiola computes S
func (o *SaintVenantKirchhoff) SecondPiola(F ften.Ten2) (S ften.Ten2, err error) {
	_, err = checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	E := o.strain(F)
	S = E.Dev().Scale(2.0 * o.G)
	p := o.K * E.Tr()
	for i := 0; i < 3; i++ {
		S[i][i] += p
	}
	return
}

// SecondPiolaTangent computes ∂S/∂F
//  ∂E_AB/∂F_kL = ½(δ_AL F_kB + F_kA δ_BL)
func (o *SaintVenantKirchhoff) SecondPiolaTangent(F ften.Ten2) (B ften.Ten4, err error) {
	_, err = checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	I := ften.I2()
	Ft := F.T()
	dE := ften.DyadX(I, Ft).Add(ften.DyadO(Ft, I)).Scale(0.5)
	tr := dE.Trace01()
	B = dE.Sub(ften.Dyad(I, tr).Scale(1.0 / 3.0)).Scale(2.0 * o.G)
	B = B.Add(ften.Dyad(I, tr).Scale(o.K))
	return
}

// FirstPiola computes P = F S
func (o *SaintVenantKirchhoff) FirstPiola(F ften.Ten2, s *State) (P ften.Ten2, err error) {
	S, err := o.SecondPiola(F)
	if err != nil {
		return
	}
	return SecondPiolaToFirstPiola(S, F), nil
}

// FirstPiolaTangent computes ∂P/∂F
func (o *SaintVenantKirchhoff) FirstPiolaTangent(F ften.Ten2, s *State) (A ften.Ten4, err error) {
	S, err := o.SecondPiola(F)
	if err != nil {
		return
	}
	B, err := o.SecondPiolaTangent(F)
	if err != nil {
		return
	}
	return FirstPiolaTangentFromSecondPiola(S, B, F), nil
}

// CauchyStress computes σ = J⁻¹ F S Fᵀ
func (o *SaintVenantKirchhoff) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	S, err := o.SecondPiola(F)
	if err != nil {
		return
	}
	return SecondPiolaToCauchy(S, F)
}

// CauchyTangent computes ∂σ/∂F
func (o *SaintVenantKirchhoff) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
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

// Energy computes ψ
func (o *SaintVenantKirchhoff) Energy(F ften.Ten2, s *State) (ψ float64, err error) {
	_, err = checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	E := o.strain(F)
	d := E.Dev()
	trE := E.Tr()
	return o.G*d.Ddot(d) + o.K*trE*trE/2.0, nil
}

// strain computes E = ½(Fᵀ F - I)
func (o *SaintVenantKirchhoff) strain(F ften.Ten2) ften.Ten2 {
	return F.T().Mul(F).Sub(ften.I2()).Scale(0.5)
}
