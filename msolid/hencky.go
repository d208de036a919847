// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Hencky implements the hyperelastic model based on the logarithmic strain ε = ½ ln(b)
//  σ = (G dev(ln b) + K ln(J) I) / J
//  ψ = G/4 |dev(ln b)|² + K/2 ln(J)²
type Hencky struct {
	stateless
	Moduli
}

// add model to factory
func init() {
	register("hencky", func() Primitive { return new(Hencky) })
}

// Name returns the name of this model
func (o *Hencky) Name() string { return "hencky" }

// Init initialises model
func (o *Hencky) Init(prms dbf.Params) (err error) {
	return o.Moduli.read(o.Name(), prms)
}

// GetPrms gets (an example) of parameters
func (o *Hencky) GetPrms(example bool) dbf.Params {
	return o.Moduli.prms(example)
}

// CauchyStress computes σ
func (o *Hencky) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	J, err := checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	lnb, err := ften.SymLog(F.Mul(F.T()))
	if err != nil {
		return
	}
	σ = lnb.Dev().Scale(o.G / J)
	p := o.K * math.Log(J) / J
	for i := 0; i < 3; i++ {
		σ[i][i] += p
	}
	return
}

// CauchyTangent computes ∂σ/∂F
//  ∂ln(b)/∂F = ∂ln(b)/∂b : (δ_ak F_bL + F_aL δ_bk)
func (o *Hencky) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
	σ, err := o.CauchyStress(F, s)
	if err != nil {
		return
	}
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	L, err := ften.SymLogDeriv(F.Mul(F.T()))
	if err != nil {
		return
	}
	I := ften.I2()
	dlnb := L.Mul(ften.DyadO(I, F).Add(ften.DyadX(F, I)))
	J := F.Det()
	Fit := Fi.T()
	tr := dlnb.Trace01()
	D = ften.Dyad(σ, Fit).Scale(-1)
	D = D.Add(dlnb.Sub(ften.Dyad(I, tr).Scale(1.0 / 3.0)).Scale(o.G / J))
	D = D.Add(ften.Dyad(I, Fit).Scale(o.K / J))
	return
}

// Energy computes ψ
func (o *Hencky) Energy(F ften.Ten2, s *State) (ψ float64, err error) {
	J, err := checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	lnb, err := ften.SymLog(F.Mul(F.T()))
	if err != nil {
		return
	}
	d := lnb.Dev()
	lnJ := math.Log(J)
	return o.G*d.Ddot(d)/4.0 + o.K*lnJ*lnJ/2.0, nil
}
