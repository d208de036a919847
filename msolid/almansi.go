// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// AlmansiHamel implements an elastic model linear in the Almansi-Hamel strain e = ½(I - b⁻¹)
//  σ = (2G dev(e) + K tr(e) I) / J
//  Note: this model is not derived from a stored energy
type AlmansiHamel struct {
	stateless
	Moduli
}

// add model to factory
func init() {
	register("almansi-hamel", func() Primitive { return new(AlmansiHamel) })
}

// Name returns the name of this model
func (o *AlmansiHamel) Name() string { return "almansi-hamel" }

// Init initialises model
func (o *AlmansiHamel) Init(prms dbf.Params) (err error) {
	return o.Moduli.read(o.Name(), prms)
}

// GetPrms gets (an example) of parameters
func (o *AlmansiHamel) GetPrms(example bool) dbf.Params {
	return o.Moduli.prms(example)
}

// CauchyStress computes σ
func (o *AlmansiHamel) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	J, err := checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	e, err := o.strain(F)
	if err != nil {
		return
	}
	σ = e.Dev().Scale(2.0 * o.G / J)
	p := o.K * e.Tr() / J
	for i := 0; i < 3; i++ {
		σ[i][i] += p
	}
	return
}

// CauchyTangent computes ∂σ/∂F
//  ∂e_ij/∂F_kL = ½(F⁻ᵀ_iL b⁻¹_jk + b⁻¹_ik F⁻ᵀ_jL)
func (o *AlmansiHamel) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
	σ, err := o.CauchyStress(F, s)
	if err != nil {
		return
	}
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	Fit := Fi.T()
	bi := Fit.Mul(Fi)
	de := ften.DyadX(Fit, bi).Add(ften.DyadO(bi, Fit)).Scale(0.5)
	return o.isoTangent(σ, Fit, F.Det(), de), nil
}

// strain computes e = ½(I - b⁻¹)
func (o *AlmansiHamel) strain(F ften.Ten2) (e ften.Ten2, err error) {
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	bi := Fi.T().Mul(Fi)
	return ften.I2().Sub(bi).Scale(0.5), nil
}
