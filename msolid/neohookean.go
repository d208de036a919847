// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// NeoHookean implements the compressible Neo-Hookean model
//  σ = G J^(-5/3) dev(b) + K/2 (J - 1/J) I
//  ψ = G/2 (tr(J^(-2/3) b) - 3) + K/2 ((J² - 1)/2 - ln J)
type NeoHookean struct {
	stateless
	Moduli
}

// add model to factory
func init() {
	register("neo-hookean", func() Primitive { return new(NeoHookean) })
}

// Name returns the name of this model
func (o *NeoHookean) Name() string { return "neo-hookean" }

// Init initialises model
func (o *NeoHookean) Init(prms dbf.Params) (err error) {
	return o.Moduli.read(o.Name(), prms)
}

// GetPrms gets (an example) of parameters
func (o *NeoHookean) GetPrms(example bool) dbf.Params {
	return o.Moduli.prms(example)
}

// CauchyStress computes σ
func (o *NeoHookean) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	J, err := checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	b := F.Mul(F.T())
	σ = b.Dev().Scale(o.G * math.Pow(J, -5.0/3.0))
	p := o.K * (J - 1.0/J) / 2.0
	for i := 0; i < 3; i++ {
		σ[i][i] += p
	}
	return
}

// CauchyTangent computes ∂σ/∂F
func (o *NeoHookean) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
	J, err := checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	Fi, err := F.Inv()
	if err != nil {
		return
	}
	I := ften.I2()
	Fit := Fi.T()
	devb := F.Mul(F.T()).Dev()
	ddevb := ften.DyadO(I, F).Add(ften.DyadX(F, I)).Sub(ften.Dyad(I, F).Scale(2.0 / 3.0))
	D = ddevb.Sub(ften.Dyad(devb, Fit).Scale(5.0 / 3.0)).Scale(o.G * math.Pow(J, -5.0/3.0))
	D = D.Add(ften.Dyad(I, Fit).Scale(o.K * (J + 1.0/J) / 2.0))
	return
}

// Energy computes ψ
func (o *NeoHookean) Energy(F ften.Ten2, s *State) (ψ float64, err error) {
	J, err := checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	trb := F.Mul(F.T()).Tr()
	return o.G*(math.Pow(J, -2.0/3.0)*trb-3.0)/2.0 + o.K*((J*J-1.0)/2.0-math.Log(J))/2.0, nil
}
