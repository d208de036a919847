// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Plastic implements linear isotropic hardening
//  Y(εp) = Y0 + H εp
type Plastic struct {
	Y0 float64 // initial yield stress
	H  float64 // hardening slope
}

// Init initialises hardening parameters
func (o *Plastic) Init(prms dbf.Params) (err error) {
	return readPrms("plastic", prms, []string{"Y0", "H?"}, []*float64{&o.Y0, &o.H})
}

// GetPrms gets (an example) of parameters
func (o Plastic) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "Y0", V: 3},
			&dbf.P{N: "H", V: 1},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "Y0", V: o.Y0},
		&dbf.P{N: "H", V: o.H},
	}
}

// YieldStress returns Y(εp)
func (o Plastic) YieldStress(eqps float64) float64 {
	return o.Y0 + o.H*eqps
}

// HardeningRate returns Ẏ = H ε̇p
func (o Plastic) HardeningRate(rate float64) float64 {
	return o.H * rate
}

// YieldFunction returns f = |M'| - Y(εp); f < 0 means elastic
func (o Plastic) YieldFunction(M ften.Ten2, eqps float64) float64 {
	return M.Dev().Norm() - o.YieldStress(eqps)
}

// Viscoplastic implements the power-law flow rule with linear hardening
//  Dp = d0 (|M'|/Y)^(1/m) M'/|M'|  and  Dp = 0 if |M'| = 0
//  dεp/dt = √(2/3) |Dp|
type Viscoplastic struct {
	Plastic
	M  float64 // rate sensitivity exponent m
	D0 float64 // reference flow rate d0
}

// add flow to factory
func init() {
	registerFlow("viscoplastic", func() Flow { return new(Viscoplastic) })
}

// Name returns the name of this flow rule
func (o *Viscoplastic) Name() string { return "viscoplastic" }

// Init initialises flow rule
func (o *Viscoplastic) Init(prms dbf.Params) (err error) {
	return readPrms(o.Name(), prms, []string{"Y0", "H?", "m", "d0?"}, []*float64{&o.Y0, &o.H, &o.M, &o.D0})
}

// GetPrms gets (an example) of parameters
func (o *Viscoplastic) GetPrms(example bool) dbf.Params {
	prms := o.Plastic.GetPrms(example)
	if example {
		return append(prms, &dbf.P{N: "m", V: 1}, &dbf.P{N: "d0", V: 0.008})
	}
	return append(prms, &dbf.P{N: "m", V: o.M}, &dbf.P{N: "d0", V: o.D0})
}

// Rate computes the plastic stretching and the equivalent plastic strain rate for given Mandel stress
func (o *Viscoplastic) Rate(M ften.Ten2, eqps float64) (Dp ften.Ten2, rate float64, err error) {
	Y := o.YieldStress(eqps)
	if Y <= 0 {
		err = chk.Err("%s: yield stress must be positive. Y(%g) = %g is invalid", o.Name(), eqps, Y)
		return
	}
	Md := M.Dev()
	norm := Md.Norm()
	if norm == 0 || o.D0 == 0 {
		return
	}
	Dp = Md.Scale(o.D0 * math.Pow(norm/Y, 1.0/o.M) / norm)
	rate = math.Sqrt(2.0/3.0) * Dp.Norm()
	return
}
