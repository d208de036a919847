// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Moduli holds the elastic constants of isotropic models
type Moduli struct {
	K float64 // bulk modulus
	G float64 // shear modulus
}

// read reads K and G; alternatively, E and nu may be given
func (o *Moduli) read(model string, prms dbf.Params) (err error) {
	var E, ν float64
	var hasE, hasν bool
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "E":
			E, hasE = p.V, true
		case "nu":
			ν, hasν = p.V, true
		default:
			return chk.Err("%s: parameter named %q is invalid", model, p.N)
		}
	}
	if hasE || hasν {
		if !(hasE && hasν) {
			return chk.Err("%s: both E and nu must be given", model)
		}
		if ν <= -1 || ν >= 0.5 {
			return chk.Err("%s: Poisson's coefficient must be in (-1, 0.5). %g is invalid", model, ν)
		}
		o.K = E / (3.0 * (1.0 - 2.0*ν))
		o.G = E / (2.0 * (1.0 + ν))
	}
	if o.K <= 0 || o.G <= 0 {
		return chk.Err("%s: bulk and shear moduli must be positive. K=%g, G=%g are invalid", model, o.K, o.G)
	}
	return
}

// prms returns K and G as parameters
func (o Moduli) prms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "K", V: 330},
			&dbf.P{N: "G", V: 110},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "K", V: o.K},
		&dbf.P{N: "G", V: o.G},
	}
}

// isoTangent computes the tangent of σ = (2G dev(e) + K tr(e) I)/J for given de/dF
//  ∂σ/∂F = -σ ⊗ F⁻ᵀ + (2G dev(de) + K I ⊗ tr(de))/J
func (o Moduli) isoTangent(σ, Fit ften.Ten2, J float64, de ften.Ten4) (D ften.Ten4) {
	I := ften.I2()
	tr := de.Trace01()
	dev := de.Sub(ften.Dyad(I, tr).Scale(1.0 / 3.0))
	D = ften.Dyad(σ, Fit).Scale(-1)
	D = D.Add(dev.Scale(2.0 * o.G / J))
	D = D.Add(ften.Dyad(I, tr).Scale(o.K / J))
	return
}

// stateless implements the state methods of elastic models
type stateless struct{}

// InitState returns nil since elastic models have no internal variables
func (o stateless) InitState() *State { return nil }

// Evolution returns nil since elastic models have no internal variables
func (o stateless) Evolution(F ften.Ten2, s *State) (*State, error) { return nil, nil }
