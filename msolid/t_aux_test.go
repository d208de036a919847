// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// deformation gradients used in tests
var (
	tstFa = ften.Ten2{
		{1.1, 0.2, -0.1},
		{0.05, 0.95, 0.15},
		{-0.08, 0.12, 1.03},
	}
	tstFb = ften.Ten2{
		{0.87, -0.11, 0.04},
		{0.09, 1.12, -0.07},
		{0.13, 0.02, 0.91},
	}
	tstR = ften.Rotation(0.7, [3]float64{1, 2, 3})
)

// tstFs returns the identity, two general deformations, a pure rotation and a rotated deformation
func tstFs() map[string]ften.Ten2 {
	return map[string]ften.Ten2{
		"identity": ften.I2(),
		"Fa":       tstFa,
		"Fb":       tstFb,
		"rotation": tstR,
		"R·Fa":     tstR.Mul(tstFa),
	}
}

// tstModel allocates a primitive model with K = 330 and G = 110
func tstModel(tst *testing.T, name string) Primitive {
	m, err := GetModel(name, []*dbf.P{
		&dbf.P{N: "K", V: 330},
		&dbf.P{N: "G", V: 110},
	})
	if err != nil {
		tst.Fatalf("cannot allocate model: %v\n", err)
	}
	return m
}

// tstFlow allocates the viscoplastic flow rule
func tstFlow(tst *testing.T, Y0, H, m, d0 float64) Flow {
	flow, err := GetFlow("viscoplastic", []*dbf.P{
		&dbf.P{N: "Y0", V: Y0},
		&dbf.P{N: "H", V: H},
		&dbf.P{N: "m", V: m},
		&dbf.P{N: "d0", V: d0},
	})
	if err != nil {
		tst.Fatalf("cannot allocate flow rule: %v\n", err)
	}
	return flow
}

// checkFirstPiolaTangent compares ∂P/∂F with central differences of P
func checkFirstPiolaTangent(tst *testing.T, msg string, m Model, F ften.Ten2, s *State, h, tol float64) {
	A, err := FirstPiolaTangent(m, F, s)
	if err != nil {
		tst.Errorf("%s: tangent failed: %v\n", msg, err)
		return
	}
	checkDerivs(tst, msg+": dP/dF", A, F, h, tol, func(Fx ften.Ten2) ften.Ten2 {
		P, e := FirstPiolaStress(m, Fx, s)
		if e != nil {
			tst.Errorf("%s: stress failed: %v\n", msg, e)
		}
		return P
	})
}

// checkCauchyTangent compares ∂σ/∂F with central differences of σ
func checkCauchyTangent(tst *testing.T, msg string, m Model, F ften.Ten2, s *State, h, tol float64) {
	D, err := m.CauchyTangent(F, s)
	if err != nil {
		tst.Errorf("%s: tangent failed: %v\n", msg, err)
		return
	}
	checkDerivs(tst, msg+": dσ/dF", D, F, h, tol, func(Fx ften.Ten2) ften.Ten2 {
		σ, e := m.CauchyStress(Fx, s)
		if e != nil {
			tst.Errorf("%s: stress failed: %v\n", msg, e)
		}
		return σ
	})
}

// checkEnergy compares P with central differences of ψ
func checkEnergy(tst *testing.T, msg string, m Model, F ften.Ten2, s *State, h, tol float64) {
	P, err := FirstPiolaStress(m, F, s)
	if err != nil {
		tst.Errorf("%s: stress failed: %v\n", msg, err)
		return
	}
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			dnum := num.DerivCen5(F[k][l], h, func(x float64) float64 {
				Fx := F
				Fx[k][l] = x
				ψ, e := Energy(m, Fx, s)
				if e != nil {
					tst.Errorf("%s: energy failed: %v\n", msg, e)
				}
				return ψ
			})
			chk.AnaNum(tst, io.Sf("%s: dψ/dF%d%d", msg, k, l), tol, P[k][l], dnum, chk.Verbose)
		}
	}
}

// checkDerivs compares D_ijkl with central differences of fcn_ij with respect to F_kl
func checkDerivs(tst *testing.T, msg string, D ften.Ten4, F ften.Ten2, h, tol float64, fcn func(Fx ften.Ten2) ften.Ten2) {
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					dnum := num.DerivCen5(F[k][l], h, func(x float64) float64 {
						Fx := F
						Fx[k][l] = x
						return fcn(Fx)[i][j]
					})
					chk.AnaNum(tst, io.Sf("%s %d%d%d%d", msg, i, j, k, l), tol, D[i][j][k][l], dnum, chk.Verbose)
				}
			}
		}
	}
}
