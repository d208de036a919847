// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

var elasticNames = []string{"almansi-hamel", "hencky", "neo-hookean", "saint-venant-kirchhoff"}

func Test_elast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast01. zero stress and energy at identity")

	I := ften.I2()
	for _, name := range elasticNames {
		m := tstModel(tst, name)
		σ, err := m.CauchyStress(I, nil)
		if err != nil {
			tst.Errorf("%s: %v\n", name, err)
			return
		}
		chk.Deep2(tst, name+": σ(I)", 1e-15, σ.Deep2(), ften.Ten2{}.Deep2())
		P, err := FirstPiolaStress(m, I, nil)
		if err != nil {
			tst.Errorf("%s: %v\n", name, err)
			return
		}
		chk.Deep2(tst, name+": P(I)", 1e-15, P.Deep2(), ften.Ten2{}.Deep2())
		if _, ok := m.(Hyperelastic); ok {
			ψ, err := Energy(m, I, nil)
			if err != nil {
				tst.Errorf("%s: %v\n", name, err)
				return
			}
			chk.Float64(tst, name+": ψ(I)", 1e-15, ψ, 0)
		}
		if m.InitState() != nil {
			tst.Errorf("%s: elastic models must be stateless\n", name)
		}
	}

	// small strain limit: σ ≈ 2G dev ε + K tr ε I
	ε := ften.Ten2{
		{1e-6, 2e-7, 0},
		{2e-7, -3e-7, 1e-7},
		{0, 1e-7, 5e-7},
	}
	F := ften.I2().Add(ε)
	σlin := ε.Dev().Scale(220)
	for i := 0; i < 3; i++ {
		σlin[i][i] += 330 * ε.Tr()
	}
	for _, name := range elasticNames {
		σ, _ := tstModel(tst, name).CauchyStress(F, nil)
		chk.Deep2(tst, name+": small strains", 1e-9, σ.Deep2(), σlin.Deep2())
	}
}

func Test_elast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast02. tangents")

	for _, name := range elasticNames {
		m := tstModel(tst, name)
		for fname, F := range tstFs() {
			io.Pforan("%s @ %s\n", name, fname)
			checkCauchyTangent(tst, name+"@"+fname, m, F, nil, 1e-5, 1e-6)
			checkFirstPiolaTangent(tst, name+"@"+fname, m, F, nil, 1e-5, 1e-6)
		}
	}
}

func Test_elast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast03. energy")

	for _, name := range elasticNames {
		m := tstModel(tst, name)
		if _, ok := m.(Hyperelastic); !ok {
			_, err := Energy(m, tstFa, nil)
			if !errors.Is(err, ErrNotHyperelastic) {
				tst.Errorf("%s: missing energy should have been reported. err = %v\n", name, err)
			}
			continue
		}
		for fname, F := range tstFs() {
			checkEnergy(tst, name+"@"+fname, m, F, nil, 1e-5, 1e-7)
		}
	}
}

func Test_elast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast04. frame indifference")

	Q := tstR
	for _, name := range elasticNames {
		m := tstModel(tst, name)
		for _, F := range []ften.Ten2{tstFa, tstFb} {

			// σ(QF) = Q σ(F) Qᵀ
			σ, _ := m.CauchyStress(F, nil)
			σQ, _ := m.CauchyStress(Q.Mul(F), nil)
			chk.Deep2(tst, name+": σ(QF)", 1e-12, σQ.Deep2(), Q.Mul(σ).Mul(Q.T()).Deep2())

			// S(QF) = S(F)
			S, _ := SecondPiolaStress(m, F, nil)
			SQ, _ := SecondPiolaStress(m, Q.Mul(F), nil)
			chk.Deep2(tst, name+": S(QF)", 1e-12, SQ.Deep2(), S.Deep2())

			// pulling back the rotated tangent reproduces the unrotated one
			//  ∂P/∂F(QF) = Q ∂P/∂F(F) Qᵀ on legs 0 and 2
			A, _ := FirstPiolaTangent(m, F, nil)
			AQ, _ := FirstPiolaTangent(m, Q.Mul(F), nil)
			back := AQ.Leg(0, Q.T()).Leg(2, Q.T())
			chk.Float64(tst, name+": A(QF) pulled back", 1e-10, back.MaxDiff(A), 0)

			// ψ(QF) = ψ(F)
			if _, ok := m.(Hyperelastic); ok {
				ψ, _ := Energy(m, F, nil)
				ψQ, _ := Energy(m, Q.Mul(F), nil)
				chk.Float64(tst, name+": ψ(QF)", 1e-12, ψQ, ψ)
			}
		}
	}
}

func Test_elast05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast05. errors and parameters")

	F := ften.Diag(1, -1, 1)
	for _, name := range elasticNames {
		m := tstModel(tst, name)
		_, err := m.CauchyStress(F, nil)
		var jerr *JacobianError
		if !errors.As(err, &jerr) {
			tst.Errorf("%s: negative Jacobian should have been reported. err = %v\n", name, err)
			continue
		}
		chk.String(tst, jerr.Model, name)
		chk.Float64(tst, name+": J", 1e-15, jerr.J, -1)
		if _, err = m.CauchyTangent(F, nil); !errors.Is(err, ErrJacobian) {
			tst.Errorf("%s: negative Jacobian should have been reported by the tangent. err = %v\n", name, err)
		}
	}

	// E and ν
	m, err := GetModel("hencky", []*dbf.P{
		&dbf.P{N: "E", V: 297},
		&dbf.P{N: "nu", V: 0.35},
	})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	h := m.(*Hencky)
	chk.Float64(tst, "K", 1e-12, h.K, 297/(3*(1-0.7)))
	chk.Float64(tst, "G", 1e-12, h.G, 297/(2*1.35))

	// invalid parameters
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "K", V: 330}},
		{&dbf.P{N: "K", V: 330}, &dbf.P{N: "G", V: -1}},
		{&dbf.P{N: "E", V: 300}},
		{&dbf.P{N: "E", V: 300}, &dbf.P{N: "nu", V: 0.5}},
		{&dbf.P{N: "K", V: 330}, &dbf.P{N: "G", V: 110}, &dbf.P{N: "lambda", V: 1}},
	} {
		if _, err = GetModel("neo-hookean", prms); err == nil {
			tst.Errorf("parameters %v should have been rejected\n", prms)
		}
	}
	if _, err = New("linear-elastic"); err == nil {
		tst.Errorf("unknown model should have been rejected\n")
	}

	// example parameters
	for _, name := range elasticNames {
		m0, _ := New(name)
		if err = m0.Init(m0.GetPrms(true)); err != nil {
			tst.Errorf("%s: example parameters failed: %v\n", name, err)
		}
		chk.Float64(tst, name+": K", 1e-15, m0.GetPrms(false)[0].V, 330)
	}
	chk.Int(tst, "number of models", len(ModelNames()), len(elasticNames))
}

func Test_elast06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast06. uniaxial stretch")

	// Hencky is linear in log strains: with lateral stretch λ^(-ν) the lateral stress vanishes
	K, G := 330.0, 110.0
	E := 9 * K * G / (3*K + G)
	ν := (3*K - 2*G) / (2 * (3*K + G))
	m := tstModel(tst, "hencky")
	for _, λ := range []float64{0.8, 1.0, 1.2, 1.5} {
		μ := math.Pow(λ, -ν)
		σ, err := m.CauchyStress(ften.Diag(λ, μ, μ), nil)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		J := λ * μ * μ
		chk.Float64(tst, io.Sf("σ11(λ=%g)", λ), 1e-12, σ[0][0], E*math.Log(λ)/J)
		chk.Float64(tst, io.Sf("σ22(λ=%g)", λ), 1e-12, σ[1][1], 0)
	}
}
