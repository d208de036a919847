// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

func Test_conv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv01. round trip of stress measures")

	P := ften.Ten2{
		{10, 2, -3},
		{1, -7, 4},
		{0.5, 3, 12},
	}
	for name, F := range tstFs() {
		io.Pforan("F = %s\n", name)

		// P → σ → P
		σ, err := FirstPiolaToCauchy(P, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		Pback, err := CauchyToFirstPiola(σ, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Deep2(tst, "P → σ → P", 1e-13, Pback.Deep2(), P.Deep2())

		// S → P → S
		S := P.Sym()
		Sback, err := FirstPiolaToSecondPiola(SecondPiolaToFirstPiola(S, F), F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Deep2(tst, "S → P → S", 1e-13, Sback.Deep2(), S.Deep2())

		// σ → S → σ
		σs := σ.Sym()
		Ss, err := CauchyToSecondPiola(σs, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		σback, err := SecondPiolaToCauchy(Ss, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Deep2(tst, "σ → S → σ", 1e-13, σback.Deep2(), σs.Deep2())
	}

	// inadmissible F
	F := ften.Diag(1, 1, -1)
	_, err := FirstPiolaToCauchy(P, F)
	if !errors.Is(err, ErrJacobian) {
		tst.Errorf("negative Jacobian should have been reported. err = %v\n", err)
	}
}

func Test_conv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv02. tangent conversions")

	// the Piola tangent of a native Cauchy model must be consistent both ways
	m := tstModel(tst, "neo-hookean")
	for name, F := range tstFs() {
		σ, _ := m.CauchyStress(F, nil)
		D, _ := m.CauchyTangent(F, nil)
		A, err := FirstPiolaTangentFromCauchy(σ, D, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		P, _ := CauchyToFirstPiola(σ, F)
		Dback, err := CauchyTangentFromFirstPiola(P, A, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Float64(tst, name+": Dσ → A → Dσ", 1e-11, Dback.MaxDiff(D), 0)

		B, err := SecondPiolaTangentFromFirstPiola(P, A, F)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		S, _ := FirstPiolaToSecondPiola(P, F)
		Aback := FirstPiolaTangentFromSecondPiola(S, B, F)
		chk.Float64(tst, name+": A → B → A", 1e-11, Aback.MaxDiff(A), 0)

		checkFirstPiolaTangent(tst, name, m, F, nil, 1e-5, 1e-6)
	}

	// the Cauchy tangent of a native Piola model
	svk := tstModel(tst, "saint-venant-kirchhoff")
	for name, F := range tstFs() {
		checkCauchyTangent(tst, "svk: "+name, svk, F, nil, 1e-5, 1e-6)
	}
}

func Test_conv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv03. von Mises stress")

	chk.Float64(tst, "uniaxial", 1e-15, VonMises(ften.Diag(-2, 0, 0)), 2)
	chk.Float64(tst, "hydrostatic", 1e-15, VonMises(ften.Diag(5, 5, 5)), 0)
	var τ ften.Ten2
	τ[0][1], τ[1][0] = 1.5, 1.5
	chk.Float64(tst, "shear", 1e-15, VonMises(τ), math.Sqrt(3)*1.5)
}
