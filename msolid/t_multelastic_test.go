// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

func Test_multelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multelast01. split of F")

	m, err := NewMultiplicativeElastic(tstModel(tst, "hencky"), tstModel(tst, "neo-hookean"))
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, m.Name(), "multelastic(hencky,neo-hookean)")
	if m.InitState() != nil {
		tst.Errorf("state must be empty\n")
	}

	// undeformed
	F1, F2, err := m.Split(ften.I2(), nil)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Deep2(tst, "F1(I)", 1e-12, F1.Deep2(), ften.I2().Deep2())
	chk.Deep2(tst, "F2(I)", 1e-12, F2.Deep2(), ften.I2().Deep2())

	for name, F := range tstFs() {
		F1, F2, err = m.Split(F, nil)
		if err != nil {
			tst.Errorf("%s: %v\n", name, err)
			return
		}
		io.Pforan("%s: F2 = %v\n", name, F2)
		chk.Deep2(tst, name+": F1·F2", 1e-13, F1.Mul(F2).Deep2(), F.Deep2())
		chk.Deep2(tst, name+": F2ᵀ", 1e-15, F2.T().Deep2(), F2.Deep2())

		// balance at the interface
		P1, _ := FirstPiolaStress(m.First, F1, nil)
		P2, _ := FirstPiolaStress(m.Second, F2, nil)
		F2i := mustInv(tst, F2)
		G := P2.Sub(F1.T().Mul(P1).Mul(F2i.T()))
		chk.Deep2(tst, name+": sym(G)", 1e-8, G.Sym().Deep2(), ften.Ten2{}.Deep2())

		// stress and energy
		P, _ := m.FirstPiola(F, nil)
		chk.Deep2(tst, name+": P", 1e-13, P.Deep2(), P1.Mul(F2i.T()).Deep2())
		ψ, _ := m.Energy(F, nil)
		ψ1, _ := Energy(m.First, F1, nil)
		ψ2, _ := Energy(m.Second, F2, nil)
		chk.Float64(tst, name+": ψ", 1e-13, ψ, ψ1+ψ2)
	}
}

func Test_multelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multelast02. derivatives")

	m, err := NewMultiplicativeElastic(tstModel(tst, "neo-hookean"), tstModel(tst, "saint-venant-kirchhoff"))
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for _, F := range []ften.Ten2{tstFa, tstFb, tstR.Mul(tstFb)} {
		checkEnergy(tst, "series", m, F, nil, 1e-5, 1e-6)
		checkFirstPiolaTangent(tst, "series", m, F, nil, 1e-5, 1e-5)
		checkCauchyTangent(tst, "series", m, F, nil, 1e-5, 1e-5)
	}
}

func Test_multelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multelast03. identical Hencky models")

	// Kirchhoff stress of Hencky is linear in ln V, thus σ = σ(F)/2 for stretches
	e := tstModel(tst, "hencky")
	m, err := NewMultiplicativeElastic(e, e)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	F := ften.Diag(1.2, 0.9, 1.05)
	σ, err := m.CauchyStress(F, nil)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	σe, _ := e.CauchyStress(F, nil)
	chk.Deep2(tst, "σ", 1e-12, σ.Deep2(), σe.Scale(0.5).Deep2())
	F1, F2, _ := m.Split(F, nil)
	chk.Deep2(tst, "F1 = F2", 1e-12, F1.Deep2(), F2.Deep2())
}

func Test_multelast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multelast04. errors")

	vp := NewMultiplicative(tstModel(tst, "hencky"), tstFlow(tst, 3, 1, 1, 0.008))
	if _, err := NewMultiplicativeElastic(vp, tstModel(tst, "hencky")); !errors.Is(err, ErrStateShape) {
		tst.Errorf("stateful branch should have been reported. err = %v\n", err)
	}
	m, _ := NewMultiplicativeElastic(tstModel(tst, "hencky"), tstModel(tst, "hencky"))
	if _, err := m.CauchyStress(ften.Diag(-1, 1, 1), nil); !errors.Is(err, ErrJacobian) {
		tst.Errorf("negative Jacobian should have been reported. err = %v\n", err)
	}
	m.Conf.MaxIt = 0
	if _, _, err := m.Split(tstFa, nil); err == nil {
		tst.Errorf("invalid solver parameters should have been reported\n")
	}
}
