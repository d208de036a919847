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

func Test_additive01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("additive01. elastic branches")

	a := tstModel(tst, "hencky")
	b := tstModel(tst, "neo-hookean")
	m := NewAdditive(a, b)
	chk.String(tst, m.Name(), "additive(hencky,neo-hookean)")
	if m.InitState() != nil {
		tst.Errorf("state must be empty\n")
	}
	for name, F := range tstFs() {
		σ, err := m.CauchyStress(F, nil)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		σa, _ := a.CauchyStress(F, nil)
		σb, _ := b.CauchyStress(F, nil)
		chk.Deep2(tst, name+": σ", 1e-13, σ.Deep2(), σa.Add(σb).Deep2())

		D, _ := m.CauchyTangent(F, nil)
		Da, _ := a.CauchyTangent(F, nil)
		Db, _ := b.CauchyTangent(F, nil)
		chk.Float64(tst, name+": ∂σ/∂F", 1e-12, D.MaxDiff(Da.Add(Db)), 0)

		A, _ := FirstPiolaTangent(m, F, nil)
		Aa, _ := FirstPiolaTangent(a, F, nil)
		Ab, _ := FirstPiolaTangent(b, F, nil)
		chk.Float64(tst, name+": ∂P/∂F", 1e-12, A.MaxDiff(Aa.Add(Ab)), 0)

		ψ, err := Energy(m, F, nil)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		ψa, _ := Energy(a, F, nil)
		ψb, _ := Energy(b, F, nil)
		chk.Float64(tst, name+": ψ", 1e-13, ψ, ψa+ψb)

		checkEnergy(tst, name, m, F, nil, 1e-5, 1e-7)
	}

	// one branch without energy
	n := NewAdditive(a, tstModel(tst, "almansi-hamel"))
	if _, err := Energy(n, tstFa, nil); !errors.Is(err, ErrNotHyperelastic) {
		tst.Errorf("missing energy should have been reported. err = %v\n", err)
	}
}

func Test_additive02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("additive02. viscoplastic branches")

	e := tstModel(tst, "saint-venant-kirchhoff")
	vp := NewMultiplicative(tstModel(tst, "hencky"), tstFlow(tst, 3, 1, 1, 0.008))

	// elastic + viscoplastic: the state is the leaf of the viscoplastic branch
	m := NewAdditive(e, vp)
	s := m.InitState()
	if !s.IsLeaf() {
		tst.Errorf("state must be a leaf. got %v\n", s)
		return
	}
	s.Fp = ften.Ten2{
		{1.02, 0.01, 0},
		{0.01, 0.99, 0},
		{0, 0, 1.0 / (1.02*0.99 - 0.0001)},
	}
	s.Eqps = 0.05
	σ, _ := m.CauchyStress(tstFa, s)
	σe, _ := e.CauchyStress(tstFa, nil)
	σvp, _ := vp.CauchyStress(tstFa, s)
	chk.Deep2(tst, "σ", 1e-13, σ.Deep2(), σe.Add(σvp).Deep2())
	rate, err := m.Evolution(tstFa, s)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	rvp, _ := vp.Evolution(tstFa, s)
	chk.String(tst, rate.String(), rvp.String())
	checkFirstPiolaTangent(tst, "elastic+vp", m, tstFa, s, 1e-5, 1e-6)

	// viscoplastic + viscoplastic: node(leaf, leaf)
	vp2 := NewMultiplicative(tstModel(tst, "neo-hookean"), tstFlow(tst, 5, 0, 0.5, 0.01))
	mm := NewAdditive(vp, vp2)
	ss := mm.InitState()
	chk.Int(tst, "len(state)", ss.Len(), 2*NLEAF)
	ss.Left.Fp = s.Fp
	io.Pforan("state = %v\n", ss)
	rate, err = mm.Evolution(tstFb, ss)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	r1, _ := vp.Evolution(tstFb, ss.Left)
	r2, _ := vp2.Evolution(tstFb, ss.Right)
	chk.String(tst, rate.String(), NewNode(r1, r2).String())
	checkCauchyTangent(tst, "vp+vp", mm, tstFb, ss, 1e-5, 1e-6)

	// wrong shapes
	if _, err = mm.CauchyStress(tstFb, NewLeaf()); !errors.Is(err, ErrStateShape) {
		tst.Errorf("wrong shape should have been reported. err = %v\n", err)
	}

	// errors carry the composition path
	_, err = mm.CauchyStress(ften.Diag(1, 1, -1), ss)
	if !errors.Is(err, ErrJacobian) {
		tst.Errorf("negative Jacobian should have been reported. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.String(tst, err.Error()[:len(mm.Name())], mm.Name())
}
