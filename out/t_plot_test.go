// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/mrbuche/conspire.rs-sub002/msolid"
)

// runDriver runs a material point under uniaxial stretch 1 → 1.2 → 1
func runDriver(tst *testing.T, mdl msolid.Model) *msolid.Driver {
	stretch := dbf.New("pts", dbf.Params{
		&dbf.P{N: "t0", V: 0}, &dbf.P{N: "y0", V: 1},
		&dbf.P{N: "t1", V: 20}, &dbf.P{N: "y1", V: 1.2},
		&dbf.P{N: "t2", V: 40}, &dbf.P{N: "y2", V: 1},
	})
	drv := msolid.NewDriver(mdl, &msolid.UniaxialStress{Stretch: stretch}, nil, nil)
	err := drv.Run([]float64{0, 20, 40})
	if err != nil {
		tst.Errorf("%v\n", err)
		return nil
	}
	return drv
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. results of viscoplastic material point")

	mdl, err := msolid.NewHenckyViscoplastic(330, 110, 3, 10, 1, 0.008)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	drv := runDriver(tst, mdl)
	if drv == nil {
		return
	}
	err = Start(drv)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("keys = %v\n", Keys())
	chk.Int(tst, "number of keys", len(Keys()), 1+27+6)
	chk.String(tst, Keys()[0], "t")

	// series
	t, _ := GetRes("t")
	chk.Array(tst, "t", 1e-17, t, drv.Times)
	λ, _ := GetRes("F11")
	σ, _ := GetRes("sig11")
	vm, _ := GetRes("vm")
	ep, _ := GetRes("ep")
	P22, _ := GetRes("P22")
	for i := range t {
		chk.Float64(tst, "F11", 1e-17, λ[i], drv.F[i][0][0])
		chk.Float64(tst, "P22", 1e-7, P22[i], 0)
		chk.Float64(tst, "vm", 1e-6, vm[i], math.Abs(σ[i]))
		chk.Float64(tst, "ep", 1e-17, ep[i], drv.States[i].Eqps)
	}
	detFp1, _ := GetRes("detFp1")
	ep1, _ := GetRes("ep1")
	chk.Array(tst, "ep1", 1e-17, ep1, ep)
	for _, v := range detFp1 {
		chk.Float64(tst, "det(Fp1)", 1e-4, v, 1)
	}
	_, err = GetRes("sig44")
	if err == nil {
		tst.Errorf("GetRes should have failed with unknown key\n")
		return
	}

	// selected times
	SelectTimes([]float64{0, 20, -1})
	chk.Ints(tst, "TimeInds", TimeInds[:1], []int{0})
	chk.Array(tst, "Times", 1e-17, Times, []float64{0, 20, 40})
	λsel, _ := GetRes("F11")
	chk.Array(tst, "λ at selected times", 1e-12, λsel, []float64{1, 1.2, 1})

	// table
	dirout := filepath.Join(os.TempDir(), "conspire-out01")
	fn, err := WriteTable(dirout, "out01", []string{"t", "F11", "sig11"})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	keys, tab := io.ReadTable(fn)
	chk.Strings(tst, "keys", keys, []string{"t", "F11", "sig11"})
	chk.Array(tst, "t", 1e-14, tab["t"], []float64{0, 20, 40})
	σsel, _ := GetRes("sig11")
	chk.Array(tst, "sig11", 1e-12, tab["sig11"], σsel)

	// all times
	SelectTimes(nil)
	chk.Int(tst, "len(Times)", len(Times), drv.Nout())
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. energy and plots")

	// hyperelastic model has energy
	hencky, err := msolid.GetModel("hencky", dbf.Params{&dbf.P{N: "K", V: 330}, &dbf.P{N: "G", V: 110}})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	drv := runDriver(tst, hencky)
	if drv == nil {
		return
	}
	err = Start(drv)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	ψ, err := GetRes("psi")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "ψ(0)", 1e-12, ψ[0], 0)
	if ψ[len(ψ)/2] <= 0 {
		tst.Errorf("energy must be positive under stretch\n")
	}
	if _, err = GetRes("detFp1"); err == nil {
		tst.Errorf("stateless model has no plastic layers\n")
		return
	}

	// elastic model without energy
	almansi, err := msolid.GetModel("almansi-hamel", dbf.Params{&dbf.P{N: "K", V: 330}, &dbf.P{N: "G", V: 110}})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	drv = runDriver(tst, almansi)
	if drv == nil {
		return
	}
	err = Start(drv)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if _, ok := Results["psi"]; ok {
		tst.Errorf("almansi-hamel model has no energy\n")
		return
	}

	// labels
	chk.String(tst, GetTexLabel("sig12", ""), "$\\sigma_{12}$")
	chk.String(tst, GetTexLabel("F11", "[-]"), "$F_{11}$ [-]")
	chk.String(tst, GetTexLabel("t", "[s]"), "$t$ [s]")

	// plots
	Splot("stress")
	err = Plot("t", "sig11", &plt.A{C: "r", M: "."})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, Csplot.Ylbl, "$\\sigma_{11}$")
	Splot("")
	err = Plot("F11", "sig11", nil)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	err = Plot("t", []float64{1, 2}, nil)
	if err == nil {
		tst.Errorf("Plot should have failed with different lengths\n")
		return
	}
	if chk.Verbose {
		err = Draw("/tmp/conspire", "out02", false, nil)
		if err != nil {
			tst.Errorf("%v\n", err)
		}
	}
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. parallel plastic layers")

	prms := dbf.Params{&dbf.P{N: "K", V: 330}, &dbf.P{N: "G", V: 110}}
	flowPrms := func(Y0, H, m, d0 float64) dbf.Params {
		return dbf.Params{&dbf.P{N: "Y0", V: Y0}, &dbf.P{N: "H", V: H}, &dbf.P{N: "m", V: m}, &dbf.P{N: "d0", V: d0}}
	}
	var layers [2]msolid.Model
	for k, fp := range []dbf.Params{flowPrms(3, 10, 1, 0.008), flowPrms(2, 0, 2, 0.004)} {
		elastic, err := msolid.GetModel("hencky", prms)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		flow, err := msolid.GetFlow("viscoplastic", fp)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		layers[k] = msolid.NewMultiplicative(elastic, flow)
	}
	drv := runDriver(tst, msolid.NewAdditive(layers[0], layers[1]))
	if drv == nil {
		return
	}
	if err := Start(drv); err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// one det(Fp) and εp per layer; the total εp is their sum
	ep, _ := GetRes("ep")
	for k := 1; k <= 2; k++ {
		detFp, err := GetRes(io.Sf("detFp%d", k))
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		epk, _ := GetRes(io.Sf("ep%d", k))
		for i, s := range drv.States {
			leaf := s.Leaves()[k-1]
			chk.Float64(tst, io.Sf("det(Fp%d)", k), 1e-17, detFp[i], leaf.Fp.Det())
			chk.Float64(tst, io.Sf("ep%d", k), 1e-17, epk[i], leaf.Eqps)
			chk.Float64(tst, io.Sf("det(Fp%d) ≈ 1", k), 1e-4, detFp[i], 1)
		}
		if epk[len(epk)-1] <= 0 {
			tst.Errorf("layer %d must flow\n", k)
		}
	}
	ep1, _ := GetRes("ep1")
	ep2, _ := GetRes("ep2")
	for i := range ep {
		chk.Float64(tst, "ep", 1e-15, ep[i], ep1[i]+ep2[i])
	}
	chk.String(tst, GetTexLabel("detFp2", ""), "$\\det(F_{p2})$")
	chk.String(tst, GetTexLabel("ep1", ""), "$\\varepsilon_{p1}$")
}
