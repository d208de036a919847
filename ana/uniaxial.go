// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for material points under homogeneous deformation
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// moduli reads K and G or E and nu from prms
func moduli(prms dbf.Params) (K, G float64, err error) {
	var E, ν float64
	var hasE, hasν bool
	for _, p := range prms {
		switch p.N {
		case "K":
			K = p.V
		case "G":
			G = p.V
		case "E":
			E, hasE = p.V, true
		case "nu":
			ν, hasν = p.V, true
		}
	}
	if hasE && hasν {
		K = E / (3.0 * (1.0 - 2.0*ν))
		G = E / (2.0 * (1.0 + ν))
	}
	if K <= 0 || G <= 0 {
		err = chk.Err("bulk and shear moduli must be positive. K=%g, G=%g are invalid", K, G)
	}
	return
}

// HenckyUniaxial implements the uniaxial stress solution of the Hencky model
//  With logarithmic strains the response is linear:
//   ln μ = -ν ln λ,  τ11 = E ln λ,  σ11 = τ11 / J,  J = λ μ²
//  where λ is the axial stretch and μ the lateral stretch
type HenckyUniaxial struct {
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *HenckyUniaxial) Init(prms dbf.Params) (err error) {
	K, G, err := moduli(prms)
	if err != nil {
		return
	}
	o.E = 9.0 * K * G / (3.0*K + G)
	o.ν = (3.0*K - 2.0*G) / (2.0 * (3.0*K + G))
	return
}

// Solve computes the axial Cauchy stress and the lateral stretch
func (o HenckyUniaxial) Solve(λ float64) (σ11, μ float64) {
	μ = math.Pow(λ, -o.ν)
	σ11 = o.E * math.Log(λ) / (λ * μ * μ)
	return
}

// NeoHookeanUniaxial implements the uniaxial stress solution of the compressible Neo-Hookean model
//  The lateral stretch μ is found from σ22 = 0:
//   G J^(-5/3) (μ² - λ²)/3 + K/2 (J - 1/J) = 0,  J = λ μ²
type NeoHookeanUniaxial struct {
	K float64 // bulk modulus
	G float64 // shear modulus
}

// Init initialises this structure
func (o *NeoHookeanUniaxial) Init(prms dbf.Params) (err error) {
	o.K, o.G, err = moduli(prms)
	return
}

// Solve computes the axial Cauchy stress and the lateral stretch
func (o NeoHookeanUniaxial) Solve(λ float64) (σ11, μ float64, err error) {
	if λ <= 0 {
		return 0, 0, chk.Err("stretch must be positive. λ=%g is invalid", λ)
	}
	ffcn := func(f, x la.Vector) {
		f[0] = o.lateral(λ, x[0])
	}
	jfcn := func(dfdx *la.Matrix, x la.Vector) {
		m := x[0]
		J := λ * m * m
		dJ := 2.0 * λ * m
		a := math.Pow(J, -5.0/3.0)
		dfdx.Set(0, 0, o.G*(-5.0/3.0*a/J*dJ*(m*m-λ*λ)/3.0+a*2.0*m/3.0)+o.K*(1.0+1.0/(J*J))*dJ/2.0)
	}
	x := la.Vector{1.0 / math.Sqrt(λ)}
	var sol num.NlSolver
	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = chk.Err("cannot find lateral stretch for λ=%g: %v", λ, r)
			}
		}()
		sol.Init(1, ffcn, nil, jfcn, true, false, nil)
		sol.Solve(x, true)
		return
	}()
	if err != nil {
		return
	}
	μ = x[0]
	J := λ * μ * μ
	σ11 = o.G*math.Pow(J, -5.0/3.0)*2.0*(λ*λ-μ*μ)/3.0 + o.K*(J-1.0/J)/2.0
	return
}

// lateral computes σ22 for axial stretch λ and lateral stretch μ
func (o NeoHookeanUniaxial) lateral(λ, μ float64) float64 {
	J := λ * μ * μ
	return o.G*math.Pow(J, -5.0/3.0)*(μ*μ-λ*λ)/3.0 + o.K*(J-1.0/J)/2.0
}

// Curve computes σ11 for np stretches between λmin and λmax
func (o NeoHookeanUniaxial) Curve(λmin, λmax float64, np int) (Λ, S []float64, err error) {
	Λ = utl.LinSpace(λmin, λmax, np)
	S = make([]float64, np)
	for i, λ := range Λ {
		S[i], _, err = o.Solve(λ)
		if err != nil {
			return
		}
	}
	return
}
