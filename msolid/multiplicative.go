// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Multiplicative implements a layered elastic-viscoplastic model with F = Fe · Fp
//  The elastic branch is evaluated at Fe = F Fp⁻¹ and its stress is pulled back to the
//  reference configuration:
//   P = det(Fp) Pe(Fe) Fp⁻ᵀ
//   ∂P_iJ/∂F_kL = det(Fp) ∂Pe_iA/∂Fe_kB Fp⁻¹_JA Fp⁻¹_LB
//  Fp evolves with dFp/dt = Dp Fp where Dp is given by the flow rule at the Mandel
//  stress M = Feᵀ Pe(Fe). The state is leaf(Fp, εp) or node(s_elastic, leaf(Fp, εp))
//  Note: the factor det(Fp) in P and in ψ = det(Fp) ψe(Fe) is intentional. It keeps P work
//        conjugate to F at fixed Fp and σ = σe(Fe) exact when det(Fp) drifts from 1 during
//        integration; for isochoric flow det(Fp) = 1 and P = Pe Fp⁻ᵀ
type Multiplicative struct {
	Elastic Model // elastic branch; may be composed
	Flow    Flow  // flow rule
	hasE    bool  // elastic branch has internal variables
}

// NewMultiplicative returns a new multiplicative combination
func NewMultiplicative(elastic Model, flow Flow) *Multiplicative {
	return &Multiplicative{Elastic: elastic, Flow: flow, hasE: elastic.InitState() != nil}
}

// NewHenckyViscoplastic returns the Hencky elastic-viscoplastic model
func NewHenckyViscoplastic(K, G, Y0, H, m, d0 float64) (model *Multiplicative, err error) {
	elastic, err := GetModel("hencky", []*dbf.P{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "G", V: G},
	})
	if err != nil {
		return
	}
	flow, err := GetFlow("viscoplastic", []*dbf.P{
		&dbf.P{N: "Y0", V: Y0},
		&dbf.P{N: "H", V: H},
		&dbf.P{N: "m", V: m},
		&dbf.P{N: "d0", V: d0},
	})
	if err != nil {
		return
	}
	return NewMultiplicative(elastic, flow), nil
}

// Name returns the name of this model
func (o *Multiplicative) Name() string {
	return io.Sf("multiplicative(%s,%s)", o.Elastic.Name(), o.Flow.Name())
}

// InitState returns the initial state
func (o *Multiplicative) InitState() *State {
	return NewNode(o.Elastic.InitState(), NewLeaf())
}

// split returns the state of the elastic branch and the leaf of this layer
func (o *Multiplicative) split(s *State) (sE, leaf *State, err error) {
	if o.hasE {
		if s == nil || s.IsLeaf() || !s.Right.IsLeaf() {
			err = chk.Err("%s: state must be a node with a leaf on the right: %w", o.Name(), ErrStateShape)
			return
		}
		return s.Left, s.Right, nil
	}
	if !s.IsLeaf() {
		err = chk.Err("%s: state must be a leaf: %w", o.Name(), ErrStateShape)
		return
	}
	return nil, s, nil
}

// kinematics computes Fe = F Fp⁻¹, Fp⁻¹ and det(Fp)
func (o *Multiplicative) kinematics(F ften.Ten2, s *State) (sE *State, Fe, Fpi ften.Ten2, Jp float64, err error) {
	_, err = checkJacobian(o.Name(), F)
	if err != nil {
		return
	}
	sE, leaf, err := o.split(s)
	if err != nil {
		return
	}
	Jp, err = checkJacobian(o.Name()+" (plastic part)", leaf.Fp)
	if err != nil {
		return
	}
	Fpi, err = leaf.Fp.Inv()
	if err != nil {
		return
	}
	Fe = F.Mul(Fpi)
	return
}

// ElasticPart returns Fe = F Fp⁻¹
func (o *Multiplicative) ElasticPart(F ften.Ten2, s *State) (Fe ften.Ten2, err error) {
	_, Fe, _, _, err = o.kinematics(F, s)
	return
}

// CauchyStress computes σ = σe(Fe)
func (o *Multiplicative) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	sE, Fe, _, _, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	σ, err = o.Elastic.CauchyStress(Fe, sE)
	if err != nil {
		err = o.wrap(err)
	}
	return
}

// CauchyTangent computes ∂σ_ij/∂F_kL = ∂σe_ij/∂Fe_kM Fp⁻¹_LM
func (o *Multiplicative) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
	sE, Fe, Fpi, _, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	De, err := o.Elastic.CauchyTangent(Fe, sE)
	if err != nil {
		return D, o.wrap(err)
	}
	return De.Leg(3, Fpi), nil
}

// FirstPiola computes P = det(Fp) Pe(Fe) Fp⁻ᵀ
func (o *Multiplicative) FirstPiola(F ften.Ten2, s *State) (P ften.Ten2, err error) {
	sE, Fe, Fpi, Jp, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	Pe, err := FirstPiolaStress(o.Elastic, Fe, sE)
	if err != nil {
		return P, o.wrap(err)
	}
	return Pe.Mul(Fpi.T()).Scale(Jp), nil
}

// FirstPiolaTangent computes ∂P/∂F by pulling back the tangent of the elastic branch on
// the second and fourth legs. When the elastic branch is itself multiplicative, its own
// pull-back composes with this one so that inner tangents receive both Fp⁻ᵀ factors
func (o *Multiplicative) FirstPiolaTangent(F ften.Ten2, s *State) (A ften.Ten4, err error) {
	sE, Fe, Fpi, Jp, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	Ae, err := FirstPiolaTangent(o.Elastic, Fe, sE)
	if err != nil {
		return A, o.wrap(err)
	}
	return Ae.Leg(1, Fpi).Leg(3, Fpi).Scale(Jp), nil
}

// Energy computes ψ = det(Fp) ψe(Fe)
func (o *Multiplicative) Energy(F ften.Ten2, s *State) (ψ float64, err error) {
	sE, Fe, _, Jp, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	ψe, err := Energy(o.Elastic, Fe, sE)
	if err != nil {
		return 0, o.wrap(err)
	}
	return Jp * ψe, nil
}

// MandelStress computes M = Feᵀ Pe(Fe) at the intermediate configuration
func (o *Multiplicative) MandelStress(F ften.Ten2, s *State) (M ften.Ten2, err error) {
	sE, Fe, _, _, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	M, err = MandelStress(o.Elastic, Fe, sE)
	if err != nil {
		err = o.wrap(err)
	}
	return
}

// Evolution computes dFp/dt = Dp Fp and dεp/dt for this layer and dispatches Fe to the
// elastic branch for its own internal variables
func (o *Multiplicative) Evolution(F ften.Ten2, s *State) (rate *State, err error) {
	sE, Fe, _, _, err := o.kinematics(F, s)
	if err != nil {
		return
	}
	_, leaf, _ := o.split(s)
	M, err := MandelStress(o.Elastic, Fe, sE)
	if err != nil {
		return nil, o.wrap(err)
	}
	Dp, eqpsRate, err := o.Flow.Rate(M, leaf.Eqps)
	if err != nil {
		return nil, o.wrap(err)
	}
	leafRate := &State{Fp: Dp.Mul(leaf.Fp), Eqps: eqpsRate}
	if !o.hasE {
		return leafRate, nil
	}
	rE, err := o.Elastic.Evolution(Fe, sE)
	if err != nil {
		return nil, o.wrap(err)
	}
	return &State{Left: rE, Right: leafRate}, nil
}

func (o *Multiplicative) wrap(err error) error {
	return chk.Err("%s: %w", o.Name(), err)
}
