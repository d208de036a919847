// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Additive combines two models acting in parallel at the same deformation
//  σ = σA(F) + σB(F),  ∂σ/∂F = ∂σA/∂F + ∂σB/∂F,  ψ = ψA(F) + ψB(F)
//  The state is nil, the state of the only stateful branch, or node(sA, sB)
type Additive struct {
	A, B Model // branches
	hasA bool  // A has internal variables
	hasB bool  // B has internal variables
}

// NewAdditive returns a new additive combination of two models
func NewAdditive(a, b Model) *Additive {
	return &Additive{A: a, B: b, hasA: a.InitState() != nil, hasB: b.InitState() != nil}
}

// Name returns the name of this model
func (o *Additive) Name() string {
	return io.Sf("additive(%s,%s)", o.A.Name(), o.B.Name())
}

// InitState returns the initial state
func (o *Additive) InitState() *State {
	return NewNode(o.A.InitState(), o.B.InitState())
}

// split returns the states of each branch
func (o *Additive) split(s *State) (sA, sB *State, err error) {
	switch {
	case o.hasA && o.hasB:
		if s == nil || s.IsLeaf() {
			err = chk.Err("%s: state must be a node: %w", o.Name(), ErrStateShape)
			return
		}
		return s.Left, s.Right, nil
	case o.hasA:
		return s, nil, nil
	case o.hasB:
		return nil, s, nil
	}
	return
}

// join groups the rates of each branch with the same shape as the state
func (o *Additive) join(rA, rB *State) *State {
	if o.hasA && o.hasB {
		return &State{Left: rA, Right: rB}
	}
	if o.hasA {
		return rA
	}
	return rB
}

// CauchyStress computes σ
func (o *Additive) CauchyStress(F ften.Ten2, s *State) (σ ften.Ten2, err error) {
	sA, sB, err := o.split(s)
	if err != nil {
		return
	}
	σA, err := o.A.CauchyStress(F, sA)
	if err != nil {
		return σ, o.wrap(err)
	}
	σB, err := o.B.CauchyStress(F, sB)
	if err != nil {
		return σ, o.wrap(err)
	}
	return σA.Add(σB), nil
}

// CauchyTangent computes ∂σ/∂F
func (o *Additive) CauchyTangent(F ften.Ten2, s *State) (D ften.Ten4, err error) {
	sA, sB, err := o.split(s)
	if err != nil {
		return
	}
	DA, err := o.A.CauchyTangent(F, sA)
	if err != nil {
		return D, o.wrap(err)
	}
	DB, err := o.B.CauchyTangent(F, sB)
	if err != nil {
		return D, o.wrap(err)
	}
	return DA.Add(DB), nil
}

// FirstPiola computes P
func (o *Additive) FirstPiola(F ften.Ten2, s *State) (P ften.Ten2, err error) {
	sA, sB, err := o.split(s)
	if err != nil {
		return
	}
	PA, err := FirstPiolaStress(o.A, F, sA)
	if err != nil {
		return P, o.wrap(err)
	}
	PB, err := FirstPiolaStress(o.B, F, sB)
	if err != nil {
		return P, o.wrap(err)
	}
	return PA.Add(PB), nil
}

// FirstPiolaTangent computes ∂P/∂F
func (o *Additive) FirstPiolaTangent(F ften.Ten2, s *State) (A ften.Ten4, err error) {
	sA, sB, err := o.split(s)
	if err != nil {
		return
	}
	AA, err := FirstPiolaTangent(o.A, F, sA)
	if err != nil {
		return A, o.wrap(err)
	}
	AB, err := FirstPiolaTangent(o.B, F, sB)
	if err != nil {
		return A, o.wrap(err)
	}
	return AA.Add(AB), nil
}

// Energy computes ψ
func (o *Additive) Energy(F ften.Ten2, s *State) (ψ float64, err error) {
	sA, sB, err := o.split(s)
	if err != nil {
		return
	}
	ψA, err := Energy(o.A, F, sA)
	if err != nil {
		return 0, o.wrap(err)
	}
	ψB, err := Energy(o.B, F, sB)
	if err != nil {
		return 0, o.wrap(err)
	}
	return ψA + ψB, nil
}

// Evolution computes the rates of the internal variables of both branches
func (o *Additive) Evolution(F ften.Ten2, s *State) (rate *State, err error) {
	sA, sB, err := o.split(s)
	if err != nil {
		return
	}
	var rA, rB *State
	if o.hasA {
		rA, err = o.A.Evolution(F, sA)
		if err != nil {
			return nil, o.wrap(err)
		}
	}
	if o.hasB {
		rB, err = o.B.Evolution(F, sB)
		if err != nil {
			return nil, o.wrap(err)
		}
	}
	return o.join(rA, rB), nil
}

func (o *Additive) wrap(err error) error {
	return chk.Err("%s: %w", o.Name(), err)
}
