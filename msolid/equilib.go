// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Equilibrium solves for the deformation gradient of a material point under a partially
// prescribed load at fixed internal state
//  The unknowns are x = {vec(F), μ} and the residual is
//   r = { vec(P(F)) - Aᵀ μ ; A vec(F) - b }
//  where μ are the tractions conjugate to the prescribed components of F. Components of
//  P that are not prescribed through A are thus driven to zero
type Equilibrium struct {

	// input
	Mdl  Model         // constitutive model
	Conf *SolverConfig // Newton parameters

	// statistics
	Nsolves int // number of calls to Solve
	Nit     int // total number of Newton iterations

	// auxiliary
	μ la.Vector // multipliers of the last successful solve
}

// NewEquilibrium returns a new equilibrium solver
func NewEquilibrium(mdl Model, conf *SolverConfig) *Equilibrium {
	if conf == nil {
		conf = NewSolverConfig()
	}
	return &Equilibrium{Mdl: mdl, Conf: conf}
}

// SolveLoad solves equilibrium under the constraint given by load at time t
func (o *Equilibrium) SolveLoad(load AppliedLoad, t float64, Fguess ften.Ten2, s *State) (F ften.Ten2, err error) {
	c, err := load.Constraint(t)
	if err != nil {
		return F, &SolverError{Model: o.Mdl.Name(), Load: load.Name(), Time: t, Err: err}
	}
	F, err = o.Solve(Fguess, s, c)
	if err != nil {
		if e, ok := err.(*SolverError); ok {
			e.Load, e.Time = load.Name(), t
		}
	}
	return
}

// Solve finds F such that c is satisfied and the free components of P vanish
//  Fguess -- initial guess; e.g. the last converged F
//  s      -- internal state (fixed during the solve)
func (o *Equilibrium) Solve(Fguess ften.Ten2, s *State, c *EqualityConstraint) (F ften.Ten2, err error) {

	// check
	o.Nsolves++
	if err = c.Check(); err != nil {
		return F, &SolverError{Model: o.Mdl.Name(), Err: err}
	}
	if err = o.Conf.check(); err != nil {
		return F, &SolverError{Model: o.Mdl.Name(), Err: err}
	}

	// unknowns
	m := c.Ncons()
	neq := 9 + m
	x := la.NewVector(neq)
	ften.ToVec(x, 0, Fguess)
	if len(o.μ) == m {
		copy(x[9:], o.μ)
	}

	// callbacks
	ffcn := func(r, x la.Vector) {
		Fx := ften.FromVec(x, 0)
		P, e := FirstPiolaStress(o.Mdl, Fx, s)
		if e != nil {
			panic(e)
		}
		ften.ToVec(r, 0, P)
		for i := 0; i < m; i++ {
			for I := 0; I < 9; I++ {
				r[I] -= c.A.Get(i, I) * x[9+i]
			}
			r[9+i] = -c.B[i]
			for J := 0; J < 9; J++ {
				r[9+i] += c.A.Get(i, J) * x[J]
			}
		}
	}
	jfcn := func(dfdx *la.Matrix, x la.Vector) {
		Fx := ften.FromVec(x, 0)
		A, e := FirstPiolaTangent(o.Mdl, Fx, s)
		if e != nil {
			panic(e)
		}
		dfdx.Fill(0)
		ften.ToMat(dfdx, A)
		for i := 0; i < m; i++ {
			for I := 0; I < 9; I++ {
				dfdx.Set(I, 9+i, -c.A.Get(i, I))
				dfdx.Set(9+i, I, c.A.Get(i, I))
			}
		}
	}

	// solve
	var sol num.NlSolver
	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(r)
			}
		}()
		sol.Init(neq, ffcn, nil, jfcn, true, false, o.Conf.prms())
		sol.Solve(x, !o.Conf.Verbose)
		return
	}()
	o.Nit += sol.It
	if err != nil {
		return F, &SolverError{Model: o.Mdl.Name(), Iters: sol.It, Err: err}
	}

	// results
	F = ften.FromVec(x, 0)
	if _, err = checkJacobian(o.Mdl.Name(), F); err != nil {
		return F, &SolverError{Model: o.Mdl.Name(), Iters: sol.It, Err: err}
	}
	o.μ = append(o.μ[:0], x[9:]...)
	if o.Conf.Verbose {
		io.Pforan("F = %v\n", F)
	}
	return
}

// Reactions returns the tractions conjugate to the prescribed components of the last solve
func (o *Equilibrium) Reactions() la.Vector {
	return append(la.Vector{}, o.μ...)
}
