// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// Driver runs a material point through a prescribed load history
//  The internal state evolves according to the model while F satisfies equilibrium at every
//  instant (index-1 differential-algebraic system). Each Runge-Kutta stage solves
//  equilibrium for the stage state, warm-started from the last accepted F. The accepted
//  F is committed by solving equilibrium again for the accepted state
type Driver struct {

	// input
	Mdl     Model         // constitutive model
	Load    AppliedLoad   // prescribed load
	Sconf   *SolverConfig // Newton parameters
	Iconf   *IntegConfig  // Runge-Kutta parameters
	Verbose bool          // show accepted steps

	// results: one entry per accepted step, including the initial state
	Times  []float64   // times
	F      []ften.Ten2 // deformation gradients
	States []*State    // internal states; nil for stateless models

	// statistics
	Naccepted int // number of accepted steps
	Nrejected int // number of rejected steps
	Nsteps    int // number of attempted steps
	Nfeval    int // number of evaluations of the rate of the state
	Nsolves   int // number of equilibrium solves
	Nit       int // total number of Newton iterations
}

// NewDriver returns a new driver
func NewDriver(mdl Model, load AppliedLoad, sconf *SolverConfig, iconf *IntegConfig) *Driver {
	if sconf == nil {
		sconf = NewSolverConfig()
	}
	if iconf == nil {
		iconf = NewIntegConfig("dopri5")
	}
	return &Driver{Mdl: mdl, Load: load, Sconf: sconf, Iconf: iconf, Verbose: chk.Verbose}
}

// Run integrates the model over the given times
//  times -- at least two strictly increasing times; all of them are output times
func (o *Driver) Run(times []float64) (err error) {

	// check times
	name := o.Mdl.Name()
	if len(times) < 2 {
		return &IntegrationError{Model: name, Err: chk.Err("at least two times are required; %d given: %w", len(times), ErrTimeInterval)}
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return &IntegrationError{Model: name, Time: times[i], Err: chk.Err("times must be strictly increasing; t[%d]=%g ≤ t[%d]=%g: %w", i, times[i], i-1, times[i-1], ErrTimeInterval)}
		}
	}

	// solvers
	eq := NewEquilibrium(o.Mdl, o.Sconf)
	integ, err := NewIntegrator(o.Iconf)
	if err != nil {
		return &IntegrationError{Model: name, Time: times[0], Err: err}
	}
	defer func() {
		o.Naccepted, o.Nrejected, o.Nsteps, o.Nfeval = integ.Naccepted, integ.Nrejected, integ.Nsteps, integ.Nfeval
		o.Nsolves, o.Nit = eq.Nsolves, eq.Nit
	}()

	// initial equilibrium
	t0 := times[0]
	s := o.Mdl.InitState()
	Facc, err := eq.SolveLoad(o.Load, t0, ften.I2(), s)
	if err != nil {
		return &IntegrationError{Model: name, Time: t0, Err: err}
	}
	o.Times, o.F, o.States = []float64{t0}, []ften.Ten2{Facc}, []*State{s.GetCopy()}
	if o.Verbose {
		io.Pf("%s under %s: t = %g\n", name, o.Load.Name(), t0)
	}

	// state vector and workspace
	y := la.NewVector(s.Len())
	s.Flatten(y)
	sw := s.GetCopy()
	Fstage := Facc

	// rate of the state; equilibrium is solved for every stage
	fcn := func(f la.Vector, h, t float64, ys la.Vector) (err error) {
		if err = sw.Unflatten(ys); err != nil {
			return
		}
		F, err := eq.SolveLoad(o.Load, t, Facc, sw)
		if err != nil {
			return
		}
		Fstage = F
		rate, err := o.Mdl.Evolution(F, sw)
		if err != nil {
			return chk.Err("evolution of %s failed at t = %g: %w", name, t, err)
		}
		if rate.Len() != len(f) {
			return chk.Err("rate of %s has %d values but the state has %d: %w", name, rate.Len(), len(f), ErrStateShape)
		}
		rate.Flatten(f)
		return
	}

	// accepted steps: equilibrium is re-solved for the accepted state
	out := func(t float64, ys la.Vector) (err error) {
		sacc := s.GetCopy()
		if err = sacc.Unflatten(ys); err != nil {
			return
		}
		Facc, err = eq.SolveLoad(o.Load, t, Fstage, sacc)
		if err != nil {
			return
		}
		o.Times = append(o.Times, t)
		o.F = append(o.F, Facc)
		o.States = append(o.States, sacc)
		if o.Verbose {
			io.Pf("%s under %s: t = %g (h = %g)\n", name, o.Load.Name(), t, integ.StepSize())
		}
		return
	}

	// integrate between output times
	for i := 1; i < len(times); i++ {
		err = integ.Solve(y, times[i-1], times[i], fcn, out)
		if err != nil {
			return &IntegrationError{Model: name, Time: integ.Time(), H: integ.StepSize(), Step: integ.Nsteps, Err: err}
		}
	}
	return
}

// Nout returns the number of output steps
func (o *Driver) Nout() int {
	return len(o.Times)
}

// CauchyStress computes σ at output step i
func (o *Driver) CauchyStress(i int) (σ ften.Ten2, err error) {
	return o.Mdl.CauchyStress(o.F[i], o.States[i])
}

// FirstPiolaStress computes P at output step i
func (o *Driver) FirstPiolaStress(i int) (P ften.Ten2, err error) {
	return FirstPiolaStress(o.Mdl, o.F[i], o.States[i])
}

// Series extracts a scalar from every output step
func (o *Driver) Series(fcn func(t float64, F ften.Ten2, s *State) (float64, error)) (res []float64, err error) {
	res = make([]float64, len(o.Times))
	for i, t := range o.Times {
		res[i], err = fcn(t, o.F[i], o.States[i])
		if err != nil {
			return nil, chk.Err("cannot compute series at t = %g: %w", t, err)
		}
	}
	return
}

// StressSeries returns σ_ij at every output step
func (o *Driver) StressSeries(i, j int) (res []float64, err error) {
	return o.Series(func(t float64, F ften.Ten2, s *State) (float64, error) {
		σ, err := o.Mdl.CauchyStress(F, s)
		return σ[i][j], err
	})
}

// PlasticParts returns the plastic part of F at every output step
func (o *Driver) PlasticParts() (res []ften.Ten2) {
	res = make([]ften.Ten2, len(o.States))
	for i, s := range o.States {
		res[i] = s.PlasticPart()
	}
	return
}
