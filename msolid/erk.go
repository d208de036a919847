// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"
)

// erkMethods holds the embedded explicit Runge-Kutta methods of gosl/ode and their orders
var erkMethods = map[string]int{
	"moeuler":    2, // Modified-Euler 2(1)
	"merson4":    4, // Merson 4("5")
	"zonneveld4": 4, // Zonneveld 4(3)
	"fehlberg4":  4, // Fehlberg 4(5)
	"dopri5":     5, // Dormand-Prince 5(4), first same as last
	"verner6":    6, // Verner 6(5)
	"fehlberg7":  7, // Fehlberg 7(8)
	"dopri8":     8, // Dormand-Prince 8(5,3)
}

// tolEnd is the distance to the end of an interval below which a step is taken as the last one
const tolEnd = 1e-15

// RhsFcn computes the rate f = dy/dt at (t, y)
//  h -- size of the current step
type RhsFcn func(f la.Vector, h, t float64, y la.Vector) error

// StepFcn is called after each accepted step with the new time and solution
type StepFcn func(t float64, y la.Vector) error

// Integrator advances the internal state with the adaptive embedded explicit Runge-Kutta
// methods of gosl/ode
//  Each interval is mapped onto [0, 1] so that the solver ends exactly at the interval end.
//  Hmax is enforced by splitting the interval; Hmin is checked before every stage
type Integrator struct {

	// input
	Conf *IntegConfig // parameters

	// statistics
	Naccepted int // number of accepted steps
	Nrejected int // number of rejected steps
	Nsteps    int // number of attempted steps
	Nfeval    int // number of calls to the rate function

	// auxiliary
	h     float64 // size of the last accepted step
	hfree float64 // size of the last accepted step not clipped by the end of an interval
	t     float64 // time of the last call to the rate function
}

// NewIntegrator returns a new integrator
func NewIntegrator(conf *IntegConfig) (o *Integrator, err error) {
	if conf == nil {
		conf = NewIntegConfig("dopri5")
	}
	if err = conf.check(); err != nil {
		return
	}
	if _, ok := erkMethods[conf.Method]; !ok {
		return nil, chk.Err("cannot find embedded Runge-Kutta method named %q", conf.Method)
	}
	o = &Integrator{Conf: conf, h: conf.IniH}
	return
}

// Order returns the order of the method
func (o *Integrator) Order() int {
	return erkMethods[o.Conf.Method]
}

// Solve advances y from ta to tb; y is updated in place
//  y and the output function only see accepted steps; the last output time is exactly tb
func (o *Integrator) Solve(y la.Vector, ta, tb float64, fcn RhsFcn, out StepFcn) (err error) {
	if tb <= ta {
		return chk.Err("final time %g must be greater than initial time %g: %w", tb, ta, ErrTimeInterval)
	}
	n := 1
	if o.Conf.Hmax > 0 {
		n = utl.Imax(1, int(math.Ceil((tb-ta)/o.Conf.Hmax)))
	}
	t0 := ta
	for k := 1; k <= n; k++ {
		t1 := tb
		if k < n {
			t1 = ta + float64(k)*(tb-ta)/float64(n)
		}
		if err = o.solve(y, t0, t1, fcn, out); err != nil {
			return
		}
		t0 = t1
	}
	return
}

// solve runs the ode solver over [ta, tb] in the scaled time τ = (t - ta) / (tb - ta)
//  Errors from the callbacks abort the solver by panicking and are recovered here. The
//  solver panics again when it stops before tb, so the cause is taken from cberr or the
//  step count rather than from the recovered value
func (o *Integrator) solve(y la.Vector, ta, tb float64, fcn RhsFcn, out StepFcn) (err error) {

	// configuration
	Δt := tb - ta
	atol, rtol := o.Conf.Tols()
	conf := ode.NewConfig(o.Conf.Method, "", nil)
	conf.SetTols(atol, rtol)
	conf.IniH = utl.Max(o.Conf.IniH, o.hfree) / Δt
	conf.Hmin = o.Conf.Hmin / Δt
	conf.NmaxSS = o.Conf.NmaxSS
	conf.Mmin, conf.Mmax, conf.Mfac = o.Conf.Mmin, o.Conf.Mmax, o.Conf.Mfac

	// scaled time
	var cberr error
	time := func(τ float64) float64 {
		if 1-τ <= tolEnd {
			return tb
		}
		return ta + τ*Δt
	}

	// rate
	rate := func(f la.Vector, h, τ float64, yτ la.Vector) {
		t := time(τ)
		o.t = t
		if h*Δt < o.Conf.Hmin && 1-τ > 2*h {
			cberr = chk.Err("h = %g < Hmin = %g at t = %g: %w", h*Δt, o.Conf.Hmin, t, ErrStepSize)
			panic(cberr)
		}
		if cberr = fcn(f, h*Δt, t, yτ); cberr != nil {
			panic(cberr)
		}
		f.Apply(Δt, f)
	}

	// accepted steps
	conf.SetStepOut(false, func(istep int, h, τ float64, yτ la.Vector) (stop bool) {
		if istep == 0 {
			return
		}
		t := time(τ)
		o.h = h * Δt
		if t < tb {
			o.hfree = o.h
		}
		if o.Conf.Verbose {
			io.Pf("step accepted at t = %g with h = %g\n", t, o.h)
		}
		if out != nil {
			cberr = out(t, yτ)
		}
		return cberr != nil
	})

	// solve
	sol := ode.NewSolver(len(y), conf, rate, nil, nil)
	defer sol.Free()
	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				switch {
				case cberr != nil:
					err = cberr
				case sol.Stat.Nsteps > conf.NmaxSS:
					err = chk.Err("%d steps performed before reaching t = %g: %w", conf.NmaxSS, tb, ErrMaxSteps)
				default:
					err = recovered(r)
				}
			}
		}()
		sol.Solve(y, 0, 1)
		return cberr
	}()

	// statistics
	o.Naccepted += sol.Stat.Naccepted
	o.Nsteps += sol.Stat.Nsteps
	o.Nrejected = o.Nsteps - o.Naccepted
	o.Nfeval += sol.Stat.Nfeval
	return
}

// StepSize returns the size of the last accepted step
func (o *Integrator) StepSize() float64 {
	return o.h
}

// Time returns the time of the last evaluation of the rate
func (o *Integrator) Time() float64 {
	return o.t
}
