// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// sentinel errors
var (
	ErrJacobian        = errors.New("non-positive Jacobian")
	ErrNoConvergence   = errors.New("nonlinear solver did not converge")
	ErrTimeInterval    = errors.New("invalid time interval")
	ErrStepSize        = errors.New("step size became too small")
	ErrMaxSteps        = errors.New("maximum number of steps reached")
	ErrNotHyperelastic = errors.New("model has no stored energy")
	ErrStateShape      = errors.New("state does not match the model")
	ErrConstraint      = errors.New("invalid equality constraint")
)

// JacobianError reports an inadmissible deformation gradient
type JacobianError struct {
	Model string    // name of model
	F     ften.Ten2 // offending deformation gradient
	J     float64   // its determinant
}

func (o *JacobianError) Error() string {
	return io.Sf("%s: non-positive Jacobian J = %g at F = %v", o.Model, o.J, o.F)
}

// Is makes errors.Is(err, ErrJacobian) true
func (o *JacobianError) Is(target error) bool {
	return target == ErrJacobian
}

// SolverError reports a failed equilibrium solve
type SolverError struct {
	Model string  // name of model
	Load  string  // name of applied load
	Time  float64 // time of the solve
	Iters int     // number of iterations performed
	Err   error   // cause
}

func (o *SolverError) Error() string {
	return io.Sf("equilibrium of %s under %s failed at t = %g after %d iterations:\n%v", o.Model, o.Load, o.Time, o.Iters, o.Err)
}

func (o *SolverError) Unwrap() error {
	return o.Err
}

// IntegrationError reports a failure of the time-stepping loop
type IntegrationError struct {
	Model string  // name of model
	Time  float64 // time at the failure
	H     float64 // step size at the failure
	Step  int     // number of steps performed
	Err   error   // cause
}

func (o *IntegrationError) Error() string {
	return io.Sf("time integration of %s failed at t = %g (h = %g, step %d):\n%v", o.Model, o.Time, o.H, o.Step, o.Err)
}

func (o *IntegrationError) Unwrap() error {
	return o.Err
}

// checkJacobian returns J = det(F) or a JacobianError if J ≤ 0
func checkJacobian(model string, F ften.Ten2) (J float64, err error) {
	J = F.Det()
	if J <= 0 {
		err = &JacobianError{Model: model, F: F, J: J}
	}
	return
}

// recovered converts a value recovered from a panic inside a numerical primitive into an error
//  Note: errors raised by models inside callbacks are passed through; messages from the
//        primitives themselves are reported as convergence failures
func recovered(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return chk.Err("%v: %w", r, ErrNoConvergence)
}
