// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/mrbuche/conspire.rs-sub002/ften"
	"gonum.org/v1/gonum/mat"
)

// EqualityConstraint holds the linear constraint A · vec(F) = b on the deformation gradient
//  vec(F) follows the ordering of ften.ToVec
type EqualityConstraint struct {
	A *la.Matrix // [m][9] constraint matrix
	B la.Vector  // [m] right-hand side
}

// NewEqualityConstraint allocates a constraint with m rows
func NewEqualityConstraint(m int) *EqualityConstraint {
	return &EqualityConstraint{A: la.NewMatrix(m, 9), B: la.NewVector(m)}
}

// Prescribe sets row r to F_ij = value
func (o *EqualityConstraint) Prescribe(r, i, j int, value float64) {
	o.A.Set(r, ften.VecIndex(i, j), 1)
	o.B[r] = value
}

// Ncons returns the number of constraints
func (o *EqualityConstraint) Ncons() int {
	return o.A.M
}

// Check verifies that the constraint has at most 9 rows and full row rank
func (o *EqualityConstraint) Check() (err error) {
	m := o.A.M
	if o.A.N != 9 || len(o.B) != m {
		return chk.Err("constraint must have [m][9] matrix and [m] vector. A is [%d][%d] and b is [%d]: %w", m, o.A.N, len(o.B), ErrConstraint)
	}
	if m > 9 {
		return chk.Err("number of constraints %d exceeds the number of unknowns: %w", m, ErrConstraint)
	}
	if m == 0 {
		return
	}
	a := mat.NewDense(m, 9, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < 9; j++ {
			a.Set(i, j, o.A.Get(i, j))
		}
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return chk.Err("cannot factorize constraint matrix: %w", ErrConstraint)
	}
	if rank := svd.Rank(1e-12); rank < m {
		return chk.Err("constraint matrix has rank %d < %d: %w", rank, m, ErrConstraint)
	}
	return
}

// Residual computes A · vec(F) - b
func (o *EqualityConstraint) Residual(F ften.Ten2) (r la.Vector) {
	x := la.NewVector(9)
	ften.ToVec(x, 0, F)
	r = la.NewVector(o.A.M)
	la.MatVecMul(r, 1, o.A, x)
	for i := range r {
		r[i] -= o.B[i]
	}
	return
}

// AppliedLoad defines prescribed loading paths translated into equality constraints
type AppliedLoad interface {
	Name() string                                      // name of load
	Ncons() int                                        // number of constraints
	Constraint(t float64) (*EqualityConstraint, error) // constraint at time t
}

// UniaxialStress prescribes F11 = λ(t) with zero lateral tractions
//  The rigid rotation is removed by F12 = F13 = F23 = 0
type UniaxialStress struct {
	Stretch dbf.T // λ(t)
}

// Name returns the name of this load
func (o *UniaxialStress) Name() string { return "uniaxial-stress" }

// Ncons returns the number of constraints
func (o *UniaxialStress) Ncons() int { return 4 }

// Constraint returns the constraint at time t
func (o *UniaxialStress) Constraint(t float64) (c *EqualityConstraint, err error) {
	c = NewEqualityConstraint(4)
	c.Prescribe(0, 0, 0, o.Stretch.F(t, nil))
	c.Prescribe(1, 0, 1, 0)
	c.Prescribe(2, 0, 2, 0)
	c.Prescribe(3, 1, 2, 0)
	return
}

// BiaxialStress prescribes F11 = λ1(t) and F22 = λ2(t) with zero out-of-plane tractions
type BiaxialStress struct {
	Stretch1 dbf.T // λ1(t)
	Stretch2 dbf.T // λ2(t)
}

// Name returns the name of this load
func (o *BiaxialStress) Name() string { return "biaxial-stress" }

// Ncons returns the number of constraints
func (o *BiaxialStress) Ncons() int { return 5 }

// Constraint returns the constraint at time t
func (o *BiaxialStress) Constraint(t float64) (c *EqualityConstraint, err error) {
	c = NewEqualityConstraint(5)
	c.Prescribe(0, 0, 0, o.Stretch1.F(t, nil))
	c.Prescribe(1, 1, 1, o.Stretch2.F(t, nil))
	c.Prescribe(2, 0, 1, 0)
	c.Prescribe(3, 0, 2, 0)
	c.Prescribe(4, 1, 2, 0)
	return
}

// SimpleShear prescribes F = I + γ(t) e1 ⊗ e2
type SimpleShear struct {
	Shear dbf.T // γ(t)
}

// Name returns the name of this load
func (o *SimpleShear) Name() string { return "simple-shear" }

// Ncons returns the number of constraints
func (o *SimpleShear) Ncons() int { return 9 }

// Constraint returns the constraint at time t
func (o *SimpleShear) Constraint(t float64) (c *EqualityConstraint, err error) {
	c = NewEqualityConstraint(9)
	F := ften.I2()
	F[0][1] = o.Shear.F(t, nil)
	r := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.Prescribe(r, i, j, F[i][j])
			r++
		}
	}
	return
}
