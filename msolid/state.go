// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/conspire.rs-sub002/ften"
)

// NLEAF is the number of scalars in a flattened leaf: Fp[9] and εp
const NLEAF = 10

// State holds the internal variables of a model as a tree mirroring the composition of models
//  A nil *State is the empty state of stateless models. A leaf holds the plastic
//  deformation gradient of one multiplicative layer and its accumulated plastic strain;
//  a node groups the states of two stateful branches
type State struct {

	// leaf
	Fp   ften.Ten2 // plastic deformation gradient
	Eqps float64   // εp: accumulated equivalent plastic strain

	// node
	Left  *State // state of left (or elastic) branch
	Right *State // state of right (or plastic) branch
}

// NewLeaf allocates a leaf with Fp = I and εp = 0
func NewLeaf() *State {
	return &State{Fp: ften.I2()}
}

// NewNode groups two states; nil branches are skipped
func NewNode(left, right *State) *State {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return &State{Left: left, Right: right}
}

// IsLeaf tells whether this state is a leaf
func (o *State) IsLeaf() bool {
	return o != nil && o.Left == nil && o.Right == nil
}

// Len returns the number of scalars in the flattened state
func (o *State) Len() int {
	if o == nil {
		return 0
	}
	if o.IsLeaf() {
		return NLEAF
	}
	return o.Left.Len() + o.Right.Len()
}

// Flatten writes the state into v; leaves are visited from left to right
func (o *State) Flatten(v []float64) {
	o.flatten(v, 0)
}

func (o *State) flatten(v []float64, off int) int {
	if o == nil {
		return off
	}
	if o.IsLeaf() {
		ften.ToVec(v, off, o.Fp)
		v[off+9] = o.Eqps
		return off + NLEAF
	}
	return o.Right.flatten(v, o.Left.flatten(v, off))
}

// Unflatten sets the state from v; the tree shape is kept
func (o *State) Unflatten(v []float64) (err error) {
	if len(v) != o.Len() {
		return chk.Err("cannot unflatten %d values into state with %d values: %w", len(v), o.Len(), ErrStateShape)
	}
	o.unflatten(v, 0)
	return
}

func (o *State) unflatten(v []float64, off int) int {
	if o == nil {
		return off
	}
	if o.IsLeaf() {
		o.Fp = ften.FromVec(v, off)
		o.Eqps = v[off+9]
		return off + NLEAF
	}
	return o.Right.unflatten(v, o.Left.unflatten(v, off))
}

// GetCopy returns a deep copy of this state
func (o *State) GetCopy() *State {
	if o == nil {
		return nil
	}
	if o.IsLeaf() {
		return &State{Fp: o.Fp, Eqps: o.Eqps}
	}
	return &State{Left: o.Left.GetCopy(), Right: o.Right.GetCopy()}
}

// Set copies other into this state
//  Note: both states must have the same shape
func (o *State) Set(other *State) (err error) {
	if !o.SameShape(other) {
		return chk.Err("cannot set state with a different shape: %w", ErrStateShape)
	}
	o.set(other)
	return
}

func (o *State) set(other *State) {
	if o == nil {
		return
	}
	if o.IsLeaf() {
		o.Fp, o.Eqps = other.Fp, other.Eqps
		return
	}
	o.Left.set(other.Left)
	o.Right.set(other.Right)
}

// SameShape tells whether other has the same tree shape
func (o *State) SameShape(other *State) bool {
	if o == nil || other == nil {
		return o == nil && other == nil
	}
	if o.IsLeaf() || other.IsLeaf() {
		return o.IsLeaf() && other.IsLeaf()
	}
	return o.Left.SameShape(other.Left) && o.Right.SameShape(other.Right)
}

// Leaves returns all leaves from left to right
func (o *State) Leaves() (leaves []*State) {
	if o == nil {
		return
	}
	if o.IsLeaf() {
		return []*State{o}
	}
	return append(o.Left.Leaves(), o.Right.Leaves()...)
}

// PlasticPart returns the product of Fp of all leaves from left to right
//  Note: only meaningful for a chain of multiplicative layers, where inner layers are on the
//        left and F = Fe · PlasticPart(). The branches of an Additive deform in parallel and
//        each carries its own Fp; use PlasticDets or Leaves for them. Returns the identity
//        for the empty state
func (o *State) PlasticPart() (Fp ften.Ten2) {
	Fp = ften.I2()
	for _, leaf := range o.Leaves() {
		Fp = Fp.Mul(leaf.Fp)
	}
	return
}

// PlasticDets returns det(Fp) of every leaf from left to right
func (o *State) PlasticDets() (dets []float64) {
	for _, leaf := range o.Leaves() {
		dets = append(dets, leaf.Fp.Det())
	}
	return
}

// String returns a representation of the state tree
func (o *State) String() string {
	var b bytes.Buffer
	o.write(&b)
	return b.String()
}

func (o *State) write(b *bytes.Buffer) {
	if o == nil {
		b.WriteString("empty")
		return
	}
	if o.IsLeaf() {
		b.WriteString(io.Sf("leaf{Fp:%v eqps:%g}", o.Fp, o.Eqps))
		return
	}
	b.WriteString("node(")
	o.Left.write(b)
	b.WriteString(", ")
	o.Right.write(b)
	b.WriteString(")")
}
