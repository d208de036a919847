// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of material point simulations for analyses and plotting
package out

import (
	"errors"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/mrbuche/conspire.rs-sub002/msolid"
)

// constants
var (
	TolT = 1e-8 // tolerance to compare times
)

// ResultsMap maps keys to series of values; one value per output step
type ResultsMap map[string][]float64

// Global variables
var (

	// data set by Start
	Drv     *msolid.Driver // the driver
	Results ResultsMap     // all results; maps keys => values
	T       []float64      // all output times

	// selected output times
	TimeInds []int     // selected output indices
	Times    []float64 // selected output times

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results of a driver run
//  Keys:
//   "t"                 -- time
//   "F11" ... "F33"     -- deformation gradient
//   "sig11" ... "sig33" -- Cauchy stress
//   "P11" ... "P33"     -- first Piola-Kirchhoff stress
//   "J"                 -- det(F)
//   "ep"                -- sum of equivalent plastic strains of all layers
//   "detFp1", "detFp2"  -- det(Fp) of each multiplicative layer; leaves from left to right
//   "ep1", "ep2"        -- equivalent plastic strain of each layer
//   "vm"                -- von Mises stress √(3/2)|dev σ|
//   "psi"               -- Helmholtz free energy; only for hyperelastic models
func Start(drv *msolid.Driver) (err error) {

	// check
	if drv == nil || drv.Nout() < 1 {
		return chk.Err("driver has no results")
	}

	// clear previous data
	Drv = drv
	Results = make(map[string][]float64)
	T = drv.Times
	TimeInds = utl.IntRange(drv.Nout())
	Times = T
	Splots = make([]*SplotDat, 0)
	Csplot = nil

	// energy is available? composed models tell on the first call
	_, withEnergy := drv.Mdl.(msolid.Hyperelastic)

	// for each output step
	for k, t := range drv.Times {
		F := drv.F[k]
		s := drv.States[k]
		σ, err := drv.CauchyStress(k)
		if err != nil {
			return chk.Err("cannot compute Cauchy stress at t = %g: %w", t, err)
		}
		P, err := drv.FirstPiolaStress(k)
		if err != nil {
			return chk.Err("cannot compute first Piola stress at t = %g: %w", t, err)
		}
		utl.StrFltsMapAppend(Results, "t", t)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				utl.StrFltsMapAppend(Results, io.Sf("F%d%d", i+1, j+1), F[i][j])
				utl.StrFltsMapAppend(Results, io.Sf("sig%d%d", i+1, j+1), σ[i][j])
				utl.StrFltsMapAppend(Results, io.Sf("P%d%d", i+1, j+1), P[i][j])
			}
		}
		var ep float64
		for l, leaf := range s.Leaves() {
			ep += leaf.Eqps
			utl.StrFltsMapAppend(Results, io.Sf("detFp%d", l+1), leaf.Fp.Det())
			utl.StrFltsMapAppend(Results, io.Sf("ep%d", l+1), leaf.Eqps)
		}
		utl.StrFltsMapAppend(Results, "J", F.Det())
		utl.StrFltsMapAppend(Results, "ep", ep)
		utl.StrFltsMapAppend(Results, "vm", msolid.VonMises(σ))
		if withEnergy {
			ψ, err := msolid.Energy(drv.Mdl, F, s)
			switch {
			case errors.Is(err, msolid.ErrNotHyperelastic):
				withEnergy = false
				delete(Results, "psi")
			case err != nil:
				return chk.Err("cannot compute energy at t = %g: %w", t, err)
			default:
				utl.StrFltsMapAppend(Results, "psi", ψ)
			}
		}
	}
	return
}

// SelectTimes selects output times; results of other steps are skipped by GetRes and WriteTable
//  times -- selected output times; use nil to select all times; use -1 to select the last time
func SelectTimes(times []float64) {
	if times == nil {
		TimeInds = utl.IntRange(len(T))
		Times = T
		return
	}
	TimeInds, Times = utl.GetITout(T, times, TolT)
}

// GetRes returns the results corresponding to key at the selected times
func GetRes(key string) (res []float64, err error) {
	all, ok := Results[key]
	if !ok {
		return nil, chk.Err("cannot find results with key %q. keys available: %v", key, Keys())
	}
	res = make([]float64, len(TimeInds))
	for i, k := range TimeInds {
		res[i] = all[k]
	}
	return
}

// Keys returns all keys in alphabetical order, except "t" which comes first
func Keys() (keys []string) {
	for key := range Results {
		if key != "t" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return append([]string{"t"}, keys...)
}
