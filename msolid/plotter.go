// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// constants
var (
	PlotSet1 = []string{"t,sig", "lam,sig"}
	PlotSet2 = []string{"t,sig", "lam,sig", "t,ep", "t,vm"}
	PlotSet3 = []string{"t,sig", "lam,sig", "t,ep", "t,vm", "t,lam", "t,detFp"}
)

// PlotFcn_t defines a callback function to call before saving plots
type PlotFcn_t func()

// Plotter plots the results of a Driver run
//  Keys:
//   "t,sig"   -- σ_ij versus time
//   "lam,sig" -- σ_ij versus F_kl
//   "t,lam"   -- F_kl versus time
//   "t,ep"    -- sum of equivalent plastic strains versus time
//   "t,vm"    -- von Mises stress √(3/2)|σ'| versus time
//   "t,detFp" -- det(Fp) of each multiplicative layer versus time
type Plotter struct {

	// optional variables
	PlotFcn PlotFcn_t // callback function to call before saving plot
	Split   bool      // split graphs instead of using subplot
	SaveDir string    // directory to put figure
	SaveFnk string    // save figure after plot (filename key)
	Si, Sj  int       // stress component to plot; default = 0,0
	Fk, Fl  int       // deformation component to plot; default = 0,0
	Clr     string    // curve color
	Mrk     string    // curve marker
	Lbl     string    // curve label
	Ls      string    // curve linestyle
	SpMrk   string    // start-point marker
	EpMrk   string    // end-point marker
	SpClr   string    // start-point marker color
	SpMs    int       // start-point marker size
	EpMs    int       // end-point marker size
	Hspace  float64   // subplot horizontal spacing between rows
	Vspace  float64   // subplot vertical spacing between columns

	// limits to be used with a particular key; if not nil => to set plot area
	Lims map[string][]float64

	// subplots
	Nrow int // subplot number of rows
	Ncol int // subplot number of cols
	Pidx int // subplot index

	// results
	T     []float64   // times
	Sig   []float64   // σ_ij
	Lam   []float64   // F_kl
	Ep    []float64   // sum of equivalent plastic strains
	Vm    []float64   // von Mises stress
	DetFp [][]float64 // det(Fp) of each layer [nlayers][nout]; a series of ones if stateless
}

// SetFig sets figure space for plotting
// Note: this method is optional
func (o *Plotter) SetFig(split, epsfig bool, prop, width float64, savedir, savefnk string) {
	plt.Reset(true, &plt.A{Eps: epsfig, Prop: prop, WidthPt: width})
	o.Split = split
	o.SaveDir = savedir
	o.SaveFnk = io.FnKey(savefnk)
	o.set_default_clr_mrk()
}

// Title adds title to plot
func (o *Plotter) Title(text string) {
	plt.SupTitle(text, &plt.A{Fsz: 10})
}

// Collect computes the quantities to be plotted from the results of drv
func (o *Plotter) Collect(drv *Driver) (err error) {
	n := drv.Nout()
	if n < 1 {
		return chk.Err("driver has no results to be plotted")
	}
	o.T = make([]float64, n)
	o.Sig = make([]float64, n)
	o.Lam = make([]float64, n)
	o.Ep = make([]float64, n)
	o.Vm = make([]float64, n)
	o.DetFp = utl.Alloc(utl.Imax(1, len(drv.States[0].Leaves())), n)
	for i := 0; i < n; i++ {
		σ, err := drv.CauchyStress(i)
		if err != nil {
			return chk.Err("cannot compute stress at t = %g: %w", drv.Times[i], err)
		}
		o.T[i] = drv.Times[i]
		o.Sig[i] = σ[o.Si][o.Sj]
		o.Lam[i] = drv.F[i][o.Fk][o.Fl]
		o.Vm[i] = VonMises(σ)
		for _, leaf := range drv.States[i].Leaves() {
			o.Ep[i] += leaf.Eqps
		}
		dets := drv.States[i].PlasticDets()
		for k := range o.DetFp {
			o.DetFp[k][i] = 1
			if k < len(dets) {
				o.DetFp[k][i] = dets[k]
			}
		}
	}
	return
}

// Plot runs the plot generation
func (o *Plotter) Plot(keys []string, drv *Driver, first, last bool) (err error) {

	// results
	if err = o.Collect(drv); err != nil {
		return
	}

	// clear previous figure
	o.set_default_clr_mrk()
	if first {
		plt.Clf()
		plt.SplotGap(0.35, 0.35)
		if o.Hspace > 0 {
			plt.SetHspace(o.Hspace)
		}
		if o.Vspace > 0 {
			plt.SetVspace(o.Vspace)
		}
	}

	// subplot variables
	o.Pidx = 1
	o.Ncol, o.Nrow = utl.BestSquare(len(keys))
	if len(keys) == 2 {
		o.Ncol, o.Nrow = 1, 2
	}

	// do plot
	sig := io.Sf("$\\sigma_{%d%d}$", o.Si+1, o.Sj+1)
	lam := io.Sf("$F_{%d%d}$", o.Fk+1, o.Fl+1)
	for _, key := range keys {
		o.Subplot()
		switch key {
		case "t,sig":
			o.curve(key, o.T, o.Sig, "$t$", sig, o.Lbl, last)
		case "lam,sig":
			o.curve(key, o.Lam, o.Sig, lam, sig, o.Lbl, last)
		case "t,lam":
			o.curve(key, o.T, o.Lam, "$t$", lam, o.Lbl, last)
		case "t,ep":
			o.curve(key, o.T, o.Ep, "$t$", "$\\varepsilon_p$", o.Lbl, last)
		case "t,vm":
			o.curve(key, o.T, o.Vm, "$t$", "$\\sigma_{vm}$", o.Lbl, last)
		case "t,detFp":
			for k, dets := range o.DetFp {
				lbl := o.Lbl
				if len(o.DetFp) > 1 {
					lbl = io.Sf("%s layer %d", o.Lbl, k+1)
				}
				o.curve(key, o.T, dets, "$t$", "$\\det(F_p)$", lbl, last && k == len(o.DetFp)-1)
			}
		case "empty":
			continue
		default:
			return chk.Err("cannot handle key=%q", key)
		}
		if o.Split && last {
			o.Save("_", key)
		}
	}

	// save figure
	if !o.Split && last {
		o.Save("", "")
	}
	return
}

// curve plots y versus x with start and end markers
func (o *Plotter) curve(key string, x, y []float64, xlbl, ylbl, lbl string, last bool) {
	k := len(x) - 1
	plt.Plot(x, y, &plt.A{C: o.Clr, M: o.Mrk, Ls: o.Ls, L: lbl, NoClip: true})
	plt.PlotOne(x[0], y[0], &plt.A{C: o.SpClr, M: o.SpMrk, Ms: o.SpMs, NoClip: true})
	plt.PlotOne(x[k], y[k], &plt.A{C: o.SpClr, M: o.EpMrk, Ms: o.EpMs, NoClip: true})
	if last {
		plt.Gll(xlbl, ylbl, &plt.A{LegOut: true, LegNcol: 4, LegHlen: 1.5})
		if lims, ok := o.Lims[key]; ok {
			plt.AxisLims(lims)
		}
	}
}

// Save saves figure
func (o *Plotter) Save(typ, num string) {
	if o.PlotFcn != nil {
		o.PlotFcn()
	}
	if o.SaveFnk != "" {
		dir := o.SaveDir
		if dir == "" {
			dir = "/tmp/conspire"
		}
		plt.Save(dir, o.SaveFnk+typ+num)
	}
}

// Subplot sets subplot
func (o *Plotter) Subplot() {
	if o.Split {
		plt.Clf()
		return
	}
	plt.Subplot(o.Nrow, o.Ncol, o.Pidx)
	o.Pidx++
}

// set_default_clr_mrk sets default colors and markers
func (o *Plotter) set_default_clr_mrk() {
	if o.Clr == "" {
		o.Clr = "red"
	}
	if o.Ls == "" {
		o.Ls = "-"
	}
	if o.SpMrk == "" {
		o.SpMrk = "o"
	}
	if o.EpMrk == "" {
		o.EpMrk = "s"
	}
	if o.SpClr == "" {
		o.SpClr = "black"
	}
	if o.SpMs == 0 {
		o.SpMs = 3
	}
	if o.EpMs == 0 {
		o.EpMs = 3
	}
}
