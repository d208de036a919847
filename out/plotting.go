// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "t")
	Ylbl  string    // vertical axis label (raw; e.g. "sig11")
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xlbl   string       // x-axis label (formatted; e.g. "$t$")
	Ylbl   string       // y-axis label (formatted; e.g. "$\sigma_{11}$")
	Data   []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot plots data
//  xHandle -- can be a string, e.g. "t" or a slice, e.g. λ = []float64{1, 1.1, 1.2}
//  yHandle -- can be a string, e.g. "sig11" or a slice
//  fm      -- formatting codes; e.g. &plt.A{C:"blue", L:"label"}; may be nil
func Plot(xHandle, yHandle interface{}, fm *plt.A) (err error) {
	var e PltEntity
	if fm != nil {
		e.Style = *fm
	}
	e.X, e.Xlbl, err = getValsAndLabel(xHandle)
	if err != nil {
		return
	}
	e.Y, e.Ylbl, err = getValsAndLabel(yHandle)
	if err != nil {
		return
	}
	if len(e.X) != len(e.Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(e.X), len(e.Y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &e)
	SplotConfig("", "", 1, 1)
	return
}

// ExtraPlt defines a callback function for extra plt commands
//  Note: i and j are indices as in Subplot
type ExtraPlt func(i, j, nplots int)

// Draw draws or save figure with plot
//  dirout -- directory to save figure
//  fnkey  -- file name key; e.g. myplot. Use "" to skip saving
//  show   -- shows figure
//  extra  -- is called just after Subplot command and before any plotting
func Draw(dirout, fnkey string, show bool, extra ExtraPlt) (err error) {
	nplots := len(Splots)
	if nplots < 1 {
		return chk.Err("there are no subplots to be drawn")
	}
	nr, nc := utl.BestSquare(nplots)
	var k int
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if k == nplots {
				break
			}
			plt.Subplot(nr, nc, k+1)
			if extra != nil {
				extra(i+1, j+1, nplots)
			}
			if Splots[k].Title != "" {
				plt.Title(Splots[k].Title, &plt.A{Fsz: 10})
			}
			for _, d := range Splots[k].Data {
				style := d.Style
				style.NoClip = true
				plt.Plot(scaled(d.X, Splots[k].Xscale), scaled(d.Y, Splots[k].Yscale), &style)
			}
			plt.Gll(Splots[k].Xlbl, Splots[k].Ylbl, nil)
			k++
		}
	}
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
	if show {
		plt.Show()
	}
	return
}

// GetTexLabel returns a TeX label for a results key with an optional unit
func GetTexLabel(key, unit string) (l string) {
	switch {
	case key == "":
		l = ""
	case key == "t":
		l = "$t$"
	case key == "ep":
		l = "$\\varepsilon_p$"
	case key == "vm":
		l = "$\\sigma_{vm}$"
	case key == "psi":
		l = "$\\psi$"
	case key == "J":
		l = "$J$"
	case strings.HasPrefix(key, "detFp"):
		l = io.Sf("$\\det(F_{p%s})$", key[5:])
	case strings.HasPrefix(key, "ep"):
		l = io.Sf("$\\varepsilon_{p%s}$", key[2:])
	case strings.HasPrefix(key, "sig") && len(key) == 5:
		l = io.Sf("$\\sigma_{%s}$", key[3:])
	case (key[0] == 'F' || key[0] == 'P') && len(key) == 3:
		l = io.Sf("$%c_{%s}$", key[0], key[1:])
	default:
		l = key
	}
	if unit != "" {
		l += " " + unit
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func getValsAndLabel(handle interface{}) ([]float64, string, error) {
	switch hnd := handle.(type) {
	case []float64:
		return hnd, "", nil
	case string:
		res, err := GetRes(hnd)
		return res, hnd, err
	}
	return nil, "", chk.Err("cannot get values slice with handle = %v", handle)
}

func scaled(v []float64, s float64) []float64 {
	if s == 0 || s == 1 {
		return v
	}
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = s * x
	}
	return res
}
