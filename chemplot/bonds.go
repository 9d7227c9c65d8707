/*
 * bonds.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemplot computes statistics on the bonds of a structure
//and plots them, using gonum's plot and stat packages.
package chemplot

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	crys "github.com/rmera/gocrys"
)

//Stats summarizes a set of bond lengths, in A.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

//Lengths returns the distances of the bonds, in the same order.
func Lengths(bonds []crys.Bond) []float64 {
	d := make([]float64, len(bonds))
	for i, b := range bonds {
		d[i] = b.Dist
	}
	return d
}

//BondStats returns statistics for the lengths of the given bonds. The standard
//deviation of fewer than 2 bonds is 0. No bonds give zero Stats.
func BondStats(bonds []crys.Bond) Stats {
	if len(bonds) == 0 {
		return Stats{}
	}
	d := Lengths(bonds)
	s := Stats{N: len(d), Min: floats.Min(d), Max: floats.Max(d)}
	if len(d) < 2 {
		s.Mean = d[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(d, nil)
	return s
}

//ByPair groups the bonds of mol by element pair.
func ByPair(mol crys.Bonder) map[string][]crys.Bond {
	symbols := make(map[crys.ID]string, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		symbols[mol.Atom(i).ID()] = mol.Atom(i).Symbol()
	}
	ret := make(map[string][]crys.Bond)
	for _, b := range mol.Bonds() {
		s := []string{symbols[b.At1], symbols[b.At2]}
		sort.Strings(s)
		k := s[0] + "-" + s[1]
		ret[k] = append(ret[k], b)
	}
	return ret
}

//BondHistogram plots a histogram of the bond lengths of mol, one colored series per
//element pair, and saves it to filename. The image format is taken from the
//extension (png, svg, pdf...). Width and height are in inches.
func BondHistogram(mol crys.Bonder, bins int, title, filename string, width, height float64) error {
	pairs := ByPair(mol)
	if len(pairs) == 0 {
		return errors.New("BondHistogram: no bonds to plot")
	}
	if bins < 1 {
		bins = 1
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Bond length (A)"
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())
	names := make([]string, 0, len(pairs))
	for k := range pairs {
		names = append(names, k)
	}
	sort.Strings(names)
	for key, name := range names {
		h, err := plotter.NewHist(plotter.Values(Lengths(pairs[name])), bins)
		if err != nil {
			return errors.Wrapf(err, "BondHistogram: %s", name)
		}
		h.FillColor = colors(key, len(names), 160)
		p.Add(h)
		p.Legend.Add(name, h)
	}
	p.Legend.Top = true
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "BondHistogram: saving %s", filename)
	}
	return nil
}
