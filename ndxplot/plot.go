/*
 * plot.go, part of makendx
 *
 * Copyright 2024 The makendx Authors
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

// Package ndxplot draws the composition of an index: how many atoms and
// residues each chain has.
package ndxplot

import (
	"fmt"

	ndx "github.com/pgromano/makendx"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// NoChain is the label shown for atoms without a chain label.
const NoChain = "(none)"

// Counts returns, for each chain label in the order of ix.Chains(), the label
// as it would be shown in a plot, the number of atoms and the number
// of residues in the chain.
func Counts(ix *ndx.Index) (labels []string, atoms, residues plotter.Values, err error) {
	chains := ix.Chains()
	pos := make(map[string]int, len(chains))
	labels = make([]string, len(chains))
	atoms = make(plotter.Values, len(chains))
	residues = make(plotter.Values, len(chains))
	for i, c := range chains {
		pos[c] = i
		labels[i] = c
		if c == "" {
			labels[i] = NoChain
		}
		n, err := ix.NResidues(i)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("Counts: %w", err)
		}
		residues[i] = float64(n)
	}
	for i := 0; i < ix.Len(); i++ {
		atoms[pos[ix.Atom(i).Chain]]++
	}
	return labels, atoms, residues, nil
}

// Plot returns a bar plot with the atoms and residues of each chain of ix.
func Plot(ix *ndx.Index, title string) (*plot.Plot, error) {
	labels, atoms, residues, err := Counts(ix)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Chain"
	p.Y.Label.Text = "Count"
	w := vg.Points(15)
	for i, v := range []plotter.Values{atoms, residues} {
		b, err := plotter.NewBarChart(v, w)
		if err != nil {
			return nil, fmt.Errorf("Plot: %w", err)
		}
		b.LineStyle.Width = vg.Length(0)
		b.Color = plotutil.Color(i)
		b.Offset = w*vg.Length(i) - w/2
		p.Add(b)
		p.Legend.Add([]string{"atoms", "residues"}[i], b)
	}
	p.Legend.Top = true
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())
	return p, nil
}

// Save writes the plot of ix to the file name. The format is taken
// from the extension (png, svg, pdf...).
func Save(ix *ndx.Index, title, name string) error {
	p, err := Plot(ix, title)
	if err != nil {
		return err
	}
	//here I intentionally shadow err.
	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}
