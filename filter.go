/*
 * filter.go, part of makendx.
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

package ndx

import "fmt"

// Filter restricts a query to a chain, a residue, or both. The zero
// value selects every atom. Filters are values: each method returns a
// modified copy.
//
//	ndx.Filter{}.Chain(1).Residue(3)
type Filter struct {
	chain      int
	residue    int
	hasChain   bool
	hasResidue bool
	global     bool
}

// Chain restricts the filter to the atoms with the given dense chain index.
func (f Filter) Chain(c int) Filter {
	f.chain = c
	f.hasChain = true
	return f
}

// Residue restricts the filter to the atoms with the given residue
// sequence number. When the filter also has a chain other than 0, Where
// reads the number as local to that chain, unless Global is set.
func (f Filter) Residue(r int) Filter {
	f.residue = r
	f.hasResidue = true
	return f
}

// Global marks the residue number as the one in the file, so Where
// will not offset it by the residues of the preceding chains.
func (f Filter) Global() Filter {
	f.global = true
	return f
}

// ChainIndex returns the chain of the filter, and whether it is set.
func (f Filter) ChainIndex() (int, bool) { return f.chain, f.hasChain }

// ResidueNumber returns the residue of the filter, and whether it is set.
func (f Filter) ResidueNumber() (int, bool) { return f.residue, f.hasResidue }

func (f Filter) String() string {
	s := "all"
	if f.hasChain {
		s = fmt.Sprintf("chain %d", f.chain)
	}
	if f.hasResidue {
		if f.hasChain {
			s += ", "
		} else {
			s = ""
		}
		s += fmt.Sprintf("residue %d", f.residue)
		if f.global {
			s += " (global)"
		}
	}
	return s
}

// match reports whether at passes the filter, using res as the residue
// number to compare against.
func (f Filter) match(at *Atom, res int) bool {
	if f.hasChain && at.ChainID != f.chain {
		return false
	}
	if f.hasResidue && at.MolID != res {
		return false
	}
	return true
}
