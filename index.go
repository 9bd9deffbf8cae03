/*
 * index.go, part of makendx.
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

import (
	"sort"

	v3 "github.com/pgromano/makendx/v3"
)

// Index is a read-only table of atoms, in file order, with their
// coordinates. It is never modified after New, so it can be queried
// from several goroutines at once.
type Index struct {
	atoms  []*Atom
	coords *v3.Matrix
	chains []string //sorted, unique chain labels
	nchain int
	starts []int //row of the first atom of each residue
}

// New builds an Index from atoms, which must be in file order. The atoms are
// copied. ChainIDs are assigned from 0, in order of first appearance of each
// chain label. It returns an error wrapping ErrInvalidInput if atoms is empty
// or contains a nil atom.
func New(atoms []*Atom) (*Index, error) {
	if len(atoms) == 0 {
		return nil, newError(ErrInvalidInput, "New", "no atoms given")
	}
	ix := &Index{atoms: make([]*Atom, len(atoms))}
	coords := make([]float64, 0, 3*len(atoms))
	seen := make(map[string]int)
	for i, at := range atoms {
		if at == nil {
			return nil, newError(ErrInvalidInput, "New", "atom %d is nil", i)
		}
		a := at.Copy()
		id, ok := seen[a.Chain]
		if !ok {
			id = len(seen)
			seen[a.Chain] = id
			ix.chains = append(ix.chains, a.Chain)
		}
		a.ChainID = id
		ix.atoms[i] = a
		coords = append(coords, a.Coords[:]...)
		if i == 0 || a.MolID != atoms[i-1].MolID {
			ix.starts = append(ix.starts, i)
		}
	}
	sort.Strings(ix.chains)
	ix.nchain = len(ix.chains)
	var err error
	ix.coords, err = v3.NewMatrix(coords)
	if err != nil {
		//can't happen, we have at least one atom.
		return nil, newError(ErrInvalidInput, "New", "%s", err.Error())
	}
	return ix, nil
}

// Len returns the number of atoms in the index.
func (ix *Index) Len() int {
	return len(ix.atoms)
}

// NAtoms returns the number of atoms in the index.
func (ix *Index) NAtoms() int {
	return len(ix.atoms)
}

// Atom returns a copy of the atom in row i. Panics if out of range.
func (ix *Index) Atom(i int) *Atom {
	if i < 0 || i >= ix.Len() {
		panic("Index: Requested Atom out of bounds")
	}
	return ix.atoms[i].Copy()
}

// Chains returns the chain labels in the index, sorted and without repetitions.
// Note that this order is not the order of the ChainIDs, which follow
// the first appearance of each label in the file.
func (ix *Index) Chains() []string {
	ret := make([]string, len(ix.chains))
	copy(ret, ix.chains)
	return ret
}

// Chain returns the label at position i of Chains().
func (ix *Index) Chain(i int) (string, error) {
	if i < 0 || i >= ix.nchain {
		return "", newError(ErrIndexOutOfRange, "Chain", "chain %d requested, but there are %d chains", i, ix.nchain)
	}
	return ix.chains[i], nil
}

// NChains returns the number of different chain labels in the index.
func (ix *Index) NChains() int {
	return ix.nchain
}

// Residues returns the name of each residue, in file order. A residue
// starts at the first atom and wherever the residue number differs from the
// one of the previous atom. If a chain is given, only the residues whose
// chain label is Chain(chain) are returned. Giving more than one chain
// is an error.
func (ix *Index) Residues(chain ...int) ([]string, error) {
	if len(chain) > 1 {
		return nil, newError(ErrInvalidInput, "Residues", "one chain expected, %d given", len(chain))
	}
	ret := make([]string, 0, len(ix.starts))
	if len(chain) == 0 {
		for _, s := range ix.starts {
			ret = append(ret, ix.atoms[s].MolName)
		}
		return ret, nil
	}
	label, err := ix.Chain(chain[0])
	if err != nil {
		return nil, errDecorate(err, "Residues")
	}
	for _, s := range ix.starts {
		if ix.atoms[s].Chain == label {
			ret = append(ret, ix.atoms[s].MolName)
		}
	}
	return ret, nil
}

// NResidues returns the number of residues, in the given chain, if any.
func (ix *Index) NResidues(chain ...int) (int, error) {
	r, err := ix.Residues(chain...)
	if err != nil {
		return 0, errDecorate(err, "NResidues")
	}
	return len(r), nil
}

// check returns an error if the filter refers to a non-existent chain.
func (ix *Index) check(f Filter, caller string) error {
	if c, ok := f.ChainIndex(); ok && (c < 0 || c >= ix.nchain) {
		return newError(ErrIndexOutOfRange, caller, "chain %d requested, but there are %d chains", c, ix.nchain)
	}
	return nil
}

// Atoms returns the names of the atoms that pass the filter, in file order.
// The chain of the filter is compared against the ChainID of each atom,
// the residue against its residue number. If nothing matches, an empty
// slice is returned.
func (ix *Index) Atoms(f Filter) ([]string, error) {
	if err := ix.check(f, "Atoms"); err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(ix.atoms))
	for _, at := range ix.atoms {
		if f.match(at, f.residue) {
			ret = append(ret, at.Name)
		}
	}
	return ret, nil
}

// residueOffset returns the number of residues in the chains
// before chain.
func (ix *Index) residueOffset(chain int) (int, error) {
	off := 0
	for i := 0; i < chain; i++ {
		n, err := ix.NResidues(i)
		if err != nil {
			return 0, err
		}
		off += n
	}
	return off, nil
}

// Where returns the rows (0-based, ascending, without repetitions) of the
// atoms named as one of names that pass the filter. Giving no names selects
// nothing.
//
// The filter applies as in Atoms, except that, when both chain and residue are
// set, the chain is not 0, and the filter is not Global, the residue is taken
// as local to the chain: the number of residues in all previous chains is
// added to it before comparing against the residue numbers of the file.
// If nothing matches, an empty slice is returned.
func (ix *Index) Where(f Filter, names ...string) ([]int, error) {
	if err := ix.check(f, "Where"); err != nil {
		return nil, err
	}
	res := f.residue
	if f.hasChain && f.hasResidue && f.chain != 0 && !f.global {
		off, err := ix.residueOffset(f.chain)
		if err != nil {
			return nil, errDecorate(err, "Where")
		}
		res += off
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	ret := make([]int, 0)
	for i, at := range ix.atoms {
		if _, ok := set[at.Name]; !ok {
			continue
		}
		if f.match(at, res) {
			ret = append(ret, i)
		}
	}
	return ret, nil
}

// Positions returns a copy of the coordinates of all atoms, one row per atom.
func (ix *Index) Positions() *v3.Matrix {
	return ix.coords.Clone()
}

// SomePositions returns the coordinates of the atoms in rows, in the order
// given, for instance a result of Where.
func (ix *Index) SomePositions(rows []int) (*v3.Matrix, error) {
	if len(rows) == 0 {
		return nil, newError(ErrInvalidInput, "SomePositions", "no rows given")
	}
	ret := v3.Zeros(len(rows))
	if err := ret.SomeVecsSafe(ix.coords, rows); err != nil {
		return nil, newError(ErrIndexOutOfRange, "SomePositions", "%s", err.Error())
	}
	return ret, nil
}
