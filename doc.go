/*
 * doc.go, part of makendx.
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

/*
Package ndx queries molecular topologies by chain, residue and atom name,
and returns the row of each matching atom. The rows can then be used to
build atom groups, such as the ones of Gromacs index (ndx) files.

An Index is built from a slice of Atom, in the order they appear in the
structure file. The parse subpackage reads PDB, GRO and PDBx/mmCIF files,
locally or from http(s)/ftp URLs, and returns such a slice.

	atoms, err := parse.Load(ctx, "1ubq.pdb.gz")
	ix, err := ndx.New(atoms)
	cas, err := ix.Where(ndx.Filter{}.Chain(0), "CA")

Two numberings of chains coexist, because both are useful:

	Chains(), Chain(i), Residues(i): chain labels sorted alphabetically.
	Filter.Chain(i) in Atoms and Where: chains in order of first appearance
	in the file (the ChainID of each Atom).

Residue numbers are the ones in the file, except in Where when both a
chain (other than 0) and a residue are given. There the residue is counted
from the start of the chain, and the residues of all previous chains are
added to it. Filter.Global disables that.

Queries that match nothing return an empty slice, not an error.
*/
package ndx
