/*
 * atom.go, part of makendx.
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

// Atom contains the information read for one atom of a structure file.
type Atom struct {
	Name    string     //atom name, as in the file ("CA")
	ID      int        //atom serial number, as in the file
	MolName string     //residue name
	MolID   int        //residue sequence number, as in the file. Not reset per chain.
	Chain   string     //chain label
	ChainID int        //dense chain index, assigned by New. Ignored on input.
	Het     bool       //is HETATM in the pdb file?
	Coords  [3]float64 //cartesian coordinates, zero if none were read.
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	n := *A
	return &n
}
