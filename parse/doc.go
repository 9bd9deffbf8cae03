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
Package parse reads structure files into slices of ndx.Atom, in file order.

Supported formats, chosen by file extension:

	.pdb, .ent      PDB (ATOM/HETATM records, first model)
	.gro            Gromacs GRO (no chains, coordinates converted to Angstrom)
	.cif, .mmcif    PDBx/mmCIF (_atom_site loop, first model)

Any of them can be compressed with gzip (.gz) or zstd (.zst). Load also
accepts http://, https:// and ftp:// URLs.
*/
package parse
