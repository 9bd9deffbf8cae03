/*
 * pdb.go, part of makendx.
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

package parse

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	ndx "github.com/pgromano/makendx"
)

const pdbFormat = "pdb"

// pdbLine parses a valid ATOM or HETATM line of a PDB file and returns
// the atom. Missing coordinate fields are read as zero.
// If the serial number can't be read (overflowed fields, "*****")
// serial is used instead, and useSerial is returned true. An overflowed
// residue number ("****") is replaced by prevRes, and useRes is returned true.
func pdbLine(line string, serial, prevRes int) (at *ndx.Atom, useSerial, useRes bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 26 {
		return nil, false, false, fmt.Errorf("line too short (%d characters)", len(line))
	}
	//Shorter lines are legal if the last fields are empty.
	if len(line) < 54 {
		line = fmt.Sprintf("%-54s", line)
	}
	at = new(ndx.Atom)
	at.Het = strings.HasPrefix(line, "HETATM")
	at.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		at.ID = serial
		useSerial = true
	}
	at.Name = strings.TrimSpace(line[12:16])
	//Some programs use a 4-character residue name, column 21 is usually blank.
	at.MolName = strings.TrimSpace(line[17:21])
	at.Chain = strings.TrimSpace(line[21:22])
	resfield := strings.TrimSpace(line[22:26])
	at.MolID, err = strconv.Atoi(resfield)
	if err != nil {
		if resfield == "" || strings.Trim(resfield, "*") != "" {
			return nil, false, false, fmt.Errorf("can't read residue number %q", line[22:26])
		}
		at.MolID = prevRes
		useRes = true
	}
	for i, c := range [][2]int{{30, 38}, {38, 46}, {46, 54}} {
		f := strings.TrimSpace(line[c[0]:c[1]])
		if f == "" {
			continue
		}
		at.Coords[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false, false, fmt.Errorf("can't read coordinate %d %q", i, f)
		}
	}
	return at, useSerial, useRes, nil
}

// PDB reads the atoms of the first model of a PDB file from r.
func PDB(r io.Reader) ([]*ndx.Atom, error) {
	pdb := bufio.NewReader(r)
	atoms := make([]*ndx.Atom, 0)
	lineno := 0
	firstModelDone := false
	skipped := 0
	badSerials := 0
	badRes := 0
	prevRes := 0
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, newError(pdbFormat, lineno+1, "PDB", err, "can't read line")
		}
		if line != "" {
			lineno++
		}
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			if firstModelDone {
				skipped++
				break
			}
			at, useSerial, useRes, perr := pdbLine(line, len(atoms)+1, prevRes)
			if perr != nil {
				return nil, newError(pdbFormat, lineno, "PDB", nil, "%s", perr.Error())
			}
			if useSerial {
				badSerials++
			}
			if useRes {
				badRes++
			}
			prevRes = at.MolID
			atoms = append(atoms, at)
		case strings.HasPrefix(line, "ENDMDL"):
			if len(atoms) > 0 {
				firstModelDone = true
			}
		}
		if err == io.EOF {
			break
		}
	}
	if skipped > 0 {
		log.Printf("parse: only the first model of the PDB is read, %d atom records skipped", skipped)
	}
	if badSerials > 0 {
		log.Printf("parse: %d atom serial numbers could not be read, their position in the file was used instead", badSerials)
	}
	if badRes > 0 {
		log.Printf("parse: %d residue numbers could not be read, the previous residue number was used instead", badRes)
	}
	if len(atoms) == 0 {
		return nil, newError(pdbFormat, 0, "PDB", nil, "no ATOM or HETATM records found")
	}
	return atoms, nil
}
