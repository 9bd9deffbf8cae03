/*
 * pdbx.go, part of makendx.
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

const pdbxFormat = "pdbx"

var tl func(string) string = strings.ToLower

// pdbxmap maps the _atom_site fields to their column in the loop.
type pdbxmap map[string]int

// value returns the value of the first of fields that is present in data
// and is not a missing value ("?" or "."), or "" if none.
func (m pdbxmap) value(data []string, fields ...string) string {
	for _, s := range fields {
		i, ok := m[s]
		if !ok || i >= len(data) {
			continue
		}
		if v := data[i]; v != "?" && v != "." {
			return v
		}
	}
	return ""
}

// pdbxTokens splits a line of a CIF data block in fields. Fields can be
// quoted with ' or ", a quote closes a field only if followed by a blank
// or the end of the line (so O5' is a valid unquoted atom name).
func pdbxTokens(line string) []string {
	var ret []string
	i := 0
	for i < len(line) {
		c := line[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			i++
			continue
		}
		if c == '\'' || c == '"' {
			j := i + 1
			for j < len(line) {
				if line[j] == c && (j+1 == len(line) || strings.ContainsRune(" \t\r\n", rune(line[j+1]))) {
					break
				}
				j++
			}
			ret = append(ret, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && !strings.ContainsRune(" \t\r\n", rune(line[j])) {
			j++
		}
		ret = append(ret, line[i:j])
		i = j
	}
	return ret
}

func pdbxAtom(data []string, m pdbxmap) (*ndx.Atom, error) {
	var err error
	at := new(ndx.Atom)
	at.Name = m.value(data, "_atom_site.auth_atom_id", "_atom_site.label_atom_id")
	at.MolName = m.value(data, "_atom_site.auth_comp_id", "_atom_site.label_comp_id")
	at.Chain = m.value(data, "_atom_site.auth_asym_id", "_atom_site.label_asym_id")
	at.Het = m.value(data, "_atom_site.group_pdb") == "HETATM"
	if s := m.value(data, "_atom_site.id"); s != "" {
		at.ID, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("can't read atom ID from %q", s)
		}
	}
	if s := m.value(data, "_atom_site.auth_seq_id", "_atom_site.label_seq_id"); s != "" {
		at.MolID, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("can't read residue number from %q", s)
		}
	}
	for i, f := range []string{"_atom_site.cartn_x", "_atom_site.cartn_y", "_atom_site.cartn_z"} {
		s := m.value(data, f)
		if s == "" {
			continue
		}
		at.Coords[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("can't read coordinate %d from %q", i, s)
		}
	}
	return at, nil
}

// PDBx reads the atoms of the first model in the _atom_site loop of
// a PDBx/mmCIF file from r. The author (auth_*) chain, residue and
// atom identifiers are used when present, the label_* ones otherwise.
// The loop data is read as a stream of values, so a row can span several
// lines, and blank or comment lines inside the loop are skipped.
func PDBx(r io.Reader) ([]*ndx.Atom, error) {
	pdb := bufio.NewReader(r)
	atoms := make([]*ndx.Atom, 0)
	var m pdbxmap
	var row []string
	var text []string
	field := 0
	inloop := false
	atomsite := false
	indata := false
	intext := false
	done := false
	model := ""
	skipped := 0
	lineno := 0
	rowline := 0
	hp := strings.HasPrefix
	//feed adds values to the current row, and reads the row once it is complete.
	feed := func(values ...string) error {
		indata = true
		for _, v := range values {
			if len(row) == 0 {
				rowline = lineno
			}
			row = append(row, v)
			if len(row) < field {
				continue
			}
			mod := m.value(row, "_atom_site.pdbx_pdb_model_num")
			if model == "" {
				model = mod
			}
			if mod != model {
				skipped++
				row = row[:0]
				continue
			}
			at, err := pdbxAtom(row, m)
			if err != nil {
				return newError(pdbxFormat, rowline, "PDBx", nil, "%s", err.Error())
			}
			atoms = append(atoms, at)
			row = row[:0]
		}
		return nil
	}
	for !done {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, newError(pdbxFormat, lineno+1, "PDBx", err, "can't read line")
		}
		if line != "" {
			lineno++
		}
		raw := strings.TrimRight(line, "\r\n")
		t := strings.TrimSpace(raw)
		lt := tl(t)
		switch {
		case intext:
			//multi-line text field, closed by a line starting with ";".
			if !hp(raw, ";") {
				text = append(text, raw)
				break
			}
			intext = false
			if inloop && atomsite {
				if ferr := feed(strings.Join(text, "\n")); ferr != nil {
					return nil, ferr
				}
			}
		case hp(raw, ";"):
			intext = true
			text = append(text[:0], raw[1:])
		case t == "" || hp(t, "#"):
			//whitespace, also inside a loop.
		case hp(lt, "loop_") || hp(lt, "data_") || hp(lt, "save_") || hp(t, "_"):
			if indata && atomsite {
				//the loop is over.
				done = true
				break
			}
			if hp(lt, "loop_") {
				inloop, atomsite, indata = true, false, false
				m = make(pdbxmap)
				field = 0
				break
			}
			if !hp(t, "_") || !inloop || indata {
				//a key-value pair, a new block, or a loop we don't care about is over.
				inloop = false
				break
			}
			key := tl(strings.Fields(t)[0])
			if hp(key, "_atom_site.") {
				atomsite = true
				m[key] = field
			}
			field++
		default:
			if !inloop || !atomsite {
				//values of a loop we don't read.
				indata = inloop
				break
			}
			if ferr := feed(pdbxTokens(t)...); ferr != nil {
				return nil, ferr
			}
		}
		if err == io.EOF {
			break
		}
	}
	if intext && atomsite && !done {
		return nil, newError(pdbxFormat, lineno, "PDBx", nil, "unterminated text field")
	}
	if len(row) > 0 {
		return nil, newError(pdbxFormat, rowline, "PDBx", nil, "%d fields expected, %d found", field, len(row))
	}
	if skipped > 0 {
		log.Printf("parse: only the first model of the PDBx file is read, %d atom records skipped", skipped)
	}
	if len(atoms) == 0 {
		return nil, newError(pdbxFormat, 0, "PDBx", nil, "no _atom_site records found")
	}
	return atoms, nil
}
