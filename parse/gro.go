/*
 * gro.go, part of makendx.
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
	"strconv"
	"strings"

	ndx "github.com/pgromano/makendx"
)

const (
	groFormat = "gro"
	nm2A      = 10.0
)

// groLine parses one atom line of a GRO file. GRO files have no chains,
// so the chain label is left empty.
func groLine(line string) (*ndx.Atom, error) {
	var err error
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 20 {
		return nil, fmt.Errorf("line too short (%d characters)", len(line))
	}
	at := new(ndx.Atom)
	at.MolID, err = strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return nil, fmt.Errorf("can't read residue number %q", line[0:5])
	}
	at.MolName = strings.TrimSpace(line[5:10])
	at.Name = strings.TrimSpace(line[10:15])
	at.ID, err = strconv.Atoi(strings.TrimSpace(line[15:20]))
	if err != nil {
		return nil, fmt.Errorf("can't read atom number %q", line[15:20])
	}
	c, err := groCoords(line[20:])
	if err != nil {
		return nil, err
	}
	for i := range c {
		at.Coords[i] = c[i] * nm2A
	}
	return at, nil
}

// groCoords reads the 3 coordinates from the end of a GRO atom line. They
// normally use 8 columns each, but other precisions are allowed, in which
// case we just split at the spaces. No coordinates at all gives zeros.
func groCoords(s string) ([3]float64, error) {
	var c [3]float64
	var err error
	if strings.TrimSpace(s) == "" {
		return c, nil
	}
	if len(s) >= 24 {
		ok := true
		for i := range c {
			c[i], err = strconv.ParseFloat(strings.TrimSpace(s[8*i:8*i+8]), 64)
			if err != nil {
				ok = false
				break
			}
		}
		if ok {
			return c, nil
		}
	}
	f := strings.Fields(s)
	if len(f) < 3 {
		return c, fmt.Errorf("can't read coordinates from %q", s)
	}
	for i := range c {
		c[i], err = strconv.ParseFloat(f[i], 64)
		if err != nil {
			return c, fmt.Errorf("can't read coordinate %d %q", i, f[i])
		}
	}
	return c, nil
}

// GRO reads the atoms of the first frame of a Gromacs GRO file from r.
// Coordinates are converted from nm to Angstrom.
func GRO(r io.Reader) ([]*ndx.Atom, error) {
	gro := bufio.NewReader(r)
	if _, err := gro.ReadString('\n'); err != nil {
		return nil, newError(groFormat, 1, "GRO", err, "can't read title")
	}
	line, err := gro.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, newError(groFormat, 2, "GRO", err, "can't read the number of atoms")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, newError(groFormat, 2, "GRO", nil, "invalid number of atoms %q", strings.TrimSpace(line))
	}
	atoms := make([]*ndx.Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		lineno := i + 3
		line, err := gro.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, newError(groFormat, lineno, "GRO", err, "expected %d atoms, found %d", natoms, i)
		}
		at, perr := groLine(line)
		if perr != nil {
			return nil, newError(groFormat, lineno, "GRO", nil, "%s", perr.Error())
		}
		atoms = append(atoms, at)
	}
	return atoms, nil
}
