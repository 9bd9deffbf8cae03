/*
 * parse_test.go, part of makendx.
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
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	ndx "github.com/pgromano/makendx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wantNames    = []string{"N", "CA", "C", "N", "CA", "O"}
	wantMolNames = []string{"ALA", "ALA", "GLY", "SER", "SER", "HOH"}
	wantMolIDs   = []int{10, 10, 11, 1, 1, 100}
	wantChains   = []string{"A", "A", "A", "B", "B", "W"}
)

func checkAtoms(t *testing.T, atoms []*ndx.Atom, chains bool) {
	t.Helper()
	require.Len(t, atoms, len(wantNames))
	for i, at := range atoms {
		assert.Equal(t, wantNames[i], at.Name, "atom %d", i)
		assert.Equal(t, wantMolNames[i], at.MolName, "atom %d", i)
		assert.Equal(t, wantMolIDs[i], at.MolID, "atom %d", i)
		assert.Equal(t, i+1, at.ID, "atom %d", i)
		if chains {
			assert.Equal(t, wantChains[i], at.Chain, "atom %d", i)
		} else {
			assert.Equal(t, "", at.Chain, "atom %d", i)
		}
		for j := 0; j < 3; j++ {
			assert.InDelta(t, float64(i+j+1), at.Coords[j], 1e-9, "atom %d coordinate %d", i, j)
		}
	}
}

func TestPDBFile(t *testing.T) {
	atoms, err := File("testdata/two_chains.pdb")
	require.NoError(t, err)
	checkAtoms(t, atoms, true)
	assert.False(t, atoms[0].Het)
	assert.True(t, atoms[5].Het)
}

func TestGROFile(t *testing.T) {
	atoms, err := File("testdata/two_chains.gro")
	require.NoError(t, err)
	checkAtoms(t, atoms, false)
}

func TestPDBxFile(t *testing.T) {
	atoms, err := File("testdata/two_chains.cif")
	require.NoError(t, err)
	checkAtoms(t, atoms, true)
	assert.True(t, atoms[5].Het)
}

func TestFormat(t *testing.T) {
	cases := map[string][2]string{
		"1ubq.pdb":       {"pdb", ""},
		"pdb1ubq.ent.gz": {"pdb", "gz"},
		"conf.GRO":       {"gro", ""},
		"1ubq.cif.zst":   {"pdbx", "zst"},
		"x/y/1ubq.mmcif": {"pdbx", ""},
		"topol.top":      {"", ""},
		"archive.tar.gz": {"", "gz"},
		"no_extension":   {"", ""},
	}
	for name, want := range cases {
		f, c := Format(name)
		assert.Equal(t, want[0], f, name)
		assert.Equal(t, want[1], c, name)
	}
}

// compressed writes the content of src in a compressed copy, in a temporary directory.
func compressed(t *testing.T, src, compression string) string {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	name := filepath.Join(t.TempDir(), filepath.Base(src)+"."+compression)
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	var w io.WriteCloser
	switch compression {
	case "gz":
		w = gzip.NewWriter(f)
	case "zst":
		w, err = zstd.NewWriter(f)
		require.NoError(t, err)
	}
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return name
}

func TestCompressedFiles(t *testing.T) {
	for _, src := range []string{"testdata/two_chains.pdb", "testdata/two_chains.cif"} {
		for _, c := range []string{"gz", "zst"} {
			atoms, err := File(compressed(t, src, c))
			require.NoError(t, err, "%s %s", src, c)
			checkAtoms(t, atoms, true)
		}
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	defer srv.Close()

	atoms, err := Load(context.Background(), srv.URL+"/two_chains.pdb")
	require.NoError(t, err)
	checkAtoms(t, atoms, true)

	_, err = Load(context.Background(), srv.URL+"/missing.pdb")
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, srv.URL+"/missing.pdb", perr.FileName())
	assert.Contains(t, err.Error(), "404")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, srv.URL+"/two_chains.pdb")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOpen(t *testing.T) {
	ix, err := Open(context.Background(), "testdata/two_chains.pdb")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "W"}, ix.Chains())
	rows, err := ix.Where(ndx.Filter{}.Chain(1).Residue(1).Global(), "CA")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, rows)
}

func TestFileErrors(t *testing.T) {
	_, err := File("testdata/two_chains.top")
	require.Error(t, err)

	_, err = File("testdata/does_not_exist.pdb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "testdata/does_not_exist.pdb", perr.FileName())
	assert.Equal(t, "pdb", perr.Format())
}

func TestPDBErrors(t *testing.T) {
	_, err := PDB(strings.NewReader("REMARK nothing here\n"))
	require.Error(t, err)

	bad := "ATOM      1  N   ALA A  XX       1.000   2.000   3.000\n"
	_, err = PDB(strings.NewReader("REMARK\n" + bad))
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line())
	assert.Equal(t, []string{"PDB"}, perr.Decorate(""))

	bad = "ATOM      1  N   ALA A  10       1.0x0   2.000   3.000\n"
	_, err = PDB(strings.NewReader(bad))
	require.Error(t, err)
}

func TestPDBLenient(t *testing.T) {
	// No trailing newline, overflowed serial, no coordinates.
	in := "ATOM  *****  N   ALA A  10\nATOM  *****  CA  ALA A  10       1.000   2.000   3.000"
	atoms, err := PDB(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, atoms, 2)
	assert.Equal(t, 1, atoms[0].ID)
	assert.Equal(t, 2, atoms[1].ID)
	assert.Equal(t, [3]float64{}, atoms[0].Coords)
	assert.Equal(t, [3]float64{1, 2, 3}, atoms[1].Coords)
	assert.Equal(t, "A", atoms[0].Chain)
}

func TestGROErrors(t *testing.T) {
	_, err := GRO(strings.NewReader("title\nx\n"))
	require.Error(t, err)
	_, err = GRO(strings.NewReader("title\n    3\n    1SOL     OW    1   0.100   0.200   0.300\n"))
	require.Error(t, err)
}

func TestGROFreePrecision(t *testing.T) {
	in := "title\n1\n    1SOL     OW    1   0.12345   0.20000   0.30000\n   1.0 1.0 1.0\n"
	atoms, err := GRO(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, atoms, 1)
	assert.InDelta(t, 1.2345, atoms[0].Coords[0], 1e-9)
	assert.InDelta(t, 3.0, atoms[0].Coords[2], 1e-9)
}

func TestPDBxTokens(t *testing.T) {
	got := pdbxTokens(`ATOM 1 O "O5'" 'DA' A ? 1.0`)
	assert.Equal(t, []string{"ATOM", "1", "O", "O5'", "DA", "A", "?", "1.0"}, got)
	got = pdbxTokens(`HETATM 2 O O5' "it's here"`)
	assert.Equal(t, []string{"HETATM", "2", "O", "O5'", "it's here"}, got)
}

func TestPDBxLabelFallback(t *testing.T) {
	in := `data_X
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
ATOM 1 "O5'" DA A 1 1.0 2.0 3.0
ATOM 2 P DA A 1 2.0 3.0 4.0
`
	atoms, err := PDBx(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, atoms, 2)
	assert.Equal(t, "O5'", atoms[0].Name)
	assert.Equal(t, "A", atoms[1].Chain)
	assert.Equal(t, 1, atoms[1].MolID)
	assert.Equal(t, [3]float64{2, 3, 4}, atoms[1].Coords)

	_, err = PDBx(strings.NewReader("data_X\n#\n"))
	require.Error(t, err)

	short := strings.Replace(in, "ATOM 2 P DA A 1 2.0 3.0 4.0", "ATOM 2 P DA", 1)
	_, err = PDBx(strings.NewReader(short))
	require.Error(t, err)
}

const pdbxHeader = `data_X
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.auth_atom_id
_atom_site.auth_comp_id
_atom_site.auth_asym_id
_atom_site.auth_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
`

func TestPDBxLoopLayout(t *testing.T) {
	cases := map[string]string{
		"blank line": "ATOM 1 N ALA A 1 1.0 2.0 3.0\n\nATOM 2 CA ALA A 1 2.0 3.0 4.0\n",
		"comment":    "ATOM 1 N ALA A 1 1.0 2.0 3.0\n# a comment\nATOM 2 CA ALA A 1 2.0 3.0 4.0\n",
		"split row":  "ATOM 1 N ALA A 1\n 1.0 2.0 3.0\nATOM 2 CA\nALA A 1 2.0 3.0 4.0\n",
		"two rows":   "ATOM 1 N ALA A 1 1.0 2.0 3.0 ATOM 2 CA ALA A 1 2.0 3.0 4.0\n",
		"text field": "ATOM 1 N ALA A 1 1.0 2.0 3.0\nATOM 2\n;CA\n;\nALA A 1 2.0 3.0 4.0\n",
	}
	for name, data := range cases {
		atoms, err := PDBx(strings.NewReader(pdbxHeader + data + "#\nloop_\n_atom_site_anisotrop.id\n1\n"))
		require.NoError(t, err, name)
		require.Len(t, atoms, 2, name)
		assert.Equal(t, "N", atoms[0].Name, name)
		assert.Equal(t, "CA", atoms[1].Name, name)
		assert.Equal(t, 2, atoms[1].ID, name)
		assert.Equal(t, [3]float64{2, 3, 4}, atoms[1].Coords, name)
	}

	_, err := PDBx(strings.NewReader(pdbxHeader + "ATOM 1 N ALA A 1 1.0 2.0 3.0\n\nATOM 2 CA ALA\n_other.key value\n"))
	require.Error(t, err)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 14, perr.Line())
}

func TestPDBOverflowedResidue(t *testing.T) {
	in := "ATOM      1  OW  SOL W9999       1.000   2.000   3.000\n" +
		"ATOM      2  HW1 SOL W****       2.000   3.000   4.000\n" +
		"ATOM      3  HW2 SOL W****       3.000   4.000   5.000\n"
	atoms, err := PDB(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, atoms, 3)
	for _, at := range atoms {
		assert.Equal(t, 9999, at.MolID)
	}
	_, err = PDB(strings.NewReader("ATOM      1  OW  SOL W    \n"))
	require.Error(t, err)
}
