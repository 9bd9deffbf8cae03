/*
 * plot_test.go, part of makendx
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

package ndxplot

import (
	"os"
	"path/filepath"
	"testing"

	ndx "github.com/pgromano/makendx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func testIndex(t *testing.T) *ndx.Index {
	t.Helper()
	ix, err := ndx.New([]*ndx.Atom{
		{Chain: "B", MolID: 1, MolName: "SER", Name: "N"},
		{Chain: "B", MolID: 1, MolName: "SER", Name: "CA"},
		{Chain: "A", MolID: 2, MolName: "ALA", Name: "N"},
		{Chain: "A", MolID: 3, MolName: "GLY", Name: "N"},
		{Chain: "A", MolID: 3, MolName: "GLY", Name: "CA"},
		{Chain: "", MolID: 4, MolName: "SOL", Name: "OW"},
	})
	require.NoError(t, err)
	return ix
}

func TestCounts(t *testing.T) {
	labels, atoms, residues, err := Counts(testIndex(t))
	require.NoError(t, err)
	assert.Equal(t, []string{NoChain, "A", "B"}, labels)
	assert.Equal(t, plotter.Values{1, 3, 2}, atoms)
	assert.Equal(t, plotter.Values{1, 2, 1}, residues)
}

func TestSave(t *testing.T) {
	name := filepath.Join(t.TempDir(), "composition.png")
	require.NoError(t, Save(testIndex(t), "Composition", name))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
