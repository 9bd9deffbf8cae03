/*
 * load.go, part of makendx.
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
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	ndx "github.com/pgromano/makendx"
)

// Format detects the structure format ("pdb", "gro" or "pdbx") and the
// compression ("gz", "zst" or "") of a file from its name.
// format is "" if the extension is not known.
func Format(name string) (format, compression string) {
	ext := tl(path.Ext(name))
	switch ext {
	case ".gz", ".zst":
		compression = ext[1:]
		name = name[:len(name)-len(ext)]
		ext = tl(path.Ext(name))
	}
	switch ext {
	case ".pdb", ".ent":
		format = pdbFormat
	case ".gro":
		format = groFormat
	case ".cif", ".mmcif":
		format = pdbxFormat
	}
	return format, compression
}

// decompress returns a reader with the decompressed content of r.
func decompress(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case "gz":
		return gzip.NewReader(r)
	case "zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Reader reads the atoms from r, which has the given format
// ("pdb", "gro" or "pdbx") and compression ("gz", "zst" or "").
func Reader(r io.Reader, format, compression string) ([]*ndx.Atom, error) {
	dr, err := decompress(r, compression)
	if err != nil {
		return nil, newError(format, 0, "Reader", err, "can't decompress (%s)", compression)
	}
	defer dr.Close()
	var atoms []*ndx.Atom
	switch format {
	case pdbFormat:
		atoms, err = PDB(dr)
	case groFormat:
		atoms, err = GRO(dr)
	case pdbxFormat:
		atoms, err = PDBx(dr)
	default:
		return nil, newError(format, 0, "Reader", nil, "unknown structure format")
	}
	if err != nil {
		return nil, errFile(err, "", format, "Reader")
	}
	return atoms, nil
}

// File reads the atoms from the structure file name. Format and compression
// are detected from the name.
func File(name string) ([]*ndx.Atom, error) {
	format, compression := Format(name)
	if format == "" {
		return nil, newError("unknown", 0, "File", nil, "can't tell the format of %s from its extension", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errFile(err, name, format, "File")
	}
	defer f.Close()
	atoms, err := Reader(f, format, compression)
	if err != nil {
		return nil, errFile(err, name, format, "File")
	}
	return atoms, nil
}

// Load reads the atoms from src, which can be a local path or an
// http://, https:// or ftp:// URL. Format and compression are detected
// from the name of the file. ctx applies to network sources only.
func Load(ctx context.Context, src string) ([]*ndx.Atom, error) {
	u, err := url.Parse(src)
	if err != nil || !remote(u.Scheme) {
		return File(src)
	}
	format, compression := Format(u.Path)
	if format == "" {
		return nil, newError("unknown", 0, "Load", nil, "can't tell the format of %s from its extension", src)
	}
	body, err := fetch(ctx, u)
	if err != nil {
		return nil, errFile(err, src, format, "Load")
	}
	defer body.Close()
	atoms, err := Reader(body, format, compression)
	if err != nil {
		return nil, errFile(err, src, format, "Load")
	}
	return atoms, nil
}

// Open reads the structure in src, as Load does, and builds an index with it.
func Open(ctx context.Context, src string) (*ndx.Index, error) {
	atoms, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	ix, err := ndx.New(atoms)
	if err != nil {
		return nil, err
	}
	return ix, nil
}

func remote(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https", "ftp":
		return true
	}
	return false
}
