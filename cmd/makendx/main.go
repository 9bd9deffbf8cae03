/*
 * main.go, part of makendx.
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

// Command makendx loads a structure file and runs one query on it:
//
//	makendx [flags] <file|url> <command> [args]
//
// Commands:
//
//	chains            chain labels, sorted (or the one at -chain)
//	residues          residue names, in file order (of chain -chain)
//	atoms             atom names that pass -chain/-res
//	where NAME...     rows of the atoms named NAME that pass -chain/-res
//	summary           number of atoms, chains and residues
//	plot FILE         bar plot of atoms and residues per chain
//
// The -chain index means two things. For chains and residues it is the
// position in the sorted list of chain labels. For atoms and where it is the
// chain number in order of first appearance in the file. The two differ when
// the file does not list its chains alphabetically.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	ndx "github.com/pgromano/makendx"
	"github.com/pgromano/makendx/ndxplot"
	"github.com/pgromano/makendx/parse"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.SetFlags(0)
	log.SetPrefix("makendx: ")
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	chain   int
	res     string
	global  bool
	json    bool
	timeout time.Duration
}

func (o options) filter() (ndx.Filter, error) {
	f := ndx.Filter{}
	if o.chain >= 0 {
		f = f.Chain(o.chain)
	}
	if o.res != "" {
		r, err := strconv.Atoi(o.res)
		if err != nil {
			return f, fmt.Errorf("invalid residue number %q", o.res)
		}
		f = f.Residue(r)
	}
	if o.global {
		f = f.Global()
	}
	return f, nil
}

// run executes the command in args and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("makendx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.chain, "chain", -1, "chain index: in the sorted labels for chains/residues, in file order for atoms/where (-1: all chains)")
	fs.StringVar(&o.res, "res", "", "residue number (empty: all residues)")
	fs.BoolVar(&o.global, "global", false, "with -chain and -res, take the residue number as in the file")
	fs.BoolVar(&o.json, "json", false, "print the result as JSON")
	fs.DurationVar(&o.timeout, "timeout", time.Minute, "timeout to fetch remote files")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: makendx [flags] <file|url> <chains|residues|atoms|where|summary|plot> [args]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}
	src, cmd, rest := fs.Arg(0), fs.Arg(1), fs.Args()[2:]

	lctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	ix, err := parse.Open(lctx, src)
	if err != nil {
		fmt.Fprintln(stderr, "makendx:", err)
		return 1
	}
	res, err := query(ix, o, cmd, rest)
	if err != nil {
		fmt.Fprintln(stderr, "makendx:", err)
		return 1
	}
	if res == nil {
		return 0
	}
	if err := output(stdout, res, o.json); err != nil {
		fmt.Fprintln(stderr, "makendx:", err)
		return 1
	}
	return 0
}

type summary struct {
	Atoms    int            `json:"atoms"`
	Chains   []string       `json:"chains"`
	Residues int            `json:"residues"`
	PerChain map[string]int `json:"residues_per_chain"`
}

func (s summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "atoms: %d\nresidues: %d\n", s.Atoms, s.Residues)
	for _, c := range s.Chains {
		fmt.Fprintf(&b, "chain %q: %d residues\n", c, s.PerChain[c])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// query runs cmd on ix, returns the result to be printed, or nil
// if there is nothing to print.
func query(ix *ndx.Index, o options, cmd string, args []string) (any, error) {
	f, err := o.filter()
	if err != nil {
		return nil, err
	}
	switch cmd {
	case "chains":
		if o.chain >= 0 {
			return ix.Chain(o.chain)
		}
		return ix.Chains(), nil
	case "residues":
		if o.chain >= 0 {
			return ix.Residues(o.chain)
		}
		return ix.Residues()
	case "atoms":
		return ix.Atoms(f)
	case "where":
		if len(args) == 0 {
			return nil, fmt.Errorf("where: give at least one atom name")
		}
		return ix.Where(f, args...)
	case "summary":
		s := summary{Atoms: ix.NAtoms(), Chains: ix.Chains(), PerChain: make(map[string]int)}
		if s.Residues, err = ix.NResidues(); err != nil {
			return nil, err
		}
		for i, c := range s.Chains {
			if s.PerChain[c], err = ix.NResidues(i); err != nil {
				return nil, err
			}
		}
		return s, nil
	case "plot":
		if len(args) != 1 {
			return nil, fmt.Errorf("plot: give one output file")
		}
		if err := ndxplot.Save(ix, "Composition", args[0]); err != nil {
			return nil, err
		}
		log.Printf("plot written to %s", args[0])
		return nil, nil
	}
	return nil, fmt.Errorf("unknown command %q", cmd)
}

func output(w io.Writer, res any, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(res)
	}
	var s string
	switch r := res.(type) {
	case []string:
		s = strings.Join(r, " ")
	case []int:
		f := make([]string, len(r))
		for i, v := range r {
			f[i] = strconv.Itoa(v)
		}
		s = strings.Join(f, " ")
	default:
		s = fmt.Sprint(r)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
