/*
 * errors.go, part of makendx.
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
	"errors"
	"fmt"
)

// Error is the error returned when a structure can't be read.
// It fulfills ndx.Decorator.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	format   string
	line     int //0 if the problem is not in a particular line
	deco     []string
	err      error
}

func newError(format string, line int, caller string, err error, msg string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(msg, args...), format: format, line: line, deco: []string{caller}, err: err}
}

func (err *Error) Error() string {
	s := fmt.Sprintf("%s file", err.format)
	if err.filename != "" {
		s += " " + err.filename
	}
	s += " error"
	if err.line > 0 {
		s += fmt.Sprintf(" in line %d", err.line)
	}
	s += ": " + err.message
	if err.err != nil {
		s += ": " + err.err.Error()
	}
	return s
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the underlying error, if any.
func (err *Error) Unwrap() error { return err.err }

// FileName returns the file to which the failing structure was associated
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file associated to the error
func (err *Error) Format() string { return err.format }

// Line returns the line of the file where the error was found, or 0.
func (err *Error) Line() int { return err.line }

// errFile sets the file name of err, if it is an *Error, and decorates it with
// caller. Other errors are wrapped into an *Error.
func errFile(err error, filename, format, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		if e.filename == "" {
			e.filename = filename
		}
		e.Decorate(caller)
		return e
	}
	e = newError(format, 0, caller, err, "can't read structure")
	e.filename = filename
	return e
}
