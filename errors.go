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

package ndx

import (
	"errors"
	"fmt"
	"strings"
)

// The kinds of errors an Index can return. Use errors.Is to check for them.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Decorator is implemented by the errors of this module. Decorate adds the
// name of a calling function (plus, optionally, some information, in the
// form "Function: info") to the error, and returns the trail so far.
// An empty string just returns the current trail.
type Decorator interface {
	error
	Decorate(string) []string
}

// Error is the error type returned by Index methods. It unwraps to one of
// the Err* kinds above.
type Error struct {
	message string
	kind    error
	deco    []string
}

func newError(kind error, caller, format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

func (E *Error) Error() string {
	if len(E.deco) == 0 {
		return fmt.Sprintf("ndx: %s: %s", E.kind, E.message)
	}
	return fmt.Sprintf("ndx: %s: %s (%s)", E.kind, E.message, strings.Join(E.deco, " < "))
}

// Decorate adds deco to the trail of callers of the error.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Unwrap returns the kind of the error.
func (E *Error) Unwrap() error { return E.kind }

// errDecorate decorates err with caller if err is a Decorator, and returns it.
// Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
