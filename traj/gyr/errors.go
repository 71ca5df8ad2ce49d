/*
 * errors.go, part of goeig.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package gyr

import "fmt"

// Same as eig.Error, repeated to avoid a circular import.
type errorInt interface {
	Error() string
	Decorate(string) []string
}

// LastFrameError is satisfied by the error Next returns after the
// last frame. It is the only non-critical error of the package.
type LastFrameError interface {
	error
	NormalLastFrameTermination()
}

// Error is the error type for I/O problems with trajectories.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	err      error  //the underlying error, can be nil.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.err != nil {
		return fmt.Sprintf("gyr file %s error: %s: %s", err.filename, err.message, err.err)
	}
	return fmt.Sprintf("gyr file %s error: %s", err.filename, err.message)
}

func (err *Error) Unwrap() error { return err.err }

func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) FileName() string { return err.filename }

func (err *Error) Format() string { return "gyr" }

func (err *Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead      = "Traj object uninitialized to read"
	ReadError          = "Error reading frame"
	UnableToOpen       = "Unable to open file"
	UnableToDecompress = "Unable to set up decompression"
)

type lastFrameError struct {
	deco     []string
	fileName string
}

func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "gyr" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}

// errDecorate adds caller to the decorations of err, if err has them,
// and returns it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(errorInt); ok {
		e.Decorate(caller)
	}
	return err
}
