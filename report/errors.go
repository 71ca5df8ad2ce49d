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

package report

import "fmt"

// Error is returned when the report can't be written.
type Error struct {
	message  string
	filename string //empty when writing to a plain io.Writer
	err      error
	deco     []string
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("report: %s: %s", err.message, err.err)
	}
	return fmt.Sprintf("report %s: %s: %s", err.filename, err.message, err.err)
}

func (err *Error) Unwrap() error { return err.err }

func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) FileName() string { return err.filename }

// Errors writing to files are never recoverable.
func (err *Error) Critical() bool { return true }

const (
	UnableToCreate   = "Unable to create file"
	UnableToWrite    = "Unable to write file"
	UnableToCompress = "Unable to compress"
)

