/*
 * parse.go, part of goeig.
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

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	v3 "github.com/rmera/goeig/v3"
)

const (
	CommentMarker = "#"
	// Frame, RoG, RoG[Max], XX, YY, ZZ, XY, XZ, YZ
	NFields = 9
	// index of XX, the first field read.
	firstTensorField = 3
)

var fieldNames = [NFields]string{"Frame", "RoG", "RoG_max", "XX", "YY", "ZZ", "XY", "XZ", "YZ"}

// ParseLine reads the gyration tensor from line, the lineno-th (1-based) line in a file.
// If the line is a comment or is blank, skip is true and the tensor should be ignored.
// Malformed lines produce a *FormatError.
func ParseLine(lineno int, line string) (t v3.Tensor, skip bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, CommentMarker) {
		return t, true, nil
	}
	fields := strings.Fields(trimmed)
	if len(fields) != NFields {
		return t, false, newFormatError(lineno, line, fmt.Sprintf("%d fields, %d expected", len(fields), NFields))
	}
	var vals [NFields - firstTensorField]float64
	for i, f := range fields[firstTensorField:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return t, false, newFormatError(lineno, line, fmt.Sprintf("%s field %q is not a finite number", fieldNames[i+firstTensorField], f))
		}
		vals[i] = v
	}
	t = v3.NewTensor(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])
	return t, false, nil
}

// FormatError is returned for a non-comment line that can't be read
// as a gyration tensor.
type FormatError struct {
	Line     int    //1-based
	Text     string //the offending line
	Reason   string
	filename string
	deco     []string
}

func newFormatError(lineno int, line, reason string) *FormatError {
	return &FormatError{Line: lineno, Text: strings.TrimRight(line, "\r\n"), Reason: reason, deco: []string{"ParseLine"}}
}

func (E *FormatError) Error() string {
	where := fmt.Sprintf("line %d", E.Line)
	if E.filename != "" {
		where = E.filename + ":" + strconv.Itoa(E.Line)
	}
	return fmt.Sprintf("invalid data format at %s (%s): %s", where, E.Reason, E.Text)
}

func (E *FormatError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *FormatError) FileName() string { return E.filename }

func (E *FormatError) Format() string { return "gyr" }

func (E *FormatError) Critical() bool { return true }
