/*
 * gyr.go, part of goeig.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package gyr

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rmera/goeig/internal/zio"
	v3 "github.com/rmera/goeig/v3"
)

// Record is one frame of a gyration tensor trajectory.
type Record struct {
	Frame  int //1-based, counts only frames, not comments
	Line   int //1-based line in the file
	Tensor v3.Tensor
}

// Reader reads a gyration tensor trajectory sequentially.
type Reader struct {
	f        *os.File //nil if the Reader wraps a stream
	z        io.ReadCloser
	h        *bufio.Reader
	filename string
	line     int
	frame    int
	readable bool
}

// New opens the trajectory in the file name for reading. The file is
// decompressed if its extension says it is compressed.
func New(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{UnableToOpen, name, err, []string{"New"}, true}
	}
	R, err := NewReader(f, name)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "New")
	}
	R.f = f
	return R, nil
}

// NewReader reads a trajectory from r. name is used for error messages
// and to decide whether the stream is compressed.
func NewReader(r io.Reader, name string) (*Reader, error) {
	z, err := zio.NewReader(bufio.NewReader(r), name)
	if err != nil {
		return nil, &Error{UnableToDecompress, name, err, []string{"NewReader"}, true}
	}
	R := &Reader{z: z, h: bufio.NewReader(z), filename: name, readable: true}
	return R, nil
}

// Next returns the next frame in the trajectory. After the last frame, it returns
// an error satisfying LastFrameError. A malformed line produces a *FormatError.
func (R *Reader) Next() (*Record, error) {
	if !R.readable {
		return nil, &Error{TrajUnIniRead, R.filename, nil, []string{"Next"}, true}
	}
	for {
		s, err := R.h.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &Error{ReadError, R.filename, err, []string{"Next"}, true}
		}
		if s == "" && err != nil {
			return nil, newlastFrameError(R.filename, "Next")
		}
		R.line++
		t, skip, perr := ParseLine(R.line, strings.TrimRight(s, "\r\n"))
		if perr != nil {
			fe := perr.(*FormatError)
			fe.filename = R.filename
			fe.Decorate("Next")
			return nil, fe
		}
		if skip {
			continue
		}
		R.frame++
		return &Record{Frame: R.frame, Line: R.line, Tensor: t}, nil
	}
}

// ReadAll reads all the remaining frames.
func (R *Reader) ReadAll() ([]*Record, error) {
	var recs []*Record
	for {
		r, err := R.Next()
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				return recs, nil
			}
			return nil, errDecorate(err, "ReadAll")
		}
		recs = append(recs, r)
	}
}

// Readable returns true if the trajectory can still be read from.
func (R *Reader) Readable() bool {
	return R.readable
}

// Frames returns the number of frames read so far.
func (R *Reader) Frames() int {
	return R.frame
}

// FileName returns the name given when the Reader was created.
func (R *Reader) FileName() string {
	return R.filename
}

// Close releases the decompressor and, if the Reader opened it, the file.
// It is safe to call Close more than once.
func (R *Reader) Close() error {
	if !R.readable {
		return nil
	}
	R.readable = false
	err := R.z.Close()
	if R.f != nil {
		if err2 := R.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return &Error{"Can't close trajectory", R.filename, err, []string{"Close"}, true}
	}
	return nil
}
