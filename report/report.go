/*
 * report.go, part of goeig.
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

// Package report writes the eigenvalues and eigenvectors of a gyration tensor
// trajectory as a fixed-width text table, one line per frame.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rmera/goeig/internal/zio"
	v3 "github.com/rmera/goeig/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	headerFormat = "%8s %10s %10s %10s %32s %32s %32s\n"
	frameFormat  = "%8d"
	valueFormat  = "%10.4f"
	vectorFormat = "%10.4f %10.4f %10.4f"
)

// Frame is the eigendecomposition of the tensor in one frame.
type Frame struct {
	Index int //1-based
	Eigen v3.Eigen
}

// Report is the list of frames, in trajectory order.
type Report []Frame

// Header returns the header line of the table, including the
// final newline.
func Header() string {
	return fmt.Sprintf(headerFormat, "#Frame", "λ1", "λ2", "λ3", "v1", "v2", "v3")
}

// Line returns the table line for F, including the final newline.
// λk is the k-th smallest eigenvalue and vk its eigenvector.
func Line(F Frame) string {
	e := F.Eigen
	return fmt.Sprintf(frameFormat+" "+valueFormat+" "+valueFormat+" "+valueFormat+" %s %s %s\n",
		F.Index, e[0].Value, e[1].Value, e[2].Value,
		vecString(e[0].Vector), vecString(e[1].Vector), vecString(e[2].Vector))
}

func vecString(v r3.Vec) string {
	return fmt.Sprintf(vectorFormat, v.X, v.Y, v.Z)
}

// Write writes the whole report, header first, to w.
func Write(w io.Writer, R Report) error {
	b := bufio.NewWriter(w)
	if _, err := b.WriteString(Header()); err != nil {
		return &Error{"Can't write header", "", err, []string{"Write"}}
	}
	for _, F := range R {
		if _, err := b.WriteString(Line(F)); err != nil {
			return &Error{fmt.Sprintf("Can't write frame %d", F.Index), "", err, []string{"Write"}}
		}
	}
	if err := b.Flush(); err != nil {
		return &Error{"Can't flush report", "", err, []string{"Write"}}
	}
	return nil
}

// WriteFile writes the report to the file name, replacing any previous
// content. The report is first written to a temporary file in the same
// directory, which is then renamed to name, so name is never left with
// a partial report. A replaced file keeps its permissions, a new one
// is created as os.Create would. If the extension of name is .zst/.zstd
// or .gz, the report is compressed.
func WriteFile(name string, R Report) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	//an existing report keeps its permissions, a new one gets
	//the default for new files.
	perm, keep := os.FileMode(0o666), false
	if st, serr := os.Stat(name); serr == nil && st.Mode().IsRegular() {
		perm, keep = st.Mode().Perm(), true
	}
	tmp, err := createTemp(dir, "."+base+".tmp", perm)
	if err != nil {
		return &Error{UnableToCreate, name, err, []string{"WriteFile"}}
	}
	tmpname := tmp.Name()
	defer func() {
		if err == nil {
			return
		}
		//Close is harmless if it was already closed.
		tmp.Close()
		if rerr := os.Remove(tmpname); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			err = errors.Join(err, &Error{fmt.Sprintf("Partial report left in %s", tmpname), name, rerr, []string{"WriteFile"}})
		}
	}()
	z, err := zio.NewWriter(tmp, name)
	if err != nil {
		return &Error{UnableToCompress, name, err, []string{"WriteFile"}}
	}
	if err = Write(z, R); err != nil {
		z.Close()
		return &Error{UnableToWrite, name, err, []string{"WriteFile"}}
	}
	if err = z.Close(); err != nil {
		return &Error{UnableToCompress, name, err, []string{"WriteFile"}}
	}
	if err = tmp.Close(); err != nil {
		return &Error{UnableToWrite, name, err, []string{"WriteFile"}}
	}
	//the umask may have removed some bits.
	if keep {
		if err = os.Chmod(tmpname, perm); err != nil {
			return &Error{UnableToWrite, name, err, []string{"WriteFile"}}
		}
	}
	if err = os.Rename(tmpname, name); err != nil {
		return &Error{UnableToWrite, name, err, []string{"WriteFile"}}
	}
	return nil
}

// createTemp creates a new file in dir, named prefix followed by a random
// number. Unlike os.CreateTemp, the file is created with perm, so the
// umask applies.
func createTemp(dir, prefix string, perm os.FileMode) (*os.File, error) {
	var err error
	for i := 0; i < 100; i++ {
		name := filepath.Join(dir, prefix+strconv.FormatUint(uint64(rand.Uint32()), 10))
		var f *os.File
		f, err = os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, err
		}
	}
	return nil, err
}
