/*
 * pipeline.go, part of goeig.
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

package eig

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rmera/goeig/eigplot"
	"github.com/rmera/goeig/report"
	"github.com/rmera/goeig/traj/gyr"
	v3 "github.com/rmera/goeig/v3"
)

// VerifyTolerance is the tolerance used to check decompositions when
// Options.Verify is set.
const VerifyTolerance = 1e-6

// ErrNotReadable is returned by Process for a trajectory that can't be
// read from, such as a closed one.
var ErrNotReadable = errors.New("eig: trajectory not readable")

// Options modify the behaviour of Run and Process. The zero value
// is a sequential run without checks, plots or logging.
type Options struct {
	Workers       int    //concurrent decompositions. Values below 2 mean sequential.
	Verify        bool   //check every decomposition with v3.CheckEigen
	PlotFile      string //if not empty, the eigenvalues are plotted to this file
	ShapePlotFile string //if not empty, the shape indexes are plotted to this file
	Title         string //for the plots. The input file name if empty.
	Logger        *zap.Logger
}

func (O Options) logger() *zap.Logger {
	if O.Logger == nil {
		return zap.NewNop()
	}
	return O.Logger
}

// OutputName returns the name of the report for the trajectory in, which
// is in with "_eig" inserted before the extension (traj.dat -> traj_eig.dat).
func OutputName(in string) string {
	dir, base := filepath.Split(in)
	//leading dots are not an extension, as in ".traj"
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	return dir + strings.TrimSuffix(base, ext) + "_eig" + ext
}

// Run reads the trajectory in, decomposes the gyration tensor of each frame,
// and writes the report to out. Nothing is written if the trajectory can't be
// read completely. The plots requested in opts are made after the report is
// written. Run returns the report.
func Run(ctx context.Context, in, out string, opts Options) (report.Report, error) {
	log := opts.logger()
	traj, err := gyr.New(in)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	defer traj.Close()
	log.Info("reading trajectory", zap.String("input", in), zap.Int("workers", opts.Workers))
	R, err := Process(ctx, traj, opts)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	if err := report.WriteFile(out, R); err != nil {
		return nil, errDecorate(err, "Run")
	}
	log.Info("report written", zap.String("output", out), zap.Int("frames", len(R)))
	if len(R) > 0 {
		s := Summarize(R)
		log.Info("summary",
			zap.Float64s("mean_eigenvalues", s.Mean[:]),
			zap.Float64("mean_rg", s.Rg.Mean), zap.Float64("std_rg", s.Rg.Std),
			zap.Float64("mean_anisotropy", s.Anisotropy.Mean),
			zap.Float64("rg_corr_frames", s.RgCorrTime))
	}
	title := opts.Title
	if title == "" {
		title = filepath.Base(in)
	}
	if opts.PlotFile != "" {
		if err := eigplot.Eigenvalues(R, title, opts.PlotFile); err != nil {
			return R, err
		}
		log.Info("eigenvalue plot written", zap.String("plot", opts.PlotFile))
	}
	if opts.ShapePlotFile != "" {
		if err := eigplot.Shape(R, title, opts.ShapePlotFile); err != nil {
			return R, err
		}
		log.Info("shape plot written", zap.String("plot", opts.ShapePlotFile))
	}
	return R, nil
}

// Process reads every frame in traj and decomposes its gyration tensor. The
// frames in the returned report keep the order of the trajectory, even when
// they are decomposed concurrently. The first error aborts the process and
// no report is returned.
func Process(ctx context.Context, traj Traj, opts Options) (report.Report, error) {
	log := opts.logger()
	if !traj.Readable() {
		return nil, ErrNotReadable
	}
	var recs []*gyr.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := traj.Next()
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "Process")
		}
		recs = append(recs, rec)
	}
	log.Debug("trajectory read", zap.Int("frames", len(recs)))
	R := make(report.Report, len(recs))
	decompose := func(i int) error {
		rec := recs[i]
		e := v3.EigenSym(rec.Tensor)
		if opts.Verify {
			if err := v3.CheckEigen(rec.Tensor, e, VerifyTolerance); err != nil {
				return fmt.Errorf("frame %d (line %d): %w", rec.Frame, rec.Line, err)
			}
		}
		R[i] = report.Frame{Index: rec.Frame, Eigen: e}
		log.Debug("frame", zap.Int("frame", rec.Frame), zap.Float64s("eigenvalues", valSlice(e)))
		return nil
	}
	if opts.Workers < 2 {
		for i := range recs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := decompose(i); err != nil {
				return nil, err
			}
		}
		return R, nil
	}
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Workers)
	for i := range recs {
		if gctx.Err() != nil {
			break
		}
		i := i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return decompose(i)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//the group may have stopped early without errors if ctx was cancelled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return R, nil
}

func valSlice(e v3.Eigen) []float64 {
	v := e.Values()
	return v[:]
}
