/*
 * plot.go, part of goeig
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Lesser General Public License as published by
   the Free Software Foundation, either version 2.1 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU Lesser General Public License
   along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package eigplot plots the eigenvalues of a gyration tensor, and the
// shape indexes derived from them, along a trajectory.
package eigplot

import (
	"fmt"

	"github.com/rmera/goeig/report"
	v3 "github.com/rmera/goeig/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Size of the saved plots.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// addSeries adds one line per series to p. series[i] holds the values for
// each frame in R.
func addSeries(p *plot.Plot, R report.Report, names []string, value func(F report.Frame, i int) float64) error {
	for i, name := range names {
		pts := make(plotter.XYs, len(R))
		for k, F := range R {
			pts[k].X = float64(F.Index)
			pts[k].Y = value(F, i)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("eigplot: %s: %w", name, err)
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	return nil
}

// Eigenvalues plots the 3 eigenvalues of each frame in R against the frame
// number and saves the plot to filename. The format is taken from the
// extension of filename (png, svg, pdf...).
func Eigenvalues(R report.Report, title, filename string) error {
	if len(R) == 0 {
		return fmt.Errorf("eigplot: no frames to plot")
	}
	p := basicPlot(title, "Eigenvalue")
	err := addSeries(p, R, []string{"λ1", "λ2", "λ3"}, func(F report.Frame, i int) float64 {
		return F.Eigen[i].Value
	})
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("eigplot: can't save %s: %w", filename, err)
	}
	return nil
}

// Shape plots the relative shape anisotropy, and the asphericity and acylindricity
// normalized by Rg², for each frame in R, and saves the plot to filename.
func Shape(R report.Report, title, filename string) error {
	if len(R) == 0 {
		return fmt.Errorf("eigplot: no frames to plot")
	}
	p := basicPlot(title, "Shape index")
	p.Y.Min = 0
	err := addSeries(p, R, []string{"κ²", "b/Rg²", "c/Rg²"}, func(F report.Frame, i int) float64 {
		s := v3.ShapeIndexes(F.Eigen)
		rg2 := s.Rg * s.Rg
		switch {
		case i == 0:
			return s.Anisotropy
		case rg2 == 0:
			return 0
		case i == 1:
			return s.Asphericity / rg2
		}
		return s.Acylindricity / rg2
	})
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("eigplot: can't save %s: %w", filename, err)
	}
	return nil
}
