/*
 * main_test.go, part of goeig.
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

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmera/goeig/traj/gyr"
)

func execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))
	return cmd.ExecuteContext(context.Background())
}

func isUsage(err error) bool {
	var ue UsageError
	return errors.As(err, &ue)
}

func TestUsageErrors(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "traj.dat")
	require.NoError(Te, os.WriteFile(in, []byte("1 2 3 1 2 3 0 0 0\n"), 0o644))
	tests := map[string][]string{
		"no args":       {},
		"two args":      {in, in},
		"missing file":  {filepath.Join(dir, "nope.dat")},
		"directory":     {dir},
		"unknown flag":  {"--frobnicate", in},
		"bad log level": {"--log-level", "loud", in},
	}
	for name, args := range tests {
		Te.Run(name, func(Te *testing.T) {
			err := execute(args...)
			require.Error(Te, err)
			assert.True(Te, isUsage(err), "%T %v", err, err)
		})
	}
	_, err := os.Stat(filepath.Join(dir, "traj_eig.dat"))
	assert.True(Te, errors.Is(err, os.ErrNotExist))
}

func TestRunCommand(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "traj.dat")
	require.NoError(Te, os.WriteFile(in, []byte("# c\n1.0 0.0 0.0 1.0 2.0 3.0 0.0 0.0 0.0\n"), 0o644))
	require.NoError(Te, execute("--log-level", "error", "--verify", "-w", "2", in))
	b, err := os.ReadFile(filepath.Join(dir, "traj_eig.dat"))
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(Te, lines, 2)
	assert.True(Te, strings.HasPrefix(lines[1], "       1     1.0000     2.0000     3.0000"))

	out := filepath.Join(dir, "custom.dat")
	require.NoError(Te, execute("--log-level", "error", "-o", out, in))
	_, err = os.Stat(out)
	assert.NoError(Te, err)
}

func TestFormatErrorIsNotUsage(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "bad.dat")
	require.NoError(Te, os.WriteFile(in, []byte("1 2 3 4 5 6 7 8\n"), 0o644))
	err := execute("--log-level", "error", in)
	require.Error(Te, err)
	assert.False(Te, isUsage(err))
	var fe *gyr.FormatError
	assert.True(Te, errors.As(err, &fe))
}

func TestEnvAndConfig(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "traj.dat")
	require.NoError(Te, os.WriteFile(in, []byte("1 0 0 1 2 3 0 0 0\n2 0 0 2 3 4 0 0 0\n"), 0o644))
	out := filepath.Join(dir, "from_env.dat")
	shape := filepath.Join(dir, "shape.png")
	Te.Setenv("GOEIG_OUTPUT", out)
	//needs the key replacer, the flag is log-level.
	Te.Setenv("GOEIG_LOG_LEVEL", "loud")
	cfg := filepath.Join(dir, "goeig.yaml")
	require.NoError(Te, os.WriteFile(cfg, []byte("shape-plot: "+shape+"\nworkers: 2\n"), 0o644))

	//the invalid level from the environment must be seen.
	err := execute("--config", cfg, in)
	require.Error(Te, err)
	assert.True(Te, isUsage(err), "%v", err)

	//a flag wins over the environment.
	require.NoError(Te, execute("--config", cfg, "--log-level", "error", in))
	_, err = os.Stat(out)
	assert.NoError(Te, err, "GOEIG_OUTPUT ignored")
	_, err = os.Stat(filepath.Join(dir, "traj_eig.dat"))
	assert.True(Te, errors.Is(err, os.ErrNotExist))
	_, err = os.Stat(shape)
	assert.NoError(Te, err, "shape-plot from the configuration file ignored")
}

func TestOptions(Te *testing.T) {
	v := viper.New()
	v.Set("workers", 6)
	v.Set("verify", true)
	v.Set("plot", "eig.svg")
	v.Set("shape-plot", "shape.png")
	v.Set("title", "run 1")
	o := options(v, zap.NewNop())
	assert.Equal(Te, 6, o.Workers)
	assert.True(Te, o.Verify)
	assert.Equal(Te, "eig.svg", o.PlotFile)
	assert.Equal(Te, "shape.png", o.ShapePlotFile)
	assert.Equal(Te, "run 1", o.Title)
	assert.NotNil(Te, o.Logger)
}
