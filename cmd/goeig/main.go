/*
 * main.go, part of goeig.
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

// goeig writes the eigenvalues and eigenvectors of each frame of a gyration
// tensor trajectory to a new file, named after the input with "_eig" added
// before the extension.
//
//	goeig [flags] traj.dat
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	eig "github.com/rmera/goeig"
)

// UsageError is returned when goeig is called with the wrong arguments.
type UsageError struct {
	msg string
}

func (e UsageError) Error() string { return e.msg }

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "goeig [flags] <input>",
		Short: "Eigenvalues and eigenvectors of a gyration tensor trajectory",
		Long: `goeig reads a trajectory with one gyration tensor per line
(Frame RoG RoG_max XX YY ZZ XY XZ YZ, '#' starts a comment) and writes,
for each frame, the eigenvalues in ascending order and their eigenvectors.

The output goes to the input name with "_eig" before the extension
(traj.dat -> traj_eig.dat). Files ending in .zst or .gz are read and
written compressed.

Flags can also be set with GOEIG_ environment variables (GOEIG_WORKERS=4)
or in a configuration file given with --config.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return UsageError{fmt.Sprintf("exactly one input file is required, %d given", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args[0])
		},
	}
	f := cmd.Flags()
	f.IntP("workers", "w", 1, "number of frames decomposed concurrently")
	f.StringP("output", "o", "", "output file (default: input name with _eig before the extension)")
	f.String("plot", "", "also plot the eigenvalues to this file (png, svg, pdf...)")
	f.String("shape-plot", "", "also plot the shape indexes to this file")
	f.String("title", "", "title for the plots (default: input file name)")
	f.Bool("verify", false, "check every decomposition before writing the report")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.String("config", "", "configuration file (yaml, toml or json)")
	//can't fail, all the flags exist.
	_ = v.BindPFlags(f)
	v.SetEnvPrefix("GOEIG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return UsageError{err.Error()}
	})
	return cmd
}

// checkInput returns a UsageError unless name is an existing regular file.
func checkInput(name string) error {
	st, err := os.Stat(name)
	if err != nil {
		return UsageError{fmt.Sprintf("no such file: %s", name)}
	}
	if !st.Mode().IsRegular() {
		return UsageError{fmt.Sprintf("not a regular file: %s", name)}
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, UsageError{fmt.Sprintf("invalid log level %q", level)}
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	return cfg.Build()
}

// options reads the run options from v.
func options(v *viper.Viper, logger *zap.Logger) eig.Options {
	return eig.Options{
		Workers:       v.GetInt("workers"),
		Verify:        v.GetBool("verify"),
		PlotFile:      v.GetString("plot"),
		ShapePlotFile: v.GetString("shape-plot"),
		Title:         v.GetString("title"),
		Logger:        logger,
	}
}

func run(ctx context.Context, v *viper.Viper, in string) error {
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return UsageError{fmt.Sprintf("can't read configuration %s: %s", cfg, err)}
		}
	}
	if err := checkInput(in); err != nil {
		return err
	}
	logger, err := newLogger(v.GetString("log-level"))
	if err != nil {
		return err
	}
	defer logger.Sync()
	out := v.GetString("output")
	if out == "" {
		out = eig.OutputName(in)
	}
	_, err = eig.Run(ctx, in, out, options(v, logger))
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "goeig:", err)
		stop()
		var ue UsageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
