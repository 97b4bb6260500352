// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2dChan/s2scatter/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "s2scatter",
	Short:        "Scatter labelled markers around a location",
	Long:         "Places randomly positioned, uniquely labelled markers within a radius around a location and renders them as GeoJSON or SVG.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Flags())
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// exitCode logs a failed command and returns the process exit status for err.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	zap.L().Error("command failed", zap.Error(err))
	_ = zap.L().Sync()
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}
