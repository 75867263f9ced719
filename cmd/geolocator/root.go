package main

import (
	"context"
	"fmt"
	"io"

	"geolocator/internal/app"
	"geolocator/internal/config"
	"geolocator/internal/logger"

	"github.com/spf13/cobra"
)

// appFactory builds the application for a command. Tests replace it.
var appFactory = func(ctx context.Context, configDir string) (*app.App, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	return app.New(ctx, cfg)
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "geolocator",
		Short:         "look up places, show them on a map and keep a history",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "./configs", "directory holding app.env")

	// withApp opens the application around a command body and reports its error on stderr.
	withApp := func(fn func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := appFactory(cmd.Context(), configDir)
			if err != nil {
				printError(cmd.ErrOrStderr(), "%v", err)
				return err
			}
			defer a.Close()

			if err := fn(cmd, a, args); err != nil {
				printError(cmd.ErrOrStderr(), "%s", describe(err))
				return err
			}
			return nil
		}
	}

	root.AddCommand(
		newSearchCmd(withApp),
		newReverseCmd(withApp),
		newDistanceCmd(withApp),
		newMapCmd(withApp),
		newHistoryCmd(withApp),
		newImportCmd(withApp),
	)
	return root
}

type runner func(fn func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}
