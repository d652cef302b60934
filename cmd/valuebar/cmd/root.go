// Package cmd implements the valuebar CLI commands.
//
// The root command dispatches to render, demo and config. Each subcommand
// resolves widget attributes the same way: an explicit --config file, or
// valuebar.yaml in the working directory when present.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/valuebar/pkg/config"
	"github.com/go-drift/valuebar/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	verbose    bool
	configPath string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "valuebar",
		Short: "Render and preview ValueBar widgets",
		Long: `valuebar renders a ValueBar to PNG, previews it interactively in the
terminal, and prints the attributes a configuration resolves to.

Attributes come from --config (YAML or TOML), or from valuebar.yaml in the
current directory when the flag is omitted.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			installLogHandler(cmd, verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output and panic stack traces")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Attribute file (.yaml, .yml or .toml)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "valuebar: %v\n", err)
		return err
	}
	return nil
}

// installLogHandler routes widget errors and advisories to slog on the
// command's stderr.
func installLogHandler(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	errors.SetHandler(errors.NewLogHandler(logger, verbose))
}

// loadAttributes reads --config, or valuebar.yaml from the working directory.
func loadAttributes() (*config.Attributes, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.LoadOptional(dir)
}
