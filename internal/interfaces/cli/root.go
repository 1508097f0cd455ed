// Package cli implements the synthspec command line interface.  All
// spectrum commands run the synthesis engine in-process; only "serve"
// starts the HTTP API server.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/synthspec/synthspec/internal/application/spectra"
	"github.com/synthspec/synthspec/internal/config"
	"github.com/synthspec/synthspec/internal/domain/catalog"
	"github.com/synthspec/synthspec/internal/domain/spectrum"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
)

// Build-time metadata, injected via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string // "text" | "json" | "csv"
	NoColor      bool
	Verbose      bool
}

// CLIContext carries the initialized dependencies through the cobra
// command context.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Service      spectra.Service
	OutputFormat string
}

type cliContextKey struct{}

// cliContextFrom extracts the CLIContext stored by persistentPreRun.
func cliContextFrom(cmd *cobra.Command) (*CLIContext, error) {
	cliCtx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, fmt.Errorf("cli context not initialized")
	}
	return cliCtx, nil
}

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "synthspec",
		Short:   "Synthetic spectroscopy engine",
		Long:    "synthspec generates synthetic IR, UV-Vis and NMR spectra from structure descriptors.",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: environment + built-in defaults)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json, csv)")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(
		NewSynthCmd(),
		NewDetectCmd(),
		NewCatalogCmd(),
		NewServeCmd(),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	if opts.NoColor {
		color.NoColor = true
	}
	switch opts.OutputFormat {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("invalid output format: %s (must be text|json|csv)", opts.OutputFormat)
	}

	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(logging.Config{
		Level:       level,
		Format:      "console",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	svc := spectra.NewService(spectrum.NewSynthesizer(), catalog.Default(), logger)

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Service:      svc,
		OutputFormat: opts.OutputFormat,
	}
	ctx := context.WithValue(cmd.Context(), cliContextKey{}, cliCtx)
	cmd.SetContext(ctx)

	return nil
}

// initConfig loads configuration with priority: file > env > defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}
