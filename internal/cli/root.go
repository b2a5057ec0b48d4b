// Package cli provides the command-line interface for brandtint.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtint/internal/config"
	"github.com/jmylchreest/brandtint/internal/version"
)

// globalOptions is shared by every subcommand of one root command.
type globalOptions struct {
	verbose  bool
	quiet    bool
	envFiles []string

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds the brandtint command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "brandtint",
		Short: "Consolidate a website's brand colours",
		Long: `brandtint turns the colours extracted from a web page into a single,
de-duplicated brand palette.

Semantic role colours, stylesheet custom properties and sampled palette
colours are normalised to hex, rgb(), lch() and oklch(), merged by colour and
ranked by extraction confidence.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "load defaults from these .env files (default: ./.env if present)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newPaletteCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// init loads configuration and sets up logging once flags are parsed.
func (o *globalOptions) init(stderr io.Writer) error {
	if o.verbose && o.quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	o.cfg = cfg
	o.logger = newLogger(stderr, o.verbose, o.quiet, cfg.LogJSON)

	o.logger.Debug("configuration loaded",
		"format", cfg.Format,
		"max_properties", cfg.MaxProperties,
		"max_palette", cfg.MaxPalette,
		"min_confidence", cfg.MinConfidence.String(),
		"timeout", cfg.Timeout)

	return nil
}

// newLogger returns the application logger: warnings by default, debug
// output with --verbose, nothing with --quiet.
func newLogger(out io.Writer, verbose, quiet, jsonFormat bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
		out = io.Discard
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "brandtint",
		Output:     out,
		Level:      level,
		JSONFormat: jsonFormat,
	})
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
