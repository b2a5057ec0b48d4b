package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtint/internal/brand"
	"github.com/jmylchreest/brandtint/internal/export"
	"github.com/jmylchreest/brandtint/internal/palette"
	"github.com/jmylchreest/brandtint/internal/render"
)

type paletteOptions struct {
	*globalOptions

	stylesheets   []string
	format        outputFormat
	output        string
	maxProperties int
	maxPalette    int
	minConfidence palette.Confidence
	timeout       time.Duration
	noSwatch      bool
	labelWidth    int
}

func newPaletteCmd(global *globalOptions) *cobra.Command {
	opts := &paletteOptions{
		globalOptions: global,
		format:        formatTable,
		minConfidence: palette.Low,
	}

	cmd := &cobra.Command{
		Use:   "palette [source]",
		Short: "Consolidate a brand document into a palette",
		Long: `Read a brand colour document and print the consolidated palette.

The source is a file path, an http(s) URL or "-" for standard input (the
default). Colours from the semantic roles, stylesheet custom properties and
sampled palette are merged by hex value; labels are combined and the highest
confidence wins.

Additional stylesheets can be supplied with --css; any colour-valued custom
properties they declare are added to the document before consolidation.`,
		Example: `  # Consolidate a local extraction result
  brandtint palette brand.json

  # Fetch from a URL and include the site's stylesheet
  brandtint palette https://example.com/brand.json --css https://example.com/site.css

  # Only sampled colours of medium confidence or better, as JSON
  cat brand.json | brandtint palette --min-confidence medium --format json

  # Export named design tokens
  brandtint palette brand.json --format tokens -o tokens.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := brand.StdinSource
			if len(args) == 1 {
				source = args[0]
			}
			opts.applyConfig(cmd)
			return opts.run(cmd.Context(), cmd, source)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.stylesheets, "css", nil, "stylesheet file or URL to scan for custom properties (repeatable)")
	flags.VarP(&opts.format, "format", "f", "output format (table, json, tokens)")
	flags.StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	flags.IntVar(&opts.maxProperties, "max-properties", brand.DefaultMaxProperties, "maximum custom properties to consider (0 for no limit)")
	flags.IntVar(&opts.maxPalette, "max-palette", brand.DefaultMaxPalette, "maximum sampled palette colours to consider (0 for no limit)")
	flags.Var(&opts.minConfidence, "min-confidence", "minimum confidence for sampled palette colours (low, medium, high)")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for remote sources")
	flags.BoolVar(&opts.noSwatch, "no-swatch", false, "disable colour swatches in table output")
	flags.IntVar(&opts.labelWidth, "label-width", 40, "wrap labels wider than this in table output (0 disables)")

	return cmd
}

// applyConfig fills flags the user did not set from the loaded config.
func (o *paletteOptions) applyConfig(cmd *cobra.Command) {
	flags := cmd.Flags()
	cfg := o.cfg

	if !flags.Changed("format") && cfg.Format != "" {
		o.format = outputFormat(cfg.Format)
	}
	if !flags.Changed("max-properties") {
		o.maxProperties = cfg.MaxProperties
	}
	if !flags.Changed("max-palette") {
		o.maxPalette = cfg.MaxPalette
	}
	if !flags.Changed("min-confidence") {
		o.minConfidence = cfg.MinConfidence
	}
	if !flags.Changed("timeout") {
		o.timeout = cfg.Timeout
	}
	if !flags.Changed("no-swatch") {
		o.noSwatch = cfg.NoSwatch
	}
}

func (o *paletteOptions) run(ctx context.Context, cmd *cobra.Command, source string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := parseFormat(string(o.format), paletteFormats)
	if err != nil {
		return err
	}
	if o.maxProperties < 0 || o.maxPalette < 0 {
		return fmt.Errorf("--max-properties and --max-palette must not be negative")
	}

	loadOpts := brand.LoadOptions{
		Timeout: o.timeout,
		Stdin:   cmd.InOrStdin(),
		Logger:  o.logger,
	}

	doc, err := brand.Load(ctx, source, loadOpts)
	if err != nil {
		return err
	}

	for _, sheet := range o.stylesheets {
		props, err := brand.LoadStylesheet(ctx, sheet, loadOpts)
		if err != nil {
			return err
		}
		added := doc.MergeProperties(props)
		o.logger.Debug("merged stylesheet properties", "stylesheet", sheet, "found", len(props), "added", added)
	}

	limits := brand.Limits{
		MaxProperties: o.maxProperties,
		MaxPalette:    o.maxPalette,
		MinConfidence: o.minConfidence,
	}
	entries := doc.Consolidate(limits)

	counts := palette.Summary(entries)
	o.logger.Debug("consolidated palette",
		"colours", counts.Total(),
		"high", counts.High,
		"medium", counts.Medium,
		"low", counts.Low)

	if o.output == "" {
		return o.write(cmd.OutOrStdout(), format, displaySource(source, doc), entries)
	}

	// Render fully before touching the file so a failed encode never leaves
	// a truncated result behind.
	var buf bytes.Buffer
	if err := o.write(&buf, format, displaySource(source, doc), entries); err != nil {
		return err
	}
	if err := os.WriteFile(o.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	o.logger.Info("wrote palette", "path", o.output, "format", string(format))
	return nil
}

func (o *paletteOptions) write(out io.Writer, format outputFormat, source string, entries []palette.Entry) error {
	switch format {
	case formatJSON:
		return export.JSON(out, source, entries)
	case formatTokens:
		tokens, skipped := export.Tokens(entries)
		for _, e := range skipped {
			o.logger.Warn("colour has no hex form and was left out of the tokens", "value", e.Hex, "label", e.Label)
		}
		return export.DesignTokens(out, tokens)
	default:
		return render.Palette(out, entries, renderOptions(out, o.noSwatch, o.labelWidth))
	}
}

// displaySource prefers the page URL recorded in the document.
func displaySource(source string, doc *brand.Document) string {
	if doc.URL != "" {
		return doc.URL
	}
	if source == brand.StdinSource {
		return ""
	}
	return source
}
