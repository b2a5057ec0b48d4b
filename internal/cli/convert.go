package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtint/internal/colour"
	"github.com/jmylchreest/brandtint/internal/render"
)

// conversion is one converted input in JSON output.
type conversion struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	colour.Record
}

type convertOptions struct {
	*globalOptions

	format   outputFormat
	strict   bool
	noSwatch bool
}

func newConvertCmd(global *globalOptions) *cobra.Command {
	opts := &convertOptions{
		globalOptions: global,
		format:        formatTable,
	}

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours to hex, rgb, lch and oklch",
		Long: `Convert one or more CSS colours into every canonical format.

Accepted inputs are #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b) and
rgba(r, g, b, a). Anything else is passed through unchanged unless --strict
is set.`,
		Example: `  brandtint convert '#3366ff'
  brandtint convert 'rgba(255, 0, 0, 0.5)' '#0f0' --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("no-swatch") {
				opts.noSwatch = opts.cfg.NoSwatch
			}
			return opts.run(cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().VarP(&opts.format, "format", "f", "output format (table, json)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on colours that cannot be parsed")
	cmd.Flags().BoolVar(&opts.noSwatch, "no-swatch", false, "disable colour swatches")

	return cmd
}

func (o *convertOptions) run(out io.Writer, inputs []string) error {
	format, err := parseFormat(string(o.format), convertFormats)
	if err != nil {
		return err
	}

	results := make([]conversion, 0, len(inputs))
	for _, raw := range inputs {
		rec, ok := colour.Convert(raw)
		if !ok {
			if o.strict {
				_, perr := colour.Parse(raw)
				return perr
			}
			o.logger.Warn("unsupported colour syntax, passing value through", "value", raw)
			rec = colour.Fallback(raw)
		}
		results = append(results, conversion{Input: raw, Valid: ok, Record: rec})
	}

	if format == formatJSON {
		return writeJSON(out, results)
	}

	opts := renderOptions(out, o.noSwatch, 0)
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		fields := [][2]string{
			{"hex", r.Hex},
			{"rgb", r.RGB},
			{"lch", r.LCH},
			{"oklch", r.OKLCH},
		}
		if err := render.Record(out, r.Input, fields, opts); err != nil {
			return err
		}
	}
	return nil
}
