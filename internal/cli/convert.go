package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bernardopiane/UnitConverter/internal/app/template"
	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/infra/logger"
	"github.com/bernardopiane/UnitConverter/internal/usecase"
)

// Same bounds as display.precision in unitconv.yaml.
const (
	minPrecision = 0
	maxPrecision = 10
)

type convertFlags struct {
	domain    string
	from      string
	to        string
	value     string
	format    string
	precision int
}

func convertCmd(g *globalFlags) *cobra.Command {
	var f convertFlags

	c := &cobra.Command{
		Use:   "convert [VALUE]",
		Short: "Convert a value between two units of the same domain",
		Example: "  unitconv convert 100 -d temperature -f C -t F\n" +
			"  unitconv convert --value -40 -d temperature -f F -t K\n" +
			"  unitconv convert 1 -d distance -f mi -t m --format json",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveValue(args, f.value)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") && (f.precision < minPrecision || f.precision > maxPrecision) {
				return fmt.Errorf("--precision must be between %d and %d, got %d", minPrecision, maxPrecision, f.precision)
			}

			root, err := resolveConfigRoot(g.config)
			if err != nil {
				return err
			}
			defer setupDebugLogger(g, root)()

			app, err := loadApp(root, logger.L())
			if err != nil {
				return err
			}

			d := f.domain
			if strings.TrimSpace(d) == "" {
				d = string(app.cfg.Defaults.Domain)
			}

			conv, err := app.convert.ExecuteNamed(cmd.Context(), usecase.ConvertRequest{
				Domain: d,
				From:   f.from,
				To:     f.to,
				Input:  input,
			})
			if err != nil {
				return err
			}

			precision := app.cfg.Display.Precision
			if cmd.Flags().Changed("precision") {
				precision = f.precision
			}

			return printConversion(cmd.OutOrStdout(), conv, outputOptions{
				format:    f.format,
				template:  app.cfg.Display.Template,
				precision: precision,
				rounding:  app.engine.Rounding(conv.Domain),
			})
		},
	}

	c.Flags().StringVarP(&f.domain, "domain", "d", "", "Domain: weight|temperature|distance (defaults to config defaults.domain)")
	c.Flags().StringVarP(&f.from, "from", "f", "", "Source unit (name, symbol or alias) (required)")
	c.Flags().StringVarP(&f.to, "to", "t", "", "Target unit (name, symbol or alias) (required)")
	c.Flags().StringVar(&f.value, "value", "", "Value to convert (alternative to VALUE; use for negative numbers)")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json|plain")
	c.Flags().IntVar(&f.precision, "precision", 4, "Decimals in the output (defaults to config display.precision)")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func resolveValue(args []string, flagValue string) (string, error) {
	hasFlag := strings.TrimSpace(flagValue) != ""
	switch {
	case len(args) == 1 && hasFlag:
		return "", fmt.Errorf("pass the value either as VALUE or --value, not both")
	case len(args) == 1:
		return args[0], nil
	case hasFlag:
		return flagValue, nil
	default:
		return "", fmt.Errorf("value is required (VALUE or --value)")
	}
}

type outputOptions struct {
	format    string
	template  string
	precision int
	rounding  domain.Rounding
}

type unitJSON struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type conversionJSON struct {
	Domain    string   `json:"domain"`
	From      unitJSON `json:"from"`
	To        unitJSON `json:"to"`
	Value     float64  `json:"value"`
	Result    float64  `json:"result"`
	Formatted string   `json:"formatted"`
	Rounding  *int32   `json:"rounding_places,omitempty"`
}

func printConversion(w io.Writer, c domain.Conversion, opts outputOptions) error {
	switch opts.format {
	case "json":
		payload := conversionJSON{
			Domain:    string(c.Domain),
			From:      unitJSON{Name: c.From.Name(), Symbol: c.From.Symbol()},
			To:        unitJSON{Name: c.To.Name(), Symbol: c.To.Symbol()},
			Value:     c.Value,
			Result:    c.Result,
			Formatted: template.FormatNumber(c.Result, opts.precision),
		}
		if opts.rounding.Enabled {
			places := opts.rounding.Places
			payload.Rounding = &places
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)

	case "plain":
		_, err := fmt.Fprintln(w, template.FormatNumber(c.Result, opts.precision))
		return err

	case "pretty", "":
		line, err := template.RenderConversion(opts.template, c, opts.precision)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err

	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|plain)", opts.format)
	}
}
