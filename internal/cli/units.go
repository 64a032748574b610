package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [DOMAIN]",
		Short: "List supported domains and units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domains := domain.Domains()
			if len(args) == 1 {
				d, err := domain.ParseDomain(args[0])
				if err != nil {
					return err
				}
				domains = []domain.Domain{d}
			}

			printUnits(cmd.OutOrStdout(), domains)
			return nil
		},
	}
}

func printUnits(w io.Writer, domains []domain.Domain) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Domain", "Unit", "Symbol", "Base"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, d := range domains {
		rows := lo.Map(domain.UnitsOf(d), func(u domain.Unit, _ int) []string {
			return []string{d.Title(), u.Name(), u.Symbol(), describeBase(d, u)}
		})
		table.AppendBulk(rows)
	}

	table.Render()
}

func describeBase(d domain.Domain, u domain.Unit) string {
	f, ok := domain.BaseFactor(u)
	if !ok {
		return "affine"
	}

	base := "m"
	if d == domain.Weight {
		base = "kg"
	}
	return fmt.Sprintf("1 %s = %s %s", u.Symbol(), strconv.FormatFloat(f, 'g', 6, 64), base)
}
