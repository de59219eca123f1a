package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"realestate_chatbot/internal/shared"
)

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the price table",
		Long:  "Print every city with its base price per square foot and area overrides, in lookup order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := shared.LoadPriceTable(flagPriceTable)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), table)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CITY\tBASE/SQFT\tPREMIUM\tAREAS")
			for _, c := range table {
				areas := make([]string, 0, len(c.Areas))
				for _, a := range c.Areas {
					areas = append(areas, fmt.Sprintf("%s=%.0f", a.Area, a.PricePerSqft))
				}
				fmt.Fprintf(w, "%s\t%.0f\tx%g\t%s\n", c.City, c.BasePricePerSqft, c.PremiumMultiplier, strings.Join(areas, ", "))
			}
			return w.Flush()
		},
	}
}
