package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/shared"
)

type estimateResult struct {
	Location  string `json:"location"`
	Value     int64  `json:"value"`
	Formatted string `json:"formatted"`
}

func newEstimateCmd() *cobra.Command {
	var df detailFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a property's value in INR",
		Long:  "Run the valuation rules on the given property details. --sqft is required.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := df.details(cmd)
			if d == nil {
				return fmt.Errorf("no property details given (see --help)")
			}
			table, err := shared.LoadPriceTable(flagPriceTable)
			if err != nil {
				return err
			}
			v, err := app.NewEstimator(app.NewResolver(table), nil).Estimate(*d)
			if err != nil {
				return err
			}
			res := estimateResult{Location: d.Location, Value: v, Formatted: app.FormatINR(v)}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", res.Formatted, res.Value)
			return err
		},
	}

	df.register(cmd)
	return cmd
}
