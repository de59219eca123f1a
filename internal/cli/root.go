// Package cli defines the cobra command tree for chatctl.
package cli

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/shared"
)

var (
	flagFormat     string
	flagPriceTable string
	flagVerbose    bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chatctl",
		Short:         "Talk to the real-estate assistant from the terminal",
		Long:          "Ask the rule-based real-estate assistant questions, estimate property values, and replay message files, locally or against a running API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if flagVerbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(level).With().Timestamp().Logger()
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagPriceTable, "price-table", os.Getenv("PRICE_TABLE_FILE"), "YAML price table (default: built-in)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newAskCmd(),
		newEstimateCmd(),
		newBatchCmd(),
		newCitiesCmd(),
	)

	return root
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

func newEngine() (*app.Engine, error) {
	table, err := shared.LoadPriceTable(flagPriceTable)
	if err != nil {
		return nil, err
	}
	return app.NewDefaultEngine(table), nil
}

// printJSON marshals v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
