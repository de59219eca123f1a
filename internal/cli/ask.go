package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"realestate_chatbot/internal/adapters/chatclient"
	"realestate_chatbot/internal/domain"
)

type askResult struct {
	Reply      string `json:"reply"`
	Prediction *int64 `json:"prediction"`
	Intent     string `json:"intent,omitempty"`
}

func newAskCmd() *cobra.Command {
	var (
		df     detailFlags
		server string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Ask the assistant a question",
		Long:  "Answer one message with the local engine, or send it to a running API with --server.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			details := df.details(cmd)
			var (
				res askResult
				err error
			)
			if server != "" {
				res, err = askRemote(cmd.Context(), server, token, msg, details)
			} else {
				res, err = askLocal(msg, details)
			}
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Reply)
			return err
		},
	}

	df.register(cmd)
	cmd.Flags().StringVar(&server, "server", "", "API base URL, e.g. http://localhost:3000")
	cmd.Flags().StringVar(&token, "token", "", "session token for --server")

	return cmd
}

func askLocal(msg string, details *domain.PropertyDetails) (askResult, error) {
	e, err := newEngine()
	if err != nil {
		return askResult{}, err
	}
	r, err := e.Handle(msg, details)
	if err != nil {
		return askResult{}, err
	}
	return askResult{Reply: r.Text, Prediction: r.Prediction, Intent: string(r.Intent.Kind)}, nil
}

func askRemote(ctx context.Context, server, token, msg string, details *domain.PropertyDetails) (askResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cl, err := chatclient.New(server, 5)
	if err != nil {
		return askResult{}, err
	}
	if token != "" {
		cl.WithToken(token)
	}
	r, err := cl.Chat(ctx, msg, details)
	if err != nil {
		return askResult{}, err
	}
	return askResult{Reply: r.Reply, Prediction: r.Prediction}, nil
}
