package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"realestate_chatbot/internal/app"
	"realestate_chatbot/internal/domain"
)

type batchRequest struct {
	Message         string                  `json:"message"`
	PropertyDetails *domain.PropertyDetails `json:"propertyDetails,omitempty"`
}

type batchResult struct {
	Line       int    `json:"line"`
	Intent     string `json:"intent,omitempty"`
	Reply      string `json:"reply,omitempty"`
	Prediction *int64 `json:"prediction"`
	Error      string `json:"error,omitempty"`
}

func newBatchCmd() *cobra.Command {
	var (
		in      string
		out     string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer a file of messages",
		Long:  "Read JSON lines of {message, propertyDetails}, answer them concurrently, and write one JSON result per line in input order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := io.Reader(cmd.InOrStdin())
			if in != "" && in != "-" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			e, err := newEngine()
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), e, r, w, workers)
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "input JSON-lines file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "output JSON-lines file (- for stdout)")
	cmd.Flags().IntVar(&workers, "workers", 8, "concurrent workers")

	return cmd
}

func runBatch(ctx context.Context, e *app.Engine, r io.Reader, w io.Writer, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}

	var reqs []batchRequest
	var results []batchResult
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var req batchRequest
		res := batchResult{Line: n}
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			res.Error = fmt.Sprintf("decode: %v", err)
		}
		reqs = append(reqs, req)
		results = append(results, res)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for i := range reqs {
		if results[i].Error != "" {
			continue
		}
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)

			reply, err := e.Handle(reqs[i].Message, reqs[i].PropertyDetails)
			if err != nil {
				log.Warn().Int("line", results[i].Line).Err(err).Msg("batch message failed")
				results[i].Error = err.Error()
				return
			}
			results[i].Intent = string(reply.Intent.Kind)
			results[i].Reply = reply.Text
			results[i].Prediction = reply.Prediction
		}(i)
	}
	wg.Wait()

	enc := json.NewEncoder(w)
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	log.Debug().Int("messages", len(results)).Msg("batch completed")
	return nil
}
