// Package command provides the command line interface of the ranges demonstration program.
package command

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/brendoncarroll/go-exp/streams"
	"github.com/spf13/cobra"

	"github.com/norio-nomura/ranges/pkg/jqpred"
	"github.com/norio-nomura/ranges/pkg/options"
	"github.com/norio-nomura/ranges/pkg/shellwords"
	"github.com/norio-nomura/ranges/pkg/streamview"
	"github.com/norio-nomura/ranges/pkg/view"
)

// NewCmd creates the root command.
func NewCmd(ctx context.Context) *cobra.Command {
	var (
		fromStdin bool
		envFile   string
		from, to  int
		wheres    []string
		format    string
		debug     bool
	)
	c := &cobra.Command{
		Use:   "ranges",
		Short: "filters the integers from..to through a lazy chain of jq filter stages",
		Long: "ranges builds the integers from..to, applies one filter view per jq expression and prints the survivors.\n" +
			"Configuration is read from RANGES_* environment variables (or JSON on stdin with --stdin); flags override it.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOptions(cmd, fromStdin, envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("from") {
				o.From = from
			}
			if flags.Changed("to") {
				o.To = to
			}
			if flags.Changed("where") {
				o.Filters = wheres
			}
			if flags.Changed("format") {
				o.Format = format
			}
			if flags.Changed("debug") {
				o.Debug = debug
			}
			if err := o.Validate(); err != nil {
				return err
			}
			if o.Debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return run(ctx, cmd.OutOrStdout(), o)
		},
	}
	f := c.Flags()
	f.BoolVar(&fromStdin, "stdin", false, "read options as JSON from stdin instead of the environment")
	f.StringVar(&envFile, "env-file", "", "load environment variables from this file (default .env if present)")
	f.IntVar(&from, "from", 1, "first integer of the sequence")
	f.IntVar(&to, "to", 20, "last integer of the sequence")
	f.StringArrayVarP(&wheres, "where", "w", nil, "jq expression of one filter stage; repeat for a chain")
	f.StringVar(&format, "format", "lines", "output format: lines or json")
	f.BoolVar(&debug, "debug", false, "enable debug logging")
	return c
}

func loadOptions(cmd *cobra.Command, fromStdin bool, envFile string) (*options.Options, error) {
	if fromStdin {
		return options.FromJSON(cmd.InOrStdin())
	}
	if envFile != "" {
		return options.FromEnv(envFile)
	}
	return options.FromEnv()
}

func run(ctx context.Context, w io.Writer, o *options.Options) error {
	stages, preds, err := jqpred.Filters[int](o.Filters...)
	if err != nil {
		return err
	}
	slog.Debug("Built filter chain",
		slog.Int("from", o.From),
		slog.Int("to", o.To),
		slog.Int("stages", len(stages)),
		slog.String("filters", shellwords.Join(o.Filters)),
	)
	it := streamview.New(view.Pipe(o.Source(), stages...))

	bufw := bufio.NewWriter(w)
	err = write(ctx, bufw, it, o.Format)
	if err == nil {
		for _, p := range preds {
			if err = p.Err(); err != nil {
				break
			}
		}
	}
	// Survivors printed before a failure are still flushed.
	if ferr := bufw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// write prints every element of it in the given format.
// The json format encodes nothing unless the traversal completes.
func write(ctx context.Context, w io.Writer, it streams.Iterator[int], format string) error {
	got := []int{}
	err := streams.ForEach[int](ctx, it, func(n int) error {
		if format == "json" {
			got = append(got, n)
			return nil
		}
		_, err := fmt.Fprintln(w, n)
		return err
	})
	if err != nil {
		return err
	}
	if format == "json" {
		if err := json.NewEncoder(w).Encode(got); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	}
	return nil
}
