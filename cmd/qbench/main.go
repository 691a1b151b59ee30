// Command qbench measures how long a bounded blocking queue takes to move a
// fixed number of items between an even split of producer and consumer
// goroutines.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/twolockq/pkg/bench"
	"github.com/huynhanx03/twolockq/pkg/logger"
	"github.com/huynhanx03/twolockq/pkg/settings"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		impl       string
		capacity   int
		repeat     int
	)

	cmd := &cobra.Command{
		Use:          "qbench",
		Short:        "Benchmark a two-lock bounded blocking queue",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := settings.Default()
			if configPath != "" {
				loaded, err := settings.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("impl") {
				cfg.Queue.Implementation = impl
			}
			if flags.Changed("capacity") {
				cfg.Queue.Capacity = capacity
			}
			if flags.Changed("repeat") {
				cfg.Bench.Repeat = repeat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd, cfg, log)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&impl, "impl", settings.ImplTwoLock, "queue implementation: twolock or shared")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "queue capacity (default from config)")
	cmd.Flags().IntVar(&repeat, "repeat", 0, "runs averaged per thread count (default from config)")

	return cmd
}

func run(cmd *cobra.Command, cfg settings.Config, log *zap.Logger) error {
	factory, err := bench.NewFactory(cfg.Queue.Implementation, log)
	if err != nil {
		return err
	}

	log.Info("starting benchmark",
		zap.String("impl", cfg.Queue.Implementation),
		zap.Int("capacity", cfg.Queue.Capacity),
		zap.Int("operations", cfg.Bench.Operations),
		zap.Ints("threads", cfg.Bench.Threads),
	)

	results, err := bench.Suite(cmd.Context(), factory, cfg.Queue.Capacity, cfg.Bench, log)
	if err != nil {
		log.Error("benchmark aborted", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "Using %d Threads,\tTime elapsed avg: %d microsec\n", r.Threads, r.Mean.Microseconds())
	}
	return nil
}
