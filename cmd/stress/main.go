// FILE: lixenwraith/tlog/cmd/stress/main.go
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/tlog"
)

// Example TOML content for stress test, written when the config file is absent
var tomlContent = `
# Example stress_config.toml
sink = "rotate"
path = "./stress_logs/stress.log"
policy = "dynamic:2000,50,1000"
max_size_mb = 1 # Force frequent rotation
max_backups = 20
sanitize = "txt"
heartbeat_interval_s = 2
internal_errors_to_stderr = true
`

type options struct {
	configFile    string
	workers       int
	logsPerWorker int
	maxMessage    int
	overrides     []string
}

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \t"
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

// worker logs n messages with a random severity
func worker(ctx context.Context, logger *tlog.Logger, id, n, maxMessage int, sent *atomic.Int64) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg := fmt.Sprintf("wkr=%d seq=%d %s", id, i, generateRandomMessage(rand.Intn(maxMessage)+10))
		switch rand.Intn(4) {
		case 0:
			logger.Info(msg)
		case 1:
			logger.Warning(msg)
		case 2:
			logger.Error(msg)
		case 3:
			logger.Log("[STRS]", msg)
		}
		sent.Add(1)
	}
	return nil
}

func run(ctx context.Context, opts options) error {
	fmt.Println("--- Logger Stress Test ---")

	if _, err := os.Stat(opts.configFile); os.IsNotExist(err) {
		if err := os.WriteFile(opts.configFile, []byte(tomlContent), 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Created config file: %s\n", opts.configFile)
	}

	cfg, err := tlog.LoadConfig(opts.configFile, nil)
	if err != nil {
		return err
	}
	if len(opts.overrides) > 0 {
		if err := tlog.ApplyOverrides(cfg, opts.overrides...); err != nil {
			return err
		}
	}
	if cfg.Path != "" {
		_ = os.RemoveAll(cfg.Path)
	}

	logger, err := tlog.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	fmt.Printf("Logger initialized: %s\n", logger)

	// Persist the effective configuration
	if err := cfg.SaveConfig(opts.configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save configuration to '%s': %v\n", opts.configFile, err)
	}

	fmt.Printf("Starting stress test: %d workers x %d logs. Ctrl+C to stop early.\n", opts.workers, opts.logsPerWorker)

	g, gctx := errgroup.WithContext(ctx)
	var sent atomic.Int64
	startTime := time.Now()
	for i := 0; i < opts.workers; i++ {
		g.Go(func() error {
			return worker(gctx, logger, i, opts.logsPerWorker, opts.maxMessage, &sent)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("\n[Stopped early] %v\n", err)
	}
	produced := time.Since(startTime)

	fmt.Println("Shutting down logger (allowing up to 30s)...")
	if err := logger.Quit(30 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	}
	total := time.Since(startTime)

	stats := logger.Stats()
	fmt.Println("\n--- Test Finished ---")
	fmt.Printf("Sent: %d, enqueued: %d, written: %d, write errors: %d, dropped: %d, drains: %d, rotations: %d\n",
		sent.Load(), stats.Enqueued, stats.Written, stats.WriteErrors, stats.Dropped, stats.Drains, stats.Rotations)
	fmt.Printf("Produced in %v, persisted in %v (%.0f logs/sec)\n",
		produced.Round(time.Millisecond), total.Round(time.Millisecond),
		float64(stats.Written)/total.Seconds())

	// Heartbeat lines are enqueued too, so written may exceed sent
	if stats.Written < uint64(sent.Load()) {
		return fmt.Errorf("%d messages missing", uint64(sent.Load())-stats.Written)
	}
	fmt.Println("PASS: every message reached the sink")
	return nil
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:          "stress",
		Short:        "Hammer a tlog logger from many goroutines",
		Long:         "Runs concurrent producers against one logger and verifies that every message reached the sink.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configFile, "config", "stress_config.toml", "TOML configuration file")
	rootCmd.Flags().IntVar(&opts.workers, "workers", 64, "Concurrent producers")
	rootCmd.Flags().IntVar(&opts.logsPerWorker, "logs", 5000, "Messages per producer")
	rootCmd.Flags().IntVar(&opts.maxMessage, "max-message", 2000, "Upper bound of random message size")
	rootCmd.Flags().StringSliceVar(&opts.overrides, "set", nil, "Configuration override key=value, repeatable")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
}
