// FILE: lixenwraith/tlog/cmd/heartbeat/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/tlog"
)

func main() {
	logger, err := tlog.NewBuilder().
		File("./heartbeat_logs/heartbeat.log").
		HeartbeatIntervalS(2).
		Policy(tlog.Constant(time.Second)).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Each phase swaps the worker wait policy while logging continues
	phases := []struct {
		policy      tlog.TimeoutPolicy
		description string
	}{
		{tlog.Constant(time.Second), "constant 1s"},
		{tlog.Dynamic(5*time.Second, 100*time.Millisecond), "dynamic 5s idle, 100ms busy"},
		{tlog.Dynamic2(5*time.Second, 500*time.Millisecond, 10, 50*time.Millisecond, 100), "two step"},
		{tlog.Linear(20*time.Millisecond, 3*time.Second, 200), "linear 3s down to 20ms"},
	}

	for _, phase := range phases {
		if err := logger.SetTimeoutPolicy(phase.policy); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set policy: %v\n", err)
			continue
		}
		fmt.Printf("\n--- Policy %s (%s) ---\n", phase.policy, phase.description)
		logger.Logf("[TEST]", "policy switched to %s", phase.policy)

		for j := 0; j < 50; j++ {
			logger.Info(fmt.Sprintf("phase message %d", j))
			if j%10 == 0 {
				logger.Warning(fmt.Sprintf("checkpoint %d", j))
			}
			time.Sleep(50 * time.Millisecond)
		}

		// Let at least one heartbeat fire
		time.Sleep(2500 * time.Millisecond)
		s := logger.Stats()
		fmt.Printf("enqueued=%d written=%d drains=%d last_backlog=%d wait=%v\n",
			s.Enqueued, s.Written, s.Drains, s.LastBacklog, s.CurrentWait)
	}

	if err := logger.Quit(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to shut down logger: %v\n", err)
	}

	fmt.Println("\nHeartbeat program completed, [BEAT] lines are in ./heartbeat_logs/heartbeat.log")
}
