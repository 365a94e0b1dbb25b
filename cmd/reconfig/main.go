// FILE: lixenwraith/tlog/cmd/reconfig/main.go
package main

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tlog"
)

// Cycle the default logger while another goroutine logs constantly
func main() {
	var count atomic.Int64

	if _, err := tlog.InitWithDefaults("path=reconfig.log"); err != nil {
		fmt.Printf("Initial Init error: %v\n", err)
		return
	}

	// A second Init keeps the live logger
	if _, err := tlog.InitWithDefaults("path=other.log"); !errors.Is(err, tlog.ErrAlreadyInitialized) {
		fmt.Printf("Unexpected second Init result: %v\n", err)
	}

	stop := make(chan struct{})
	go func() {
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			// Calls between Quit and Init are no-ops
			tlog.Info(fmt.Sprintf("Test log %d", i))
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	policies := []string{"constant:10", "dynamic:1000,5", "linear:5,500,50", "dynamic2:1000,100,5,10,20"}
	for i := 0; i < 10; i++ {
		if err := tlog.Quit(time.Second); err != nil {
			fmt.Printf("Quit error: %v\n", err)
		}
		override := "policy=" + policies[i%len(policies)]
		if _, err := tlog.InitWithDefaults("path=reconfig.log", override); err != nil {
			fmt.Printf("Init error: %v\n", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)
	close(stop)
	fmt.Printf("Total logs attempted: %d\n", count.Load())

	if l := tlog.Default(); l != nil {
		fmt.Printf("Final logger: %s\n", l)
	}
	if err := tlog.Quit(time.Second); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}
}
