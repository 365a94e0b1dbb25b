// FILE: example/sink/main.go
package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/tlog"
)

const (
	logDirectory = "./temp_logs"
	logInterval  = 200 * time.Millisecond
)

// main runs the same short workload against every sink kind
func main() {
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}

	fmt.Println("--- Running Sink Tour ---")
	fmt.Printf("! All file-based logs will be in the '%s' directory.\n\n", logDirectory)

	runPhase("file", "sink=file", "path="+logDirectory+"/file.log")
	runPhase("rotate", "sink=rotate", "path="+logDirectory+"/rotate.log", "max_size_mb=1", "compress=true")
	runPhase("stdout", "sink=stdout", "sanitize=escape")
	runPhase("stderr", "sink=stderr")

	addr, stop := startCollector()
	runPhase("http", "sink=http", "http_url=http://"+addr+"/ingest", "http_timeout_ms=2000")
	stop()

	fmt.Println("\n--- Sink Tour Complete ---")
}

// runPhase starts a logger with the given overrides, logs a few lines and quits
func runPhase(name string, overrides ...string) {
	fmt.Printf("\n--- %s ---\n", name)
	cfg, err := tlog.NewConfigFromOverrides(append(overrides, "policy=constant:100")...)
	if err != nil {
		fmt.Printf("Invalid config for %s: %v\n", name, err)
		return
	}
	logger, err := tlog.NewLogger(cfg)
	if err != nil {
		fmt.Printf("Could not start %s logger: %v\n", name, err)
		return
	}

	for i := 0; i < 3; i++ {
		logger.Info(fmt.Sprintf("%s phase line %d", name, i))
		time.Sleep(logInterval)
	}
	logger.Warning("multi\nline\tmessage")
	logger.Exception(fmt.Errorf("%s phase sample error", name))

	if err := logger.Quit(2 * time.Second); err != nil {
		fmt.Printf("Shutdown error for %s: %v\n", name, err)
	}
	s := logger.Stats()
	fmt.Printf("%s: written=%d write_errors=%d flush_errors=%d\n", name, s.Written, s.WriteErrors, s.FlushErrors)
}

// startCollector runs a fasthttp server that prints received batches
func startCollector() (string, func()) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			fmt.Printf("collector received %d bytes:\n%s", len(ctx.PostBody()), ctx.PostBody())
			ctx.SetStatusCode(fasthttp.StatusNoContent)
		},
	}
	go server.Serve(ln)
	return ln.Addr().String(), func() { _ = server.Shutdown() }
}
