// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/tlog"
	"github.com/lixenwraith/tlog/compat"
	"github.com/lixenwraith/tlog/metrics"
)

func main() {
	logger, err := tlog.NewBuilder().
		Rotate("/var/log/fasthttp/server.log", 50, 10).
		Sanitize("txt").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Quit()

	// Create fasthttp adapter with custom severity detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultSeverity(compat.SeverityInfo),
		compat.WithSeverityDetector(customSeverityDetector),
	)

	// Logger counters on /metrics
	reg := prometheus.NewRegistry()
	if _, err := metrics.Register(reg, logger, "", prometheus.Labels{"server": "MyServer"}); err != nil {
		panic(err)
	}
	metricsHandler := metrics.FastHTTPHandler(reg)
	appHandler := requestHandler(logger)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			if string(ctx.Path()) == "/metrics" {
				metricsHandler(ctx)
				return
			}
			appHandler(ctx)
		},
		Logger: fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Exception(err)
		panic(err)
	}
}

func requestHandler(logger *tlog.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.SetContentType("text/plain")
		fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
		logger.Logf("[HTTP]", "%s %s from %s", ctx.Method(), ctx.Path(), ctx.RemoteIP())
	}
}

func customSeverityDetector(msg string) compat.Severity {
	if strings.Contains(msg, "connection cannot be served") {
		return compat.SeverityWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return compat.SeverityError
	}

	// Use default detection
	return compat.DetectSeverity(msg)
}
