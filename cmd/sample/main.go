// FILE: lixenwraith/tlog/cmd/sample/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/tlog"
)

const logFile = "sample.log"

type sampleError struct {
	code int
}

func (e *sampleError) Error() string {
	return fmt.Sprintf("sample failure code %d", e.code)
}

func main() {
	fmt.Println("--- Sample Logger Program ---")

	// Command line values (e.g. --policy=constant:500) override the defaults
	cfg, err := tlog.LoadConfig("", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Path = logFile

	if _, err := tlog.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logger initialized, writing to %s\n", logFile)

	tlog.Info("sample started")
	tlog.Warning("disk usage at 91%")
	tlog.Error("could not reach upstream")
	tlog.Exception(&sampleError{code: 7})
	tlog.Exception(errors.New("plain error"))
	tlog.Log("[CUST]", "custom tag line")
	tlog.Logf("[CUST]", "formatted %s with %d args", "line", 2)
	tlog.BlankLine()

	// Everything printed to stdout lands in the log as [LOGX] lines, and
	// still shows on an interactive terminal
	passthrough := term.IsTerminal(int(os.Stdout.Fd()))
	restore, err := tlog.InterceptStdout(passthrough)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to intercept stdout: %v\n", err)
	} else {
		fmt.Println("this line goes through the logger")
		fmt.Printf("so does this one: %v\n", time.Now().Unix())
		if err := restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore stdout: %v\n", err)
		}
	}

	tlog.Info("sample finished")

	if err := tlog.Quit(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done. Check %s\n", logFile)
}
