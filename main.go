package main

import (
	"fmt"
	"os"

	"github.com/xolan/daylog/cmd"
	"github.com/xolan/daylog/internal/service"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc allows tests to intercept os.Exit
var exitFunc = os.Exit

func run() int {
	cmd.SetVersionInfo(version, commit, date)

	// Refuse to start if the config directory or config file is unusable
	if _, err := service.NewServices(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
