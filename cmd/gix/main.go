package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gix.dev/gix/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.ReportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
