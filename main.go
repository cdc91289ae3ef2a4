package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samzong/gma-cli/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Run(ctx, cmd.RootCmd())
	cancel()
	os.Exit(code)
}
