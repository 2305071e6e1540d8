package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/linkedlists/internal/bench"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "llbench"))
	c, err := bench.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", logging.ErrField(err))
		os.Exit(cli.ExitCodeBadRequest)
	}
	cli.Main(ctx, bench.Command{Config: c})
}
