package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/loadorder/internal/cli"
	apperrors "github.com/matzehuels/loadorder/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx)
	code := apperrors.ExitCode(err)
	// Unresolved issues were already listed by the command.
	if code == apperrors.ExitUsage || (code == apperrors.ExitFailure && !apperrors.Is(err, apperrors.ErrCodeUnresolved)) {
		fmt.Fprintln(os.Stderr, "Error:", apperrors.UserMessage(err))
	}
	os.Exit(code)
}

func run(ctx context.Context) error {
	// --verbose and --config are handled by the root command.
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
