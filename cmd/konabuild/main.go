package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// Version information (set by build flags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand(version, commit, date).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. Missing publish
// credentials get their own code so CI can tell them apart.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, entities.ErrMissingCredentials):
		return 2
	default:
		return 1
	}
}
