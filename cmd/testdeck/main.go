package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/testdeck/cmd"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer logging.Sync()

	err := cmd.NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// Command failures are already printed; anything else came from cobra
	// rejecting arguments or flags.
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Run 'testdeck --help' for usage.")
	return cli.ExitUsage
}
