package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasref/internal/cliutil"
	"github.com/erraggy/oasref/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasref mcp\n\n")
		cliutil.Writef(output, "Run the oasref MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(output, "The server exposes the dereference, refs, and components tools.\n")
		cliutil.Writef(output, "Settings are read from OASREF_* environment variables; see the\n")
		cliutil.Writef(output, "server instructions sent to the client for the full list.\n\n")
		cliutil.Writef(output, "Example MCP client configuration:\n")
		cliutil.Writef(output, "  {\"command\": \"oasref\", \"args\": [\"mcp\"]}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
