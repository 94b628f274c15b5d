package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasref"
	"github.com/erraggy/oasref/cmd/oasref/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasref v%s\n", oasref.Version())
	case "build-info":
		fmt.Println(oasref.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "deref":
		if err := commands.HandleDeref(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "refs":
		if err := commands.HandleRefs(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "components":
		if err := commands.HandleComponents(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// commandNames lists every dispatchable command for typo suggestions.
var commandNames = []string{"deref", "refs", "components", "mcp", "version", "build-info", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oasref - OpenAPI 3.1 Reference Tools

Usage:
  oasref <command> [options]

Commands:
  deref       Resolve every $ref in an OpenAPI 3.1 document
  refs        List every $ref site without resolving anything
  components  List named components by section
  mcp         Run the MCP server over stdio
  version     Show version information
  build-info  Show detailed build metadata
  help        Show this help message

Examples:
  oasref deref openapi.yaml
  oasref deref -o resolved.yaml openapi.yaml
  oasref refs --group-by target openapi.yaml
  oasref components --section schemas openapi.yaml
  cat openapi.yaml | oasref deref -q -

Run 'oasref <command> --help' for more information on a command.`)
}
