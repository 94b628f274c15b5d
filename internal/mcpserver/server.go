// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasref capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/oasref"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasref MCP server — resolves, lists, and inspects $ref references in OpenAPI 3.1 specs.

Configuration: All defaults are configurable via OASREF_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASREF_CACHE_ENABLED (default: true) — disable spec caching entirely
- OASREF_CACHE_FILE_TTL (default: 5m) — cache TTL for local file specs
- OASREF_CACHE_CONTENT_TTL (default: 30m) — cache TTL for inline content
- OASREF_MAX_INLINE_SIZE (default: 10485760) — max inline content bytes
- OASREF_MAX_DEPTH (default: 100) — max reference nesting during resolution
- OASREF_REFS_LIMIT (default: 100) — default result limit for the refs tool

Only canonical local pointers of the form #/components/<section>/<name> are resolved; external URL and file references are reported as errors. Reference cycles are left as terminating $ref markers, never expanded.

Caching: Parsed specs are cached per session for the read-only tools (refs, components). File entries use path+mtime as key (auto-invalidated on change). The dereference tool always parses fresh because resolution modifies the document. A background sweeper removes expired entries periodically.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasref", Version: oasref.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "dereference",
		Description: "Resolve all $ref references in an OpenAPI 3.1 document. Returns resolution statistics (references seen, resolved, cycles) and any per-reference errors with JSON path locations. Use full=true to also return the resolved document; cycle sites stay as $ref markers so the output always terminates. Max nesting depth is configurable via OASREF_MAX_DEPTH.",
	}, handleDereference)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "refs",
		Description: "List every $ref site in an OpenAPI 3.1 document without resolving anything. Each site reports the pointer, its JSON path location, and the component kind. Use target to filter to a specific pointer (supports * glob, e.g. #/components/schemas/Pet*). Use group_by (target or kind) to get distribution counts instead of individual sites. Use offset/limit to paginate; default limit is configurable via OASREF_REFS_LIMIT.",
	}, handleRefs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "components",
		Description: "List the named components declared in an OpenAPI 3.1 document, grouped by section (schemas, responses, parameters, ...). Each component reports its canonical pointer. Use section to narrow to one section. Fails if two components share a canonical pointer.",
	}, handleComponents)
}

// maxPageSize caps any explicit per-call limit.
const maxPageSize = 1000

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.RefsLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.RefsLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}
