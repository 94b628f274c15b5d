package mcpserver

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasref/deref"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type refsInput struct {
	Spec    specInput `json:"spec"               jsonschema:"The OAS 3.1 document to scan"`
	Target  string    `json:"target,omitempty"   jsonschema:"Filter to refs matching this pointer (supports * glob)"`
	GroupBy string    `json:"group_by,omitempty" jsonschema:"Group results and return counts: target or kind"`
	Offset  int       `json:"offset,omitempty"   jsonschema:"Number of results to skip"`
	Limit   int       `json:"limit,omitempty"    jsonschema:"Maximum results to return (default from OASREF_REFS_LIMIT)"`
}

// refSite is the wire form of one reference occurrence.
type refSite struct {
	Ref      string `json:"ref"`
	Location string `json:"location"`
	Kind     string `json:"kind,omitempty"`
	Resolved bool   `json:"resolved,omitempty"`
}

type refsOutput struct {
	Total    int          `json:"total"`
	Unique   int          `json:"unique_targets"`
	Returned int          `json:"returned"`
	Sites    []refSite    `json:"sites,omitempty"`
	Groups   []groupCount `json:"groups,omitempty"`
}

func handleRefs(_ context.Context, _ *mcp.CallToolRequest, input refsInput) (*mcp.CallToolResult, refsOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"target", "kind"}); err != nil {
		return errResult(err), refsOutput{}, nil
	}

	loaded, err := input.Spec.load(true)
	if err != nil {
		return errResult(err), refsOutput{}, nil
	}

	sites, err := deref.Refs(loaded.Document)
	if err != nil {
		return errResult(err), refsOutput{}, nil
	}

	if input.Target != "" {
		filtered := sites[:0:0]
		for _, site := range sites {
			if matchRefGlob(site.Ref, input.Target) {
				filtered = append(filtered, site)
			}
		}
		sites = filtered
	}

	output := refsOutput{
		Total:  len(sites),
		Unique: uniqueTargets(sites),
	}

	switch strings.ToLower(input.GroupBy) {
	case "target":
		output.Groups = groupAndSort(sites, func(s deref.RefSite) string { return s.Ref })
	case "kind":
		output.Groups = groupAndSort(sites, func(s deref.RefSite) string {
			if s.Kind == deref.KindUnknown {
				return "unknown"
			}
			return s.Kind.String()
		})
	default:
		for _, site := range paginate(sites, input.Offset, input.Limit) {
			wire := refSite{
				Ref:      site.Ref,
				Location: site.Location,
				Resolved: site.Resolved,
			}
			if site.Kind != deref.KindUnknown {
				wire.Kind = site.Kind.String()
			}
			output.Sites = append(output.Sites, wire)
		}
		output.Returned = len(output.Sites)
	}

	return nil, output, nil
}

// uniqueTargets counts the distinct pointers among the sites.
func uniqueTargets(sites []deref.RefSite) int {
	seen := make(map[string]struct{}, len(sites))
	for _, site := range sites {
		seen[site.Ref] = struct{}{}
	}
	return len(seen)
}

// matchRefGlob matches a pointer against a glob pattern, allowing * and ?
// to match across / separators in pointers like "#/components/schemas/Pet".
// It does this by replacing / with a non-separator character before calling
// filepath.Match.
func matchRefGlob(ref, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.EqualFold(ref, pattern)
	}
	normalizedRef := strings.ReplaceAll(strings.ToLower(ref), "/", ":")
	normalizedPattern := strings.ReplaceAll(strings.ToLower(pattern), "/", ":")
	matched, err := filepath.Match(normalizedPattern, normalizedRef)
	return err == nil && matched
}
