package commands

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/oasref/deref"
	"github.com/erraggy/oasref/internal/cliutil"
)

// RefsFlags contains flags for the refs command
type RefsFlags struct {
	Target  string
	GroupBy string
	Format  string
	Quiet   bool
}

// SetupRefsFlags creates and configures a FlagSet for the refs command.
func SetupRefsFlags(defaults Config) (*flag.FlagSet, *RefsFlags) {
	fs := flag.NewFlagSet("refs", flag.ContinueOnError)
	flags := &RefsFlags{}

	fs.StringVar(&flags.Target, "target", "", "only show refs matching this pointer (supports * glob)")
	fs.StringVar(&flags.GroupBy, "group-by", "", "group results and print counts: target or kind")
	fs.StringVar(&flags.Format, "f", defaults.Format, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", defaults.Format, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", defaults.Quiet, "quiet mode: only output the sites, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", defaults.Quiet, "quiet mode: only output the sites, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasref refs [flags] <file|->\n\n")
		cliutil.Writef(output, "List every $ref site in an OpenAPI 3.1 document without resolving anything.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasref refs openapi.yaml\n")
		cliutil.Writef(output, "  oasref refs --target '*schemas/Pet*' openapi.yaml\n")
		cliutil.Writef(output, "  oasref refs --group-by target openapi.yaml\n")
		cliutil.Writef(output, "  oasref refs --format json openapi.yaml\n")
	}

	return fs, flags
}

// refsSite is the structured (json/yaml) form of one reference site.
type refsSite struct {
	Ref      string `json:"ref" yaml:"ref"`
	Location string `json:"location" yaml:"location"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// refsGroup is one group_by bucket.
type refsGroup struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// HandleRefs executes the refs command
func HandleRefs(args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupRefsFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("refs command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	groupBy := strings.ToLower(flags.GroupBy)
	if groupBy != "" && groupBy != "target" && groupBy != "kind" {
		return fmt.Errorf("invalid group-by '%s'. Valid values: target, kind", flags.GroupBy)
	}

	specPath := fs.Arg(0)
	loaded, err := LoadSpec(specPath)
	if err != nil {
		return err
	}

	sites, err := deref.Refs(loaded.Document)
	if err != nil {
		return fmt.Errorf("collecting references: %w", err)
	}

	if flags.Target != "" {
		filtered := sites[:0:0]
		for _, site := range sites {
			if MatchRefGlob(site.Ref, flags.Target) {
				filtered = append(filtered, site)
			}
		}
		sites = filtered
	}

	if !flags.Quiet && flags.Format == FormatText {
		cliutil.Errf("OpenAPI Reference Inventory\n")
		cliutil.Errf("===========================\n\n")
		OutputSpecHeader(specPath, loaded)
		cliutil.Errf("Reference Sites: %d\n\n", len(sites))
	}

	if groupBy != "" {
		groups := groupSites(sites, groupBy)
		switch flags.Format {
		case FormatJSON, FormatYAML:
			return OutputStructured(groups, flags.Format)
		default:
			for _, g := range groups {
				fmt.Printf("%6d  %s\n", g.Count, g.Key)
			}
		}
		return nil
	}

	switch flags.Format {
	case FormatJSON, FormatYAML:
		out := make([]refsSite, 0, len(sites))
		for _, site := range sites {
			s := refsSite{Ref: site.Ref, Location: site.Location}
			if site.Kind != deref.KindUnknown {
				s.Kind = site.Kind.String()
			}
			out = append(out, s)
		}
		return OutputStructured(out, flags.Format)
	default:
		for _, site := range sites {
			fmt.Printf("%s -> %s\n", site.Location, site.Ref)
		}
	}

	return nil
}

// groupSites buckets sites by target pointer or kind, ordered by
// descending count with alphabetical tie-break.
func groupSites(sites []deref.RefSite, groupBy string) []refsGroup {
	counts := make(map[string]int)
	for _, site := range sites {
		key := site.Ref
		if groupBy == "kind" {
			if site.Kind == deref.KindUnknown {
				key = "unknown"
			} else {
				key = site.Kind.String()
			}
		}
		counts[key]++
	}
	groups := make([]refsGroup, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, refsGroup{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// MatchRefGlob matches a pointer against a glob pattern, allowing * and ?
// to match across / separators.
func MatchRefGlob(ref, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.EqualFold(ref, pattern)
	}
	normalizedRef := strings.ReplaceAll(strings.ToLower(ref), "/", ":")
	normalizedPattern := strings.ReplaceAll(strings.ToLower(pattern), "/", ":")
	matched, err := filepath.Match(normalizedPattern, normalizedRef)
	return err == nil && matched
}
