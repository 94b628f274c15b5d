package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasref/deref"
	"github.com/erraggy/oasref/internal/cliutil"
)

// ComponentsFlags contains flags for the components command
type ComponentsFlags struct {
	Section string
	Format  string
	Quiet   bool
}

// SetupComponentsFlags creates and configures a FlagSet for the components command.
func SetupComponentsFlags(defaults Config) (*flag.FlagSet, *ComponentsFlags) {
	fs := flag.NewFlagSet("components", flag.ContinueOnError)
	flags := &ComponentsFlags{}

	fs.StringVar(&flags.Section, "section", "", "only show one components section (schemas, responses, ...)")
	fs.StringVar(&flags.Format, "f", defaults.Format, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", defaults.Format, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", defaults.Quiet, "quiet mode: only output the components, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", defaults.Quiet, "quiet mode: only output the components, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasref components [flags] <file|->\n\n")
		cliutil.Writef(output, "List the named components declared in an OpenAPI 3.1 document by section.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasref components openapi.yaml\n")
		cliutil.Writef(output, "  oasref components --section schemas openapi.yaml\n")
		cliutil.Writef(output, "  oasref components --format json openapi.yaml\n")
	}

	return fs, flags
}

// componentsSection is the structured (json/yaml) form of one section listing.
type componentsSection struct {
	Section    string   `json:"section" yaml:"section"`
	Count      int      `json:"count" yaml:"count"`
	Components []string `json:"components" yaml:"components"`
}

// HandleComponents executes the components command
func HandleComponents(args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupComponentsFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("components command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var only deref.ComponentKind
	if flags.Section != "" {
		kind, ok := deref.KindForSection(flags.Section)
		if !ok {
			return fmt.Errorf("unknown components section '%s'", flags.Section)
		}
		only = kind
	}

	specPath := fs.Arg(0)
	loaded, err := LoadSpec(specPath)
	if err != nil {
		return err
	}

	idx, err := deref.BuildIndex(loaded.Document)
	if err != nil {
		return fmt.Errorf("indexing components: %w", err)
	}

	if !flags.Quiet && flags.Format == FormatText {
		cliutil.Errf("OpenAPI Component Inventory\n")
		cliutil.Errf("===========================\n\n")
		OutputSpecHeader(specPath, loaded)
		cliutil.Errf("Components: %d\n\n", idx.Len())
	}

	var sections []componentsSection
	for _, kind := range deref.Kinds() {
		if flags.Section != "" && kind != only {
			continue
		}
		names := idx.Names(kind)
		if len(names) == 0 {
			continue
		}
		sections = append(sections, componentsSection{
			Section:    kind.Section(),
			Count:      len(names),
			Components: names,
		})
	}

	switch flags.Format {
	case FormatJSON, FormatYAML:
		return OutputStructured(sections, flags.Format)
	default:
		for _, section := range sections {
			fmt.Printf("%s (%d):\n", section.Section, section.Count)
			for _, name := range section.Components {
				fmt.Printf("  %s\n", name)
			}
		}
	}

	return nil
}
