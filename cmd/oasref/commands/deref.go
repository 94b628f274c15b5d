package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/oasref/deref"
	"github.com/erraggy/oasref/document"
	"github.com/erraggy/oasref/internal/cliutil"
)

// DerefFlags contains flags for the deref command
type DerefFlags struct {
	Output   string
	Format   string
	MaxDepth int
	Quiet    bool
}

// SetupDerefFlags creates and configures a FlagSet for the deref command.
// Returns the FlagSet and a DerefFlags struct with bound flag variables.
func SetupDerefFlags(defaults Config) (*flag.FlagSet, *DerefFlags) {
	fs := flag.NewFlagSet("deref", flag.ContinueOnError)
	flags := &DerefFlags{}

	fs.StringVar(&flags.Output, "o", "", "write the resolved document to a file")
	fs.StringVar(&flags.Output, "output", "", "write the resolved document to a file")
	fs.StringVar(&flags.Format, "f", defaults.Format, "report format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", defaults.Format, "report format: text, json, or yaml")
	fs.IntVar(&flags.MaxDepth, "max-depth", defaults.MaxDepth, "maximum reference nesting depth (0 uses the built-in limit)")
	fs.BoolVar(&flags.Quiet, "q", defaults.Quiet, "quiet mode: only output errors and the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", defaults.Quiet, "quiet mode: only output errors and the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasref deref [flags] <file|->\n\n")
		cliutil.Writef(output, "Resolve every $ref in an OpenAPI 3.1 document and report statistics.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasref deref openapi.yaml\n")
		cliutil.Writef(output, "  oasref deref -o resolved.yaml openapi.yaml\n")
		cliutil.Writef(output, "  oasref deref --format json openapi.yaml\n")
		cliutil.Writef(output, "  cat openapi.yaml | oasref deref -q -\n")
		cliutil.Writef(output, "\nResolution:\n")
		cliutil.Writef(output, "  - Only local #/components/<section>/<name> pointers are followed\n")
		cliutil.Writef(output, "  - External URL and file references are reported as errors\n")
		cliutil.Writef(output, "  - Reference cycles are left as terminating $ref markers\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    All references resolved\n")
		cliutil.Writef(output, "  1    Load failure or unresolved references\n")
	}

	return fs, flags
}

// derefReport is the structured (json/yaml) form of the deref result.
type derefReport struct {
	Specification string   `json:"specification" yaml:"specification"`
	OASVersion    string   `json:"oas_version" yaml:"oas_version"`
	References    int      `json:"references" yaml:"references"`
	Resolved      int      `json:"resolved" yaml:"resolved"`
	Cycles        int      `json:"cycles" yaml:"cycles"`
	Errors        []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HandleDeref executes the deref command
func HandleDeref(args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupDerefFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("deref command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
			return err
		}
	}

	loaded, err := LoadSpec(specPath)
	if err != nil {
		return err
	}

	var opts []deref.Option
	if flags.MaxDepth > 0 {
		opts = append(opts, deref.WithMaxDepth(flags.MaxDepth))
	}

	startTime := time.Now()
	result, err := deref.Resolve(loaded.Document, opts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("resolving references: %w", err)
	}

	switch flags.Format {
	case FormatJSON, FormatYAML:
		report := derefReport{
			Specification: FormatSpecPath(specPath),
			OASVersion:    loaded.Document.OpenAPI,
			References:    result.Stats.References,
			Resolved:      result.Stats.Resolved,
			Cycles:        result.Stats.Cycles,
		}
		for _, re := range result.Errors {
			report.Errors = append(report.Errors, re.Error())
		}
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
	default:
		if !flags.Quiet {
			cliutil.Errf("OpenAPI Reference Resolver\n")
			cliutil.Errf("==========================\n\n")
			OutputSpecHeader(specPath, loaded)
			cliutil.Errf("References: %d\n", result.Stats.References)
			cliutil.Errf("Resolved: %d\n", result.Stats.Resolved)
			cliutil.Errf("Cycles: %d\n", result.Stats.Cycles)
			cliutil.Errf("Total Time: %v\n\n", totalTime)
		}

		// Errors go to stderr even in quiet mode.
		if len(result.Errors) > 0 {
			cliutil.Errf("Resolution Errors (%d):\n", len(result.Errors))
			for _, re := range result.Errors {
				cliutil.Errf("  %s\n", re.Error())
			}
			cliutil.Errf("\n")
		}

		if !flags.Quiet {
			if result.OK() {
				cliutil.Errf("✓ All references resolved\n")
			} else {
				cliutil.Errf("✗ Resolution completed with %d error(s)\n", len(result.Errors))
			}
		}
	}

	if flags.Output != "" {
		data, err := marshalLoaded(loaded)
		if err != nil {
			return fmt.Errorf("marshaling resolved document: %w", err)
		}
		if err := os.WriteFile(flags.Output, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Errf("Output written to: %s\n", flags.Output)
		}
	}

	if !result.OK() {
		os.Exit(1)
	}
	return nil
}

// marshalLoaded serializes the document back out in its source format.
func marshalLoaded(loaded *document.LoadResult) ([]byte, error) {
	if loaded.SourceFormat == document.SourceFormatJSON {
		return loaded.MarshalOrderedJSONIndent("", "  ")
	}
	return loaded.MarshalOrderedYAML()
}
