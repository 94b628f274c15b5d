// Package commands provides CLI command handlers for oasref.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasref"
	"github.com/erraggy/oasref/document"
	"github.com/erraggy/oasref/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// LoadSpec loads an OpenAPI 3.1 document from a file path or stdin.
func LoadSpec(specPath string) (*document.LoadResult, error) {
	if specPath == StdinFilePath {
		result, err := document.Load(
			document.WithReader(os.Stdin),
			document.WithSourceName("<stdin>"),
		)
		if err != nil {
			return nil, fmt.Errorf("loading stdin: %w", err)
		}
		return result, nil
	}
	result, err := document.LoadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("loading file: %w", err)
	}
	return result, nil
}

// ValidateOutputPath checks if the output path is safe to write to.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Refuse to overwrite any input file.
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	if err := RejectSymlinkOutput(filepath.Clean(outputPath)); err != nil {
		return err
	}

	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Errf("Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputSpecHeader outputs the common specification header to stderr.
func OutputSpecHeader(specPath string, result *document.LoadResult) {
	cliutil.Errf("oasref version: %s\n", oasref.Version())
	cliutil.Errf("Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Errf("OAS Version: %s\n", result.Document.OpenAPI)
	cliutil.Errf("Source Size: %s\n", cliutil.FormatBytes(result.SourceSize))
	cliutil.Errf("Load Time: %v\n", result.LoadTime)
}
