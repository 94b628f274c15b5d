package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "openapi.yaml", FormatSpecPath("openapi.yaml"))
}

func TestLoadSpec_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	spec := "openapi: 3.1.0\ninfo:\n  title: T\n  version: '1'\npaths: {}\n"
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o600))

	result, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", result.Document.OpenAPI)
}

func TestLoadSpec_MissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateOutputPath_RejectsInputOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "spec.yaml")

	err := ValidateOutputPath(input, []string{input})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestValidateOutputPath_AllowsNewFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.yaml")

	assert.NoError(t, ValidateOutputPath(out, []string{filepath.Join(dir, "in.yaml")}))
}

func TestValidateOutputPath_IgnoresStdinInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.yaml")
	assert.NoError(t, ValidateOutputPath(out, []string{StdinFilePath}))
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.yaml")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	assert.Error(t, RejectSymlinkOutput(link))
	assert.NoError(t, RejectSymlinkOutput(target))
	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.yaml")))
}
