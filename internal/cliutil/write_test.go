package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "resolved %d of %d references", 4, 6)
	assert.Equal(t, "resolved 4 of 6 references", buf.String())
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "plain message")
	assert.Equal(t, "plain message", buf.String())
}

// errorWriter always fails, to exercise the stderr fallback path.
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	var captured bytes.Buffer
	orig := stderr
	stderr = &captured
	defer func() { stderr = orig }()

	Writef(errorWriter{}, "this will fail")
	assert.Contains(t, captured.String(), "write error: simulated write error")
}

func TestErrf(t *testing.T) {
	var captured bytes.Buffer
	orig := stderr
	stderr = &captured
	defer func() { stderr = orig }()

	Errf("loaded %s (%s)", "openapi.yaml", FormatBytes(2048))
	assert.Equal(t, "loaded openapi.yaml (2.0 KiB)", captured.String())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 KiB", FormatBytes(1536))
	assert.Equal(t, "1.0 MiB", FormatBytes(1024*1024))
	assert.Equal(t, "2.0 GiB", FormatBytes(2*1024*1024*1024))
	assert.Equal(t, "-42 B", FormatBytes(-42))
}
