package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSingleInputSource(t *testing.T) {
	err := ValidateSingleInputSource("no source", "too many", false, false)
	assert.EqualError(t, err, "no source")

	err = ValidateSingleInputSource("no source", "too many", true, true)
	assert.EqualError(t, err, "too many")

	assert.NoError(t, ValidateSingleInputSource("no source", "too many", true, false))
	assert.NoError(t, ValidateSingleInputSource("no source", "too many", false, true, false))
}
