// Package options provides shared validation helpers for functional options.
package options

import "errors"

// ValidateSingleInputSource ensures exactly one input source is set.
// sources flags whether each candidate source was provided; noSourceMsg
// and multiSourceMsg are the errors for zero and multiple sources.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	set := 0
	for _, ok := range sources {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return errors.New(noSourceMsg)
	case set > 1:
		return errors.New(multiSourceMsg)
	default:
		return nil
	}
}
