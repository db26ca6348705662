package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge   = errors.New("header exceeds maximum size")
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrDTypeMismatch    = errors.New("dtype mismatch")
	ErrNotFound         = errors.New("array not found")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Kind of failure, e.g. "offset_overlap", "out_of_bounds"
	Array   string // Primary array name involved
	Array2  string // Secondary array name (for overlap errors)
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Array2 != "" {
		return fmt.Sprintf("%s: arrays %q and %q: %s", e.Type, e.Array, e.Array2, e.Details)
	}
	if e.Array != "" {
		return fmt.Sprintf("%s: array %q: %s", e.Type, e.Array, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
