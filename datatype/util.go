package datatype

import "fmt"

// fmtWrap wraps a sentinel error with additional detail from cause,
// matching the %w-wrapping convention used throughout this module.
func fmtWrap(sentinel, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}
