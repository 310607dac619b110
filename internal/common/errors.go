package common

import (
	"errors"
	"fmt"
)

// The pipeline fails for exactly one of these reasons; everything else degrades
// to a placeholder value inside the extractors.
var (
	// ErrUnreadableDocument means text recovery failed: the uploaded bytes are
	// not a readable PDF.
	ErrUnreadableDocument = errors.New("document text could not be recovered")

	// ErrCostRegionNotFound means the start/end markers never bounded a
	// services section in the recovered text.
	ErrCostRegionNotFound = errors.New("cost region not found in document text")

	// ErrNoCostData means a region was found but none of the configured cost
	// labels matched inside it.
	ErrNoCostData = errors.New("no cost data extracted")
)

// WrapError annotates err with a message, preserving errors.Is/As matching.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
