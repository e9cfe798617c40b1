package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFilter is returned when a filter has no categoria.
	ErrInvalidFilter = errors.New("invalid filter: categoria is required")

	// ErrQuotaExceeded is returned when the daily aggregation budget is spent.
	ErrQuotaExceeded = errors.New("daily search quota exceeded")
)

// ProviderError wraps a transport or parse failure with the name of the
// provider it came from.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
