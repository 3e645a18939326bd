package catalog

import (
	"errors"
	"fmt"
)

// ErrRepositoryUnavailable is returned by the pipeline when any repository
// call fails. The underlying cause is wrapped.
var ErrRepositoryUnavailable = errors.New("catalog repository unavailable")

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRepositoryUnavailable, op, err)
}
