package manager

import (
	"errors"
	"fmt"

	"github.com/kasuboski/showtrack/pkg/storage"
)

var (
	// ErrCatalogUnavailable means the provider could not be reached, timed out,
	// or answered with an unexpected status. Callers may retry.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrMembershipNotFound is returned when changing a membership that does not exist
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrMembershipRequired is returned when marking episodes of a show the user has not added
	ErrMembershipRequired = errors.New("membership required")
	// ErrStorageUnavailable is a transient storage failure. Every operation is safe to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// storageError translates storage sentinels into manager errors
func storageError(msg string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%s: %w", msg, ErrAlreadyExists)
	case errors.Is(err, storage.ErrUnavailable):
		return fmt.Errorf("%s: %w: %w", msg, ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
