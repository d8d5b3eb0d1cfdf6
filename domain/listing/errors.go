package listing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no listing exists for a slug.
var ErrNotFound = errors.New("listing not found")

// ErrSlugTaken is returned by the store when an insert violates the
// unique slug constraint. The submission path retries against it.
var ErrSlugTaken = errors.New("slug already taken")

// ValidationError reports the required submission fields that were
// empty after trimming.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
