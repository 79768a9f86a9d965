package variant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotDetected is returned when the host matches none of the
	// supported build variants.
	ErrNotDetected = errors.New("no supported build variant detected")

	// ErrUnknownVariant is returned for lookups of names or builder
	// aliases that are not in the registry.
	ErrUnknownVariant = errors.New("unknown build variant")

	// ErrCommandPath is returned for malformed category.operation paths.
	ErrCommandPath = errors.New("invalid command specification")
)

// NoMatchError reports a failed detection along with the files that
// were examined in the process.
type NoMatchError struct {
	Probed []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s (examined %s)", ErrNotDetected, strings.Join(e.Probed, ", "))
}

func (e *NoMatchError) Unwrap() error {
	return ErrNotDetected
}
