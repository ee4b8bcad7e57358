package engine

import (
	"errors"
	"fmt"

	"github.com/tianjibian/tianji-server-go/internal/engine/resources"
)

// The engine's rejection taxonomy. Every resolve call returns either a new,
// fully-updated state or one of these; there is no ambiguous "nothing
// happened" path.
var (
	// ErrInvalidSelection marks a bad card/zone/action index. Recoverable:
	// the caller should re-prompt.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrIllegalTransition marks a call that breaks turn order or action
	// sequencing. It indicates a caller bug, not a player mistake.
	ErrIllegalTransition = errors.New("illegal transition")
)

// ConfigurationError reports bad setup parameters. Fatal; surfaced
// immediately at setup time.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// IsInsufficientResource reports whether err is a resource-precondition
// failure. The catalog never offers such actions, so seeing one from the
// resolver means the caller bypassed the catalog.
func IsInsufficientResource(err error) bool {
	var insufficient *resources.InsufficientError
	return errors.As(err, &insufficient)
}
