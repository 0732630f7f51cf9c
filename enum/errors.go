package enum

import "errors"

var (
	// ErrNotFound is returned when building a name that was never stored.
	ErrNotFound = errors.New("enum not found")

	// ErrMemberNotConfigured is returned by member access on an enum that
	// was never populated, or for a member name it does not have.
	ErrMemberNotConfigured = errors.New("enum member not configured")

	// ErrDuplicateValue is returned when a stored blueprint turns out to map
	// two constants to one value at synthesis time. Validation rejects such
	// blueprints, so this means the registry was corrupted.
	ErrDuplicateValue = errors.New("enum registry corrupted: duplicate constant value")
)

// Error is an enum lookup or build failure.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error

	// Enum is the enum name involved, if known.
	Enum string

	// Message is the human readable description.
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the failure kind.
func (e *Error) Unwrap() error {
	return e.Kind
}
