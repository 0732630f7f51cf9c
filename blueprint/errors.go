package blueprint

import "errors"

// ErrInvalid matches every blueprint validation failure.
var ErrInvalid = errors.New("enum blueprint invalid")

// Validation failure kinds. Each *Error unwraps to exactly one of these.
var (
	ErrMissingKeys          = errors.New("blueprint missing keys")
	ErrInvalidName          = errors.New("invalid blueprint name")
	ErrDuplicateName        = errors.New("duplicate blueprint name")
	ErrInvalidConstants     = errors.New("invalid blueprint constants")
	ErrInvalidConstantKey   = errors.New("invalid constant key")
	ErrInvalidConstantValue = errors.New("invalid constant value")
	ErrDuplicateValue       = errors.New("duplicate constant value")
)

// Error describes why a blueprint was rejected.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Blueprint is the offending blueprint name, when one was readable.
	Blueprint string

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

// Is reports true for ErrInvalid in addition to the kind itself.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// KindName returns a short label for the failure kind, used as a metric label.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrMissingKeys):
		return "missing_keys"
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, ErrInvalidConstants):
		return "invalid_constants"
	case errors.Is(err, ErrInvalidConstantKey):
		return "invalid_constant_key"
	case errors.Is(err, ErrInvalidConstantValue):
		return "invalid_constant_value"
	case errors.Is(err, ErrDuplicateValue):
		return "duplicate_value"
	}
	return "unknown"
}
