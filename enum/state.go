package enum

// State is the lifecycle stage of an enum name within a Builder.
type State string

const (
	// StateUnregistered means no blueprint was stored for the name.
	StateUnregistered State = "unregistered"

	// StateStored means the blueprint is validated and stored.
	StateStored State = "stored"

	// StateSynthesized means the enum type exists but no enum was built yet.
	StateSynthesized State = "synthesized"

	// StateBuilt means at least one enum instance was built.
	StateBuilt State = "built"
)

// IsValid checks if a state string is a known state.
func (s State) IsValid() bool {
	switch s {
	case StateUnregistered, StateStored, StateSynthesized, StateBuilt:
		return true
	}
	return false
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}
