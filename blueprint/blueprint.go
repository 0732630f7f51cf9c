// Package blueprint describes, validates and loads enum blueprints.
//
// A blueprint is an enum name plus an ordered set of constant names and
// their string values. It is the only input the enum builders accept:
//
//	{
//	    "name":     "Compass",
//	    "constant": blueprint.NewConstants(
//	        blueprint.Constant{Name: "NORTH", Value: "n"},
//	        blueprint.Constant{Name: "SOUTH", Value: "s"},
//	    ),
//	}
//
// Blueprints usually arrive untyped (decoded documents, caller maps), so
// Validator works on map[string]any and reports each defect as an *Error
// whose kind can be tested with errors.Is.
package blueprint

// Keys of an untyped blueprint.
const (
	KeyName     = "name"
	KeyConstant = "constant"
)

// Blueprint is a validated description of an enum type.
type Blueprint struct {
	Name      string
	Constants Constants
}

// New returns a Blueprint with the given constants in order.
func New(name string, pairs ...Constant) Blueprint {
	return Blueprint{Name: name, Constants: NewConstants(pairs...)}
}

// Raw returns the untyped form accepted by Validator.
func (b Blueprint) Raw() map[string]any {
	return map[string]any{
		KeyName:     b.Name,
		KeyConstant: b.Constants,
	}
}

// Validate checks b in isolation, without a duplicate name check.
func (b Blueprint) Validate() error {
	_, err := Validator{}.Validate(b.Raw())
	return err
}
