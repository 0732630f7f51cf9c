package blueprint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var compassConst = NewConstants(
	Constant{Name: "NORTH", Value: "north"},
	Constant{Name: "SOUTH", Value: "south"},
	Constant{Name: "EAST", Value: "east"},
	Constant{Name: "WEST", Value: "west"},
)

func TestValidator_Valid(t *testing.T) {
	bp, err := Validator{}.Validate(map[string]any{
		"name":     "Compass",
		"constant": compassConst,
	})
	require.NoError(t, err)

	assert.Equal(t, "Compass", bp.Name)
	assert.True(t, compassConst.Equal(bp.Constants))
	assert.Equal(t, []string{"NORTH", "SOUTH", "EAST", "WEST"}, bp.Constants.Keys())
}

func TestValidator_Invalid(t *testing.T) {
	const op = "enum.Builder.StoreFromArray"

	tests := []struct {
		name    string
		raw     map[string]any
		kind    error
		message string
	}{
		{
			name:    "missing keys",
			raw:     map[string]any{"noNameKey": "does not matter", "noConstant": map[string]string{}},
			kind:    ErrMissingKeys,
			message: "The blueprint passed to enum.Builder.StoreFromArray must have 'name' and 'constant' keys set",
		},
		{
			name:    "missing constant key",
			raw:     map[string]any{"name": "Valid"},
			kind:    ErrMissingKeys,
			message: "The blueprint passed to enum.Builder.StoreFromArray must have 'name' and 'constant' keys set",
		},
		{
			name:    "nil name",
			raw:     map[string]any{"name": nil, "constant": map[string]string{"VALID": "constants"}},
			kind:    ErrInvalidName,
			message: "The value stored in the 'name' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty string type",
		},
		{
			name:    "empty name",
			raw:     map[string]any{"name": "", "constant": map[string]string{"VALID": "constants"}},
			kind:    ErrInvalidName,
			message: "The value stored in the 'name' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty string type",
		},
		{
			name:    "non-string name",
			raw:     map[string]any{"name": 42, "constant": map[string]string{"VALID": "constants"}},
			kind:    ErrInvalidName,
			message: "The value stored in the 'name' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty string type",
		},
		{
			name:    "name with invalid characters",
			raw:     map[string]any{"name": "I have spaces and other {} invalid ch4rs!", "constant": map[string]string{"VALID": "constants"}},
			kind:    ErrInvalidName,
			message: "The value stored in the 'name' key in the blueprint passed to enum.Builder.StoreFromArray may only have letter and underscore characters",
		},
		{
			name:    "name with digits",
			raw:     map[string]any{"name": "Compass2", "constant": map[string]string{"VALID": "constants"}},
			kind:    ErrInvalidName,
			message: "The value stored in the 'name' key in the blueprint passed to enum.Builder.StoreFromArray may only have letter and underscore characters",
		},
		{
			name:    "constant not a mapping",
			raw:     map[string]any{"name": "Valid", "constant": "I am not a mapping"},
			kind:    ErrInvalidConstants,
			message: "The value stored in the 'constant' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty mapping type",
		},
		{
			name:    "constant is a list",
			raw:     map[string]any{"name": "Valid", "constant": []string{"I am the value not the key"}},
			kind:    ErrInvalidConstants,
			message: "The value stored in the 'constant' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty mapping type",
		},
		{
			name:    "empty constants",
			raw:     map[string]any{"name": "Valid", "constant": map[string]string{}},
			kind:    ErrInvalidConstants,
			message: "The value stored in the 'constant' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty mapping type",
		},
		{
			name:    "zero Constants",
			raw:     map[string]any{"name": "Valid", "constant": Constants{}},
			kind:    ErrInvalidConstants,
			message: "The value stored in the 'constant' key in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty mapping type",
		},
		{
			name:    "constant key with invalid characters",
			raw:     map[string]any{"name": "Valid", "constant": map[string]string{"I have invalid space characters and other !!! things $&": "I am valid though!"}},
			kind:    ErrInvalidConstantKey,
			message: "The keys stored in the 'constant' mapping in the blueprint passed to enum.Builder.StoreFromArray may only have letters, numbers and underscore characters",
		},
		{
			name:    "numerically indexed constants",
			raw:     map[string]any{"name": "Valid", "constant": map[any]any{0: "I am the value not the key, I am valid!"}},
			kind:    ErrInvalidConstantKey,
			message: "The keys stored in the 'constant' mapping in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty string type",
		},
		{
			name:    "empty constant key",
			raw:     map[string]any{"name": "Valid", "constant": map[string]string{"": "still valid value"}},
			kind:    ErrInvalidConstantKey,
			message: "The keys stored in the 'constant' mapping in the blueprint passed to enum.Builder.StoreFromArray must be a non-empty string type",
		},
		{
			name:    "non-string constant value",
			raw:     map[string]any{"name": "Valid", "constant": map[string]any{"VALID": []any{}}},
			kind:    ErrInvalidConstantValue,
			message: "The values stored in the 'constant' mapping passed to enum.Builder.StoreFromArray must be non-empty string values",
		},
		{
			name:    "empty constant value",
			raw:     map[string]any{"name": "Valid", "constant": map[string]string{"VALID": ""}},
			kind:    ErrInvalidConstantValue,
			message: "The values stored in the 'constant' mapping passed to enum.Builder.StoreFromArray must be non-empty string values",
		},
		{
			name:    "repeated constant name",
			raw:     map[string]any{"name": "Valid", "constant": []Constant{{"A", "x"}, {"A", "y"}}},
			kind:    ErrInvalidConstantKey,
			message: "The enum, Valid, has a duplicate constant name: A",
		},
		{
			name:    "repeated constant name in Constants",
			raw:     map[string]any{"name": "Valid", "constant": NewConstants(Constant{"A", "x"}, Constant{"B", "b"}, Constant{"A", "y"})},
			kind:    ErrInvalidConstantKey,
			message: "The enum, Valid, has a duplicate constant name: A",
		},
		{
			name:    "duplicate constant value",
			raw:     map[string]any{"name": "YesNo", "constant": NewConstants(Constant{"YES", "dupe"}, Constant{"NO", "dupe"})},
			kind:    ErrDuplicateValue,
			message: "The enum, YesNo, has a duplicate constant value: dupe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validator{Operation: op}.Validate(tt.raw)
			require.Error(t, err)

			assert.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, tt.message, err.Error())

			var bpErr *Error
			require.True(t, errors.As(err, &bpErr))
			assert.Equal(t, tt.kind, bpErr.Kind)
		})
	}
}

func TestValidator_DefaultOperation(t *testing.T) {
	_, err := Validator{}.Validate(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blueprint.Validate")
}

func TestValidator_DuplicateName(t *testing.T) {
	exists := func(name string) bool { return name == "Valid" }

	_, err := Validator{Exists: exists}.Validate(map[string]any{
		"name":     "Valid",
		"constant": map[string]string{"VALID": "foo"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, "The enum type passed, Valid, has already been stored", err.Error())
}

func TestValidator_Order(t *testing.T) {
	t.Run("name checked before duplicate name", func(t *testing.T) {
		called := false
		exists := func(string) bool { called = true; return true }

		_, err := Validator{Exists: exists}.Validate(map[string]any{
			"name":     "bad name",
			"constant": "not a mapping",
		})
		assert.ErrorIs(t, err, ErrInvalidName)
		assert.False(t, called)
	})

	t.Run("duplicate name checked before constants", func(t *testing.T) {
		exists := func(string) bool { return true }

		_, err := Validator{Exists: exists}.Validate(map[string]any{
			"name":     "Valid",
			"constant": "not a mapping",
		})
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("constants checked in order", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name": "Valid",
			"constant": NewConstants(
				Constant{"FIRST", ""},
				Constant{"bad key", "x"},
			),
		})
		assert.ErrorIs(t, err, ErrInvalidConstantValue)
	})

	t.Run("key checked before value", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name":     "Valid",
			"constant": []Constant{{Name: "bad key", Value: ""}},
		})
		assert.ErrorIs(t, err, ErrInvalidConstantKey)
	})

	t.Run("repeated name checked before its value", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name":     "Dup",
			"constant": []Constant{{"A", "x"}, {"A", "y"}, {"B", "x"}},
		})
		assert.ErrorIs(t, err, ErrInvalidConstantKey)
		assert.Equal(t, "The enum, Dup, has a duplicate constant name: A", err.Error())
	})

	t.Run("value type checked before duplicate", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name":     "Valid",
			"constant": []Constant{{"A", "x"}, {"B", ""}, {"C", "x"}},
		})
		assert.ErrorIs(t, err, ErrInvalidConstantValue)
	})
}

func TestValidator_GoMapsSortedByKey(t *testing.T) {
	bp, err := Validator{}.Validate(map[string]any{
		"name":     "Letters",
		"constant": map[string]string{"C": "c", "A": "a", "B": "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, bp.Constants.Keys())
}

func TestValidator_YAMLNode(t *testing.T) {
	parse := func(t *testing.T, src string) *yaml.Node {
		t.Helper()
		var n yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte(src), &n))
		return &n
	}

	t.Run("keeps document order", func(t *testing.T) {
		bp, err := Validator{}.Validate(map[string]any{
			"name":     "Compass",
			"constant": parse(t, "WEST: w\nEAST: e\nNORTH: n\n"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"WEST", "EAST", "NORTH"}, bp.Constants.Keys())
	})

	t.Run("integer key", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name":     "Valid",
			"constant": parse(t, "0: value\n"),
		})
		assert.ErrorIs(t, err, ErrInvalidConstantKey)
	})

	t.Run("integer value", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name":     "Valid",
			"constant": parse(t, "ONE: 1\n"),
		})
		assert.ErrorIs(t, err, ErrInvalidConstantValue)
	})

	t.Run("quoted integer value", func(t *testing.T) {
		bp, err := Validator{}.Validate(map[string]any{
			"name":     "Valid",
			"constant": parse(t, "ONE: \"1\"\n"),
		})
		require.NoError(t, err)
		v, _ := bp.Constants.Value("ONE")
		assert.Equal(t, "1", v)
	})

	t.Run("repeated key", func(t *testing.T) {
		bp, err := Validator{}.Validate(map[string]any{
			"name":     "Dup",
			"constant": parse(t, "A: x\nA: y\n"),
		})
		assert.ErrorIs(t, err, ErrInvalidConstantKey)
		assert.Equal(t, "The enum, Dup, has a duplicate constant name: A", err.Error())
		assert.Zero(t, bp.Constants.Len())
	})

	t.Run("sequence", func(t *testing.T) {
		_, err := Validator{}.Validate(map[string]any{
			"name":     "Valid",
			"constant": parse(t, "- a\n- b\n"),
		})
		assert.ErrorIs(t, err, ErrInvalidConstants)
	})
}

func TestBlueprint_Validate(t *testing.T) {
	assert.NoError(t, New("Compass", compassConst.Pairs()...).Validate())
	assert.ErrorIs(t, New("Compass").Validate(), ErrInvalidConstants)
	assert.ErrorIs(t, New("", Constant{"A", "a"}).Validate(), ErrInvalidName)
	assert.ErrorIs(t, New("Dup", Constant{"A", "x"}, Constant{"A", "y"}).Validate(), ErrInvalidConstantKey)
}

func TestKindName(t *testing.T) {
	_, err := Validator{}.Validate(map[string]any{"name": "Bad!", "constant": compassConst})
	assert.Equal(t, "invalid_name", KindName(err))
	assert.Equal(t, "duplicate_name", KindName(DuplicateNameError("X")))
	assert.Equal(t, "duplicate_value", KindName(DuplicateValueError("X", "y")))
	assert.Equal(t, "unknown", KindName(errors.New("other")))
}
