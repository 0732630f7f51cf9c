package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCompass(t *testing.T) *Enum {
	t.Helper()
	b := newBuilder()
	require.NoError(t, b.StoreFromArray(map[string]any{"name": "Compass", "constant": compassConst}))
	e, err := b.BuildStored("Compass")
	require.NoError(t, err)
	return e
}

func TestEnum_MemberBeforeConstruction(t *testing.T) {
	var e Enum

	_, err := e.Member("DOES_NOT_MATTER")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMemberNotConfigured)
	assert.Equal(t, "The appropriate values have not been set for this enum", err.Error())

	var nilEnum *Enum
	_, err = nilEnum.Member("NORTH")
	assert.ErrorIs(t, err, ErrMemberNotConfigured)
	assert.Empty(t, nilEnum.Name())
	assert.Empty(t, nilEnum.Members())
	assert.Zero(t, nilEnum.Constants().Len())
}

func TestEnum_UnknownMember(t *testing.T) {
	e := buildCompass(t)

	_, err := e.Member("UP")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMemberNotConfigured)
	assert.Equal(t, "The enum, Compass, has no member named UP", err.Error())
}

func TestEnum_MustMember(t *testing.T) {
	e := buildCompass(t)

	assert.Equal(t, "south", e.MustMember("SOUTH").String())
	assert.Panics(t, func() { e.MustMember("UP") })
}

func TestEnum_Introspection(t *testing.T) {
	e := buildCompass(t)

	assert.Equal(t, "Compass", e.Name())
	assert.NotEmpty(t, e.ID())
	assert.Equal(t, []string{"NORTH", "SOUTH", "EAST", "WEST"}, e.Members())
	assert.True(t, e.Constants().Equal(compassConst))
	assert.True(t, e.Type().Constants().Equal(compassConst))
	assert.True(t, e.Has("EAST"))
	assert.False(t, e.Has("east"))

	values := e.Values()
	require.Len(t, values, 4)
	assert.Same(t, e.MustMember("NORTH"), values[0])
	assert.Equal(t, "west", values[3].String())
}

func TestEnum_Lookup(t *testing.T) {
	e := buildCompass(t)

	name, v, ok := e.Lookup("east")
	require.True(t, ok)
	assert.Equal(t, "EAST", name)
	assert.Same(t, e.MustMember("EAST"), v)

	_, _, ok = e.Lookup("EAST")
	assert.False(t, ok)
}

func TestEnum_String(t *testing.T) {
	e := buildCompass(t)
	assert.Equal(t, "Compass{NORTH=north, SOUTH=south, EAST=east, WEST=west}", e.String())

	var empty Enum
	assert.Equal(t, "{}", empty.String())
}

func TestEnum_ConstantsIsACopy(t *testing.T) {
	e := buildCompass(t)

	c := e.Constants()
	c.Add("UP", "up")

	assert.False(t, e.Has("UP"))
	assert.Equal(t, 4, e.Constants().Len())
}

func TestState(t *testing.T) {
	for _, s := range []State{StateUnregistered, StateStored, StateSynthesized, StateBuilt} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, State("deleted").IsValid())
	assert.Equal(t, "built", StateBuilt.String())
}
