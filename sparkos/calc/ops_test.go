package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamiliesAreDisjointAndComplete(t *testing.T) {
	binary := Tags(FamilyBinary)
	unary := Tags(FamilyUnary)

	assert.Equal(t, []Tag{Add, Subtract, Multiply, Divide, Modulus, Power}, binary)
	assert.Len(t, unary, 14)
	assert.Equal(t, int(tagCount)-1, len(binary)+len(unary))

	for _, tag := range binary {
		assert.True(t, tag.IsBinary(), tag.String())
		assert.False(t, tag.IsUnary(), tag.String())
	}
	for _, tag := range unary {
		assert.True(t, tag.IsUnary(), tag.String())
		assert.False(t, tag.IsBinary(), tag.String())
	}
	assert.Equal(t, FamilyNone, TagInvalid.Family())
}

func TestLookupRoundTrip(t *testing.T) {
	for tag := Tag(1); tag < tagCount; tag++ {
		got, ok := Lookup(tag.Symbol())
		require.True(t, ok, tag.String())
		assert.Equal(t, tag, got)
	}
}

func TestLookupSymbols(t *testing.T) {
	cases := map[string]Tag{
		"+":    Add,
		"-":    Subtract,
		"x":    Multiply,
		"/":    Divide,
		"mod":  Modulus,
		"x^y":  Power,
		"sin":  Sine,
		"log":  Log10,
		"ln":   NaturalLog,
		"e":    ExpBaseE,
		"x²":   Square,
		"1/x":  Reciprocal,
		"√":    SquareRoot,
		"+/-":  Negate,
		"x!":   Factorial,
		"π":    PiConstant,
		"10^x": TenPower,
		"|x|":  AbsoluteValue,
	}
	for sym, expect := range cases {
		got, ok := Lookup(sym)
		assert.True(t, ok, sym)
		assert.Equal(t, expect, got, sym)
	}

	_, ok := Lookup("sinh")
	assert.False(t, ok)
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	assert.PanicsWithError(t, `calc: unknown operation "%"`, func() {
		MustLookup("%")
	})
	assert.NotPanics(t, func() { MustLookup("mod") })
}

func TestTagNames(t *testing.T) {
	assert.Equal(t, "ADD", Add.String())
	assert.Equal(t, "TEN_POWER", TenPower.String())
	assert.Equal(t, "ABSOLUTE", AbsoluteValue.String())
	assert.Equal(t, "INVALID", TagInvalid.String())
}

func TestLabels(t *testing.T) {
	cases := []struct {
		tag    Tag
		expect string
	}{
		{Add, "5.0 +"},
		{Power, "5.0 x^y"},
		{Sine, "sin(5.0)"},
		{ExpBaseE, "e^5.0"},
		{Square, "(5.0)²"},
		{Reciprocal, "1/5.0"},
		{SquareRoot, "√5.0"},
		{Negate, "(-5.0)"},
		{Factorial, "5.0!"},
		{PiConstant, "π"},
		{TenPower, "10^5.0"},
		{AbsoluteValue, "|5.0|"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, c.tag.Label("5.0"), c.tag.String())
	}
	assert.Panics(t, func() { TagInvalid.Label("1.0") })
}
