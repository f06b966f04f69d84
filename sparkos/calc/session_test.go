package calc

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAddition(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateIdle, s.State())

	s = s.Press("5")
	assert.Equal(t, StateEntering, s.State())

	s = s.Press("+")
	assert.Equal(t, StatePendingSecondOperand, s.State())
	assert.Equal(t, "", s.Display())
	assert.Equal(t, "5.0 +", s.Annotation())
	first, tag, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, 5.0, first)
	assert.Equal(t, Add, tag)

	s = s.PressAll("3", "=")
	assert.Equal(t, "8", s.Display(), spew.Sdump(s))
	assert.Equal(t, []string{"5.0 ADD 3.0 = 8"}, s.History())
	assert.Equal(t, "", s.Annotation())
	_, _, ok = s.Pending()
	assert.False(t, ok)
	assert.Equal(t, StateEntering, s.State())
}

func TestSessionMemory(t *testing.T) {
	s := NewSession().PressAll("MC", "4", "M+", "C", "MR")
	assert.Equal(t, "4", s.Display(), spew.Sdump(s))
	assert.Equal(t, "MR (4)", s.Annotation())

	s = s.PressAll("C", "4", "M-", "MR")
	assert.Equal(t, "0", s.Display(), spew.Sdump(s))
	assert.Equal(t, 0.0, s.Memory())

	s = s.PressAll("C", "2", ".", "5", "M+")
	assert.Equal(t, "M+ (2.5)", s.Annotation())
	s = s.Press("MC")
	assert.Equal(t, "MC (0)", s.Annotation())
	assert.Equal(t, 0.0, s.Memory())
}

func TestSessionMemoryIgnoresEmptyDisplay(t *testing.T) {
	s := NewSession().PressAll("M+", "M-")
	assert.Equal(t, 0.0, s.Memory())
	assert.Equal(t, "", s.Annotation())
}

func TestSessionUnaryAppliesImmediately(t *testing.T) {
	s := NewSession().PressAll("9", "√")
	assert.Equal(t, "3", s.Display())
	assert.Equal(t, "√9.0", s.Annotation())
	assert.Equal(t, []string{"√9.0 = 3"}, s.History())

	s = NewSession().PressAll("3", "0", "sin")
	assert.Equal(t, "0.5", s.Display())
	assert.Equal(t, []string{"sin(30.0) = 0.5"}, s.History())
}

func TestSessionUnaryKeepsPendingOperation(t *testing.T) {
	s := NewSession().PressAll("2", "x", "9", "√")
	first, tag, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, 2.0, first)
	assert.Equal(t, Multiply, tag)
	assert.Equal(t, "3", s.Display())

	s = s.Press("=")
	assert.Equal(t, "6", s.Display())
	assert.Equal(t, []string{"√9.0 = 3", "2.0 MULTIPLY 3.0 = 6"}, s.History())
}

func TestSessionDivisionByZero(t *testing.T) {
	s := NewSession().PressAll("7", "/", "0", "=")
	assert.Equal(t, ErrorText, s.Display())
	assert.Equal(t, "Division by zero", s.Annotation())
	assert.Equal(t, StateError, s.State())
	assert.ErrorIs(t, s.Err(), ErrDivisionByZero)
	assert.Empty(t, s.History())
	_, _, ok := s.Pending()
	assert.False(t, ok)

	// Input after an error starts a fresh entry.
	s = s.Press("4")
	assert.Equal(t, "4", s.Display())
	assert.Equal(t, "", s.Annotation())
	assert.NoError(t, s.Err())
	assert.Equal(t, StateEntering, s.State())
}

func TestSessionUnaryErrors(t *testing.T) {
	s := NewSession().PressAll("1", "+/-", "√")
	assert.Equal(t, ErrorText, s.Display())
	assert.Equal(t, "Square root of negative number", s.Annotation())

	s = NewSession().PressAll("0", "1/x")
	assert.Equal(t, "Reciprocal of zero", s.Annotation())
	assert.ErrorIs(t, s.Err(), ErrDivisionByZero)

	s = NewSession().PressAll("3", ".", "5", "x!")
	assert.ErrorIs(t, s.Err(), ErrInvalidFactorialInput)
}

func TestSessionOperatorIgnoredAfterError(t *testing.T) {
	s := NewSession().PressAll("0", "ln", "+", "=")
	assert.Equal(t, ErrorText, s.Display())
	_, _, ok := s.Pending()
	assert.False(t, ok)
}

func TestSessionInvalidInput(t *testing.T) {
	s := NewSession().PressAll(".", "+")
	assert.Equal(t, ErrorText, s.Display())
	assert.Equal(t, "Invalid Input", s.Annotation())
	assert.ErrorIs(t, s.Err(), ErrInvalidInput)
}

func TestSessionDecimalPoint(t *testing.T) {
	s := NewSession().PressAll("1", ".", "2", ".", "5")
	assert.Equal(t, "1.25", s.Display())
}

func TestSessionPiEntersConstant(t *testing.T) {
	s := NewSession().PressAll("2", "π")
	assert.Equal(t, "3.141592653589793", s.Display())
	assert.Empty(t, s.History())

	s = s.Press("x²")
	assert.Equal(t, "9.869604", s.Display())
}

func TestSessionEqualsWithoutPendingIsNoop(t *testing.T) {
	s := NewSession().PressAll("4", "=")
	assert.Equal(t, "4", s.Display())
	assert.Empty(t, s.History())

	s = NewSession().PressAll("4", "+", "=")
	assert.Equal(t, StatePendingSecondOperand, s.State())
	assert.Empty(t, s.History())
}

func TestSessionOperatorWithEmptyDisplayIsNoop(t *testing.T) {
	s := NewSession().Press("+")
	assert.Equal(t, StateIdle, s.State())
	_, _, ok := s.Pending()
	assert.False(t, ok)
}

func TestSessionClear(t *testing.T) {
	s := NewSession().PressAll("4", "x", "5", "C")
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, "", s.Display())
	assert.Equal(t, "", s.Annotation())
	_, _, ok := s.Pending()
	assert.False(t, ok)

	s = s.PressAll("2", "=")
	assert.Equal(t, "2", s.Display())
	assert.Empty(t, s.History())
}

func TestSessionDelete(t *testing.T) {
	s := NewSession().PressAll("1", "2", "3", "DEL")
	assert.Equal(t, "12", s.Display())

	s = s.PressAll("DEL", "DEL", "DEL")
	assert.Equal(t, "", s.Display())
	assert.Equal(t, StateIdle, s.State())

	s = NewSession().PressAll("8", "+", "DEL")
	assert.Equal(t, StatePendingSecondOperand, s.State())
	assert.Equal(t, "8.0 +", s.Annotation())

	s = s.PressAll("1", "2", "DEL")
	assert.Equal(t, "1", s.Display())
	assert.Equal(t, "8.0 +", s.Annotation())

	s = NewSession().PressAll("0", "1/x", "DEL")
	assert.Equal(t, "", s.Display())
	assert.Equal(t, StateIdle, s.State())
}

func TestSessionHistoryKeepsAllShowsFive(t *testing.T) {
	s := NewSession()
	for i := 0; i < 7; i++ {
		s = s.PressAll("2", "x²", "C")
	}
	assert.Len(t, s.History(), 7)
	assert.Len(t, s.Recent(), HistorySize)
	assert.Equal(t, "(2.0)² = 4", s.Recent()[0])
}

func TestSessionPower(t *testing.T) {
	s := NewSession().PressAll("2", "x²", "M+", "C", "5", "+", "OFF")
	assert.Equal(t, StateOff, s.State())
	assert.True(t, s.Off())
	assert.Equal(t, "", s.Display())
	assert.Empty(t, s.Recent())
	assert.Len(t, s.History(), 1)

	s = s.PressAll("9", "=", "MR")
	assert.Equal(t, "", s.Display())

	s = s.Press("ON")
	assert.Equal(t, StateIdle, s.State())
	_, _, ok := s.Pending()
	assert.False(t, ok)

	s = s.Press("MR")
	assert.Equal(t, "4", s.Display())

	s = s.Press("√")
	assert.Equal(t, []string{"(2.0)² = 4", "√4.0 = 2"}, s.Recent())
	assert.Len(t, s.History(), 2)
}

func TestSessionRecentAfterPowerCycle(t *testing.T) {
	s := NewSession().PressAll("2", "x²", "C", "3", "x²", "OFF", "ON")
	assert.Empty(t, s.Recent())

	s = s.PressAll("4", "√")
	assert.Equal(t, []string{"(2.0)² = 4", "(3.0)² = 9", "√4.0 = 2"}, s.Recent())
}

func TestSessionIsValue(t *testing.T) {
	base := NewSession().PressAll("1", "+/-")
	a := base.PressAll("C", "4", "√")
	b := base.PressAll("C", "9", "√")

	assert.Equal(t, []string{"(-1.0) = -1"}, base.History())
	assert.Equal(t, "√4.0 = 2", a.History()[1])
	assert.Equal(t, "√9.0 = 3", b.History()[1])
}

func TestSessionUnknownSymbolPanics(t *testing.T) {
	assert.PanicsWithError(t, `calc: unknown operation "sinh"`, func() {
		NewSession().Press("sinh")
	})
	assert.Panics(t, func() {
		NewSession().Press("OFF").Press("bogus")
	})
	assert.True(t, IsKey("M+"))
	assert.True(t, IsKey("7"))
	assert.False(t, IsKey("77"))
}

func TestSessionResultIsEditable(t *testing.T) {
	s := NewSession().PressAll("5", "+", "3", "=", "2")
	assert.Equal(t, "82", s.Display())
}

func TestSessionModulusAndPower(t *testing.T) {
	s := NewSession().PressAll("7", "+/-", "mod", "3", "=")
	assert.Equal(t, "-1", s.Display())
	assert.Equal(t, "-7.0 MODULUS 3.0 = -1", s.History()[1])

	s = NewSession().PressAll("2", "x^y", "1", "0", "=")
	assert.Equal(t, "1024", s.Display())

	s = NewSession().PressAll("5", "mod", "0", "=")
	assert.Equal(t, "Modulus by zero", s.Annotation())
}
