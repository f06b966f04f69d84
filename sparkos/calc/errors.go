package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Arithmetic domain errors. They are recoverable and caused by user input.
var (
	ErrDivisionByZero        = errors.New("division by zero")
	ErrModulusByZero         = errors.New("modulus by zero")
	ErrNonPositiveLog        = errors.New("logarithm of non-positive number")
	ErrNegativeSqrt          = errors.New("square root of negative number")
	ErrInvalidFactorialInput = errors.New("factorial of negative or non-integer")
)

// ErrInvalidInput reports display text that is not a number.
var ErrInvalidInput = errors.New("invalid input")

// ArithmeticError is returned by the evaluator when an operand is outside
// the domain of the operation.
type ArithmeticError struct {
	Tag Tag
	Err error
}

func (e *ArithmeticError) Error() string {
	switch {
	case e.Tag == Reciprocal && e.Err == ErrDivisionByZero:
		return "reciprocal of zero"
	case e.Tag == NaturalLog && e.Err == ErrNonPositiveLog:
		return "natural logarithm of non-positive number"
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "arithmetic error"
	}
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

func domainError(t Tag, err error) error {
	return &ArithmeticError{Tag: t, Err: err}
}

// UnknownOperationError is the panic value for a symbol that is not in the
// registry. It means the keypad and the registry disagree.
type UnknownOperationError struct {
	Symbol string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("calc: unknown operation %q", e.Symbol)
}

// UnsupportedOperationError is the panic value for a tag passed to the wrong
// evaluator entry point.
type UnsupportedOperationError struct {
	Tag  Tag
	Want Family
}

func (e *UnsupportedOperationError) Error() string {
	if e.Want == FamilyNone {
		return fmt.Sprintf("calc: unsupported operation %s", e.Tag)
	}
	return fmt.Sprintf("calc: unsupported operation %s (want %s)", e.Tag, e.Want)
}

// ParseOperand parses display text into an operand.
//
// Values that overflow float64 parse to ±Inf, the same as a result that
// overflowed on screen.
func ParseOperand(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrInvalidInput
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return v, nil
}

// Message returns the sentence shown to the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidInput) {
		return "Invalid Input"
	}
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return sentence(ae.Error())
	}
	return sentence(err.Error())
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
