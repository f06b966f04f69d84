package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBinary(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		tag    Tag
		expect float64
	}{
		{name: "add", a: 5, b: 3, tag: Add, expect: 8},
		{name: "subtract", a: 5, b: 3, tag: Subtract, expect: 2},
		{name: "multiply", a: -4, b: 2.5, tag: Multiply, expect: -10},
		{name: "divide", a: 1, b: 4, tag: Divide, expect: 0.25},
		{name: "modulus", a: 7, b: 3, tag: Modulus, expect: 1},
		{name: "modulus negative dividend", a: -7, b: 3, tag: Modulus, expect: -1},
		{name: "modulus negative divisor", a: 7, b: -3, tag: Modulus, expect: 1},
		{name: "modulus fractional", a: 5.5, b: 2, tag: Modulus, expect: 1.5},
		{name: "power", a: 2, b: 10, tag: Power, expect: 1024},
		{name: "power fractional exponent", a: 9, b: 0.5, tag: Power, expect: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateBinary(tt.a, tt.b, tt.tag)
			require.NoError(t, err)
			assert.InDelta(t, tt.expect, got, 1e-12)
		})
	}
}

func TestEvaluateBinaryPowerIsNotAnError(t *testing.T) {
	got, err := EvaluateBinary(-8, 0.5, Power)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = EvaluateBinary(0, -1, Power)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestDivideRoundTrip(t *testing.T) {
	values := []float64{1, -1, 3, 0.1, 123456.789, -2.5e-7, 1e12, 7}
	for _, a := range values {
		for _, b := range values {
			q, err := EvaluateBinary(a, b, Divide)
			require.NoError(t, err)
			assert.InEpsilon(t, a, q*b, 1e-12, "a=%v b=%v", a, b)
		}
	}
}

func TestZeroDivisors(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 42.5, math.MaxFloat64, -math.SmallestNonzeroFloat64} {
		_, err := EvaluateBinary(a, 0, Divide)
		assert.ErrorIs(t, err, ErrDivisionByZero, "divide a=%v", a)

		_, err = EvaluateBinary(a, 0, Modulus)
		assert.ErrorIs(t, err, ErrModulusByZero, "modulus a=%v", a)
	}

	// Negative zero compares equal to zero.
	_, err := EvaluateBinary(1, math.Copysign(0, -1), Divide)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluateUnary(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		tag    Tag
		expect float64
	}{
		{name: "sine of 30 degrees", x: 30, tag: Sine, expect: 0.5},
		{name: "cosine of 60 degrees", x: 60, tag: Cosine, expect: 0.5},
		{name: "tangent of 45 degrees", x: 45, tag: Tangent, expect: 1},
		{name: "sine of 90 degrees", x: 90, tag: Sine, expect: 1},
		{name: "log10", x: 1000, tag: Log10, expect: 3},
		{name: "ln of e", x: math.E, tag: NaturalLog, expect: 1},
		{name: "exp", x: 1, tag: ExpBaseE, expect: math.E},
		{name: "square", x: -3, tag: Square, expect: 9},
		{name: "reciprocal", x: 4, tag: Reciprocal, expect: 0.25},
		{name: "sqrt", x: 16, tag: SquareRoot, expect: 4},
		{name: "sqrt of zero", x: 0, tag: SquareRoot, expect: 0},
		{name: "negate", x: 2.5, tag: Negate, expect: -2.5},
		{name: "factorial 0", x: 0, tag: Factorial, expect: 1},
		{name: "factorial 1", x: 1, tag: Factorial, expect: 1},
		{name: "factorial 5", x: 5, tag: Factorial, expect: 120},
		{name: "factorial 10", x: 10, tag: Factorial, expect: 3628800},
		{name: "pi ignores operand", x: 12345, tag: PiConstant, expect: math.Pi},
		{name: "ten power", x: 3, tag: TenPower, expect: 1000},
		{name: "ten power negative", x: -2, tag: TenPower, expect: 0.01},
		{name: "absolute", x: -7.25, tag: AbsoluteValue, expect: 7.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateUnary(tt.x, tt.tag)
			require.NoError(t, err)
			assert.InDelta(t, tt.expect, got, 1e-9)
		})
	}
}

func TestEvaluateUnaryDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		tag    Tag
		expect error
		msg    string
	}{
		{name: "log of zero", x: 0, tag: Log10, expect: ErrNonPositiveLog, msg: "logarithm of non-positive number"},
		{name: "log of negative", x: -1, tag: Log10, expect: ErrNonPositiveLog, msg: "logarithm of non-positive number"},
		{name: "ln of zero", x: 0, tag: NaturalLog, expect: ErrNonPositiveLog, msg: "natural logarithm of non-positive number"},
		{name: "reciprocal of zero", x: 0, tag: Reciprocal, expect: ErrDivisionByZero, msg: "reciprocal of zero"},
		{name: "sqrt of negative", x: -1, tag: SquareRoot, expect: ErrNegativeSqrt, msg: "square root of negative number"},
		{name: "factorial of fraction", x: 3.5, tag: Factorial, expect: ErrInvalidFactorialInput, msg: "factorial of negative or non-integer"},
		{name: "factorial of negative", x: -1, tag: Factorial, expect: ErrInvalidFactorialInput, msg: "factorial of negative or non-integer"},
		{name: "factorial of NaN", x: math.NaN(), tag: Factorial, expect: ErrInvalidFactorialInput, msg: "factorial of negative or non-integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateUnary(tt.x, tt.tag)
			require.ErrorIs(t, err, tt.expect)

			var ae *ArithmeticError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.tag, ae.Tag)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestFactorialOverflowsToInfinity(t *testing.T) {
	got, err := EvaluateUnary(170, Factorial)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0))

	got, err = EvaluateUnary(171, Factorial)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = EvaluateUnary(1e300, Factorial)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = EvaluateUnary(math.Inf(1), Factorial)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestEvaluateWrongFamilyPanics(t *testing.T) {
	for _, tag := range Tags(FamilyUnary) {
		assert.PanicsWithError(t, (&UnsupportedOperationError{Tag: tag, Want: FamilyBinary}).Error(), func() {
			_, _ = EvaluateBinary(1, 2, tag)
		})
	}
	for _, tag := range Tags(FamilyBinary) {
		assert.PanicsWithError(t, (&UnsupportedOperationError{Tag: tag, Want: FamilyUnary}).Error(), func() {
			_, _ = EvaluateUnary(1, tag)
		})
	}
	assert.Panics(t, func() { _, _ = Evaluate(1, 2, TagInvalid) })
}

func TestEvaluateDispatch(t *testing.T) {
	got, err := Evaluate(6, 7, Multiply)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	got, err = Evaluate(-6, 999, AbsoluteValue)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}
