package calc

import "math"

// EvaluateBinary applies a binary-family operation to first and second.
//
// Power follows math.Pow: invalid bases or exponents yield NaN or ±Inf
// rather than an error. Modulus follows math.Mod, so the result takes the
// sign of first.
//
// EvaluateBinary panics if t is not a binary tag.
func EvaluateBinary(first, second float64, t Tag) (float64, error) {
	switch t {
	case Add:
		return first + second, nil
	case Subtract:
		return first - second, nil
	case Multiply:
		return first * second, nil
	case Divide:
		if second == 0 {
			return 0, domainError(t, ErrDivisionByZero)
		}
		return first / second, nil
	case Modulus:
		if second == 0 {
			return 0, domainError(t, ErrModulusByZero)
		}
		return math.Mod(first, second), nil
	case Power:
		return math.Pow(first, second), nil
	default:
		panic(&UnsupportedOperationError{Tag: t, Want: FamilyBinary})
	}
}

// EvaluateUnary applies a unary-family operation to x.
//
// Sine, Cosine and Tangent take x in degrees. PiConstant ignores x.
//
// EvaluateUnary panics if t is not a unary tag.
func EvaluateUnary(x float64, t Tag) (float64, error) {
	switch t {
	case Sine:
		return math.Sin(radians(x)), nil
	case Cosine:
		return math.Cos(radians(x)), nil
	case Tangent:
		return math.Tan(radians(x)), nil
	case Log10:
		if x <= 0 {
			return 0, domainError(t, ErrNonPositiveLog)
		}
		return math.Log10(x), nil
	case NaturalLog:
		if x <= 0 {
			return 0, domainError(t, ErrNonPositiveLog)
		}
		return math.Log(x), nil
	case ExpBaseE:
		return math.Exp(x), nil
	case Square:
		return x * x, nil
	case Reciprocal:
		if x == 0 {
			return 0, domainError(t, ErrDivisionByZero)
		}
		return 1 / x, nil
	case SquareRoot:
		if x < 0 {
			return 0, domainError(t, ErrNegativeSqrt)
		}
		return math.Sqrt(x), nil
	case Negate:
		return -x, nil
	case Factorial:
		// NaN fails the integral check.
		if x < 0 || x != math.Floor(x) {
			return 0, domainError(t, ErrInvalidFactorialInput)
		}
		return factorial(x), nil
	case PiConstant:
		return math.Pi, nil
	case TenPower:
		return math.Pow(10, x), nil
	case AbsoluteValue:
		return math.Abs(x), nil
	default:
		panic(&UnsupportedOperationError{Tag: t, Want: FamilyUnary})
	}
}

// Evaluate dispatches on the tag family. Unary tags ignore second.
func Evaluate(first, second float64, t Tag) (float64, error) {
	switch t.Family() {
	case FamilyBinary:
		return EvaluateBinary(first, second, t)
	case FamilyUnary:
		return EvaluateUnary(first, t)
	default:
		panic(&UnsupportedOperationError{Tag: t})
	}
}

const degToRad = math.Pi / 180

func radians(deg float64) float64 {
	return deg * degToRad
}

// factorial multiplies 2..n as float64. There is no overflow guard: from
// 171! on the product is +Inf.
func factorial(n float64) float64 {
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
		if math.IsInf(result, 1) {
			return result
		}
	}
	return result
}
