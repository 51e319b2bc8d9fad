package calc

import (
	"math"
	"strconv"
)

// AngleMode selects how trigonometric inputs are interpreted.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "rad"
	}
	return "deg"
}

// EvalError represents an evaluation error.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string { return e.Msg }

// Sentinel evaluation errors. Division by zero and domain errors are not
// errors at this level: they surface as non-finite values that Format
// turns into the Error marker.
var (
	ErrMalformed = &EvalError{Msg: "malformed expression"}
	ErrUnderflow = &EvalError{Msg: "missing operand"}
)

// EvalPostfix evaluates a postfix token sequence over a single numeric
// stack. mode applies to sin/cos/tan inputs only.
func EvalPostfix(tokens []Token, mode AngleMode) (float64, error) {
	var stack []float64

	for _, t := range tokens {
		switch t.Kind {
		case KindNumber:
			v, err := strconv.ParseFloat(t.Text, 64)
			if err != nil {
				// Junk literals degrade to NaN; the formatter surfaces Error.
				v = math.NaN()
			}
			stack = append(stack, v)

		case KindConstant:
			stack = append(stack, t.Const.Value())

		case KindOperator:
			if len(stack) < 2 {
				return 0, ErrUnderflow
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = t.Op.Apply(a, b)

		case KindFunction:
			if len(stack) < 1 {
				return 0, ErrUnderflow
			}
			stack[len(stack)-1] = t.Fn.Apply(stack[len(stack)-1], mode)

		case KindOpenParen, KindCloseParen:
			// Parentheses never survive conversion.
			return 0, ErrMalformed
		}
	}

	if len(stack) != 1 {
		return 0, ErrMalformed
	}
	return stack[0], nil
}

// EvalInfix converts an infix token sequence and evaluates it in one step.
func EvalInfix(tokens []Token, mode AngleMode) (float64, error) {
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(postfix, mode)
}

// Apply computes the unary function. Trigonometric inputs are converted
// from degrees to radians when mode is Degrees. Domain errors (sqrt of a
// negative, log of a non-positive) yield NaN; reciprocal of zero yields Inf.
func (f Function) Apply(x float64, mode AngleMode) float64 {
	switch f {
	case FuncSin:
		return math.Sin(angleIn(x, mode))
	case FuncCos:
		return math.Cos(angleIn(x, mode))
	case FuncTan:
		return math.Tan(angleIn(x, mode))
	case FuncLn:
		return math.Log(x)
	case FuncLog:
		return math.Log10(x)
	case FuncSqrt:
		return math.Sqrt(x)
	case FuncNeg:
		return -x
	case FuncSquare:
		return x * x
	case FuncReciprocal:
		return 1 / x
	}
	return math.NaN()
}

func angleIn(x float64, mode AngleMode) float64 {
	if mode == Degrees {
		return x * math.Pi / 180
	}
	return x
}
