package calc

import (
	"math"
	"testing"
)

func TestEvalInfix(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   float64
	}{
		{
			name: "multiplication before addition",
			tokens: []Token{
				Number("5"), OpToken(OpAdd), Number("3"), OpToken(OpMul), Number("2"),
			},
			want: 11,
		},
		{
			name: "parentheses override precedence",
			tokens: []Token{
				OpenParen, Number("2"), OpToken(OpAdd), Number("3"), CloseParen,
				OpToken(OpMul), Number("4"),
			},
			want: 20,
		},
		{
			name: "power is right associative",
			tokens: []Token{
				Number("2"), OpToken(OpPow), Number("3"), OpToken(OpPow), Number("2"),
			},
			want: 512,
		},
		{
			name: "subtraction groups left",
			tokens: []Token{
				Number("10"), OpToken(OpSub), Number("3"), OpToken(OpSub), Number("2"),
			},
			want: 5,
		},
		{
			name:   "pi constant",
			tokens: []Token{ConstToken(ConstPi)},
			want:   math.Pi,
		},
		{
			name: "natural log of e",
			tokens: []Token{
				FnToken(FuncLn), OpenParen, ConstToken(ConstE), CloseParen,
			},
			want: 1,
		},
		{
			name: "base 10 log",
			tokens: []Token{
				FnToken(FuncLog), OpenParen, Number("1000"), CloseParen,
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		got, err := EvalInfix(tt.tokens, Radians)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEvalSinDegrees(t *testing.T) {
	tokens := []Token{FnToken(FuncSin), OpenParen, Number("30"), CloseParen}

	got, err := EvalInfix(tokens, Degrees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("sin(30) in degree mode = %v, want 0.5", got)
	}

	got, err = EvalInfix(tokens, Radians)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-math.Sin(30)) > 1e-12 {
		t.Errorf("sin(30) in radian mode = %v, want %v", got, math.Sin(30))
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	tokens := []Token{Number("1"), OpToken(OpDiv), Number("0")}
	got, err := EvalInfix(tokens, Radians)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	if Format(got) != ErrorDisplay {
		t.Errorf("Format(1/0) = %q, want %q", Format(got), ErrorDisplay)
	}
}

func TestEvalSqrtNegative(t *testing.T) {
	tokens := []Token{FnToken(FuncSqrt), OpenParen, Number("-1"), CloseParen}
	got, err := EvalInfix(tokens, Radians)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("sqrt(-1) = %v, want NaN", got)
	}
	if Format(got) != ErrorDisplay {
		t.Errorf("Format(sqrt(-1)) = %q, want %q", Format(got), ErrorDisplay)
	}
}

func TestEvalUnderflow(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{name: "lone operator", tokens: []Token{OpToken(OpAdd)}},
		{name: "operator with one operand", tokens: []Token{Number("2"), OpToken(OpMul)}},
		{name: "lone function", tokens: []Token{FnToken(FuncSin)}},
	}

	for _, tt := range tests {
		if _, err := EvalInfix(tt.tokens, Radians); err != ErrUnderflow {
			t.Errorf("%s: got %v, want ErrUnderflow", tt.name, err)
		}
	}
}

func TestEvalTrailingOperands(t *testing.T) {
	tokens := []Token{Number("2"), Number("3")}
	if _, err := EvalInfix(tokens, Radians); err != ErrMalformed {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}

func TestEvalEmpty(t *testing.T) {
	if _, err := EvalInfix(nil, Radians); err != ErrMalformed {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}

func TestFunctionApply(t *testing.T) {
	tests := []struct {
		fn   Function
		x    float64
		want float64
	}{
		{FuncNeg, 5, -5},
		{FuncNeg, -2.5, 2.5},
		{FuncSquare, 9, 81},
		{FuncReciprocal, 4, 0.25},
		{FuncSqrt, 144, 12},
		{FuncLn, math.E, 1},
		{FuncLog, 100, 2},
		{FuncCos, 0, 1},
	}

	for _, tt := range tests {
		got := tt.fn.Apply(tt.x, Radians)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", tt.fn, tt.x, got, tt.want)
		}
	}

	if got := FuncReciprocal.Apply(0, Radians); !math.IsInf(got, 1) {
		t.Errorf("reciprocal(0) = %v, want +Inf", got)
	}
}

func TestEvalJunkLiteral(t *testing.T) {
	// The original tolerated unknown number text; it must degrade to NaN
	// rather than panic or invent a value.
	got, err := EvalInfix([]Token{Number("bogus")}, Radians)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
}
