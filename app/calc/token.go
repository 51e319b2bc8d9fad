package calc

import "math"

// TokenKind discriminates the variants of a Token.
type TokenKind int

const (
	KindNumber TokenKind = iota
	KindOperator
	KindFunction
	KindConstant
	KindOpenParen
	KindCloseParen
)

// Operator is a binary infix operator.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Precedence returns the binding strength of the operator.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	}
	return 0
}

// RightAssoc reports whether repeated application groups right-to-left.
// Only power is right-associative: 2^3^2 means 2^(3^2).
func (op Operator) RightAssoc() bool {
	return op == OpPow
}

// Apply computes the binary operation. Division by zero is not an error
// here: the non-finite value propagates and Format renders it as Error.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return math.Pow(a, b)
	}
	return math.NaN()
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

// Function is a unary function key.
type Function int

const (
	FuncSin Function = iota
	FuncCos
	FuncTan
	FuncLn
	FuncLog
	FuncSqrt
	FuncNeg
	FuncSquare
	FuncReciprocal
)

func (f Function) String() string {
	switch f {
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	case FuncTan:
		return "tan"
	case FuncLn:
		return "ln"
	case FuncLog:
		return "log"
	case FuncSqrt:
		return "sqrt"
	case FuncNeg:
		return "neg"
	case FuncSquare:
		return "square"
	case FuncReciprocal:
		return "reciprocal"
	}
	return "?"
}

// Constant is a named numeric constant.
type Constant int

const (
	ConstPi Constant = iota
	ConstE
)

// Value returns the double-precision value of the constant.
func (c Constant) Value() float64 {
	if c == ConstE {
		return math.E
	}
	return math.Pi
}

func (c Constant) String() string {
	if c == ConstE {
		return "e"
	}
	return "pi"
}

// Token is a single unit of an expression. Immutable once produced; only
// the field selected by Kind is meaningful.
type Token struct {
	Kind  TokenKind
	Text  string   // decimal literal, KindNumber only
	Op    Operator // KindOperator only
	Fn    Function // KindFunction only
	Const Constant // KindConstant only
}

// OpenParen and CloseParen are the grouping tokens.
var (
	OpenParen  = Token{Kind: KindOpenParen}
	CloseParen = Token{Kind: KindCloseParen}
)

// Number returns a token holding a decimal literal.
func Number(text string) Token {
	return Token{Kind: KindNumber, Text: text}
}

// OpToken returns an operator token.
func OpToken(op Operator) Token {
	return Token{Kind: KindOperator, Op: op}
}

// FnToken returns a unary function token.
func FnToken(fn Function) Token {
	return Token{Kind: KindFunction, Fn: fn}
}

// ConstToken returns a constant token.
func ConstToken(c Constant) Token {
	return Token{Kind: KindConstant, Const: c}
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return t.Text
	case KindOperator:
		return t.Op.String()
	case KindFunction:
		return t.Fn.String()
	case KindConstant:
		return t.Const.String()
	case KindOpenParen:
		return "("
	case KindCloseParen:
		return ")"
	}
	return "?"
}
