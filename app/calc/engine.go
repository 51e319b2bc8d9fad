package calc

import (
	"math"
	"strings"
)

// Engine owns the state bundle for one calculator instance: the
// in-progress expression, the memory register, and the angle mode. All
// operations run to completion before the next input; there is no shared
// or background state.
type Engine struct {
	expr    []Token
	memory  float64
	mode    AngleMode
	errored bool
}

// NewEngine returns an engine in degree mode with an empty expression.
func NewEngine() *Engine {
	return &Engine{mode: Degrees}
}

// SetAngleMode sets the interpretation of trigonometric inputs.
func (e *Engine) SetAngleMode(m AngleMode) { e.mode = m }

// AngleMode returns the current angle mode.
func (e *Engine) AngleMode() AngleMode { return e.mode }

// Append adds a token to the expression. The first append after a failed
// evaluation clears the errored flag; the broken expression was already
// discarded by Evaluate, so input starts fresh.
func (e *Engine) Append(t Token) {
	e.errored = false
	e.expr = append(e.expr, t)
}

// RemoveLast drops the most recently appended token, if any.
func (e *Engine) RemoveLast() {
	if len(e.expr) > 0 {
		e.expr = e.expr[:len(e.expr)-1]
	}
}

// Clear discards the in-progress expression.
func (e *Engine) Clear() {
	e.expr = nil
	e.errored = false
}

// Expression returns a copy of the current token sequence.
func (e *Engine) Expression() []Token {
	out := make([]Token, len(e.expr))
	copy(out, e.expr)
	return out
}

// ExpressionString renders the current expression for display and history.
func (e *Engine) ExpressionString() string {
	var sb strings.Builder
	for i, t := range e.expr {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Errored reports whether the last evaluation failed.
func (e *Engine) Errored() bool { return e.errored }

// Evaluate converts the expression to postfix, evaluates it, and discards
// the expression. A non-finite result sets the errored flag even though no
// error is returned; Format renders it as Error.
func (e *Engine) Evaluate() (float64, error) {
	tokens := e.expr
	e.expr = nil
	v, err := EvalInfix(tokens, e.mode)
	e.errored = err != nil || math.IsNaN(v) || math.IsInf(v, 0)
	return v, err
}

// Memory register.

func (e *Engine) MemoryAdd(v float64)      { e.memory += v }
func (e *Engine) MemorySubtract(v float64) { e.memory -= v }
func (e *Engine) MemoryRecall() float64    { return e.memory }
func (e *Engine) MemoryClear()             { e.memory = 0 }
