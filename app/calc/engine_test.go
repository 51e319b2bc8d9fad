package calc

import (
	"math"
	"testing"
)

func TestEngineEvaluateDiscardsExpression(t *testing.T) {
	e := NewEngine()
	e.Append(Number("2"))
	e.Append(OpToken(OpAdd))
	e.Append(Number("3"))

	v, err := e.Evaluate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Errorf("got %v, want 5", v)
	}
	if len(e.Expression()) != 0 {
		t.Errorf("expression not discarded after evaluate: %v", e.Expression())
	}
}

func TestEngineErroredFlag(t *testing.T) {
	e := NewEngine()
	e.Append(OpToken(OpAdd))
	if _, err := e.Evaluate(); err != ErrUnderflow {
		t.Fatalf("got %v, want ErrUnderflow", err)
	}
	if !e.Errored() {
		t.Error("errored flag not set after failed evaluation")
	}

	// Non-finite results count as failures too.
	e.Append(Number("1"))
	e.Append(OpToken(OpDiv))
	e.Append(Number("0"))
	if v, err := e.Evaluate(); err != nil || !math.IsInf(v, 1) {
		t.Fatalf("got %v, %v", v, err)
	}
	if !e.Errored() {
		t.Error("errored flag not set for non-finite result")
	}

	// The next append starts fresh.
	e.Append(Number("7"))
	if e.Errored() {
		t.Error("errored flag survived new input")
	}
	if got := e.ExpressionString(); got != "7" {
		t.Errorf("expression after reset = %q, want %q", got, "7")
	}
}

func TestEngineRemoveLast(t *testing.T) {
	e := NewEngine()
	e.Append(Number("2"))
	e.Append(OpToken(OpAdd))
	e.RemoveLast()
	if got := e.ExpressionString(); got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
	e.RemoveLast()
	e.RemoveLast() // no-op on empty
	if got := e.ExpressionString(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestEngineAngleMode(t *testing.T) {
	e := NewEngine()
	if e.AngleMode() != Degrees {
		t.Fatalf("default angle mode = %v, want Degrees", e.AngleMode())
	}
	e.Append(FnToken(FuncSin))
	e.Append(Number("30"))
	v, err := e.Evaluate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-0.5) > 1e-12 {
		t.Errorf("sin 30 in degree mode = %v, want 0.5", v)
	}
}

func TestEngineMemory(t *testing.T) {
	e := NewEngine()
	e.MemoryAdd(5)
	e.MemoryAdd(2.5)
	if got := e.MemoryRecall(); got != 7.5 {
		t.Errorf("got %v, want 7.5", got)
	}
	e.MemorySubtract(10)
	if got := e.MemoryRecall(); got != -2.5 {
		t.Errorf("got %v, want -2.5", got)
	}
	e.MemoryClear()
	if got := e.MemoryRecall(); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestAccumulatorNoPrecedence(t *testing.T) {
	// Basic mode folds left to right: 2 + 3 * 4 accumulates to 20, not 14.
	var a Accumulator
	a.PressOperator(OpAdd, 2)
	a.PressOperator(OpMul, 3)
	if got := a.PressEquals(4); got != 20 {
		t.Errorf("got %v, want 20", got)
	}
	if a.Pending() {
		t.Error("accumulator still pending after equals")
	}
}

func TestAccumulatorEqualsWithoutOperator(t *testing.T) {
	var a Accumulator
	if got := a.PressEquals(42); got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestAccumulatorDivisionByZero(t *testing.T) {
	var a Accumulator
	a.PressOperator(OpDiv, 9)
	got := a.PressEquals(0)
	if !math.IsInf(got, 1) {
		t.Fatalf("got %v, want +Inf", got)
	}
	if Format(got) != ErrorDisplay {
		t.Errorf("Format = %q, want %q", Format(got), ErrorDisplay)
	}
}
