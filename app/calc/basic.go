package calc

// Accumulator implements the basic-mode arithmetic path: operands fold
// left to right with no precedence, each operator press combining the
// pending total with the operand currently on the display.
type Accumulator struct {
	total   float64
	op      Operator
	pending bool
}

// PressOperator folds the pending operation (if any) with operand, makes
// op the new pending operation, and returns the folded total for display.
func (a *Accumulator) PressOperator(op Operator, operand float64) float64 {
	total := a.fold(operand)
	a.total = total
	a.op = op
	a.pending = true
	return total
}

// SetOperator replaces the pending operator without folding, for
// consecutive operator presses.
func (a *Accumulator) SetOperator(op Operator) {
	a.op = op
	a.pending = true
}

// PressEquals folds the pending operation with operand and clears the
// pending state.
func (a *Accumulator) PressEquals(operand float64) float64 {
	total := a.fold(operand)
	a.total = total
	a.pending = false
	return total
}

// Pending reports whether an operator is waiting for its second operand.
func (a *Accumulator) Pending() bool { return a.pending }

// Clear resets the accumulator.
func (a *Accumulator) Clear() {
	*a = Accumulator{}
}

func (a *Accumulator) fold(operand float64) float64 {
	if !a.pending {
		return operand
	}
	return a.op.Apply(a.total, operand)
}
