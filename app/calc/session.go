package calc

import (
	"math"
	"strconv"
	"strings"
)

// PadMode selects which keypad behavior is active.
type PadMode int

const (
	ModeBasic PadMode = iota
	ModeScientific
)

// Session drives a calculator from key-level commands. It owns the digit
// entry buffer, the engine, the basic-mode accumulator, and the history
// log. The desktop shell and the wasm entry both drive a Session; neither
// holds calculator state of its own.
type Session struct {
	eng       *Engine
	acc       Accumulator
	hist      History
	mode      PadMode
	entry     string   // digits being typed, "" when nothing pending
	shown     string   // last committed display text
	errored   bool     // a displayed Error; the next input starts fresh
	basicLine []string // rendered basic-mode expression, for history
}

// NewSession returns a session in basic mode showing 0.
func NewSession() *Session {
	return &Session{eng: NewEngine(), shown: "0"}
}

// Engine exposes the underlying engine for angle mode and memory state.
func (s *Session) Engine() *Engine { return s.eng }

// History exposes the calculation log.
func (s *Session) History() *History { return &s.hist }

// PadMode returns the active keypad mode.
func (s *Session) PadMode() PadMode { return s.mode }

// SetPadMode switches keypad modes, discarding any calculation in
// progress. Memory and angle mode survive the switch.
func (s *Session) SetPadMode(m PadMode) {
	if s.mode != m {
		s.mode = m
		s.reset()
	}
}

// TogglePadMode flips between basic and scientific.
func (s *Session) TogglePadMode() {
	if s.mode == ModeBasic {
		s.SetPadMode(ModeScientific)
	} else {
		s.SetPadMode(ModeBasic)
	}
}

// ToggleAngleMode flips between degrees and radians.
func (s *Session) ToggleAngleMode() {
	if s.eng.AngleMode() == Degrees {
		s.eng.SetAngleMode(Radians)
	} else {
		s.eng.SetAngleMode(Degrees)
	}
}

// Errored reports whether the display currently shows the Error marker.
func (s *Session) Errored() bool { return s.errored }

// Entry returns the number currently being typed, "" when none.
func (s *Session) Entry() string { return s.entry }

// Display returns the text for the result line.
func (s *Session) Display() string {
	if s.entry != "" {
		return s.entry
	}
	return s.shown
}

// ExpressionTokens returns the committed expression tokens, scientific
// mode only. The entry buffer is not included; it renders separately.
func (s *Session) ExpressionTokens() []Token {
	if s.mode != ModeScientific {
		return nil
	}
	return s.eng.Expression()
}

// ExpressionText returns the text for the expression line.
func (s *Session) ExpressionText() string {
	if s.mode == ModeBasic {
		return strings.Join(s.basicLine, " ")
	}
	es := s.eng.ExpressionString()
	switch {
	case s.entry == "":
		return es
	case es == "":
		return s.entry
	default:
		return es + " " + s.entry
	}
}

// PressDigit appends a digit or the decimal dot to the entry buffer.
func (s *Session) PressDigit(d byte) {
	if s.errored {
		s.reset()
	}
	if d == '.' && strings.Contains(s.entry, ".") {
		return
	}
	if s.entry == "0" && d != '.' {
		s.entry = ""
	}
	s.entry += string(d)
}

// PressOperator handles a binary operator key. Basic mode folds
// immediately, left to right with no precedence; scientific mode appends
// to the expression.
func (s *Session) PressOperator(op Operator) {
	if s.errored {
		s.reset()
	}
	if s.mode == ModeBasic {
		if s.entry == "" && s.acc.Pending() {
			// Consecutive operator presses replace the pending operator.
			s.acc.SetOperator(op)
			if n := len(s.basicLine); n > 0 {
				s.basicLine[n-1] = op.String()
			}
			return
		}
		operand := s.operand()
		s.basicLine = append(s.basicLine, Format(operand), op.String())
		s.show(s.acc.PressOperator(op, operand))
		return
	}
	s.commitEntry()
	s.eng.Append(OpToken(op))
}

// PressFunction handles a unary function key. Basic mode applies the
// function immediately to the displayed value; scientific mode appends a
// function token to the expression.
func (s *Session) PressFunction(fn Function) {
	if s.errored {
		s.reset()
	}
	if s.mode == ModeBasic {
		s.show(fn.Apply(s.operand(), s.eng.AngleMode()))
		return
	}
	s.commitEntry()
	s.eng.Append(FnToken(fn))
}

// PressConstant loads pi or e.
func (s *Session) PressConstant(c Constant) {
	if s.errored {
		s.reset()
	}
	if s.mode == ModeBasic {
		s.entry = Format(c.Value())
		return
	}
	s.commitEntry()
	s.eng.Append(ConstToken(c))
}

// PressOpenParen appends an open parenthesis, scientific mode only.
func (s *Session) PressOpenParen() {
	if s.mode != ModeScientific {
		return
	}
	if s.errored {
		s.reset()
	}
	s.commitEntry()
	s.eng.Append(OpenParen)
}

// PressCloseParen appends a close parenthesis, scientific mode only.
func (s *Session) PressCloseParen() {
	if s.mode != ModeScientific {
		return
	}
	if s.errored {
		s.reset()
	}
	s.commitEntry()
	s.eng.Append(CloseParen)
}

// PressEquals evaluates the pending calculation and records it in the
// history log.
func (s *Session) PressEquals() {
	if s.errored {
		s.reset()
		return
	}
	if s.mode == ModeBasic {
		if !s.acc.Pending() && s.entry == "" {
			return
		}
		operand := s.operand()
		line := strings.Join(append(append([]string{}, s.basicLine...), Format(operand)), " ")
		s.show(s.acc.PressEquals(operand))
		s.basicLine = nil
		s.hist.Add(line, s.shown)
		return
	}
	s.commitEntry()
	expr := s.eng.ExpressionString()
	if expr == "" {
		return
	}
	v, err := s.eng.Evaluate()
	if err != nil {
		s.shown = ErrorDisplay
		s.errored = true
	} else {
		s.show(v)
	}
	s.entry = ""
	s.hist.Add(expr, s.shown)
}

// PressBackspace removes the last typed digit, or the last committed
// token when nothing is being typed.
func (s *Session) PressBackspace() {
	if s.errored {
		s.reset()
		return
	}
	if s.entry != "" {
		s.entry = s.entry[:len(s.entry)-1]
		return
	}
	if s.mode == ModeScientific {
		s.eng.RemoveLast()
	}
}

// ClearEntry clears only the number being typed.
func (s *Session) ClearEntry() {
	if s.errored {
		s.reset()
		return
	}
	s.entry = ""
}

// ClearAll discards the calculation in progress. Memory and angle mode
// are kept.
func (s *Session) ClearAll() { s.reset() }

// Memory keys operate on the engine's register using the displayed value.
// A displayed Error never reaches the register; the key clears the error
// state first, like any other input.

func (s *Session) PressMemoryAdd() {
	if s.errored {
		s.reset()
	}
	s.eng.MemoryAdd(s.operand())
}

func (s *Session) PressMemorySubtract() {
	if s.errored {
		s.reset()
	}
	s.eng.MemorySubtract(s.operand())
}

func (s *Session) PressMemoryClear() { s.eng.MemoryClear() }

// PressMemoryRecall loads the memory register as the current entry.
func (s *Session) PressMemoryRecall() {
	if s.errored {
		s.reset()
	}
	s.entry = Format(s.eng.MemoryRecall())
}

// Recall loads a previous result as the current entry, for history taps.
func (s *Session) Recall(result string) {
	if result == ErrorDisplay {
		return
	}
	if s.errored {
		s.reset()
	}
	s.entry = result
}

// show commits a computed value to the display, flagging non-finite
// results as errors.
func (s *Session) show(v float64) {
	s.shown = Format(v)
	s.errored = s.shown == ErrorDisplay
	s.entry = ""
}

// operand returns the value the next operation applies to: the entry
// buffer when one is being typed, otherwise the displayed result.
func (s *Session) operand() float64 {
	text := s.entry
	if text == "" {
		text = s.shown
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// commitEntry turns the typed number into a Number token.
func (s *Session) commitEntry() {
	if s.entry == "" {
		return
	}
	s.eng.Append(Number(s.entry))
	s.entry = ""
}

func (s *Session) reset() {
	s.entry = ""
	s.shown = "0"
	s.errored = false
	s.basicLine = nil
	s.acc.Clear()
	s.eng.Clear()
}
