package calc

// Press applies a single named key to the session. Key names match the
// keypad definitions and the characters the desktop shell forwards from
// the keyboard; unknown keys are ignored. This is the token-producing
// boundary: the engine itself never splits raw strings.
func (s *Session) Press(key string) {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		s.PressDigit(key[0])
	case "+":
		s.PressOperator(OpAdd)
	case "-":
		s.PressOperator(OpSub)
	case "*", "×":
		s.PressOperator(OpMul)
	case "/", "÷":
		s.PressOperator(OpDiv)
	case "^":
		s.PressOperator(OpPow)
	case "(":
		s.PressOpenParen()
	case ")":
		s.PressCloseParen()
	case "=", "enter":
		s.PressEquals()
	case "back":
		s.PressBackspace()
	case "ce":
		s.ClearEntry()
	case "c", "ac":
		s.ClearAll()
	case "sin":
		s.PressFunction(FuncSin)
	case "cos":
		s.PressFunction(FuncCos)
	case "tan":
		s.PressFunction(FuncTan)
	case "ln":
		s.PressFunction(FuncLn)
	case "log":
		s.PressFunction(FuncLog)
	case "sqrt", "√":
		s.PressFunction(FuncSqrt)
	case "neg", "±":
		s.PressFunction(FuncNeg)
	case "square", "x²":
		s.PressFunction(FuncSquare)
	case "reciprocal", "1/x":
		s.PressFunction(FuncReciprocal)
	case "pi", "π":
		s.PressConstant(ConstPi)
	case "e":
		s.PressConstant(ConstE)
	case "m+":
		s.PressMemoryAdd()
	case "m-":
		s.PressMemorySubtract()
	case "mr":
		s.PressMemoryRecall()
	case "mc":
		s.PressMemoryClear()
	case "drg":
		s.ToggleAngleMode()
	case "mode":
		s.TogglePadMode()
	}
}
