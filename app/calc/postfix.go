package calc

// funcPrecedence ranks unary functions above every binary operator, so an
// incoming operator always pops a waiting function off the stack.
const funcPrecedence = 4

// ToPostfix converts an infix token sequence into postfix order with the
// shunting-yard algorithm. Unbalanced parentheses fail with ErrMalformed.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token

	for _, t := range tokens {
		switch t.Kind {
		case KindNumber, KindConstant:
			out = append(out, t)

		case KindFunction, KindOpenParen:
			stack = append(stack, t)

		case KindOperator:
			for len(stack) > 0 && yieldsTo(t.Op, stack[len(stack)-1]) {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case KindCloseParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == KindOpenParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, ErrMalformed
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == KindOpenParen {
			return nil, ErrMalformed
		}
		out = append(out, top)
	}
	return out, nil
}

// yieldsTo reports whether an incoming operator must let the stack top
// reach the output first. An open paren always blocks popping.
func yieldsTo(op Operator, top Token) bool {
	var topPrec int
	switch top.Kind {
	case KindOperator:
		topPrec = top.Op.Precedence()
	case KindFunction:
		topPrec = funcPrecedence
	default:
		return false
	}
	if op.RightAssoc() {
		return op.Precedence() < topPrec
	}
	return op.Precedence() <= topPrec
}
