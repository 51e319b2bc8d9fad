package main

import (
	"image/color"

	"deskcalc/app/calc"

	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	displayFg  = color.NRGBA{R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}
	displayErr = color.NRGBA{R: 0xF4, G: 0x47, B: 0x47, A: 0xFF} // red
)

// tokenColors maps token kinds to colors. Dark-theme oriented.
var tokenColors = map[calc.TokenKind]color.NRGBA{
	calc.KindNumber:     {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	calc.KindOperator:   {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	calc.KindFunction:   {R: 0x56, G: 0x9C, B: 0xD6, A: 0xFF}, // blue
	calc.KindConstant:   {R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF}, // teal
	calc.KindOpenParen:  {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
	calc.KindCloseParen: {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
}

func tokenColor(kind calc.TokenKind) color.NRGBA {
	if c, ok := tokenColors[kind]; ok {
		return c
	}
	return displayFg
}

// LayoutDisplay renders the expression line and the result line.
func LayoutDisplay(gtx C, th *material.Theme, s *calc.Session) D {
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layoutExpressionLine(gtx, th, s)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layoutResultLine(gtx, th, s)
			}),
		)
	})
}

// layoutExpressionLine shows the committed tokens, colored by kind, with
// the entry buffer trailing in plain text. Basic mode has no token
// structure; its folded expression renders as a single label.
func layoutExpressionLine(gtx C, th *material.Theme, s *calc.Session) D {
	return layout.E.Layout(gtx, func(gtx C) D {
		if s.PadMode() != calc.ModeScientific {
			lbl := material.Label(th, th.TextSize, s.ExpressionText())
			lbl.Color = tokenColor(calc.KindOperator)
			lbl.MaxLines = 1
			return lbl.Layout(gtx)
		}

		var children []layout.FlexChild
		for _, tok := range s.ExpressionTokens() {
			tok := tok
			children = append(children, layout.Rigid(func(gtx C) D {
				lbl := material.Label(th, th.TextSize, tok.String()+" ")
				lbl.Color = tokenColor(tok.Kind)
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			}))
		}
		if entry := s.Entry(); entry != "" {
			children = append(children, layout.Rigid(func(gtx C) D {
				lbl := material.Label(th, th.TextSize, entry)
				lbl.Color = displayFg
				lbl.MaxLines = 1
				return lbl.Layout(gtx)
			}))
		}
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Baseline}.Layout(gtx, children...)
	})
}

func layoutResultLine(gtx C, th *material.Theme, s *calc.Session) D {
	lbl := material.Label(th, th.TextSize*2, s.Display())
	lbl.Color = displayFg
	if s.Errored() {
		lbl.Color = displayErr
	}
	lbl.Alignment = text.End
	lbl.MaxLines = 1
	return lbl.Layout(gtx)
}
