package main

import (
	"deskcalc/app/calc"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// padKey is one button on the keypad: a label and the key name it sends.
type padKey struct {
	label string
	key   string
}

var basicRows = [][]padKey{
	{{"MC", "mc"}, {"MR", "mr"}, {"M+", "m+"}, {"M-", "m-"}},
	{{"mode", "mode"}, {"CE", "ce"}, {"C", "c"}, {"⌫", "back"}},
	{{"√", "sqrt"}, {"x²", "square"}, {"1/x", "1/x"}, {"÷", "/"}},
	{{"7", "7"}, {"8", "8"}, {"9", "9"}, {"×", "*"}},
	{{"4", "4"}, {"5", "5"}, {"6", "6"}, {"-", "-"}},
	{{"1", "1"}, {"2", "2"}, {"3", "3"}, {"+", "+"}},
	{{"±", "neg"}, {"0", "0"}, {".", "."}, {"=", "="}},
}

var scientificRows = [][]padKey{
	{{"MC", "mc"}, {"MR", "mr"}, {"M+", "m+"}, {"M-", "m-"}, {"mode", "mode"}},
	{{"sin", "sin"}, {"cos", "cos"}, {"tan", "tan"}, {"deg", "drg"}, {"C", "c"}},
	{{"ln", "ln"}, {"log", "log"}, {"√", "sqrt"}, {"^", "^"}, {"⌫", "back"}},
	{{"x²", "square"}, {"1/x", "1/x"}, {"π", "pi"}, {"e", "e"}, {"÷", "/"}},
	{{"(", "("}, {"7", "7"}, {"8", "8"}, {"9", "9"}, {"×", "*"}},
	{{")", ")"}, {"4", "4"}, {"5", "5"}, {"6", "6"}, {"-", "-"}},
	{{"±", "neg"}, {"1", "1"}, {"2", "2"}, {"3", "3"}, {"+", "+"}},
	{{"CE", "ce"}, {"0", "0"}, {".", "."}, {"=", "="}},
}

// Keypad is the button grid. Clickables are keyed by key name so they
// survive frame-to-frame and mode switches.
type Keypad struct {
	clicks map[string]*widget.Clickable
}

// NewKeypad returns an empty keypad.
func NewKeypad() *Keypad {
	return &Keypad{clicks: make(map[string]*widget.Clickable)}
}

func (k *Keypad) click(key string) *widget.Clickable {
	c, ok := k.clicks[key]
	if !ok {
		c = new(widget.Clickable)
		k.clicks[key] = c
	}
	return c
}

// Layout processes clicks and renders the grid for the session's mode.
func (k *Keypad) Layout(gtx C, th *material.Theme, s *calc.Session) D {
	rows := basicRows
	if s.PadMode() == calc.ModeScientific {
		rows = scientificRows
	}

	var rowChildren []layout.FlexChild
	for _, row := range rows {
		row := row
		rowChildren = append(rowChildren, layout.Flexed(1, func(gtx C) D {
			var keys []layout.FlexChild
			for _, pk := range row {
				pk := pk
				c := k.click(pk.key)
				if c.Clicked(gtx) {
					s.Press(pk.key)
				}
				keys = append(keys, layout.Flexed(1, func(gtx C) D {
					label := pk.label
					if pk.key == "drg" {
						// Show the active angle mode on the toggle.
						label = s.Engine().AngleMode().String()
					}
					btn := material.Button(th, c, label)
					btn.CornerRadius = unit.Dp(2)
					return layout.UniformInset(unit.Dp(2)).Layout(gtx, btn.Layout)
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, keys...)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rowChildren...)
}
