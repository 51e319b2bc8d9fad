//go:build js && wasm

package main

import (
	"syscall/js"

	"deskcalc/app/calc"

	"gioui.org/app"
)

// registerWebCallbacks exposes the calculator to the hosting page.
func registerWebCallbacks(s *calc.Session, w *app.Window) {
	js.Global().Set("calcPress", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			s.Press(args[0].String())
			w.Invalidate()
		}
		return nil
	}))
	js.Global().Set("calcDisplay", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return s.Display()
	}))
}
