//go:build js && wasm

package main

import (
	"syscall/js"

	"deskcalc/app/calc"
)

var session = calc.NewSession()

func state() js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("display", session.Display())
	obj.Set("expression", session.ExpressionText())
	obj.Set("isErr", session.Errored())
	return obj
}

func main() {
	// Press a key by name and return the new state
	js.Global().Set("calcPress", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			session.Press(args[0].String())
		}
		return state()
	}))

	js.Global().Set("calcState", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return state()
	}))

	// History as an array of {expression, result}, oldest first
	js.Global().Set("calcHistory", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		entries := session.History().Entries()
		arr := js.Global().Get("Array").New(len(entries))
		for i, e := range entries {
			obj := js.Global().Get("Object").New()
			obj.Set("expression", e.Expression)
			obj.Set("result", e.Result)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}
