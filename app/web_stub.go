//go:build !(js && wasm)

package main

import (
	"deskcalc/app/calc"

	"gioui.org/app"
)

func registerWebCallbacks(s *calc.Session, w *app.Window) {}
