package main

import (
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"deskcalc/app/calc"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var winBg = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}

// typedKeys are forwarded to the session as-is.
var typedKeys = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	".", "+", "-", "*", "/", "^", "(", ")", "=",
}

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("deskcalc"), app.Size(unit.Dp(760), unit.Dp(520)))
		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Face = "Go Mono"
	th.TextSize = unit.Sp(16)

	session := calc.NewSession()
	registerWebCallbacks(session, w)
	expl := explorer.NewExplorer(w)

	pad := NewKeypad()
	histPanel := NewHistoryPanel()
	var divider PanelDivider
	panelRatio := 1.0 / 3.0 // history panel as fraction of window width
	panelWidth := 0

	var shortcutTag = new(bool)
	var exportCh <-chan ExportResult

	filters := make([]event.Filter, 0, len(typedKeys)+5)
	for _, name := range typedKeys {
		filters = append(filters, key.Filter{Name: key.Name(name)})
	}
	filters = append(filters,
		key.Filter{Name: key.NameReturn},
		key.Filter{Name: key.NameDeleteBackward},
		key.Filter{Name: key.NameEscape},
		key.Filter{Required: key.ModShortcut, Name: "S"},
		key.Filter{Required: key.ModShortcut, Name: "C"},
	)

	// Channel-forward pattern for explorer compatibility
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	var ops op.Ops
	for {
		select {
		case result := <-exportCh:
			exportCh = nil
			if result.Err != nil {
				log.Printf("Export error: %v", result.Err)
			}
			w.Invalidate()

		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return e.Err
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)

				// Compute panel width from ratio; update ratio if dragged
				windowW := gtx.Constraints.Max.X
				expectedWidth := int(panelRatio * float64(windowW))
				if panelWidth != 0 && panelWidth != expectedWidth {
					panelRatio = float64(panelWidth) / float64(windowW)
				}
				panelWidth = clampPanelWidth(int(panelRatio * float64(windowW)))

				// Keyboard input
				event.Op(gtx.Ops, shortcutTag)
				for {
					ev, ok := gtx.Event(filters...)
					if !ok {
						break
					}
					ke, ok := ev.(key.Event)
					if !ok || ke.State != key.Press {
						continue
					}
					switch {
					case ke.Modifiers.Contain(key.ModShortcut) && ke.Name == "S":
						if exportCh == nil && session.History().Len() > 0 {
							exportCh = ExportHistoryAsync(expl, session.History().Export(), "history.txt")
						}
					case ke.Modifiers.Contain(key.ModShortcut) && ke.Name == "C":
						gtx.Execute(clipboard.WriteCmd{
							Type: "application/text",
							Data: io.NopCloser(strings.NewReader(session.Display())),
						})
					case ke.Name == key.NameReturn:
						session.Press("=")
					case ke.Name == key.NameDeleteBackward:
						session.Press("back")
					case ke.Name == key.NameEscape:
						session.Press("c")
					default:
						session.Press(string(ke.Name))
					}
				}

				paint.FillShape(gtx.Ops, winBg,
					clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

				layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								return LayoutDisplay(gtx, th, session)
							}),
							layout.Flexed(1, func(gtx C) D {
								return pad.Layout(gtx, th, session)
							}),
						)
					}),
					layout.Rigid(func(gtx C) D {
						return divider.Layout(gtx, &panelWidth)
					}),
					layout.Rigid(func(gtx C) D {
						return histPanel.Layout(gtx, th, session, panelWidth)
					}),
				)

				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}
