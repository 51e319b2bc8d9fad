package main

import (
	"image"
	"image/color"

	"deskcalc/app/calc"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

var (
	histBg     = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	histExprFg = color.NRGBA{R: 0x85, G: 0x85, B: 0x85, A: 0xFF}
	histResult = color.NRGBA{R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF} // teal
	histErr    = color.NRGBA{R: 0xF4, G: 0x47, B: 0x47, A: 0xFF} // red
)

// HistoryPanel renders the calculation log, newest first. Clicking an
// entry recalls its result into the session.
type HistoryPanel struct {
	list   widget.List
	clicks []widget.Clickable
}

// NewHistoryPanel returns a panel with a vertical list.
func NewHistoryPanel() *HistoryPanel {
	hp := &HistoryPanel{}
	hp.list.Axis = layout.Vertical
	return hp
}

// Layout renders the panel at the given width in pixels.
func (hp *HistoryPanel) Layout(gtx C, th *material.Theme, s *calc.Session, widthPx int) D {
	height := gtx.Constraints.Max.Y
	paint.FillShape(gtx.Ops, histBg, clip.Rect(image.Rect(0, 0, widthPx, height)).Op())

	gtx.Constraints.Min.X = widthPx
	gtx.Constraints.Max.X = widthPx

	entries := s.History().Entries()
	for len(hp.clicks) < len(entries) {
		hp.clicks = append(hp.clicks, widget.Clickable{})
	}

	lst := material.List(th, &hp.list)
	return lst.Layout(gtx, len(entries), func(gtx C, i int) D {
		// Newest entries at the top.
		idx := len(entries) - 1 - i
		e := entries[idx]
		c := &hp.clicks[idx]
		if c.Clicked(gtx) {
			s.Recall(e.Result)
		}
		return c.Layout(gtx, func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						lbl := material.Label(th, th.TextSize, e.Expression)
						lbl.Color = histExprFg
						lbl.MaxLines = 1
						return lbl.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						lbl := material.Label(th, th.TextSize, "= "+e.Result)
						lbl.Color = histResult
						if e.Result == calc.ErrorDisplay {
							lbl.Color = histErr
						}
						lbl.MaxLines = 1
						return lbl.Layout(gtx)
					}),
				)
			})
		})
	})
}
