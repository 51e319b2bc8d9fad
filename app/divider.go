package main

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// PanelDivider is a draggable vertical divider that resizes the history
// panel.
type PanelDivider struct {
	dragging   bool
	startX     float32
	startWidth int
	tag        bool
}

var dividerColor = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
var dividerDragColor = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

const dividerWidthPx = 6

// The history panel needs room for an expression plus its result line, and
// must never squeeze out the keypad.
const minPanelWidth = 120
const maxPanelWidth = 480

// clampPanelWidth bounds a requested history panel width, whether it comes
// from a drag or from the window-resize ratio.
func clampPanelWidth(w int) int {
	if w < minPanelWidth {
		return minPanelWidth
	}
	if w > maxPanelWidth {
		return maxPanelWidth
	}
	return w
}

// Layout renders the drag handle and processes pointer events. It mutates
// *width based on drag deltas.
func (d *PanelDivider) Layout(gtx layout.Context, width *int) layout.Dimensions {
	height := gtx.Constraints.Max.Y

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &d.tag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			d.dragging = true
			d.startX = pe.Position.X
			d.startWidth = *width
		case pointer.Drag:
			if d.dragging {
				// The panel sits to the right, so dragging left widens it.
				*width = clampPanelWidth(d.startWidth - int(pe.Position.X-d.startX))
			}
		case pointer.Release, pointer.Cancel:
			d.dragging = false
		}
	}

	c := dividerColor
	if d.dragging {
		c = dividerDragColor
	}
	rect := image.Rect(0, 0, dividerWidthPx, height)
	paint.FillShape(gtx.Ops, c, clip.Rect(rect).Op())

	// Register the pointer input area and set a resize cursor.
	area := clip.Rect(rect).Push(gtx.Ops)
	event.Op(gtx.Ops, &d.tag)
	pointer.CursorColResize.Add(gtx.Ops)
	area.Pop()

	return layout.Dimensions{Size: image.Pt(dividerWidthPx, height)}
}
