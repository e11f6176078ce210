package control

import (
	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/rubiks"
)

// HUD layout in pixels, origin top-left.
const (
	hudMargin    = 16
	barHeight    = 8
	pipSize      = 10
	pipGap       = 4
	maxPips      = 30
	selectorCell = 14
	selectorGap  = 3
)

// HUDState is what the overlay shows for one frame.
type HUDState struct {
	Width, Height int
	Progress      float32
	Pending       int
	Axis          rubiks.Axis
	Row           rubiks.Row
	Solved        bool
}

// HUD draws the overlay through a polygon renderer whose projection maps
// pixels with the origin in the top-left corner.
type HUD struct {
	poly *polygon.Renderer

	Track     polygon.Color
	Bar       polygon.Color
	Pip       polygon.Color
	Selector  polygon.Color
	Highlight polygon.Color
}

// NewHUD returns a HUD drawing through poly.
func NewHUD(poly *polygon.Renderer) *HUD {
	return &HUD{
		poly:      poly,
		Track:     polygon.ColorWhite.WithAlpha(0.15),
		Bar:       polygon.ColorWhite,
		Pip:       polygon.ColorWhite.WithAlpha(0.6),
		Selector:  polygon.ColorWhite.WithAlpha(0.25),
		Highlight: polygon.ColorWhite,
	}
}

// Draw renders the overlay. It reports false if the renderer refused any
// part of it.
func (h *HUD) Draw(s HUDState) bool {
	ok := h.drawProgress(s)
	ok = h.drawPending(s) && ok
	ok = h.drawSelector(s) && ok
	return ok
}

// drawProgress draws the turn progress along the bottom edge as one
// triangle-strip sequence per bar.
func (h *HUD) drawProgress(s HUDState) bool {
	x0 := float32(hudMargin)
	x1 := float32(s.Width - hudMargin)
	y1 := float32(s.Height - hudMargin)
	y0 := y1 - barHeight
	if x1 <= x0 {
		return true
	}

	track := h.Track
	if s.Solved {
		track = h.Highlight.WithAlpha(0.4)
	}
	if !h.quadSequence(track, x0, y0, x1, y1) {
		return false
	}
	if s.Progress <= 0 {
		return true
	}
	return h.quadSequence(h.Bar, x0, y0, x0+(x1-x0)*min(s.Progress, 1), y1)
}

func (h *HUD) quadSequence(c polygon.Color, x0, y0, x1, y1 float32) bool {
	if !h.poly.SetColor(c) || !h.poly.StartSequence(polygon.TriangleStrip, 2) {
		return false
	}
	h.poly.DrawSequence(x0, y0, 0)
	h.poly.DrawSequence(x0, y1, 0)
	h.poly.DrawSequence(x1, y0, 0)
	h.poly.DrawSequence(x1, y1, 0)
	return h.poly.EndSequence()
}

// drawPending draws one pip per queued turn above the progress bar.
func (h *HUD) drawPending(s HUDState) bool {
	n := min(s.Pending, maxPips)
	if n == 0 {
		return true
	}
	if !h.poly.SetColor(h.Pip) || !h.poly.StartSuccessivePolygonDrawings() {
		return false
	}

	ok := true
	y1 := float64(s.Height - hudMargin - barHeight - pipGap)
	y0 := y1 - pipSize
	for i := range n {
		x0 := float64(hudMargin + i*(pipSize+pipGap))
		x1 := x0 + pipSize
		quad := []float64{x0, y0, x0, y1, x1, y1, x1, y0}
		ok = polygon.Draw(h.poly, polygon.TriangleFan, 2, quad) && ok
	}
	return h.poly.FinishSuccessivePolygonDrawings() && ok
}

// drawSelector draws a 3x3 grid in the top-left corner, columns for axes
// and rows for layers, with the selected layer highlighted.
func (h *HUD) drawSelector(s HUDState) bool {
	ok := true
	for axis := range 3 {
		for row := range 3 {
			c := h.Selector
			if rubiks.Axis(axis) == s.Axis && rubiks.Row(row) == s.Row {
				c = h.Highlight
			}
			x0 := float32(hudMargin + axis*(selectorCell+selectorGap))
			y0 := float32(hudMargin + (2-row)*(selectorCell+selectorGap))
			x1, y1 := x0+selectorCell, y0+selectorCell

			xs := []float32{x0, x0, x1, x1}
			ys := []float32{y0, y1, y1, y0}
			ok = h.poly.SetColor(c) && h.poly.DrawXY(polygon.TriangleFan, xs, ys) && ok
		}
	}
	return ok
}
