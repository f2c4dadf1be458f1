package ui

import "github.com/embergfx/ember/gfx"

// TextAlign selects horizontal text alignment for measurement and painting.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Theme renders toolkit chrome and measures text. The concrete
// implementation lives outside the core (the editor's Allegro-backed
// theme); tests substitute a fixed-metric double.
type Theme interface {
	// PaintTooltip draws the popup's background, border, arrow, and text.
	PaintTooltip(tip *TipWindow)

	// MeasureText returns the size of text laid out in the given font
	// within maxWidth. A maxWidth of zero or less means unconstrained.
	MeasureText(font, text string, maxWidth int, align TextAlign) gfx.Size
}

// PointerSource reports the current pointer position in screen coordinates.
type PointerSource interface {
	PointerPosition() gfx.Point
}

// Display reports the viewport dimensions popups must stay inside.
type Display interface {
	Size() gfx.Size
}
