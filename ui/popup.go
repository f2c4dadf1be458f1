package ui

import "github.com/embergfx/ember/gfx"

// ClickBehavior controls how a popup reacts to clicks landing outside it.
type ClickBehavior uint8

const (
	// ClickBehaviorNone leaves outside clicks alone.
	ClickBehaviorNone ClickBehavior = iota

	// CloseOnClickOutside closes the popup when a mouse-down message's
	// recipient chain does not include the popup. The close is driven by
	// the ordinary filter mechanism, not special-cased in dispatch.
	CloseOnClickOutside
)

// Insets are border widths around a popup's content area.
type Insets struct {
	L, T, R, B int
}

// Horizontal returns the combined left and right insets.
func (in Insets) Horizontal() int { return in.L + in.R }

// Vertical returns the combined top and bottom insets.
func (in Insets) Vertical() int { return in.T + in.B }

// PopupWindow is a top-level floating widget: it overlays the tree rather
// than living inside it. Opening attaches it to the manager's overlay
// stack and, for CloseOnClickOutside popups, registers a mouse-down
// filter. Closing detaches both; closing a closed popup is a no-op.
type PopupWindow struct {
	widget *Widget
	mgr    *Manager

	text  string
	font  string
	align TextAlign

	insets        Insets
	clickBehavior ClickBehavior
	transparent   bool
	open          bool
}

// NewPopupWindow creates a closed popup owned by mgr.
func NewPopupWindow(mgr *Manager, text string, behavior ClickBehavior) *PopupWindow {
	p := &PopupWindow{
		widget:        NewWidget(KindPopup),
		mgr:           mgr,
		text:          text,
		font:          "default",
		clickBehavior: behavior,
	}
	p.widget.SetData(p)
	return p
}

// Widget returns the popup's window widget. Its data slot points back at
// the popup.
func (p *PopupWindow) Widget() *Widget {
	return p.widget
}

// Text returns the popup's text content.
func (p *PopupWindow) Text() string {
	return p.text
}

// SetFont selects the font used for text measurement and painting.
func (p *PopupWindow) SetFont(font string) {
	p.font = font
}

// Font returns the popup's font name.
func (p *PopupWindow) Font() string {
	return p.font
}

// SetTextAlign selects the text alignment within the popup.
func (p *PopupWindow) SetTextAlign(align TextAlign) {
	p.align = align
}

// SetTransparent marks the popup as transparent: the compositor must
// repaint what lies beneath it every frame.
func (p *PopupWindow) SetTransparent(transparent bool) {
	p.transparent = transparent
}

// Transparent returns the popup's transparency flag.
func (p *PopupWindow) Transparent() bool {
	return p.transparent
}

// SetInsets overrides the popup's border insets.
func (p *PopupWindow) SetInsets(in Insets) {
	p.insets = in
}

// Insets returns the popup's border insets.
func (p *PopupWindow) Insets() Insets {
	return p.insets
}

// IsOpen returns true while the popup is on the overlay stack.
func (p *PopupWindow) IsOpen() bool {
	return p.open
}

// PreferredSize measures the popup's text against the available width,
// adds the border insets, then unions in the preferred sizes of hosted
// child widgets: width grows to fit the widest child, heights of children
// are stacked below the text.
func (p *PopupWindow) PreferredSize(maxWidth int) gfx.Size {
	var size gfx.Size
	if theme := p.mgr.Theme(); theme != nil {
		inner := maxWidth
		if inner > 0 {
			inner -= p.insets.Horizontal()
		}
		size = theme.MeasureText(p.font, p.text, inner, p.align)
	}
	size.W += p.insets.Horizontal()
	size.H += p.insets.Vertical()

	for _, child := range p.widget.Children() {
		req := child.PreferredSize()
		if w := req.W + p.insets.Horizontal(); w > size.W {
			size.W = w
		}
		size.H += req.H
	}
	return size
}

// SetPosition moves the popup's top-left corner, keeping its size.
func (p *PopupWindow) SetPosition(pos gfx.Point) {
	b := p.widget.Bounds()
	p.widget.SetBounds(gfx.Rect{X: pos.X, Y: pos.Y, W: b.W, H: b.H})
}

// SetBounds sets the popup window rectangle.
func (p *PopupWindow) SetBounds(r gfx.Rect) {
	p.widget.SetBounds(r)
}

// Bounds returns the popup window rectangle.
func (p *PopupWindow) Bounds() gfx.Rect {
	return p.widget.Bounds()
}

// Open makes the popup visible and interactive. Opening an open popup is
// a no-op.
func (p *PopupWindow) Open() {
	if p.open || p.widget.Destroyed() {
		return
	}
	p.open = true
	p.widget.SetVisible(true)
	p.mgr.addPopup(p)
	if p.clickBehavior == CloseOnClickOutside {
		p.mgr.AddMessageFilter(MsgMouseDown, p)
	}
}

// Close hides and detaches the popup. Idempotent.
func (p *PopupWindow) Close() {
	if !p.open {
		return
	}
	p.open = false
	p.widget.SetVisible(false)
	p.mgr.RemoveMessageFilterFor(p)
	p.mgr.removePopup(p)
}

// ProcessMessage implements MessageFilter: a mouse-down whose recipient
// chain misses the popup closes it. The message is never consumed, so the
// click still reaches whatever it landed on.
func (p *PopupWindow) ProcessMessage(msg *Message) bool {
	if msg.Type() != MsgMouseDown || p.clickBehavior != CloseOnClickOutside {
		return false
	}
	for _, w := range msg.Recipients() {
		if w.HasAncestor(p.widget) {
			return false
		}
	}
	p.Close()
	return false
}
