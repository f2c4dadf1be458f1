package ui

import (
	"github.com/embergfx/ember/gfx"
)

// Pointer offset applied before the first placement rule, in pixels at
// scale 1. Matches the editor's historical hot-spot clearance.
const tooltipPointerOffset = 12

// Tooltip chrome defaults applied by TipWindow.
const tooltipBgColor = 0xFFFFC8

var tooltipInsets = Insets{L: 6, T: 6, R: 6, B: 7}

// ============================================================================
// Arrow Alignment
// ============================================================================

// ArrowAlign is the preferred side or corner of the anchor on which the
// tooltip's pointing arrow should sit. It is a closed set: the four edges,
// the four corners, and AlignUnspecified.
type ArrowAlign uint8

const (
	AlignUnspecified ArrowAlign = iota
	AlignTop
	AlignBottom
	AlignLeft
	AlignRight
	AlignTopLeft
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
)

var arrowAlignNames = map[ArrowAlign]string{
	AlignUnspecified: "unspecified",
	AlignTop:         "top",
	AlignBottom:      "bottom",
	AlignLeft:        "left",
	AlignRight:       "right",
	AlignTopLeft:     "top-left",
	AlignTopRight:    "top-right",
	AlignBottomLeft:  "bottom-left",
	AlignBottomRight: "bottom-right",
}

func (a ArrowAlign) String() string {
	if s, ok := arrowAlignNames[a]; ok {
		return s
	}
	return "invalid"
}

// parts decomposes the alignment into its directional components. Valid
// alignments set at most one of top/bottom and one of left/right.
func (a ArrowAlign) parts() (top, bottom, left, right bool) {
	switch a {
	case AlignTop:
		top = true
	case AlignBottom:
		bottom = true
	case AlignLeft:
		left = true
	case AlignRight:
		right = true
	case AlignTopLeft:
		top, left = true, true
	case AlignTopRight:
		top, right = true, true
	case AlignBottomLeft:
		bottom, left = true, true
	case AlignBottomRight:
		bottom, right = true, true
	}
	return
}

func alignFromParts(top, bottom, left, right bool) ArrowAlign {
	switch {
	case top && left:
		return AlignTopLeft
	case top && right:
		return AlignTopRight
	case bottom && left:
		return AlignBottomLeft
	case bottom && right:
		return AlignBottomRight
	case top:
		return AlignTop
	case bottom:
		return AlignBottom
	case left:
		return AlignLeft
	case right:
		return AlignRight
	default:
		return AlignUnspecified
	}
}

// flipped swaps top with bottom and left with right, moving the candidate
// placement to the opposite side of the anchor.
func (a ArrowAlign) flipped() ArrowAlign {
	top, bottom, left, right := a.parts()
	if top || bottom {
		top, bottom = bottom, top
	}
	if left || right {
		left, right = right, left
	}
	return alignFromParts(top, bottom, left, right)
}

// rotated swaps top with left and bottom with right. For the top-left and
// bottom-right corners both components cancel, degenerating to
// AlignUnspecified; the placement loop then keeps its previous candidate
// position.
func (a ArrowAlign) rotated() ArrowAlign {
	top, bottom, left, right := a.parts()
	if top || left {
		top, left = !top, !left
	}
	if bottom || right {
		bottom, right = !bottom, !right
	}
	return alignFromParts(top, bottom, left, right)
}

// anchorPosition returns the popup's top-left corner for this alignment
// relative to the anchor rectangle. The corner alignments place the popup
// diagonally beyond the anchor; the edge alignments center it along the
// anchor's opposite edge. AlignUnspecified has no rule and returns
// ok=false, leaving the caller's previous candidate in place.
func (a ArrowAlign) anchorPosition(anchor gfx.Rect, size gfx.Size) (pos gfx.Point, ok bool) {
	switch a {
	case AlignTopLeft:
		return gfx.Point{X: anchor.X + anchor.W, Y: anchor.Y + anchor.H}, true
	case AlignTopRight:
		return gfx.Point{X: anchor.X - size.W, Y: anchor.Y + anchor.H}, true
	case AlignBottomLeft:
		return gfx.Point{X: anchor.X + anchor.W, Y: anchor.Y - size.H}, true
	case AlignBottomRight:
		return gfx.Point{X: anchor.X - size.W, Y: anchor.Y - size.H}, true
	case AlignTop:
		return gfx.Point{X: anchor.X + anchor.W/2 - size.W/2, Y: anchor.Y + anchor.H}, true
	case AlignBottom:
		return gfx.Point{X: anchor.X + anchor.W/2 - size.W/2, Y: anchor.Y - size.H}, true
	case AlignLeft:
		return gfx.Point{X: anchor.X + anchor.W, Y: anchor.Y + anchor.H/2 - size.H/2}, true
	case AlignRight:
		return gfx.Point{X: anchor.X - size.W, Y: anchor.Y + anchor.H/2 - size.H/2}, true
	}
	return gfx.Point{}, false
}

// ============================================================================
// Placement
// ============================================================================

// placeTooltip searches for a spot for a popup of the given size near the
// anchor, inside the viewport, starting from the preferred alignment.
//
// Up to four attempts: compute the alignment's position (start seeds the
// candidate for AlignUnspecified), clamp fully on-screen, accept if the
// clamped rectangle clears the anchor. On rejection the alignment is
// flipped after attempts 0 and 2 and rotated after attempt 1 - a bounded
// best-effort heuristic, not a search. Four rejections mean there is no
// room; the caller shows nothing.
func placeTooltip(anchor gfx.Rect, size gfx.Size, align ArrowAlign, viewport gfx.Size, start gfx.Point) (gfx.Point, ArrowAlign, bool) {
	x, y := start.X, start.Y

	for attempt := 0; attempt < 4; attempt++ {
		if pos, ok := align.anchorPosition(anchor, size); ok {
			x, y = pos.X, pos.Y
		}

		x = gfx.Clamp(x, 0, viewport.W-size.W)
		y = gfx.Clamp(y, 0, viewport.H-size.H)

		if anchor.Intersects(gfx.Rect{X: x, Y: y, W: size.W, H: size.H}) {
			switch attempt {
			case 0, 2:
				align = align.flipped()
			case 1:
				align = align.rotated()
			}
			continue
		}

		return gfx.Point{X: x, Y: y}, align, true
	}

	return gfx.Point{}, align, false
}

// ============================================================================
// Tip Window
// ============================================================================

// TipWindow is the tooltip's popup: a transparent CloseOnClickOutside
// overlay carrying the resolved arrow alignment and the anchor rectangle
// of the widget that triggered it.
type TipWindow struct {
	*PopupWindow

	arrowAlign ArrowAlign
	target     gfx.Rect
	bgColor    uint32
}

// NewTipWindow creates a closed tooltip popup for the given anchor.
func NewTipWindow(mgr *Manager, text string, target gfx.Rect) *TipWindow {
	t := &TipWindow{
		PopupWindow: NewPopupWindow(mgr, text, CloseOnClickOutside),
		target:      target,
		bgColor:     tooltipBgColor,
	}
	t.SetTransparent(true)

	scale := mgr.GUIScale()
	t.SetInsets(Insets{
		L: tooltipInsets.L * scale,
		T: tooltipInsets.T * scale,
		R: tooltipInsets.R * scale,
		B: tooltipInsets.B * scale,
	})

	t.widget.SetData(t)
	t.widget.OnMessage(func(_ *Widget, msg *Message) bool {
		// Any non-modifier key press dismisses a standalone tip window.
		if msg.Type() == MsgKeyDown && msg.Scancode < ScancodeFirstModifier {
			t.Close()
		}
		return false
	})
	return t
}

// ArrowAlign returns the resolved arrow alignment.
func (t *TipWindow) ArrowAlign() ArrowAlign {
	return t.arrowAlign
}

// SetArrowAlign records the alignment chosen by placement.
func (t *TipWindow) SetArrowAlign(align ArrowAlign) {
	t.arrowAlign = align
}

// Target returns the anchor rectangle the tooltip points at.
func (t *TipWindow) Target() gfx.Rect {
	return t.target
}

// BgColor returns the tooltip background color as 0xRRGGBB.
func (t *TipWindow) BgColor() uint32 {
	return t.bgColor
}

// Paint draws the tooltip through the theme collaborator.
func (t *TipWindow) Paint() {
	if theme := t.mgr.Theme(); theme != nil {
		theme.PaintTooltip(t)
	}
}

// ============================================================================
// Tooltip Manager
// ============================================================================

// TipInfo is the tooltip registered for one target widget.
type TipInfo struct {
	Text  string
	Align ArrowAlign
}

type tipRecord struct {
	target *Widget
	info   TipInfo
}

// tipState is the tooltip manager's lifecycle state.
type tipState uint8

const (
	// tipIdle: no target under consideration, no popup.
	tipIdle tipState = iota
	// tipPending: hover matched a registration, timer armed, no popup yet.
	tipPending
	// tipShowing: a tip window is open.
	tipShowing
)

// TooltipManager owns the tooltip registry for one Manager and drives the
// hover-delay-show-dismiss cycle by filtering input messages. Construct
// one per UI root and Attach it; there is no process-wide instance.
//
// At most one tip window is open at a time. Dismissal is driven solely by
// key-down, mouse-down, and mouse-leave: hovering onto another registered
// target while a tip is showing re-arms the delay without closing the
// open tip, and the timer expiry then replaces it. That policy is
// intentional and load-bearing for editor muscle memory; do not "fix" it.
type TooltipManager struct {
	mgr *Manager

	tips map[WidgetID]tipRecord

	state     tipState
	target    *Widget
	targetTip TipInfo

	timer     *Timer
	tipWindow *TipWindow

	attached bool
}

// NewTooltipManager creates a detached tooltip manager for mgr.
func NewTooltipManager(mgr *Manager) *TooltipManager {
	return &TooltipManager{
		mgr:  mgr,
		tips: make(map[WidgetID]tipRecord),
	}
}

var tooltipFilterTypes = []MessageType{
	MsgMouseEnter,
	MsgKeyDown,
	MsgMouseDown,
	MsgMouseLeave,
	MsgWidgetDetach,
}

// Attach registers the manager's message filters. Idempotent.
func (tm *TooltipManager) Attach() {
	if tm.attached {
		return
	}
	for _, typ := range tooltipFilterTypes {
		tm.mgr.AddMessageFilter(typ, tm)
	}
	tm.attached = true
}

// Detach deregisters all filters, dismisses any open tip, and stops the
// timer. The registry survives, so Attach can resume later.
func (tm *TooltipManager) Detach() {
	if !tm.attached {
		return
	}
	tm.mgr.RemoveMessageFilterFor(tm)
	tm.dismiss()
	tm.attached = false
}

// AddTooltipFor registers (or replaces) the tooltip for a target widget.
func (tm *TooltipManager) AddTooltipFor(target *Widget, text string, align ArrowAlign) {
	if target == nil || target.Destroyed() {
		return
	}
	tm.tips[target.ID()] = tipRecord{
		target: target,
		info:   TipInfo{Text: text, Align: align},
	}
}

// RemoveTooltipFor drops the registration for a target widget, if any.
func (tm *TooltipManager) RemoveTooltipFor(target *Widget) {
	if target == nil {
		return
	}
	delete(tm.tips, target.ID())
	if tm.target == target {
		tm.target = nil
	}
}

// HasTooltipFor reports whether a registration exists for the widget.
func (tm *TooltipManager) HasTooltipFor(target *Widget) bool {
	_, ok := tm.tips[target.ID()]
	return ok
}

// State exposes the lifecycle state for tests and diagnostics.
func (tm *TooltipManager) State() TooltipState {
	return TooltipState(tm.state)
}

// TooltipState is the externally visible lifecycle state.
type TooltipState uint8

const (
	TooltipIdle    = TooltipState(tipIdle)
	TooltipPending = TooltipState(tipPending)
	TooltipShowing = TooltipState(tipShowing)
)

func (s TooltipState) String() string {
	switch s {
	case TooltipIdle:
		return "idle"
	case TooltipPending:
		return "pending"
	case TooltipShowing:
		return "showing"
	}
	return "invalid"
}

// TipWindow returns the open tip window, or nil.
func (tm *TooltipManager) TipWindow() *TipWindow {
	return tm.tipWindow
}

// ProcessMessage implements MessageFilter. Never consumes: normal delivery
// always proceeds.
func (tm *TooltipManager) ProcessMessage(msg *Message) bool {
	switch msg.Type() {

	case MsgMouseEnter:
		// Scan every recipient, not just the innermost: tooltips may be
		// registered on clipped or nested ancestors. Later matches
		// (outer widgets) overwrite earlier ones.
		for _, w := range msg.Recipients() {
			rec, ok := tm.tips[w.ID()]
			if !ok {
				continue
			}
			tm.target = rec.target
			tm.targetTip = rec.info

			if tm.timer == nil {
				tm.timer = tm.mgr.Scheduler().NewTimer(tm.mgr.TooltipDelay(), tm.onTick)
			}
			tm.timer.Start()
			tm.state = tipPending
		}
		return false

	case MsgKeyDown, MsgMouseDown, MsgMouseLeave:
		tm.dismiss()
		return false

	case MsgWidgetDetach:
		for _, w := range msg.Recipients() {
			delete(tm.tips, w.ID())
			if tm.target == w {
				tm.target = nil
			}
		}
		return false
	}

	return false
}

// dismiss closes any open tip window and stops the timer. Safe to call in
// any state; both operations are idempotent.
func (tm *TooltipManager) dismiss() {
	if tm.tipWindow != nil {
		tm.tipWindow.Close()
		tm.tipWindow = nil
	}
	if tm.timer != nil {
		tm.timer.Stop()
	}
	tm.state = tipIdle
}

// onTick fires when the hover delay elapses: resolve the target, find a
// placement, and open the tip window. The timer is always stopped on the
// way out; the delay is one-shot per hover.
func (tm *TooltipManager) onTick() {
	defer tm.timer.Stop()

	// A tip armed while another is showing replaces it.
	if tm.tipWindow != nil {
		tm.tipWindow.Close()
		tm.tipWindow = nil
	}

	// The target may have been destroyed or detached while pending.
	if tm.target == nil || !tm.target.Attached() {
		tm.target = nil
		tm.state = tipIdle
		return
	}

	display := tm.mgr.Display()
	if display == nil {
		tm.state = tipIdle
		return
	}
	viewport := display.Size()

	anchor := tm.target.Bounds()
	tip := NewTipWindow(tm.mgr, tm.targetTip.Text, anchor)
	size := tip.PreferredSize(viewport.W)

	start := gfx.Point{}
	if pointer := tm.mgr.Pointer(); pointer != nil {
		offset := tooltipPointerOffset * tm.mgr.GUIScale()
		start = pointer.PointerPosition().Add(gfx.Point{X: offset, Y: offset})
	}

	pos, align, ok := placeTooltip(anchor, size, tm.targetTip.Align, viewport, start)
	if !ok {
		// No room anywhere near the anchor: suppress the tip entirely.
		tm.mgr.logger.Debug("tooltip placement failed", "anchor", anchor, "size", size)
		tm.state = tipIdle
		return
	}

	tip.SetArrowAlign(align)
	tip.SetBounds(gfx.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H})
	tip.Open()
	tm.tipWindow = tip
	tm.state = tipShowing
	tm.mgr.logger.Debug("tooltip shown", "pos", pos, "align", align.String())
}
