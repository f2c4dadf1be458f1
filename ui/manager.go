package ui

import (
	"io"
	"log/slog"
	"time"

	"github.com/embergfx/ember/gfx"
)

// ============================================================================
// Manager
// ============================================================================

// ManagerConfig configures a Manager. Theme, Pointer, and Display are the
// external collaborators; all are required for tooltip display but the
// tree and dispatch work without them.
type ManagerConfig struct {
	Theme   Theme
	Pointer PointerSource
	Display Display

	// GUIScale multiplies pixel constants (popup insets, pointer offsets).
	// Values below 1 are treated as 1.
	GUIScale int

	// TooltipDelay is how long the pointer must rest on a registered
	// widget before its tooltip appears. Zero means the 300 ms default.
	TooltipDelay time.Duration

	// Logger receives debug-level dispatch diagnostics. Nil discards.
	Logger *slog.Logger
}

// DefaultManagerConfig returns sensible defaults with no collaborators.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		GUIScale:     1,
		TooltipDelay: 300 * time.Millisecond,
	}
}

type filterEntry struct {
	filter MessageFilter
}

// Manager owns the widget tree, the global message-filter registry, the
// timer scheduler, and the popup overlay stack. It is the hub every other
// part of the toolkit hangs off.
//
// Filters are invoked in registration order before a message reaches its
// recipient chain. A filter list may be mutated from inside a filter
// callback; dispatch iterates a snapshot and skips entries that were
// deregistered mid-flight.
type Manager struct {
	cfg    ManagerConfig
	logger *slog.Logger

	root   *Widget
	popups []*PopupWindow

	filters map[MessageType][]filterEntry

	scheduler *Scheduler

	// Deepest widget currently under the pointer, for enter/leave synthesis.
	hovered *Widget
}

// NewManager creates a manager with the given configuration.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.GUIScale < 1 {
		cfg.GUIScale = 1
	}
	if cfg.TooltipDelay <= 0 {
		cfg.TooltipDelay = 300 * time.Millisecond
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		cfg:       cfg,
		logger:    logger,
		filters:   make(map[MessageType][]filterEntry),
		scheduler: NewScheduler(),
	}
}

// Scheduler returns the manager's timer scheduler.
func (m *Manager) Scheduler() *Scheduler {
	return m.scheduler
}

// Theme returns the rendering collaborator.
func (m *Manager) Theme() Theme {
	return m.cfg.Theme
}

// Pointer returns the pointer-state collaborator.
func (m *Manager) Pointer() PointerSource {
	return m.cfg.Pointer
}

// Display returns the viewport collaborator.
func (m *Manager) Display() Display {
	return m.cfg.Display
}

// GUIScale returns the pixel-scaling factor, at least 1.
func (m *Manager) GUIScale() int {
	return m.cfg.GUIScale
}

// TooltipDelay returns the configured hover delay.
func (m *Manager) TooltipDelay() time.Duration {
	return m.cfg.TooltipDelay
}

// SetRoot installs the root widget of the tree.
func (m *Manager) SetRoot(root *Widget) {
	if m.root != nil {
		m.root.setManager(nil)
	}
	m.root = root
	if root != nil {
		root.setManager(m)
	}
}

// Root returns the root widget, or nil.
func (m *Manager) Root() *Widget {
	return m.root
}

// isRoot reports whether w is the tree root or an open popup's window,
// both of which anchor live widget chains.
func (m *Manager) isRoot(w *Widget) bool {
	if w == m.root {
		return true
	}
	for _, p := range m.popups {
		if p.widget == w {
			return true
		}
	}
	return false
}

// ============================================================================
// Filter Registry
// ============================================================================

// AddMessageFilter registers f to intercept messages of type typ before
// normal delivery. Registering the same filter twice for the same type is
// a no-op: a filter is never double-invoked for one message.
func (m *Manager) AddMessageFilter(typ MessageType, f MessageFilter) {
	if f == nil {
		return
	}
	for _, e := range m.filters[typ] {
		if e.filter == f {
			return
		}
	}
	m.filters[typ] = append(m.filters[typ], filterEntry{filter: f})
	m.logger.Debug("message filter registered", "type", typ, "filters", len(m.filters[typ]))
}

// RemoveMessageFilter deregisters f for one message type.
func (m *Manager) RemoveMessageFilter(typ MessageType, f MessageFilter) {
	list := m.filters[typ]
	for i, e := range list {
		if e.filter == f {
			m.filters[typ] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// RemoveMessageFilterFor drops every registration of f in one call.
// Components call this on destruction.
func (m *Manager) RemoveMessageFilterFor(f MessageFilter) {
	for typ, list := range m.filters {
		kept := list[:0]
		for _, e := range list {
			if e.filter != f {
				kept = append(kept, e)
			}
		}
		m.filters[typ] = kept
	}
}

// hasFilter reports whether f is currently registered for typ.
func (m *Manager) hasFilter(typ MessageType, f MessageFilter) bool {
	for _, e := range m.filters[typ] {
		if e.filter == f {
			return true
		}
	}
	return false
}

// ============================================================================
// Dispatch
// ============================================================================

// Dispatch runs msg through the filter registry, then delivers it to the
// recipient chain (innermost first) until a recipient consumes it.
//
// Filter consumption only short-circuits the remaining filters; delivery
// to the recipients still proceeds. Filters may deregister themselves or
// others during their callback: dispatch iterates a snapshot and re-checks
// registration before each invocation.
func (m *Manager) Dispatch(msg *Message) {
	snapshot := append([]filterEntry(nil), m.filters[msg.typ]...)
	for _, e := range snapshot {
		if !m.hasFilter(msg.typ, e.filter) {
			continue
		}
		if e.filter.ProcessMessage(msg) {
			break
		}
	}

	for _, w := range msg.recipients {
		if w.destroyed {
			continue
		}
		if w.handleMessage(msg) {
			break
		}
	}
}

// notifyDetach broadcasts a widget's destruction through the filter
// registry so registries referencing it can purge.
func (m *Manager) notifyDetach(w *Widget) {
	if w == m.hovered {
		m.hovered = nil
	}
	msg := NewMessage(MsgWidgetDetach, []*Widget{w})
	m.Dispatch(msg)
	msg.Release()
}

// ============================================================================
// Hit Testing
// ============================================================================

// HitTest finds the topmost visible widget at the given position. Open
// popups are tested first, topmost first, since they overlay the tree.
func (m *Manager) HitTest(p gfx.Point) *Widget {
	for i := len(m.popups) - 1; i >= 0; i-- {
		if w := hitTestRecursive(m.popups[i].widget, p); w != nil {
			return w
		}
	}
	if m.root == nil {
		return nil
	}
	return hitTestRecursive(m.root, p)
}

// hitTestRecursive walks the subtree to find the topmost widget at the
// point. Children are checked in reverse order: the last child draws on
// top.
func hitTestRecursive(w *Widget, p gfx.Point) *Widget {
	if !w.visible || !w.bounds.Contains(p) {
		return nil
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		if hit := hitTestRecursive(w.children[i], p); hit != nil {
			return hit
		}
	}
	return w
}

// ============================================================================
// Input Pumps
// ============================================================================
//
// The host event loop translates raw input into these calls. Each pump
// builds the recipient chain, synthesizes enter/leave transitions, and
// dispatches through the filter registry.

// PumpPointerMove processes pointer movement: emits MouseLeave for the
// previously hovered chain, MouseEnter for the new one, then MouseMove.
func (m *Manager) PumpPointerMove(p gfx.Point) {
	target := m.HitTest(p)

	if target != m.hovered {
		if m.hovered != nil && !m.hovered.destroyed {
			m.send(MsgMouseLeave, m.hovered.Chain(), func(msg *Message) { msg.Pos = p })
		}
		m.hovered = target
		if target != nil {
			m.send(MsgMouseEnter, target.Chain(), func(msg *Message) { msg.Pos = p })
		}
	}

	if target != nil {
		m.send(MsgMouseMove, target.Chain(), func(msg *Message) { msg.Pos = p })
	}
}

// PumpMouseDown processes a button press at p. The message is dispatched
// even when no widget is hit so outside-click filters observe it.
func (m *Manager) PumpMouseDown(p gfx.Point, button MouseButton) {
	m.send(MsgMouseDown, m.chainAt(p), func(msg *Message) {
		msg.Pos = p
		msg.Button = button
	})
}

// PumpMouseUp processes a button release at p.
func (m *Manager) PumpMouseUp(p gfx.Point, button MouseButton) {
	m.send(MsgMouseUp, m.chainAt(p), func(msg *Message) {
		msg.Pos = p
		msg.Button = button
	})
}

// PumpKeyDown processes a key press. Recipients are the hovered chain;
// key filters run regardless.
func (m *Manager) PumpKeyDown(scancode int, mods Modifiers) {
	m.send(MsgKeyDown, m.hoveredChain(), func(msg *Message) {
		msg.Scancode = scancode
		msg.Modifiers = mods
	})
}

// PumpKeyUp processes a key release.
func (m *Manager) PumpKeyUp(scancode int, mods Modifiers) {
	m.send(MsgKeyUp, m.hoveredChain(), func(msg *Message) {
		msg.Scancode = scancode
		msg.Modifiers = mods
	})
}

func (m *Manager) chainAt(p gfx.Point) []*Widget {
	if target := m.HitTest(p); target != nil {
		return target.Chain()
	}
	return nil
}

func (m *Manager) hoveredChain() []*Widget {
	if m.hovered != nil && !m.hovered.destroyed {
		return m.hovered.Chain()
	}
	return nil
}

func (m *Manager) send(typ MessageType, recipients []*Widget, fill func(*Message)) {
	msg := NewMessage(typ, recipients)
	if fill != nil {
		fill(msg)
	}
	m.Dispatch(msg)
	msg.Release()
}

// ============================================================================
// Popup Stack
// ============================================================================

// addPopup pushes a popup onto the overlay stack.
func (m *Manager) addPopup(p *PopupWindow) {
	for _, existing := range m.popups {
		if existing == p {
			return
		}
	}
	m.popups = append(m.popups, p)
	p.widget.setManager(m)
}

// removePopup pops a popup off the overlay stack.
func (m *Manager) removePopup(p *PopupWindow) {
	for i, existing := range m.popups {
		if existing == p {
			m.popups = append(m.popups[:i], m.popups[i+1:]...)
			p.widget.setManager(nil)
			return
		}
	}
}

// Popups returns the open popup overlays, bottom to top.
func (m *Manager) Popups() []*PopupWindow {
	return m.popups
}
