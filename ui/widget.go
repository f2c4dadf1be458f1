// Package ui implements the core widget toolkit of the ember sprite
// editor: the widget tree, message dispatch with global filters, the timer
// scheduler, popup overlays, and the tooltip manager. Rendering, display
// metrics, and pointer state are external collaborators (see Theme,
// Display, PointerSource).
//
// The toolkit is single-threaded and cooperative: all dispatch, timer
// callbacks, and placement run on the host's UI control flow. One message
// or one timer firing is fully processed before the next.
package ui

import (
	"sync/atomic"

	"github.com/embergfx/ember/gfx"
)

// WidgetID uniquely identifies a widget. IDs are stable for the lifetime
// of the widget and key external registries such as the tooltip table.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget.
type WidgetKind string

const (
	KindGeneric WidgetKind = "generic"
	KindWindow  WidgetKind = "window"
	KindPopup   WidgetKind = "popup"
	KindLabel   WidgetKind = "label"
	KindButton  WidgetKind = "button"
)

// MessageHandler processes a message delivered to a widget. Return true to
// consume the message and stop delivery to outer recipients.
type MessageHandler func(w *Widget, msg *Message) bool

// Widget is one node of the UI tree. A widget is owned by exactly one
// parent; bounds are absolute screen coordinates and are meaningful only
// while the widget is attached to a manager's tree.
type Widget struct {
	id       WidgetID
	kind     WidgetKind
	parent   *Widget
	children []*Widget

	bounds  gfx.Rect
	visible bool

	// Preferred size, when it differs from the laid-out bounds. Used by
	// popup preferred-size computation for hosted child content.
	preferredSize gfx.Size

	// Data is an opaque per-type slot. The popup window stores its
	// back-reference here; applications may use it for their own state.
	data any

	onMessage MessageHandler

	mgr       *Manager
	destroyed bool
}

// NewWidget creates a detached widget of the given kind.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:      newWidgetID(),
		kind:    kind,
		visible: true,
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget's kind.
func (w *Widget) Kind() WidgetKind {
	return w.kind
}

// Parent returns the owning parent, or nil for a root or detached widget.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the widget's children in order. Callers must not mutate
// the returned slice.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Bounds returns the widget's rectangle in screen coordinates.
func (w *Widget) Bounds() gfx.Rect {
	return w.bounds
}

// SetBounds sets the widget's rectangle in screen coordinates.
func (w *Widget) SetBounds(r gfx.Rect) *Widget {
	w.bounds = r
	return w
}

// Visible returns the widget's own visibility flag.
func (w *Widget) Visible() bool {
	return w.visible
}

// SetVisible sets the widget's visibility flag.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.visible = visible
	return w
}

// Data returns the opaque per-type data slot.
func (w *Widget) Data() any {
	return w.data
}

// SetData stores a value in the opaque per-type data slot.
func (w *Widget) SetData(data any) *Widget {
	w.data = data
	return w
}

// SetPreferredSize overrides the size reported by PreferredSize.
func (w *Widget) SetPreferredSize(s gfx.Size) *Widget {
	w.preferredSize = s
	return w
}

// PreferredSize returns the widget's preferred size: the explicit override
// if one was set, otherwise the current bounds size.
func (w *Widget) PreferredSize() gfx.Size {
	if !w.preferredSize.IsEmpty() {
		return w.preferredSize
	}
	return w.bounds.Size()
}

// OnMessage installs the widget's message handler.
func (w *Widget) OnMessage(fn MessageHandler) *Widget {
	w.onMessage = fn
	return w
}

// AddChild appends child to the widget's children, detaching it from any
// previous parent first. Adding an ancestor (which would create a cycle)
// or a destroyed widget is rejected.
func (w *Widget) AddChild(child *Widget) *Widget {
	if child == nil || child == w || child.destroyed {
		return w
	}
	for a := w; a != nil; a = a.parent {
		if a == child {
			return w
		}
	}

	child.RemoveFromParent()
	child.parent = w
	w.children = append(w.children, child)
	child.setManager(w.mgr)
	return w
}

// RemoveChild detaches child from the widget. Returns true if the child
// was found. The child survives and can be re-attached elsewhere.
func (w *Widget) RemoveChild(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.parent = nil
			child.setManager(nil)
			return true
		}
	}
	return false
}

// RemoveFromParent detaches the widget from its parent, if any.
func (w *Widget) RemoveFromParent() {
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
}

// Destroy detaches the widget and permanently invalidates its entire
// subtree. Each destroyed widget is announced to the owning manager as a
// WidgetDetach message so registries holding references (the tooltip
// table) purge them. Destroying twice is a no-op.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	mgr := w.mgr
	w.RemoveFromParent()
	w.destroySubtree(mgr)
}

func (w *Widget) destroySubtree(mgr *Manager) {
	w.destroyed = true
	w.parent = nil
	w.mgr = nil
	if mgr != nil {
		mgr.notifyDetach(w)
	}
	children := w.children
	w.children = nil
	for _, c := range children {
		c.destroySubtree(mgr)
	}
}

// Destroyed returns true once Destroy has run on the widget or an ancestor.
func (w *Widget) Destroyed() bool {
	return w.destroyed
}

// Attached returns true while the widget is reachable from a live manager
// root. Bounds and hit testing are only meaningful while attached.
func (w *Widget) Attached() bool {
	if w.destroyed {
		return false
	}
	root := w
	for root.parent != nil {
		root = root.parent
	}
	return root.mgr != nil && root.mgr.isRoot(root)
}

// Chain returns the recipient chain for a message targeted at the widget:
// the widget itself followed by its ancestors, innermost to outermost.
func (w *Widget) Chain() []*Widget {
	var chain []*Widget
	for n := w; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	return chain
}

// HasAncestor returns true if a equals the widget or one of its ancestors.
func (w *Widget) HasAncestor(a *Widget) bool {
	for n := w; n != nil; n = n.parent {
		if n == a {
			return true
		}
	}
	return false
}

// setManager propagates the owning manager through the subtree.
func (w *Widget) setManager(mgr *Manager) {
	if w.mgr == mgr {
		return
	}
	w.mgr = mgr
	for _, c := range w.children {
		c.setManager(mgr)
	}
}

// handleMessage invokes the widget's handler, if installed.
func (w *Widget) handleMessage(msg *Message) bool {
	if w.onMessage == nil {
		return false
	}
	return w.onMessage(w, msg)
}
