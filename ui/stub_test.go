package ui

import (
	"time"

	"github.com/embergfx/ember/gfx"
)

// Collaborator doubles shared by the package tests.

// stubTheme measures every string to a fixed size and records paint calls.
type stubTheme struct {
	textSize gfx.Size
	painted  []*TipWindow
}

func (t *stubTheme) PaintTooltip(tip *TipWindow) {
	t.painted = append(t.painted, tip)
}

func (t *stubTheme) MeasureText(font, text string, maxWidth int, align TextAlign) gfx.Size {
	return t.textSize
}

// stubPointer reports a settable pointer position.
type stubPointer struct {
	pos gfx.Point
}

func (p *stubPointer) PointerPosition() gfx.Point {
	return p.pos
}

// stubDisplay reports a fixed viewport.
type stubDisplay struct {
	size gfx.Size
}

func (d *stubDisplay) Size() gfx.Size {
	return d.size
}

// testEnv bundles a manager with its doubles.
type testEnv struct {
	mgr     *Manager
	theme   *stubTheme
	pointer *stubPointer
	display *stubDisplay
}

func newTestEnv() *testEnv {
	theme := &stubTheme{textSize: gfx.Size{W: 48, H: 16}}
	pointer := &stubPointer{}
	display := &stubDisplay{size: gfx.Size{W: 800, H: 600}}

	mgr := NewManager(ManagerConfig{
		Theme:        theme,
		Pointer:      pointer,
		Display:      display,
		GUIScale:     1,
		TooltipDelay: 300 * time.Millisecond,
	})
	return &testEnv{mgr: mgr, theme: theme, pointer: pointer, display: display}
}

// newTestTree installs an 800x600 root with two side-by-side buttons.
func (env *testEnv) newTestTree() (root, w1, w2 *Widget) {
	root = NewWidget(KindWindow).SetBounds(gfx.Rect{X: 0, Y: 0, W: 800, H: 600})
	w1 = NewWidget(KindButton).SetBounds(gfx.Rect{X: 100, Y: 100, W: 50, H: 20})
	w2 = NewWidget(KindButton).SetBounds(gfx.Rect{X: 300, Y: 100, W: 50, H: 20})
	root.AddChild(w1)
	root.AddChild(w2)
	env.mgr.SetRoot(root)
	return root, w1, w2
}

// recordingFilter appends its name to a shared log on every invocation.
type recordingFilter struct {
	name    string
	log     *[]string
	consume bool
	onCall  func(msg *Message)
}

func (f *recordingFilter) ProcessMessage(msg *Message) bool {
	*f.log = append(*f.log, f.name)
	if f.onCall != nil {
		f.onCall(msg)
	}
	return f.consume
}
