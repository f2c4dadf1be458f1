package ui

import (
	"testing"

	"github.com/embergfx/ember/gfx"
)

func TestPopupOpenCloseIdempotent(t *testing.T) {
	env := newTestEnv()
	env.newTestTree()

	popup := NewPopupWindow(env.mgr, "hello", CloseOnClickOutside)
	popup.SetBounds(gfx.Rect{X: 10, Y: 10, W: 100, H: 30})

	popup.Close() // closing a never-opened popup is a no-op

	popup.Open()
	popup.Open()
	if !popup.IsOpen() {
		t.Fatal("popup should be open")
	}
	if len(env.mgr.Popups()) != 1 {
		t.Fatalf("popup stack size = %d, want 1", len(env.mgr.Popups()))
	}

	popup.Close()
	popup.Close()
	if popup.IsOpen() {
		t.Fatal("popup should be closed")
	}
	if len(env.mgr.Popups()) != 0 {
		t.Fatalf("popup stack size = %d, want 0", len(env.mgr.Popups()))
	}
}

func TestPopupClosesOnOutsideClick(t *testing.T) {
	env := newTestEnv()
	env.newTestTree()

	popup := NewPopupWindow(env.mgr, "hello", CloseOnClickOutside)
	popup.SetBounds(gfx.Rect{X: 10, Y: 10, W: 100, H: 30})
	popup.Open()

	// Click inside the popup keeps it open.
	env.mgr.PumpMouseDown(gfx.Point{X: 50, Y: 20}, ButtonLeft)
	if !popup.IsOpen() {
		t.Fatal("click inside popup must not close it")
	}

	// Click outside closes it, even over empty space.
	env.mgr.PumpMouseDown(gfx.Point{X: 700, Y: 500}, ButtonLeft)
	if popup.IsOpen() {
		t.Fatal("click outside popup must close it")
	}
}

func TestPopupInsideClickIncludesChildren(t *testing.T) {
	env := newTestEnv()
	env.newTestTree()

	popup := NewPopupWindow(env.mgr, "hello", CloseOnClickOutside)
	popup.SetBounds(gfx.Rect{X: 10, Y: 10, W: 100, H: 60})
	button := NewWidget(KindButton).SetBounds(gfx.Rect{X: 20, Y: 30, W: 40, H: 16})
	popup.Widget().AddChild(button)
	popup.Open()

	env.mgr.PumpMouseDown(gfx.Point{X: 30, Y: 35}, ButtonLeft)
	if !popup.IsOpen() {
		t.Fatal("click on a popup child must not close the popup")
	}
}

func TestPopupNoneBehaviorIgnoresClicks(t *testing.T) {
	env := newTestEnv()
	env.newTestTree()

	popup := NewPopupWindow(env.mgr, "hello", ClickBehaviorNone)
	popup.SetBounds(gfx.Rect{X: 10, Y: 10, W: 100, H: 30})
	popup.Open()

	env.mgr.PumpMouseDown(gfx.Point{X: 700, Y: 500}, ButtonLeft)
	if !popup.IsOpen() {
		t.Fatal("ClickBehaviorNone popup must survive outside clicks")
	}
}

func TestPopupPreferredSize(t *testing.T) {
	env := newTestEnv()
	env.theme.textSize = gfx.Size{W: 48, H: 16}

	popup := NewPopupWindow(env.mgr, "hello", ClickBehaviorNone)
	popup.SetInsets(Insets{L: 6, T: 6, R: 6, B: 7})

	// Text only: measured size plus insets.
	if got := popup.PreferredSize(200); got != (gfx.Size{W: 60, H: 29}) {
		t.Errorf("PreferredSize = %v, want {60 29}", got)
	}

	// Hosted children: width grows to the widest child plus insets,
	// child heights stack below the text.
	popup.Widget().AddChild(NewWidget(KindButton).SetPreferredSize(gfx.Size{W: 90, H: 20}))
	popup.Widget().AddChild(NewWidget(KindButton).SetPreferredSize(gfx.Size{W: 30, H: 12}))

	if got := popup.PreferredSize(200); got != (gfx.Size{W: 102, H: 61}) {
		t.Errorf("PreferredSize with children = %v, want {102 61}", got)
	}
}

func TestTipWindowDefaults(t *testing.T) {
	env := newTestEnv()

	anchor := gfx.Rect{X: 100, Y: 100, W: 50, H: 20}
	tip := NewTipWindow(env.mgr, "Hi", anchor)

	if !tip.Transparent() {
		t.Error("tip windows are transparent")
	}
	if tip.Target() != anchor {
		t.Errorf("Target = %v, want %v", tip.Target(), anchor)
	}
	if tip.Insets() != (Insets{L: 6, T: 6, R: 6, B: 7}) {
		t.Errorf("Insets = %v", tip.Insets())
	}
	if tip.BgColor() != 0xFFFFC8 {
		t.Errorf("BgColor = %#x", tip.BgColor())
	}

	// The window widget's data slot points back at the tip window.
	if tip.Widget().Data() != tip {
		t.Error("widget data slot should reference the tip window")
	}
}

func TestTipWindowScaledInsets(t *testing.T) {
	theme := &stubTheme{textSize: gfx.Size{W: 48, H: 16}}
	mgr := NewManager(ManagerConfig{Theme: theme, GUIScale: 2})

	tip := NewTipWindow(mgr, "Hi", gfx.Rect{})
	if tip.Insets() != (Insets{L: 12, T: 12, R: 12, B: 14}) {
		t.Errorf("Insets at scale 2 = %v", tip.Insets())
	}
}

func TestTipWindowClosesOnNonModifierKey(t *testing.T) {
	env := newTestEnv()
	env.newTestTree()

	tip := NewTipWindow(env.mgr, "Hi", gfx.Rect{X: 100, Y: 100, W: 50, H: 20})
	tip.SetBounds(gfx.Rect{X: 200, Y: 200, W: 60, H: 30})
	tip.Open()

	// Hover the tip so key messages reach its widget.
	env.mgr.PumpPointerMove(gfx.Point{X: 210, Y: 210})

	env.mgr.PumpKeyDown(ScancodeFirstModifier, 0) // a modifier key
	if !tip.IsOpen() {
		t.Fatal("modifier key must not close the tip window")
	}

	env.mgr.PumpKeyDown(30, 0) // an ordinary key
	if tip.IsOpen() {
		t.Fatal("ordinary key must close the tip window")
	}
}

func TestTipWindowPaintGoesThroughTheme(t *testing.T) {
	env := newTestEnv()

	tip := NewTipWindow(env.mgr, "Hi", gfx.Rect{})
	tip.Paint()

	if len(env.theme.painted) != 1 || env.theme.painted[0] != tip {
		t.Error("Paint should delegate to the theme collaborator")
	}
}
