package ui

import (
	"sync"

	"github.com/embergfx/ember/gfx"
)

// ============================================================================
// Message Types
// ============================================================================

// MessageType identifies the kind of message.
type MessageType uint8

const (
	// Mouse messages
	MsgMouseEnter MessageType = iota + 1
	MsgMouseLeave
	MsgMouseMove
	MsgMouseDown
	MsgMouseUp

	// Keyboard messages
	MsgKeyDown
	MsgKeyUp

	// MsgWidgetDetach is broadcast through the filter registry when a widget
	// is destroyed, so registries holding widget references can purge them.
	MsgWidgetDetach
)

// MouseButton identifies which mouse button triggered a mouse message.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Modifiers is a bitmask of modifier keys held during a key message.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// ScancodeFirstModifier is the lowest scancode assigned to a modifier key.
// Scancodes at or above this value do not produce characters and are
// ignored by popups that close on key presses.
const ScancodeFirstModifier = 115

// ============================================================================
// Message
// ============================================================================

// Message is a single input or lifecycle notification traveling through the
// manager. It carries the chain of recipient widgets (innermost to
// outermost) plus type-specific payload. Messages are pooled; callers that
// construct one with NewMessage must Release it after dispatch.
type Message struct {
	typ        MessageType
	recipients []*Widget

	// Pointer position for mouse messages (screen coordinates).
	Pos gfx.Point

	// Button for mouse down/up messages.
	Button MouseButton

	// Scancode and Modifiers for key messages.
	Scancode  int
	Modifiers Modifiers
}

// Type returns the message type.
func (m *Message) Type() MessageType { return m.typ }

// Recipients returns the widgets the message is addressed to, ordered
// innermost to outermost. Callers must not mutate the slice.
func (m *Message) Recipients() []*Widget { return m.recipients }

// NewMessage creates a message addressed to the given recipient chain.
// Uses an object pool since mouse-move messages arrive at input frequency.
func NewMessage(typ MessageType, recipients []*Widget) *Message {
	msg := messagePool.Get().(*Message)
	msg.typ = typ
	msg.recipients = append(msg.recipients[:0], recipients...)
	msg.Pos = gfx.Point{}
	msg.Button = ButtonNone
	msg.Scancode = 0
	msg.Modifiers = 0
	return msg
}

// Release returns the message to the pool. Call when dispatch is done.
func (m *Message) Release() {
	for i := range m.recipients {
		m.recipients[i] = nil
	}
	messagePool.Put(m)
}

var messagePool = sync.Pool{
	New: func() any {
		return &Message{recipients: make([]*Widget, 0, 8)}
	},
}

// ============================================================================
// Message Filter
// ============================================================================

// MessageFilter intercepts messages of a registered type before they reach
// their recipient chain. ProcessMessage returns true if the filter consumed
// the message: remaining filters are skipped, but delivery to the recipient
// chain still proceeds.
type MessageFilter interface {
	ProcessMessage(msg *Message) bool
}
