package cosmic

import "time"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a non-character keyboard key routed to the widget. Typed
// characters arrive as the Rune field of KeyPressed instead.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
		KeyA:         "A",
		KeyC:         "C",
		KeyV:         "V",
		KeyX:         "X",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// Modifiers is the keyboard modifier state accompanying an event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Super bool
}

// Command returns true when the platform's command/control modifier is held.
// Shortcuts such as select-all, copy and paste key off this.
func (m Modifiers) Command() bool {
	return m.Ctrl || m.Super
}

// WordJump returns true when the platform's word-jump modifier is held,
// turning arrow movement and backspace/delete into word-wise operations.
func (m Modifiers) WordJump() bool {
	return m.Ctrl || m.Alt
}

// Status reports whether a widget consumed an event.
type Status uint8

const (
	// Ignored means the event was not relevant to the widget and should
	// propagate to other handlers.
	Ignored Status = iota
	// Captured means the widget handled the event.
	Captured
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	if s == Captured {
		return "Captured"
	}
	return "Ignored"
}

// Event is an input or platform event delivered to a widget's Update.
//
// Pointer and keyboard events come from the host event loop; the DnD events
// are the asynchronous callbacks of the platform drag-and-drop service
// (declared in dnd.go); RedrawTick drives blink timing.
type Event interface {
	isEvent()
}

// PointerPressed reports a mouse button press.
type PointerPressed struct {
	Position Point
	Button   MouseButton
}

// PointerMoved reports pointer motion, with or without buttons held.
type PointerMoved struct {
	Position Point
}

// PointerReleased reports a mouse button release.
type PointerReleased struct {
	Position Point
	Button   MouseButton
}

// KeyPressed reports a key press. Rune carries the typed character, if the
// press produced one; Key identifies editing/navigation keys.
type KeyPressed struct {
	Key       Key
	Rune      rune
	Modifiers Modifiers
}

// KeyReleased reports a key release.
type KeyReleased struct {
	Key       Key
	Modifiers Modifiers
}

// RedrawTick carries the host's current frame time into the widget so blink
// phase and focus arbitration advance without a background timer.
type RedrawTick struct {
	Now time.Time
}

func (PointerPressed) isEvent()  {}
func (PointerMoved) isEvent()    {}
func (PointerReleased) isEvent() {}
func (KeyPressed) isEvent()      {}
func (KeyReleased) isEvent()     {}
func (RedrawTick) isEvent()      {}
