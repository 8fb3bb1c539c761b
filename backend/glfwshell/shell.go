// Package glfwshell adapts GLFW windows to the cosmic event model. It
// queues pointer and keyboard callbacks as cosmic events and exposes the
// window's clipboard. Rendering stays with the host; this package only
// moves input and clipboard data across.
package glfwshell

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cosmic-gui/cosmic"
)

// Shell bridges one GLFW window to cosmic widgets. Create it after the
// window, then call Drain once per frame on the main thread.
type Shell struct {
	window *glfw.Window
	queue  []cosmic.Event
	cursor cosmic.Point
}

// New installs input callbacks on the window and returns the shell.
func New(window *glfw.Window) *Shell {
	s := &Shell{window: window}

	window.SetCursorPosCallback(s.cursorPosCallback)
	window.SetMouseButtonCallback(s.mouseButtonCallback)
	window.SetKeyCallback(s.keyCallback)
	window.SetCharCallback(s.charCallback)

	return s
}

// Drain delivers all queued events plus a closing RedrawTick to sink, in
// arrival order, and clears the queue. Call after glfw.PollEvents.
func (s *Shell) Drain(sink cosmic.EventSink, now time.Time) {
	for _, ev := range s.queue {
		sink(ev)
	}
	s.queue = s.queue[:0]
	sink(cosmic.RedrawTick{Now: now})
}

// Clipboard returns a cosmic.Clipboard backed by the window.
func (s *Shell) Clipboard() cosmic.Clipboard {
	return windowClipboard{window: s.window}
}

func (s *Shell) cursorPosCallback(_ *glfw.Window, x, y float64) {
	s.cursor = cosmic.Point{X: float32(x), Y: float32(y)}
	s.queue = append(s.queue, cosmic.PointerMoved{Position: s.cursor})
}

func (s *Shell) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		s.queue = append(s.queue, cosmic.PointerPressed{Position: s.cursor, Button: b})
	case glfw.Release:
		s.queue = append(s.queue, cosmic.PointerReleased{Position: s.cursor, Button: b})
	}
}

func (s *Shell) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	k := keyFor(key)
	if k == cosmic.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		s.queue = append(s.queue, cosmic.KeyPressed{Key: k, Modifiers: modifiers(mods)})
	case glfw.Release:
		s.queue = append(s.queue, cosmic.KeyReleased{Key: k, Modifiers: modifiers(mods)})
	}
}

func (s *Shell) charCallback(_ *glfw.Window, char rune) {
	s.queue = append(s.queue, cosmic.KeyPressed{Rune: char, Modifiers: s.currentModifiers()})
}

// currentModifiers polls modifier keys directly; the char callback does
// not carry them.
func (s *Shell) currentModifiers() cosmic.Modifiers {
	pressed := func(a, b glfw.Key) bool {
		return s.window.GetKey(a) == glfw.Press || s.window.GetKey(b) == glfw.Press
	}
	return cosmic.Modifiers{
		Ctrl:  pressed(glfw.KeyLeftControl, glfw.KeyRightControl),
		Shift: pressed(glfw.KeyLeftShift, glfw.KeyRightShift),
		Alt:   pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt),
		Super: pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper),
	}
}

func modifiers(mods glfw.ModifierKey) cosmic.Modifiers {
	return cosmic.Modifiers{
		Ctrl:  mods&glfw.ModControl != 0,
		Shift: mods&glfw.ModShift != 0,
		Alt:   mods&glfw.ModAlt != 0,
		Super: mods&glfw.ModSuper != 0,
	}
}

func mouseButton(button glfw.MouseButton) (cosmic.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return cosmic.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return cosmic.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return cosmic.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

func keyFor(key glfw.Key) cosmic.Key {
	switch key {
	case glfw.KeyTab:
		return cosmic.KeyTab
	case glfw.KeyLeft:
		return cosmic.KeyLeft
	case glfw.KeyRight:
		return cosmic.KeyRight
	case glfw.KeyUp:
		return cosmic.KeyUp
	case glfw.KeyDown:
		return cosmic.KeyDown
	case glfw.KeyHome:
		return cosmic.KeyHome
	case glfw.KeyEnd:
		return cosmic.KeyEnd
	case glfw.KeyDelete:
		return cosmic.KeyDelete
	case glfw.KeyBackspace:
		return cosmic.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return cosmic.KeyEnter
	case glfw.KeyEscape:
		return cosmic.KeyEscape
	case glfw.KeyA:
		return cosmic.KeyA
	case glfw.KeyC:
		return cosmic.KeyC
	case glfw.KeyV:
		return cosmic.KeyV
	case glfw.KeyX:
		return cosmic.KeyX
	default:
		return cosmic.KeyNone
	}
}

// windowClipboard implements cosmic.Clipboard on a GLFW window.
type windowClipboard struct {
	window *glfw.Window
}

func (c windowClipboard) GetText() string {
	return c.window.GetClipboardString()
}

func (c windowClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
