package cosmic

import (
	"time"

	"go.uber.org/zap"
)

// TextInput is the editing engine of a single-line text field. It owns the
// value, cursor, click history, focus timing and the two drag-and-drop
// state machines, and routes every pointer, keyboard and platform event to
// them. Measurement, painting, clipboard and drag-and-drop are injected
// collaborators; the widget itself never blocks and never draws.
//
// All methods must be called from the host's UI thread.
type TextInput struct {
	value  Value
	cursor Cursor
	bounds Rect

	theme    Theme
	fontSize float32

	measurer  TextMeasurer
	clipboard Clipboard
	dnd       DragDropService
	arbiter   *FocusArbiter

	focus         *Focus
	lastClick     *Click
	dragSelecting bool
	drag          DragController
	offer         OfferController
	pastePending  *Value

	password      bool
	placeholder   string
	selectOnFocus bool
	editableLabel bool
	editing       bool

	onInput  func(string)
	onSubmit func(string)
	onFocus  func()
	onBlur   func()
	onTab    func()
	onPaste  func(string)
}

// NewTextInput creates a text input using the given measurement
// collaborator.
func NewTextInput(measurer TextMeasurer, opts ...TextInputOption) *TextInput {
	t := &TextInput{
		measurer: measurer,
		theme:    DarkTheme(),
		fontSize: 14,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.arbiter == nil {
		t.arbiter = NewFocusArbiter()
	}
	return t
}

// SetBounds positions the field in the host surface's coordinate space.
// Called by the host's layout pass.
func (t *TextInput) SetBounds(bounds Rect) {
	t.bounds = bounds
}

// Bounds returns the field's current bounds.
func (t *TextInput) Bounds() Rect {
	return t.bounds
}

// Value returns the current text content.
func (t *TextInput) Value() string {
	return t.value.String()
}

// SetValue replaces the content from outside the editing pipeline. The
// cursor is clamped against the new value on its next read.
func (t *TextInput) SetValue(text string) {
	t.value = NewValue(text)
}

// Placeholder returns the configured placeholder text.
func (t *TextInput) Placeholder() string {
	return t.placeholder
}

// Theme returns the palette the host's renderer should draw with.
func (t *TextInput) Theme() Theme {
	return t.theme
}

// Displayed returns the string the host should render and measure: the
// masked projection for password fields, the raw value otherwise.
func (t *TextInput) Displayed() string {
	if t.password {
		return t.value.Secure().String()
	}
	return t.value.String()
}

// Focused reports whether the field has keyboard focus.
func (t *TextInput) Focused() bool {
	return t.focus != nil
}

// Editing reports whether an editable-label field is in its editable state.
// Always true for regular fields.
func (t *TextInput) Editing() bool {
	if !t.editableLabel {
		return true
	}
	return t.editing
}

// Selection returns the normalized selection bounds, if any.
func (t *TextInput) Selection() (left, right int, ok bool) {
	return t.cursor.Selection(t.value)
}

// CaretIndex returns the caret's grapheme index.
func (t *TextInput) CaretIndex() int {
	return t.cursor.Index(t.value)
}

// CaretVisible reports whether the caret is in the visible half of its
// blink cycle. Always false while unfocused.
func (t *TextInput) CaretVisible() bool {
	if t.focus == nil {
		return false
	}
	return t.focus.CaretVisible()
}

// NextRedraw returns when the host should schedule the next redraw for
// blink timing, and false while unfocused.
func (t *TextInput) NextRedraw(now time.Time) (time.Time, bool) {
	if t.focus == nil {
		return time.Time{}, false
	}
	return t.focus.NextRedraw(now), true
}

// Focus grants the field keyboard focus programmatically, applying the
// configured entry action: select-all, or caret to the end.
func (t *TextInput) Focus(now time.Time) {
	t.acquireFocus(now)
	if t.selectOnFocus {
		t.cursor.SelectAll(t.value)
	} else {
		t.cursor.MoveToEnd(t.value)
	}
}

// Unfocus removes keyboard focus, running the exit actions: caret to the
// front, click history and pending paste/drag state cleared.
func (t *TextInput) Unfocus() {
	if t.focus == nil {
		return
	}
	logger().Debug("text input unfocused")
	t.focus = nil
	t.editing = false
	t.cursor.MoveToFront()
	t.lastClick = nil
	t.pastePending = nil
	t.dragSelecting = false
	t.drag.Finish()
	if t.onBlur != nil {
		t.onBlur()
	}
}

// Update routes one event through the engine and reports whether it was
// consumed. now is the host's time for the current tick.
func (t *TextInput) Update(ev Event, now time.Time) Status {
	switch ev := ev.(type) {
	case PointerPressed:
		return t.pointerPressed(ev, now)
	case PointerMoved:
		return t.pointerMoved(ev)
	case PointerReleased:
		return t.pointerReleased(ev)
	case KeyPressed:
		return t.keyPressed(ev, now)
	case KeyReleased:
		return Ignored
	case RedrawTick:
		t.tick(ev.Now)
		return Ignored
	case DragActionAccepted:
		t.drag.AcceptAction(ev.Action)
		return Captured
	case DragFinished, DragCancelled:
		// Cancelled drags do not restore the exported text; the cut
		// already went out as a content change.
		t.drag.Finish()
		return Captured
	case OfferEnter:
		return t.offerEnter(ev)
	case OfferMotion:
		return t.offerMotion(ev)
	case OfferDrop:
		return t.offerDrop()
	case OfferData:
		return t.offerData(ev)
	case OfferLeave:
		t.offer.Leave()
		return Captured
	default:
		return Ignored
	}
}

func (t *TextInput) pointerPressed(ev PointerPressed, now time.Time) Status {
	if ev.Button != MouseButtonLeft {
		return Ignored
	}
	if !t.bounds.Contains(ev.Position) {
		t.Unfocus()
		return Ignored
	}

	wasFocused := t.focus != nil
	t.acquireFocus(now)

	click := NewClick(ev.Position, ev.Button, t.lastClick, now)
	t.lastClick = &click
	target := t.hitTest(ev.Position)

	switch click.Kind() {
	case ClickSingle:
		left, right, hasSelection := t.cursor.Selection(t.value)
		if wasFocused && hasSelection && target >= left && target < right {
			// Pressing inside the selection arms a drag instead of
			// collapsing it.
			t.drag.Prepare(ev.Position)
		} else {
			t.cursor.MoveTo(target)
			t.dragSelecting = true
		}
	case ClickDouble:
		if t.password {
			t.cursor.SelectAll(t.value)
		} else {
			t.cursor.SelectRange(
				t.value.PreviousStartOfWord(target),
				t.value.NextEndOfWord(target),
			)
		}
	case ClickTriple:
		t.cursor.SelectAll(t.value)
	}

	t.refreshFocus(now)
	return Captured
}

func (t *TextInput) pointerMoved(ev PointerMoved) Status {
	if t.drag.ShouldStart(ev.Position) {
		t.startDrag()
		return Captured
	}

	if t.dragSelecting && t.focus != nil {
		t.cursor.SelectTo(t.value, t.hitTest(ev.Position))
		return Captured
	}
	return Ignored
}

func (t *TextInput) pointerReleased(ev PointerReleased) Status {
	if ev.Button != MouseButtonLeft {
		return Ignored
	}

	acted := false
	if t.drag.State() == DragPreparing {
		// The press landed on the selection but never became a drag:
		// treat it as a plain caret placement.
		t.cursor.MoveTo(t.hitTest(ev.Position))
		t.drag.Disarm()
		acted = true
	}
	if t.dragSelecting {
		t.dragSelecting = false
		acted = true
	}
	if acted {
		return Captured
	}
	return Ignored
}

// startDrag cuts the selection out of the value and hands it to the
// platform as the drag payload.
func (t *TextInput) startDrag() {
	left, right, ok := t.cursor.Selection(t.value)
	if !ok || t.dnd == nil {
		t.drag.Disarm()
		return
	}

	payload := t.value.Between(left, right).String()
	t.cursor.MoveTo(left)
	t.value = t.value.RemoveMany(left, right)
	t.emitInput(t.value.String())

	t.dnd.StartDrag(payload, SupportedTextMimeTypes, ActionMove)
	t.drag.Start()
}

func (t *TextInput) keyPressed(ev KeyPressed, now time.Time) Status {
	if t.focus == nil {
		return Ignored
	}

	// Typed characters. A held command modifier means the rune is a
	// shortcut's side effect, not input.
	if ev.Rune != 0 && !ev.Modifiers.Command() {
		if t.disabled() {
			return Ignored
		}
		editor := NewEditor(&t.value, &t.cursor)
		editor.Insert(ev.Rune)
		t.emitInput(editor.Contents())
		t.refreshFocus(now)
		return Captured
	}

	switch ev.Key {
	case KeyEnter:
		if t.onSubmit != nil {
			t.onSubmit(t.value.String())
		}
		return Captured

	case KeyEscape:
		t.Unfocus()
		return Captured

	case KeyTab:
		if t.onTab != nil {
			t.onTab()
			return Captured
		}
		t.Unfocus()
		return Ignored

	case KeyBackspace:
		if t.disabled() {
			return Ignored
		}
		if ev.Modifiers.WordJump() {
			if _, _, ok := t.cursor.Selection(t.value); !ok {
				t.selectLeftJump()
			}
		}
		editor := NewEditor(&t.value, &t.cursor)
		editor.Backspace()
		t.emitInput(editor.Contents())
		t.refreshFocus(now)
		return Captured

	case KeyDelete:
		if t.disabled() {
			return Ignored
		}
		if ev.Modifiers.WordJump() {
			if _, _, ok := t.cursor.Selection(t.value); !ok {
				t.selectRightJump()
			}
		}
		editor := NewEditor(&t.value, &t.cursor)
		editor.Delete()
		t.emitInput(editor.Contents())
		t.refreshFocus(now)
		return Captured

	case KeyLeft:
		t.moveLeft(ev.Modifiers)
		t.refreshFocus(now)
		return Captured

	case KeyRight:
		t.moveRight(ev.Modifiers)
		t.refreshFocus(now)
		return Captured

	case KeyHome:
		if ev.Modifiers.Shift {
			t.cursor.SelectTo(t.value, 0)
		} else {
			t.cursor.MoveToFront()
		}
		t.refreshFocus(now)
		return Captured

	case KeyEnd:
		if ev.Modifiers.Shift {
			t.cursor.SelectTo(t.value, t.value.Len())
		} else {
			t.cursor.MoveToEnd(t.value)
		}
		t.refreshFocus(now)
		return Captured

	case KeyA:
		if !ev.Modifiers.Command() {
			return Ignored
		}
		t.cursor.SelectAll(t.value)
		return Captured

	case KeyC:
		if !ev.Modifiers.Command() {
			return Ignored
		}
		t.copySelection()
		return Captured

	case KeyX:
		if !ev.Modifiers.Command() {
			return Ignored
		}
		if t.disabled() {
			return Ignored
		}
		if t.copySelection() {
			editor := NewEditor(&t.value, &t.cursor)
			editor.Backspace()
			t.emitInput(editor.Contents())
			t.refreshFocus(now)
		}
		return Captured

	case KeyV:
		if !ev.Modifiers.Command() {
			return Ignored
		}
		if t.disabled() {
			return Ignored
		}
		t.paste(now)
		return Captured
	}

	return Ignored
}

func (t *TextInput) moveLeft(mods Modifiers) {
	switch {
	case mods.WordJump() && t.password:
		// Word boundaries are meaningless in masked text; jump to the
		// front instead.
		if mods.Shift {
			t.cursor.SelectTo(t.value, 0)
		} else {
			t.cursor.MoveToFront()
		}
	case mods.WordJump() && mods.Shift:
		t.cursor.SelectLeftByWords(t.value)
	case mods.WordJump():
		t.cursor.MoveLeftByWords(t.value)
	case mods.Shift:
		t.cursor.SelectLeft(t.value)
	default:
		t.cursor.MoveLeft(t.value)
	}
}

func (t *TextInput) moveRight(mods Modifiers) {
	switch {
	case mods.WordJump() && t.password:
		if mods.Shift {
			t.cursor.SelectTo(t.value, t.value.Len())
		} else {
			t.cursor.MoveToEnd(t.value)
		}
	case mods.WordJump() && mods.Shift:
		t.cursor.SelectRightByWords(t.value)
	case mods.WordJump():
		t.cursor.MoveRightByWords(t.value)
	case mods.Shift:
		t.cursor.SelectRight(t.value)
	default:
		t.cursor.MoveRight(t.value)
	}
}

func (t *TextInput) selectLeftJump() {
	if t.password {
		t.cursor.SelectTo(t.value, 0)
		return
	}
	t.cursor.SelectLeftByWords(t.value)
}

func (t *TextInput) selectRightJump() {
	if t.password {
		t.cursor.SelectTo(t.value, t.value.Len())
		return
	}
	t.cursor.SelectRightByWords(t.value)
}

// copySelection puts the selected text on the clipboard. Password fields
// never export their content.
func (t *TextInput) copySelection() bool {
	if t.password || t.clipboard == nil {
		return false
	}
	left, right, ok := t.cursor.Selection(t.value)
	if !ok {
		return false
	}
	t.clipboard.SetText(t.value.Between(left, right).String())
	return true
}

func (t *TextInput) paste(now time.Time) {
	if t.clipboard == nil {
		return
	}
	content := t.clipboard.GetText()
	if content == "" {
		return
	}

	// Repeated pastes of the same clipboard reuse the segmented value.
	var pasted Value
	if t.pastePending != nil && t.pastePending.String() == content {
		pasted = *t.pastePending
	} else {
		pasted = NewValue(content)
		t.pastePending = &pasted
	}
	editor := NewEditor(&t.value, &t.cursor)
	editor.Paste(pasted)

	if t.onPaste != nil {
		t.onPaste(editor.Contents())
	} else {
		t.emitInput(editor.Contents())
	}
	t.refreshFocus(now)
}

func (t *TextInput) offerEnter(ev OfferEnter) Status {
	if t.dnd == nil || !t.bounds.Contains(ev.Position) {
		return Ignored
	}
	mime, ok := t.offer.Enter(ev.MimeTypes)
	if !ok {
		return Ignored
	}

	t.dnd.Accept(mime)
	t.dnd.SetActions(ActionMove, ActionCopy|ActionMove)
	t.cursor.MoveTo(t.hitTest(ev.Position))
	return Captured
}

func (t *TextInput) offerMotion(ev OfferMotion) Status {
	if t.offer.State() == OfferNone {
		return Ignored
	}

	t.offer.SetInside(t.bounds.Contains(ev.Position))
	if t.offer.TracksCaret() {
		t.cursor.MoveTo(t.hitTest(ev.Position))
	}
	return Captured
}

func (t *TextInput) offerDrop() Status {
	mime, ok := t.offer.Drop()
	if !ok {
		return Ignored
	}
	t.dnd.RequestData(mime)
	return Captured
}

func (t *TextInput) offerData(ev OfferData) Status {
	text, ok := t.offer.Data(ev.MimeType, ev.Data)
	if !ok {
		return Ignored
	}
	if t.disabled() {
		return Ignored
	}

	editor := NewEditor(&t.value, &t.cursor)
	editor.Paste(NewValue(text))

	if t.onPaste != nil {
		t.onPaste(editor.Contents())
	} else {
		t.emitInput(editor.Contents())
	}
	t.dnd.Finish()
	return Captured
}

// tick advances the focus clock and enforces the single-focus invariant: a
// newer claim on the shared arbiter means another field took focus.
func (t *TextInput) tick(now time.Time) {
	if t.focus == nil {
		return
	}
	t.focus.Tick(now)
	if !t.arbiter.Holds(t.focus.UpdatedAt()) {
		logger().Debug("focus stolen by another field")
		t.Unfocus()
	}
}

func (t *TextInput) acquireFocus(now time.Time) {
	claimed := t.arbiter.Claim(now)
	if t.focus == nil {
		focus := NewFocus(claimed)
		t.focus = &focus
		t.editing = true
		logger().Debug("text input focused", zap.Time("at", claimed))
		if t.onFocus != nil {
			t.onFocus()
		}
		return
	}
	t.focus.Refresh(claimed)
}

// refreshFocus restarts the blink phase and renews the arbiter claim after
// any edit or caret move.
func (t *TextInput) refreshFocus(now time.Time) {
	if t.focus == nil {
		return
	}
	t.focus.Refresh(t.arbiter.Claim(now))
}

// hitTest maps a surface point to a grapheme index in the displayed text.
func (t *TextInput) hitTest(p Point) int {
	origin := Point{
		X: t.bounds.X + t.theme.InputPadding,
		Y: t.bounds.Y + t.theme.InputPadding,
	}
	return t.measurer.HitTest(t.Displayed(), t.fontSize, p.Sub(origin))
}

// disabled reports whether edit-producing events should be ignored: a field
// without input and paste callbacks has nowhere to deliver changes.
func (t *TextInput) disabled() bool {
	return t.onInput == nil && t.onPaste == nil
}

func (t *TextInput) emitInput(content string) {
	if t.onInput != nil {
		t.onInput(content)
	}
}
