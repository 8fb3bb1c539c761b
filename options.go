package cosmic

// TextInputOption configures a TextInput at construction time.
type TextInputOption func(*TextInput)

// WithPassword masks the displayed value with SecureRune. Word-wise
// operations degrade to whole-value operations and copy/cut are disabled,
// since boundaries and content of masked text are meaningless outside the
// field.
func WithPassword() TextInputOption {
	return func(t *TextInput) { t.password = true }
}

// WithPlaceholder sets the text shown while the value is empty.
func WithPlaceholder(text string) TextInputOption {
	return func(t *TextInput) { t.placeholder = text }
}

// WithSelectOnFocus selects the whole value when the field gains focus
// programmatically, instead of moving the caret to the end.
func WithSelectOnFocus() TextInputOption {
	return func(t *TextInput) { t.selectOnFocus = true }
}

// WithEditableLabel makes the field render as a read-only label until
// focused; Escape returns it to the read-only display.
func WithEditableLabel() TextInputOption {
	return func(t *TextInput) { t.editableLabel = true }
}

// WithFontSize sets the text size passed to the measurement collaborator.
func WithFontSize(size float32) TextInputOption {
	return func(t *TextInput) { t.fontSize = size }
}

// WithTheme sets the palette the host's renderer should draw with.
func WithTheme(theme Theme) TextInputOption {
	return func(t *TextInput) { t.theme = theme }
}

// WithClipboard injects the clipboard collaborator. Without one, copy, cut
// and paste are no-ops.
func WithClipboard(c Clipboard) TextInputOption {
	return func(t *TextInput) { t.clipboard = c }
}

// WithDragDrop injects the platform drag-and-drop service. Without one,
// selections cannot be dragged out and offers are never accepted.
func WithDragDrop(s DragDropService) TextInputOption {
	return func(t *TextInput) { t.dnd = s }
}

// WithFocusArbiter shares a focus arbiter between the inputs of one window,
// enforcing the single-focused-field invariant. A field without an explicit
// arbiter gets a private one.
func WithFocusArbiter(a *FocusArbiter) TextInputOption {
	return func(t *TextInput) { t.arbiter = a }
}

// WithOnInput sets the content-changed message callback. A field without an
// input callback is disabled: edit-producing events are ignored, while
// selection and copy still work.
func WithOnInput(fn func(content string)) TextInputOption {
	return func(t *TextInput) { t.onInput = fn }
}

// WithOnSubmit sets the callback invoked when Enter is pressed.
func WithOnSubmit(fn func(content string)) TextInputOption {
	return func(t *TextInput) { t.onSubmit = fn }
}

// WithOnFocus sets the callback invoked when the field gains focus.
func WithOnFocus(fn func()) TextInputOption {
	return func(t *TextInput) { t.onFocus = fn }
}

// WithOnBlur sets the callback invoked when the field loses focus.
func WithOnBlur(fn func()) TextInputOption {
	return func(t *TextInput) { t.onBlur = fn }
}

// WithOnTab sets the callback invoked when Tab is pressed while focused.
// Without one, Tab unfocuses the field so traversal can continue elsewhere.
func WithOnTab(fn func()) TextInputOption {
	return func(t *TextInput) { t.onTab = fn }
}

// WithOnPaste overrides the message emitted for pasted content. Without it,
// paste emits the regular content-changed message.
func WithOnPaste(fn func(content string)) TextInputOption {
	return func(t *TextInput) { t.onPaste = fn }
}
