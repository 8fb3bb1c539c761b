package cosmic

// Editor applies edit operations to a Value and its Cursor as one unit.
// Every operation leaves both in a consistent state: the cursor always ends
// up at the edit point and the value is replaced, never mutated.
//
// Operations at a boundary (backspace at 0, delete at the end, anything on
// an empty value) are no-ops.
type Editor struct {
	value  *Value
	cursor *Cursor
}

// NewEditor creates an editor over a value/cursor pair.
func NewEditor(value *Value, cursor *Cursor) Editor {
	return Editor{value: value, cursor: cursor}
}

// Contents returns the current text of the edited value.
func (e Editor) Contents() string {
	return e.value.String()
}

// Insert replaces the selection (if any) with a single typed rune and moves
// the caret past it.
func (e Editor) Insert(r rune) {
	if left, right, ok := e.cursor.Selection(*e.value); ok {
		e.cursor.MoveLeft(*e.value)
		*e.value = e.value.RemoveMany(left, right)
	}

	at := e.cursor.End(*e.value)
	*e.value = e.value.Insert(at, string(r))
	e.cursor.MoveRight(*e.value)
}

// Paste replaces the selection (if any) with content and moves the caret to
// the end of the inserted text.
func (e Editor) Paste(content Value) {
	if left, right, ok := e.cursor.Selection(*e.value); ok {
		e.cursor.MoveLeft(*e.value)
		*e.value = e.value.RemoveMany(left, right)
	}

	at := e.cursor.End(*e.value)
	*e.value = e.value.InsertMany(at, content)
	e.cursor.MoveTo(clampIndex(at+content.Len(), e.value.Len()))
}

// Backspace deletes the selection, or the grapheme left of the caret.
func (e Editor) Backspace() {
	if left, right, ok := e.cursor.Selection(*e.value); ok {
		e.cursor.MoveLeft(*e.value)
		*e.value = e.value.RemoveMany(left, right)
		return
	}

	at := e.cursor.Index(*e.value)
	if at == 0 {
		return
	}
	e.cursor.MoveLeft(*e.value)
	*e.value = e.value.Remove(at - 1)
}

// Delete deletes the selection, or the grapheme right of the caret. The
// caret does not move in the caret case.
func (e Editor) Delete() {
	if _, _, ok := e.cursor.Selection(*e.value); ok {
		e.Backspace()
		return
	}

	at := e.cursor.Index(*e.value)
	if at >= e.value.Len() {
		return
	}
	*e.value = e.value.Remove(at)
}
