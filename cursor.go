package cosmic

// Cursor tracks the caret or the active selection of a text input.
//
// A selection keeps its anchor in start and its moving end in end, so start
// may be greater than end while selecting backward. Positions are stored
// unclamped and resolved against a Value on every read, which keeps the
// cursor valid across external value replacement without an explicit sync
// step.
type Cursor struct {
	isSelection bool
	index       int
	start, end  int
}

// NewCursor returns a caret at position 0.
func NewCursor() Cursor {
	return Cursor{}
}

// Index returns the caret position resolved against value. For a selection
// this is its moving end.
func (c Cursor) Index(value Value) int {
	if c.isSelection {
		return clampIndex(c.end, value.Len())
	}
	return clampIndex(c.index, value.Len())
}

// Selection returns the normalized (left, right) bounds of the selection and
// true, or zeros and false when the cursor is a caret or the selection
// collapses to nothing under the current value.
func (c Cursor) Selection(value Value) (left, right int, ok bool) {
	if !c.isSelection {
		return 0, 0, false
	}

	start := clampIndex(c.start, value.Len())
	end := clampIndex(c.end, value.Len())
	if start == end {
		return 0, 0, false
	}
	if start < end {
		return start, end, true
	}
	return end, start, true
}

// Start returns the left edge of the selection, or the caret position.
func (c Cursor) Start(value Value) int {
	if left, _, ok := c.Selection(value); ok {
		return left
	}
	return c.Index(value)
}

// End returns the right edge of the selection, or the caret position.
func (c Cursor) End(value Value) int {
	if _, right, ok := c.Selection(value); ok {
		return right
	}
	return c.Index(value)
}

// MoveTo places the caret at position, dropping any selection.
func (c *Cursor) MoveTo(position int) {
	c.isSelection = false
	c.index = position
	c.start, c.end = 0, 0
}

// MoveToEnd places the caret after the last grapheme.
func (c *Cursor) MoveToEnd(value Value) {
	c.MoveTo(value.Len())
}

// MoveToFront places the caret before the first grapheme.
func (c *Cursor) MoveToFront() {
	c.MoveTo(0)
}

// MoveLeft moves the caret one grapheme left, or collapses a selection to
// its left edge.
func (c *Cursor) MoveLeft(value Value) {
	if left, _, ok := c.Selection(value); ok {
		c.MoveTo(left)
		return
	}
	if i := c.Index(value); i > 0 {
		c.MoveTo(i - 1)
	} else {
		c.MoveTo(0)
	}
}

// MoveRight moves the caret one grapheme right, or collapses a selection to
// its right edge.
func (c *Cursor) MoveRight(value Value) {
	if _, right, ok := c.Selection(value); ok {
		c.MoveTo(right)
		return
	}
	c.MoveTo(clampIndex(c.Index(value)+1, value.Len()))
}

// MoveLeftByWords jumps the caret to the start of the word left of it.
func (c *Cursor) MoveLeftByWords(value Value) {
	c.MoveTo(value.PreviousStartOfWord(c.Start(value)))
}

// MoveRightByWords jumps the caret past the end of the word right of it.
func (c *Cursor) MoveRightByWords(value Value) {
	c.MoveTo(value.NextEndOfWord(c.End(value)))
}

// SelectRange selects [start, end), collapsing to a caret when they match.
func (c *Cursor) SelectRange(start, end int) {
	if start == end {
		c.MoveTo(start)
		return
	}
	c.isSelection = true
	c.start = start
	c.end = end
}

// SelectAll selects the entire value, anchored at the front.
func (c *Cursor) SelectAll(value Value) {
	c.SelectRange(0, value.Len())
}

// SelectLeft extends the selection one grapheme left of its moving end,
// anchoring a fresh selection at the caret.
func (c *Cursor) SelectLeft(value Value) {
	if c.isSelection {
		if end := clampIndex(c.end, value.Len()); end > 0 {
			c.SelectRange(c.start, end-1)
		}
		return
	}
	if i := c.Index(value); i > 0 {
		c.SelectRange(i, i-1)
	}
}

// SelectRight extends the selection one grapheme right of its moving end,
// anchoring a fresh selection at the caret.
func (c *Cursor) SelectRight(value Value) {
	if c.isSelection {
		if end := clampIndex(c.end, value.Len()); end < value.Len() {
			c.SelectRange(c.start, end+1)
		}
		return
	}
	if i := c.Index(value); i < value.Len() {
		c.SelectRange(i, i+1)
	}
}

// SelectLeftByWords extends the selection to the start of the word left of
// its moving end.
func (c *Cursor) SelectLeftByWords(value Value) {
	if c.isSelection {
		c.SelectRange(c.start, value.PreviousStartOfWord(clampIndex(c.end, value.Len())))
		return
	}
	i := c.Index(value)
	c.SelectRange(i, value.PreviousStartOfWord(i))
}

// SelectRightByWords extends the selection past the end of the word right of
// its moving end.
func (c *Cursor) SelectRightByWords(value Value) {
	if c.isSelection {
		c.SelectRange(c.start, value.NextEndOfWord(clampIndex(c.end, value.Len())))
		return
	}
	i := c.Index(value)
	c.SelectRange(i, value.NextEndOfWord(i))
}

// SelectTo moves the selection's end to position, anchoring at the caret if
// no selection exists yet.
func (c *Cursor) SelectTo(value Value, position int) {
	if c.isSelection {
		c.SelectRange(c.start, position)
		return
	}
	c.SelectRange(c.Index(value), position)
}
