package cosmic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorMovement(t *testing.T) {
	v := NewValue("hello world")
	c := NewCursor()

	assert.Equal(t, 0, c.Index(v))

	c.MoveToEnd(v)
	assert.Equal(t, 11, c.Index(v))

	c.MoveLeft(v)
	assert.Equal(t, 10, c.Index(v))

	c.MoveRight(v)
	c.MoveRight(v) // already at the end, must not overshoot
	assert.Equal(t, 11, c.Index(v))

	c.MoveLeftByWords(v)
	assert.Equal(t, 6, c.Index(v))
	c.MoveLeftByWords(v)
	assert.Equal(t, 0, c.Index(v))
	c.MoveRightByWords(v)
	assert.Equal(t, 5, c.Index(v))
}

func TestCursorSelection(t *testing.T) {
	v := NewValue("abcdef")
	c := NewCursor()

	c.SelectRange(4, 1) // backward selection
	left, right, ok := c.Selection(v)
	assert.True(t, ok)
	assert.Equal(t, 1, left)
	assert.Equal(t, 4, right)
	assert.Equal(t, 1, c.Index(v), "moving end is the caret")

	c.MoveLeft(v)
	assert.Equal(t, 1, c.Index(v), "collapse to the left edge")
	_, _, ok = c.Selection(v)
	assert.False(t, ok)

	c.SelectRange(2, 2)
	_, _, ok = c.Selection(v)
	assert.False(t, ok, "zero-width selection is a caret")

	c.SelectAll(v)
	left, right, ok = c.Selection(v)
	assert.True(t, ok)
	assert.Equal(t, 0, left)
	assert.Equal(t, 6, right)
}

func TestCursorSelectExtension(t *testing.T) {
	v := NewValue("abcdef")
	c := NewCursor()
	c.MoveTo(3)

	c.SelectLeft(v)
	c.SelectLeft(v)
	left, right, ok := c.Selection(v)
	assert.True(t, ok)
	assert.Equal(t, 1, left)
	assert.Equal(t, 3, right)

	c.SelectRight(v)
	c.SelectRight(v)
	_, _, ok = c.Selection(v)
	assert.False(t, ok, "shrinking back to the anchor collapses")

	c.MoveTo(2)
	c.SelectTo(v, 5)
	left, right, _ = c.Selection(v)
	assert.Equal(t, 2, left)
	assert.Equal(t, 5, right)
	c.SelectTo(v, 0)
	left, right, _ = c.Selection(v)
	assert.Equal(t, 0, left)
	assert.Equal(t, 2, right, "anchor survives crossing over")
}

func TestCursorClampsAgainstReplacedValue(t *testing.T) {
	long := NewValue("hello world")
	short := NewValue("hi")

	c := NewCursor()
	c.MoveToEnd(long)
	assert.Equal(t, 2, c.Index(short), "index clamps on read")

	c.SelectRange(9, 4)
	left, right, ok := c.Selection(short)
	assert.False(t, ok, "selection collapses when both ends clamp together")
	assert.Zero(t, left)
	assert.Zero(t, right)

	c.SelectRange(1, 10)
	left, right, ok = c.Selection(short)
	assert.True(t, ok)
	assert.Equal(t, 1, left)
	assert.Equal(t, 2, right)
}
