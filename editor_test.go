package cosmic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorInsertBackspaceRoundTrip(t *testing.T) {
	// Inserting then backspacing restores value and caret for any caret
	// position, grapheme clusters included.
	samples := []string{"", "hello", "héllo", "a\U0001F44D\U0001F3FDb"}

	for _, text := range samples {
		original := NewValue(text)
		for i := 0; i <= original.Len(); i++ {
			v := NewValue(text)
			c := NewCursor()
			c.MoveTo(i)

			e := NewEditor(&v, &c)
			e.Insert('x')
			assert.Equal(t, original.Len()+1, v.Len())
			assert.Equal(t, i+1, c.Index(v), "caret advances past the insert")

			e.Backspace()
			assert.Equal(t, text, v.String())
			assert.Equal(t, i, c.Index(v), "caret back at the original position")
		}
	}
}

func TestEditorInsertReplacesSelection(t *testing.T) {
	v := NewValue("hello world")
	c := NewCursor()
	c.SelectRange(6, 11)

	e := NewEditor(&v, &c)
	e.Insert('!')
	assert.Equal(t, "hello !", e.Contents())
	assert.Equal(t, 7, c.Index(v))
}

func TestEditorBackspaceSelection(t *testing.T) {
	// Deleting a selection always collapses to min(start, end) and removes
	// exactly |end-start| graphemes, regardless of direction.
	for _, sel := range [][2]int{{2, 5}, {5, 2}} {
		v := NewValue("abcdef")
		c := NewCursor()
		c.SelectRange(sel[0], sel[1])

		e := NewEditor(&v, &c)
		e.Backspace()
		assert.Equal(t, "abf", v.String())
		assert.Equal(t, 2, c.Index(v))
	}
}

func TestEditorBackspaceAtBoundary(t *testing.T) {
	v := NewValue("ab")
	c := NewCursor()

	e := NewEditor(&v, &c)
	e.Backspace()
	assert.Equal(t, "ab", v.String(), "backspace at 0 is a no-op")

	empty := NewValue("")
	c2 := NewCursor()
	e2 := NewEditor(&empty, &c2)
	e2.Backspace()
	e2.Delete()
	assert.Equal(t, "", empty.String())
}

func TestEditorDelete(t *testing.T) {
	v := NewValue("abc")
	c := NewCursor()
	c.MoveTo(1)

	e := NewEditor(&v, &c)
	e.Delete()
	assert.Equal(t, "ac", v.String())
	assert.Equal(t, 1, c.Index(v), "caret holds still on forward delete")

	c.MoveToEnd(v)
	e.Delete()
	assert.Equal(t, "ac", v.String(), "delete at the end is a no-op")

	c.SelectRange(0, 2)
	e.Delete()
	assert.Equal(t, "", v.String())
	assert.Equal(t, 0, c.Index(v))
}

func TestEditorPaste(t *testing.T) {
	v := NewValue("abf")
	c := NewCursor()
	c.MoveTo(1)

	e := NewEditor(&v, &c)
	e.Paste(NewValue("XY"))
	require.Equal(t, "aXYbf", v.String())
	assert.Equal(t, 3, c.Index(v), "caret lands after the pasted text")

	c.SelectRange(0, 5)
	e.Paste(NewValue("Z"))
	assert.Equal(t, "Z", v.String())
	assert.Equal(t, 1, c.Index(v))
}
