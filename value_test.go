package cosmic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueGraphemeLen(t *testing.T) {
	tests := []struct {
		name string
		text string
		len  int
	}{
		{name: "empty", text: "", len: 0},
		{name: "ascii", text: "hello", len: 5},
		{name: "accented", text: "héllo", len: 5},
		{name: "combining accent", text: "héllo", len: 4}, // e + combining acute is one cluster
		{name: "emoji with modifier", text: "a\U0001F44D\U0001F3FDb", len: 3},
		{name: "flag", text: "\U0001F1FA\U0001F1F8", len: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValue(tt.text)
			assert.Equal(t, tt.len, v.Len())
			assert.Equal(t, tt.text, v.String(), "round-trip must preserve the text")
		})
	}
}

func TestValueBetween(t *testing.T) {
	v := NewValue("hello world")

	assert.Equal(t, "hello", v.Until(5).String())
	assert.Equal(t, "world", v.Between(6, 11).String())
	assert.Equal(t, "", v.Between(4, 2).String(), "inverted range is empty")
	assert.Equal(t, "world", v.Between(6, 99).String(), "end is clamped")
	assert.Equal(t, "hello world", v.Between(-3, 99).String())
}

func TestValueInsertRemove(t *testing.T) {
	v := NewValue("ab")

	v2 := v.Insert(1, "x")
	assert.Equal(t, "axb", v2.String())
	assert.Equal(t, "ab", v.String(), "insert must not mutate the receiver")

	v3 := v2.InsertMany(3, NewValue("yz"))
	assert.Equal(t, "axbyz", v3.String())

	assert.Equal(t, "xbyz", v3.Remove(0).String())
	assert.Equal(t, "az", v3.RemoveMany(1, 4).String())
	assert.Equal(t, "axbyz", v3.RemoveMany(4, 2).String(), "inverted remove is a no-op")
}

func TestValueWordBoundaries(t *testing.T) {
	v := NewValue("hello world  foo")

	// Inside "world": start of word is 6.
	assert.Equal(t, 6, v.PreviousStartOfWord(8))
	assert.Equal(t, 11, v.NextEndOfWord(8))

	// At the boundary just after "hello" the scan skips the space first.
	assert.Equal(t, 0, v.PreviousStartOfWord(6))
	assert.Equal(t, 11, v.NextEndOfWord(5))

	// Double space before "foo".
	assert.Equal(t, 16, v.NextEndOfWord(11))
	assert.Equal(t, 6, v.PreviousStartOfWord(13))

	// Ends.
	assert.Equal(t, 0, v.PreviousStartOfWord(0))
	assert.Equal(t, 16, v.NextEndOfWord(16))
}

func TestValueSecure(t *testing.T) {
	v := NewValue("pa\U0001F511word")
	masked := v.Secure()

	require.Equal(t, v.Len(), masked.Len(), "masking must preserve grapheme count")
	for i := 0; i < masked.Len(); i++ {
		assert.Equal(t, string(SecureRune), masked.Between(i, i+1).String())
	}

	assert.Equal(t, 0, NewValue("").Secure().Len())
}
