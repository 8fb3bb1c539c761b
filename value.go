package cosmic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// SecureRune is the mask glyph shown for every grapheme of a password field.
const SecureRune = '•'

// Value is the text content of an input field, stored as a sequence of
// grapheme clusters. All cursor positions index into this sequence, so a
// multi-codepoint cluster (an emoji with modifiers, a combining sequence)
// always moves and deletes as a single unit.
//
// A Value is never mutated in place by the editing pipeline: every accepted
// edit produces a fresh backing slice, keeping any cursor that was clamped
// against the previous snapshot consistent.
type Value struct {
	graphemes []string
}

// NewValue segments text into a Value.
func NewValue(text string) Value {
	if text == "" {
		return Value{}
	}

	graphemes := make([]string, 0, len(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		graphemes = append(graphemes, cluster)
	}
	return Value{graphemes: graphemes}
}

// Len returns the number of grapheme clusters.
func (v Value) Len() int {
	return len(v.graphemes)
}

// IsEmpty returns true if the value contains no graphemes.
func (v Value) IsEmpty() bool {
	return len(v.graphemes) == 0
}

// String joins the graphemes back into the underlying text.
func (v Value) String() string {
	var b strings.Builder
	for _, g := range v.graphemes {
		b.WriteString(g)
	}
	return b.String()
}

// Until returns the sub-value containing the graphemes before index.
func (v Value) Until(index int) Value {
	return v.Between(0, index)
}

// Between returns the sub-value in the half-open grapheme range [start, end).
// Out-of-range bounds are clamped; an inverted range yields an empty Value.
func (v Value) Between(start, end int) Value {
	start = clampIndex(start, len(v.graphemes))
	end = clampIndex(end, len(v.graphemes))
	if start >= end {
		return Value{}
	}

	out := make([]string, end-start)
	copy(out, v.graphemes[start:end])
	return Value{graphemes: out}
}

// Insert returns a copy of the value with one grapheme inserted at index.
func (v Value) Insert(index int, grapheme string) Value {
	return v.InsertMany(index, NewValue(grapheme))
}

// InsertMany returns a copy of the value with another value spliced in at index.
func (v Value) InsertMany(index int, other Value) Value {
	index = clampIndex(index, len(v.graphemes))

	out := make([]string, 0, len(v.graphemes)+len(other.graphemes))
	out = append(out, v.graphemes[:index]...)
	out = append(out, other.graphemes...)
	out = append(out, v.graphemes[index:]...)
	return Value{graphemes: out}
}

// Remove returns a copy of the value with the grapheme at index removed.
func (v Value) Remove(index int) Value {
	return v.RemoveMany(index, index+1)
}

// RemoveMany returns a copy of the value with the grapheme range [start, end)
// removed. Out-of-range bounds are clamped.
func (v Value) RemoveMany(start, end int) Value {
	start = clampIndex(start, len(v.graphemes))
	end = clampIndex(end, len(v.graphemes))
	if start >= end {
		return v
	}

	out := make([]string, 0, len(v.graphemes)-(end-start))
	out = append(out, v.graphemes[:start]...)
	out = append(out, v.graphemes[end:]...)
	return Value{graphemes: out}
}

// PreviousStartOfWord scans backward from index for the start of the word
// left of it: first any whitespace is skipped, then the word itself. Returns
// 0 if there is no earlier word boundary.
func (v Value) PreviousStartOfWord(index int) int {
	i := clampIndex(index, len(v.graphemes))

	for i > 0 && isWordSeparator(v.graphemes[i-1]) {
		i--
	}
	for i > 0 && !isWordSeparator(v.graphemes[i-1]) {
		i--
	}
	return i
}

// NextEndOfWord is the mirror of PreviousStartOfWord: it scans forward from
// index past whitespace, then past the following word, and returns the
// boundary after it (or Len if there is none).
func (v Value) NextEndOfWord(index int) int {
	i := clampIndex(index, len(v.graphemes))

	for i < len(v.graphemes) && isWordSeparator(v.graphemes[i]) {
		i++
	}
	for i < len(v.graphemes) && !isWordSeparator(v.graphemes[i]) {
		i++
	}
	return i
}

// Secure returns a projection of the value where every grapheme is replaced
// by the mask glyph. Length and therefore all cursor arithmetic are
// unchanged, so password fields share the exact editing pipeline.
func (v Value) Secure() Value {
	if len(v.graphemes) == 0 {
		return Value{}
	}

	masked := make([]string, len(v.graphemes))
	mask := string(SecureRune)
	for i := range masked {
		masked[i] = mask
	}
	return Value{graphemes: masked}
}

// isWordSeparator treats a grapheme as a word separator when its first rune
// is whitespace. Segmentation guarantees whitespace never combines with a
// following letter, so checking the first rune is sufficient.
func isWordSeparator(grapheme string) bool {
	r, _ := utf8.DecodeRuneInString(grapheme)
	return r == utf8.RuneError || unicode.IsSpace(r)
}

// clampIndex clamps a grapheme index into [0, length].
func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
