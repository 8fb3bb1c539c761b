package cosmic

import "github.com/atotto/clipboard"

// Clipboard abstracts system clipboard access. The widget treats both
// operations as synchronous; asynchronous platforms should resolve the read
// before delivering the triggering key event.
type Clipboard interface {
	// GetText retrieves text from the clipboard. Returns empty string if
	// the clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// SystemClipboard is a Clipboard backed by the operating system clipboard.
type SystemClipboard struct{}

// GetText retrieves text from the system clipboard.
func (SystemClipboard) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

// SetText copies text to the system clipboard. Write failures are dropped;
// clipboard access is best-effort.
func (SystemClipboard) SetText(text string) {
	_ = clipboard.WriteAll(text)
}

// MemClipboard is an in-memory Clipboard for tests and headless use.
type MemClipboard struct {
	Text string
}

// GetText returns the stored text.
func (c *MemClipboard) GetText() string {
	return c.Text
}

// SetText stores text.
func (c *MemClipboard) SetText(text string) {
	c.Text = text
}
