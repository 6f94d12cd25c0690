package editor

import "github.com/atotto/clipboard"

// SystemClipboard is the real system clipboard backend.
type SystemClipboard struct{}

// ReadText returns the current clipboard text.
func (SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

// WriteText replaces the clipboard content.
func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
