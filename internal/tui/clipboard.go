package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = systemClipboard

// systemClipboard copies text to the system clipboard.
func systemClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard tool: install wl-clipboard, xclip or xsel")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
