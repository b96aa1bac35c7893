package game

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard puts s on the system clipboard.
func writeClipboard(s string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available")
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
