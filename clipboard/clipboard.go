// Package clipboard implements smartchat.Clipboard on the system clipboard
// using github.com/atotto/clipboard.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
	"github.com/kodewerk/smartchat"
)

// ErrUnsupported indicates that no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unsupported")

// Clipboard writes to the system clipboard.
type Clipboard struct{}

var _ smartchat.Clipboard = Clipboard{}

// WriteAll replaces the clipboard content with text.
func (Clipboard) WriteAll(text string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(text)
}
