package smartchat

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
