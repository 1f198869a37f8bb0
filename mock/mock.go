// Package mock provides test doubles for smartchat interfaces using function
// fields, and a deterministic fake clock implementing smartchat.Scheduler.
package mock

import "github.com/kodewerk/smartchat"

// Interface compliance checks.
var (
	_ smartchat.Rand      = (*Rand)(nil)
	_ smartchat.Clipboard = (*Clipboard)(nil)
	_ smartchat.Scheduler = (*Scheduler)(nil)
)

// Rand is a test double for smartchat.Rand.
// Set IntNFn before calling IntN.
type Rand struct {
	IntNFn func(n int) int
}

// IntN delegates to IntNFn.
func (r *Rand) IntN(n int) int {
	return r.IntNFn(n)
}

// Clipboard is a test double for smartchat.Clipboard.
// Set WriteAllFn before calling WriteAll.
type Clipboard struct {
	WriteAllFn func(text string) error
}

// WriteAll delegates to WriteAllFn.
func (c *Clipboard) WriteAll(text string) error {
	return c.WriteAllFn(text)
}
