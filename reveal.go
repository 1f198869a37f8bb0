package smartchat

import (
	"time"

	"github.com/rivo/uniseg"
)

// RevealState is the progress of one reveal stream. Cursor counts
// user-perceived characters (grapheme clusters), not bytes.
type RevealState struct {
	FullText string
	Cursor   int
	Active   bool
}

// Len returns the length of FullText in grapheme clusters.
func (s RevealState) Len() int {
	return uniseg.GraphemeClusterCount(s.FullText)
}

// Scheduler runs fn once after delay. The returned cancel func prevents fn
// from running if it has not started yet; it may be called more than once.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// Rand is the random source used for step sizes and delays.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}
