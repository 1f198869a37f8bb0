package stream

import (
	"fmt"
	"time"

	"github.com/kodewerk/smartchat"
)

// maxDelay keeps each step perceptibly incremental.
const maxDelay = 50 * time.Millisecond

// Pacing holds the half-open ranges [MinStep, MaxStep) characters per tick
// and [MinDelay, MaxDelay) between ticks. Delays are drawn in whole
// milliseconds.
type Pacing struct {
	MinStep  int
	MaxStep  int
	MinDelay time.Duration
	MaxDelay time.Duration
}

// ChatPacing is the pacing of chat replies.
func ChatPacing() Pacing {
	return Pacing{MinStep: 3, MaxStep: 10, MinDelay: 14 * time.Millisecond, MaxDelay: 40 * time.Millisecond}
}

// LetterPacing is the pacing of generated cover letters.
func LetterPacing() Pacing {
	return Pacing{MinStep: 3, MaxStep: 10, MinDelay: 14 * time.Millisecond, MaxDelay: 42 * time.Millisecond}
}

// Validate checks that both ranges are non-empty and the delay stays fast.
func (p Pacing) Validate() error {
	if p.MinStep < 1 {
		return fmt.Errorf("min step must be at least 1, got %d: %w", p.MinStep, smartchat.ErrValidation)
	}
	if p.MaxStep <= p.MinStep {
		return fmt.Errorf("step range [%d, %d) is empty: %w", p.MinStep, p.MaxStep, smartchat.ErrValidation)
	}
	if p.MinDelay < 0 {
		return fmt.Errorf("min delay must be non-negative, got %s: %w", p.MinDelay, smartchat.ErrValidation)
	}
	if p.MaxDelay-p.MinDelay < time.Millisecond {
		return fmt.Errorf("delay range [%s, %s) is shorter than 1ms: %w", p.MinDelay, p.MaxDelay, smartchat.ErrValidation)
	}
	if p.MaxDelay > maxDelay {
		return fmt.Errorf("max delay must be at most %s, got %s: %w", maxDelay, p.MaxDelay, smartchat.ErrValidation)
	}
	return nil
}

func (p Pacing) step(r smartchat.Rand) int {
	return p.MinStep + r.IntN(p.MaxStep-p.MinStep)
}

func (p Pacing) delay(r smartchat.Rand) time.Duration {
	span := int((p.MaxDelay - p.MinDelay) / time.Millisecond)
	return p.MinDelay + time.Duration(r.IntN(span))*time.Millisecond
}
