package letter

import "github.com/kodewerk/smartchat"

// Phase is the generation progress shown next to the letter.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnalyzing
	PhaseDrafting
	PhasePolishing
	PhaseDone
)

// Status returns the phase for a reveal at progress (revealed over total
// length). Without a target letter the phase is idle; once generation has
// ended it is done.
func Status(progress float64, generating, hasTarget bool) Phase {
	switch {
	case !hasTarget:
		return PhaseIdle
	case !generating:
		return PhaseDone
	case progress < 0.28:
		return PhaseAnalyzing
	case progress < 0.72:
		return PhaseDrafting
	default:
		return PhasePolishing
	}
}

// Label returns the status text for locale.
func (p Phase) Label(locale smartchat.Locale) string {
	s := Text(locale)
	switch p {
	case PhaseAnalyzing:
		return s.StatusAnalyzing
	case PhaseDrafting:
		return s.StatusDrafting
	case PhasePolishing:
		return s.StatusPolishing
	case PhaseDone:
		return s.StatusDone
	default:
		return s.StatusIdle
	}
}
