// Package letter generates cover letters from a vacancy text. A letter is
// assembled from fixed paragraphs selected by focus, tone and strengths and
// from what Analyze extracts from the vacancy.
package letter

import (
	"fmt"
	"slices"

	"github.com/kodewerk/smartchat"
)

// Focus selects the argument paragraph of a letter.
type Focus string

const (
	FocusFrontend  Focus = "frontend"
	FocusFullstack Focus = "fullstack"
	FocusTeamfit   Focus = "teamfit"
	FocusAI        Focus = "ai"
)

// Tone selects the opening sentence of a letter.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneMotivated    Tone = "motivated"
	ToneDirect       Tone = "direct"
)

// DefaultName is used when a request carries no applicant name.
const DefaultName = "Oleksandr"

// Preset is a sample vacancy with the focus that suits it.
type Preset struct {
	ID    string
	Label string
	Focus Focus
	Text  string
}

// FocusOption describes a Focus for display.
type FocusOption struct {
	Value Focus
	Label string
	Hint  string
}

// ToneOption describes a Tone for display.
type ToneOption struct {
	Value Tone
	Label string
	Hint  string
}

// Strength is a personal strength that adds a sentence to the letter.
type Strength struct {
	ID    string
	Label string
}

// Strings holds the user-facing text of the letter helper for one locale.
type Strings struct {
	Title           string
	ErrorRequired   string
	StatusIdle      string
	StatusAnalyzing string
	StatusDrafting  string
	StatusPolishing string
	StatusDone      string
	Copy            string
	Copied          string
	CopyError       string
	GeneratedAt     string
	Company         string
	Role            string
	Keywords        string
	Argument        string
	UnknownCompany  string
	FallbackRole    string
	NoKeywords      string
}

func contentFor(locale smartchat.Locale) content {
	return contents[smartchat.ParseLocale(string(locale))]
}

// Text returns the user-facing text for locale.
func Text(locale smartchat.Locale) Strings { return contentFor(locale).strings }

// Presets returns the sample vacancies for locale.
func Presets(locale smartchat.Locale) []Preset {
	return slices.Clone(contentFor(locale).presets)
}

// LookupPreset returns the preset with id.
func LookupPreset(locale smartchat.Locale, id string) (Preset, error) {
	for _, p := range contentFor(locale).presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q: %w", id, smartchat.ErrValidation)
}

// FocusOptions returns the focus choices for locale.
func FocusOptions(locale smartchat.Locale) []FocusOption {
	return slices.Clone(contentFor(locale).focusOptions)
}

// ToneOptions returns the tone choices for locale.
func ToneOptions(locale smartchat.Locale) []ToneOption {
	return slices.Clone(contentFor(locale).toneOptions)
}

// Strengths returns the selectable strengths for locale.
func Strengths(locale smartchat.Locale) []Strength {
	return slices.Clone(contentFor(locale).strengths)
}

// ParseFocus returns the Focus named s.
func ParseFocus(s string) (Focus, error) {
	switch f := Focus(s); f {
	case FocusFrontend, FocusFullstack, FocusTeamfit, FocusAI:
		return f, nil
	}
	return "", fmt.Errorf("focus %q: %w", s, smartchat.ErrValidation)
}

// ParseTone returns the Tone named s.
func ParseTone(s string) (Tone, error) {
	switch t := Tone(s); t {
	case ToneProfessional, ToneMotivated, ToneDirect:
		return t, nil
	}
	return "", fmt.Errorf("tone %q: %w", s, smartchat.ErrValidation)
}
