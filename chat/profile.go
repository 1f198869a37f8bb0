package chat

import (
	"fmt"

	"github.com/kodewerk/smartchat"
)

// Profile describes a mock model. Voice is the sentence the model opens its
// replies with.
type Profile struct {
	ID          smartchat.ModelID
	Label       string
	Badge       string
	Description string
	Voice       string
}

var profiles = map[smartchat.Locale][]Profile{
	smartchat.LocaleDE: {
		{
			ID:          smartchat.ModelGPT4o,
			Label:       "GPT-4o",
			Badge:       "Schnell + präzise",
			Description: "Direkte, klare Antwortstruktur mit Fokus auf umsetzbare Schritte.",
			Voice:       "Ich gehe direkt auf die Kernfrage und liefere sofort umsetzbare Bausteine.",
		},
		{
			ID:          smartchat.ModelClaudeSonnet,
			Label:       "Claude Sonnet",
			Badge:       "Strukturiert",
			Description: "Mehr Kontext, saubere Gliederung und Begründung der Entscheidungen.",
			Voice:       "Ich strukturiere die Antwort stärker und begründe kurz die technischen Trade-offs.",
		},
		{
			ID:          smartchat.ModelLlama,
			Label:       "Llama 3.1",
			Badge:       "Pragmatisch",
			Description: "Kompakte Antwort mit Fokus auf robuste Basislösung.",
			Voice:       "Ich priorisiere pragmatische Lösungen, die schnell stabil laufen.",
		},
	},
	smartchat.LocaleEN: {
		{
			ID:          smartchat.ModelGPT4o,
			Label:       "GPT-4o",
			Badge:       "Fast + precise",
			Description: "Direct, implementation-oriented replies with clear action points.",
			Voice:       "I keep it concise and highly actionable.",
		},
		{
			ID:          smartchat.ModelClaudeSonnet,
			Label:       "Claude Sonnet",
			Badge:       "Structured",
			Description: "More context, clean hierarchy and quick trade-off explanation.",
			Voice:       "I prioritize structure and explicit reasoning.",
		},
		{
			ID:          smartchat.ModelLlama,
			Label:       "Llama 3.1",
			Badge:       "Pragmatic",
			Description: "Compact answer focused on robust baseline implementation.",
			Voice:       "I focus on practical solutions that work quickly and reliably.",
		},
	},
}

// Models returns the model profiles for locale in display order.
func Models(locale smartchat.Locale) []Profile {
	return append([]Profile(nil), profiles[smartchat.ParseLocale(string(locale))]...)
}

// Model returns the profile for id in locale.
func Model(locale smartchat.Locale, id smartchat.ModelID) (Profile, error) {
	for _, p := range Models(locale) {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%q: %w", id, smartchat.ErrUnknownModel)
}
