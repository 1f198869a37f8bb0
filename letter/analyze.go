package letter

import (
	"regexp"
	"slices"
	"strings"

	"github.com/kodewerk/smartchat"
)

const maxKeywords = 7

const companyName = `[A-ZÄÖÜ][A-Za-zÄÖÜäöüß0-9&.\- ]{2,42}`

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:bei|für)\s+(` + companyName + `)`),
	regexp.MustCompile(`(?i)(?:unternehmen|arbeitgeber)\s*[:\-]\s*(` + companyName + `)`),
	regexp.MustCompile(`(?i)(` + companyName + `)\s+(?:sucht|stellt ein|sucht zum)`),
}

var (
	companySeparators = regexp.MustCompile(`[|,;:\n]`)
	whitespace        = regexp.MustCompile(`\s+`)
)

// Analysis is what a vacancy text reveals about the position.
type Analysis struct {
	Company  string
	Role     string
	Keywords []string
	Argument string
}

// Analyze extracts company, role and keywords from vacancy. Company and
// role fall back to the locale's placeholders when nothing matches.
// Argument is the label of focus.
func Analyze(locale smartchat.Locale, vacancy string, focus Focus) Analysis {
	c := contentFor(locale)
	a := Analysis{
		Company:  extractCompany(vacancy),
		Role:     extractRole(vacancy, c.strings.FallbackRole),
		Keywords: extractKeywords(vacancy, smartchat.ParseLocale(string(locale))),
		Argument: c.focusOptions[0].Label,
	}
	if a.Company == "" {
		a.Company = c.strings.UnknownCompany
	}
	for _, opt := range c.focusOptions {
		if opt.Value == focus {
			a.Argument = opt.Label
		}
	}
	return a
}

func extractCompany(vacancy string) string {
	for _, p := range companyPatterns {
		m := p.FindStringSubmatch(vacancy)
		if m == nil {
			continue
		}
		if name := normalizeCompany(m[1]); len([]rune(name)) > 1 {
			return name
		}
	}
	return ""
}

func normalizeCompany(raw string) string {
	s := companySeparators.ReplaceAllString(raw, " ")
	s = whitespace.ReplaceAllString(s, " ")
	if n := len(s); n > 0 && strings.ContainsRune(".!?", rune(s[n-1])) {
		s = s[:n-1]
	}
	return strings.TrimSpace(s)
}

func extractRole(vacancy, fallback string) string {
	text := strings.ToLower(vacancy)
	has := func(s string) bool { return strings.Contains(text, s) }
	switch {
	case has("fachinformatiker") && has("anwendungsentwicklung"):
		return "Fachinformatiker/in für Anwendungsentwicklung (m/w/d)"
	case has("frontend"):
		return "Frontend Developer / Frontend-Ausbildung (m/w/d)"
	case has("fullstack") || has("full-stack"):
		return "Full-Stack Developer (m/w/d)"
	case has("ausbildung") && has("software"):
		return "Ausbildung im Bereich Softwareentwicklung (m/w/d)"
	case has("softwareentwickler") || has("software developer"):
		return "Software Developer (m/w/d)"
	}
	return fallback
}

func extractKeywords(vacancy string, locale smartchat.Locale) []string {
	text := strings.ToLower(vacancy)
	var found []string
	for _, e := range keywordLibrary {
		if !strings.Contains(text, e.match) {
			continue
		}
		label := e.labelEN
		if locale == smartchat.LocaleDE {
			label = e.labelDE
		}
		if !slices.Contains(found, label) {
			found = append(found, label)
		}
		if len(found) >= maxKeywords {
			break
		}
	}
	return found
}
