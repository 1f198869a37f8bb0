package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/kodewerk/smartchat"
)

// Request holds the inputs of one cover letter.
type Request struct {
	Locale    smartchat.Locale
	Vacancy   string
	Focus     Focus
	Tone      Tone
	Strengths []string
	Name      string
	City      string
	// Date is printed next to City. Zero means today.
	Date time.Time
}

// Build composes the cover letter for req. The vacancy must not be blank;
// unknown strength IDs are ignored. Focus and tone default to frontend and
// professional.
func Build(req Request) (string, error) {
	vacancy := strings.TrimSpace(req.Vacancy)
	if vacancy == "" {
		return "", smartchat.ErrEmptyVacancy
	}
	if req.Focus == "" {
		req.Focus = FocusFrontend
	}
	if req.Tone == "" {
		req.Tone = ToneProfessional
	}
	focus, err := ParseFocus(string(req.Focus))
	if err != nil {
		return "", fmt.Errorf("build letter: %w", err)
	}
	tone, err := ParseTone(string(req.Tone))
	if err != nil {
		return "", fmt.Errorf("build letter: %w", err)
	}

	locale := smartchat.ParseLocale(string(req.Locale))
	c := contentFor(locale)
	a := Analyze(locale, vacancy, focus)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultName
	}
	city := strings.TrimSpace(req.City)
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	var sentences []string
	for _, id := range req.Strengths {
		if s, ok := c.strengthSentences[id]; ok {
			sentences = append(sentences, s)
		}
	}

	p := parts{
		opener:    c.toneOpeners[tone],
		focus:     c.focusParagraphs[focus],
		strengths: strings.Join(sentences, " "),
		knownCo:   a.Company != c.strings.UnknownCompany,
		analysis:  a,
		name:      name,
	}
	if locale == smartchat.LocaleDE {
		if city != "" {
			p.dateLine = fmt.Sprintf("%s, den %d.%d.%d", city, date.Day(), int(date.Month()), date.Year())
		}
		return german(p), nil
	}
	if city != "" {
		p.dateLine = city + ", " + date.Format("January 2, 2006")
	}
	return english(p), nil
}

type parts struct {
	dateLine  string
	opener    string
	focus     string
	strengths string
	knownCo   bool
	analysis  Analysis
	name      string
}

func german(p parts) string {
	salutation := "Sehr geehrtes Recruiting-Team,"
	if p.knownCo {
		salutation = fmt.Sprintf("Sehr geehrtes Recruiting-Team der %s,", p.analysis.Company)
	}
	keywordLine := "Besonders überzeugt mich, dass Sie auf Lernbereitschaft, saubere Umsetzung und Zusammenarbeit setzen. Genau dafür stehe ich in meiner täglichen Arbeit."
	if kw := topKeywords(p.analysis.Keywords); kw != "" {
		keywordLine = fmt.Sprintf("Aus Ihrer Ausschreibung sind für mich insbesondere %s als zentrale Anforderungen erkennbar. Genau in diesen Themenfeldern habe ich in meinen Projekten bereits praxisnah gearbeitet.", kw)
	}
	strengths := p.strengths
	if strengths == "" {
		strengths = "Ich arbeite eigenverantwortlich, denke mit und entwickle Lösungen so, dass sie im Team langfristig wartbar bleiben."
	}
	lines := dateLines(p.dateLine)
	lines = append(lines,
		"Betreff: Bewerbung um "+p.analysis.Role,
		"",
		salutation,
		"",
		p.opener,
		"",
		p.focus,
		"",
		keywordLine,
		"",
		strengths,
		"",
		"Über die Möglichkeit, mich persönlich vorzustellen und mehr über Ihr Team zu erfahren, freue ich mich sehr.",
		"",
		"Mit freundlichen Grüßen",
		p.name,
		"",
		"Anlagen: Lebenslauf, Zeugnisse",
	)
	return strings.Join(lines, "\n")
}

func english(p parts) string {
	salutation := "Dear recruiting team,"
	if p.knownCo {
		salutation = fmt.Sprintf("Dear recruiting team at %s,", p.analysis.Company)
	}
	keywordLine := "I value your focus on learning mindset, implementation quality and collaborative teamwork. This aligns strongly with how I work."
	if kw := topKeywords(p.analysis.Keywords); kw != "" {
		keywordLine = fmt.Sprintf("From your vacancy text, I identified %s as key priorities. These are exactly the areas where I already built practical project experience.", kw)
	}
	strengths := p.strengths
	if strengths == "" {
		strengths = "I work with ownership, think in product context and keep implementation details maintainable for team collaboration."
	}
	lines := dateLines(p.dateLine)
	lines = append(lines,
		"Subject: Application for "+p.analysis.Role,
		"",
		salutation,
		"",
		p.opener,
		"",
		p.focus,
		"",
		keywordLine,
		"",
		strengths,
		"",
		"I would value the opportunity to introduce myself in a personal interview and learn more about your team.",
		"",
		"Kind regards,",
		p.name,
	)
	return strings.Join(lines, "\n")
}

func dateLines(dateLine string) []string {
	if dateLine == "" {
		return nil
	}
	return []string{dateLine, ""}
}

// topKeywords joins the first four keywords.
func topKeywords(keywords []string) string {
	return strings.Join(keywords[:min(len(keywords), 4)], ", ")
}
