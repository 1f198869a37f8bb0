package chat

import (
	"embed"
	"strings"
	"text/template"

	"github.com/kodewerk/smartchat"
)

//go:embed replies
var replyFS embed.FS

var replies = map[smartchat.Locale]*template.Template{
	smartchat.LocaleDE: template.Must(template.ParseFS(replyFS, "replies/de/*.md")),
	smartchat.LocaleEN: template.Must(template.ParseFS(replyFS, "replies/en/*.md")),
}

// Topic is the reply template a prompt is routed to.
type Topic string

const (
	TopicCode         Topic = "code"
	TopicArchitecture Topic = "architecture"
	TopicInterview    Topic = "interview"
	TopicGeneral      Topic = "general"
)

type route struct {
	topic    Topic
	keywords []string
}

// Routes are checked in order; the first topic with a keyword contained in
// the lower-cased prompt wins.
var routes = map[smartchat.Locale][]route{
	smartchat.LocaleDE: {
		{TopicCode, []string{"code", "typescript", "javascript", "react", "next", "komponente", "api", "refactor", "debug", "fehler", "funktion"}},
		{TopicArchitecture, []string{"architektur", "struktur", "state", "zustand", "thread", "history", "modell", "datenfluss"}},
		{TopicInterview, []string{"bewerbung", "interview", "ausbildung", "hr", "anschreiben", "lebenslauf", "motivation"}},
	},
	smartchat.LocaleEN: {
		{TopicCode, []string{"code", "typescript", "javascript", "react", "next", "component", "api", "refactor", "debug", "function"}},
		{TopicArchitecture, []string{"architecture", "state", "thread", "history", "model", "data flow", "structure"}},
		{TopicInterview, []string{"interview", "ausbildung", "hr", "cover letter", "resume", "motivation"}},
	},
}

const (
	titleLimit   = 44
	summaryLimit = 95
)

// RouteTopic returns the reply topic for prompt.
func RouteTopic(locale smartchat.Locale, prompt string) Topic {
	lower := strings.ToLower(prompt)
	for _, r := range routes[smartchat.ParseLocale(string(locale))] {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.topic
			}
		}
	}
	return TopicGeneral
}

// BuildReply returns the mock markdown reply of model to prompt.
func BuildReply(locale smartchat.Locale, prompt string, model Profile) string {
	locale = smartchat.ParseLocale(string(locale))
	name := string(RouteTopic(locale, prompt)) + ".md"
	data := struct {
		Label   string
		Voice   string
		Summary string
	}{model.Label, model.Voice, truncate(prompt, summaryLimit)}

	var sb strings.Builder
	// Templates are embedded and only reference the fields above.
	if err := replies[locale].ExecuteTemplate(&sb, name, data); err != nil {
		panic(err)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ThreadTitle derives a thread title from the first user prompt. Whitespace
// is collapsed and titles longer than 44 characters are cut to 43 plus an
// ellipsis. A blank prompt yields fallback.
func ThreadTitle(prompt, fallback string) string {
	if title := truncate(prompt, titleLimit); title != "" {
		return title
	}
	return fallback
}

func truncate(s string, limit int) string {
	normalized := strings.Join(strings.Fields(s), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-1]) + "…"
}
