package chat

import "github.com/kodewerk/smartchat"

// Strings holds the user-facing text of the chat for one locale.
type Strings struct {
	Title             string
	AssistantLabel    string
	UserLabel         string
	Welcome           string
	Untitled          string
	NewChat           string
	HistoryTitle      string
	ModelTitle        string
	Typing            string
	EmptyTitle        string
	EmptyText         string
	Placeholder       string
	Send              string
	Sending           string
	Stop              string
	Hint              string
	ErrorLabel        string
	ErrorHint         string
	QuickPromptsTitle string
	QuickPrompts      []string
	FooterNote        string
}

var copies = map[smartchat.Locale]Strings{
	smartchat.LocaleDE: {
		Title:          "SmartChat",
		AssistantLabel: "SmartChat",
		UserLabel:      "Sie",
		Welcome: "Hallo! Ich bin **SmartChat**, ein Demo-Assistent für Ihr Ausbildung-Portfolio.\n\n" +
			"- Schreiben Sie eine Frage oder eine Aufgabe.\n" +
			"- Ich antworte mit **Streaming-Ausgabe** wie in echten AI-Tools.\n" +
			"- Ich kann `Markdown` und Codeblöcke darstellen.\n\n" +
			"Tipp: Fragen Sie z. B. nach einer Next.js-Komponente oder einer kurzen Architektur-Idee.",
		Untitled:          "Neue Unterhaltung",
		NewChat:           "Neue Unterhaltung",
		HistoryTitle:      "Chat-Verlauf",
		ModelTitle:        "Modell wählen",
		Typing:            "Antwort wird gestreamt ...",
		EmptyTitle:        "Noch keine Nachrichten",
		EmptyText:         "Starten Sie eine neue Unterhaltung und schicken Sie Ihre erste Nachricht.",
		Placeholder:       "Fragen Sie etwas Konkretes ...",
		Send:              "Senden",
		Sending:           "Streaming ...",
		Stop:              "Stoppen",
		Hint:              "enter senden · ctrl+s stoppen · ctrl+n neu · ctrl+t modell · tab verlauf",
		ErrorLabel:        "Fehler",
		ErrorHint:         "Antwort fehlgeschlagen. Senden Sie die Nachricht erneut.",
		QuickPromptsTitle: "Schnellstarts",
		QuickPrompts: []string{
			"Gib mir ein TypeScript-Beispiel für einen Streaming-Chat in React.",
			"Wie erkläre ich Eigeninitiative im Vorstellungsgespräch auf Deutsch?",
			"Entwirf eine klare Architektur für Chat-Verlauf + Modellauswahl.",
			"Welche 3 UX-Details machen einen Chat wie ChatGPT professionell?",
		},
		FooterNote: "Hinweis: Demo mit lokal generierten Antworten (kein externes LLM, keine API-Anfrage).",
	},
	smartchat.LocaleEN: {
		Title:          "SmartChat",
		AssistantLabel: "SmartChat",
		UserLabel:      "You",
		Welcome: "Hi! I am **SmartChat**, a demo assistant for this Ausbildung portfolio.\n\n" +
			"- Ask a question or define a task.\n" +
			"- I answer with **streaming output** like real AI products.\n" +
			"- I can render `Markdown` and highlighted code blocks.\n\n" +
			"Tip: ask for a Next.js component or a short architecture proposal.",
		Untitled:          "New conversation",
		NewChat:           "New conversation",
		HistoryTitle:      "Chat history",
		ModelTitle:        "Choose model",
		Typing:            "Streaming response ...",
		EmptyTitle:        "No messages yet",
		EmptyText:         "Create a thread and send your first message.",
		Placeholder:       "Ask something specific ...",
		Send:              "Send",
		Sending:           "Streaming ...",
		Stop:              "Stop",
		Hint:              "enter send · ctrl+s stop · ctrl+n new · ctrl+t model · tab history",
		ErrorLabel:        "Error",
		ErrorHint:         "The reply failed. Send your message again.",
		QuickPromptsTitle: "Quick starters",
		QuickPrompts: []string{
			"Show me a TypeScript example for a streaming chat in React.",
			"How can I explain initiative in a German Ausbildung interview?",
			"Design a clean architecture for history + model selection.",
			"Which 3 UX details make a chat app feel professional?",
		},
		FooterNote: "Note: this demo uses local mock generation (no external LLM requests).",
	},
}

// Copy returns the chat text for locale.
func Copy(locale smartchat.Locale) Strings {
	c := copies[smartchat.ParseLocale(string(locale))]
	c.QuickPrompts = append([]string(nil), c.QuickPrompts...)
	return c
}
