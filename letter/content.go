package letter

import "github.com/kodewerk/smartchat"

type content struct {
	strings           Strings
	presets           []Preset
	focusOptions      []FocusOption
	toneOptions       []ToneOption
	strengths         []Strength
	focusParagraphs   map[Focus]string
	toneOpeners       map[Tone]string
	strengthSentences map[string]string
}

var contents = map[smartchat.Locale]content{
	smartchat.LocaleDE: {
		strings: Strings{
			Title:           "KI-Bewerbungshelfer",
			ErrorRequired:   "Bitte zuerst eine Stellenanzeige einfügen.",
			StatusIdle:      "Bereit für Analyse",
			StatusAnalyzing: "Analysiere Stellenanzeige ...",
			StatusDrafting:  "Erstelle ersten Entwurf ...",
			StatusPolishing: "Optimiere Formulierungen ...",
			StatusDone:      "Fertig, bereit zum Kopieren",
			Copy:            "Kopieren",
			Copied:          "Kopiert",
			CopyError:       "Fehler",
			GeneratedAt:     "Generiert um",
			Company:         "Unternehmen",
			Role:            "Rolle",
			Keywords:        "Erkannte Keywords",
			Argument:        "Argumentationsfokus",
			UnknownCompany:  "Ihr Unternehmen",
			FallbackRole:    "die ausgeschriebene Position",
			NoKeywords:      "Noch keine klaren Keywords erkannt",
		},
		presets: []Preset{
			{
				ID:    "preset-startup-frontend",
				Label: "Startup Frontend (Berlin)",
				Focus: FocusFrontend,
				Text:  "Ein Berliner SaaS-Startup sucht zum 01.08.2026 eine/n Auszubildende/n Fachinformatiker/in für Anwendungsentwicklung (m/w/d). Du entwickelst im Frontend-Team Features mit React, Next.js und TypeScript, arbeitest eng mit Product/Design zusammen und verbesserst UX sowie Ladezeiten.",
			},
			{
				ID:    "preset-corporate-it",
				Label: "Corporate IT (Inhouse)",
				Focus: FocusTeamfit,
				Text:  "Für unsere zentrale IT in München suchen wir Auszubildende Fachinformatiker Anwendungsentwicklung (w/m/d). Du arbeitest an internen Tools, APIs und Automatisierung. Wichtig sind Dokumentation, Abstimmung mit Fachabteilungen und eine verlässliche Zusammenarbeit im Team.",
			},
			{
				ID:    "preset-ecommerce",
				Label: "E-Commerce Plattform",
				Focus: FocusFullstack,
				Text:  "Ein wachsender E-Commerce-Anbieter in Hamburg stellt Auszubildende (m/w/d) ein. Aufgaben: Weiterentwicklung von Shop-Frontend, Checkout-Prozessen und Schnittstellen zu Zahlungs- und Warenwirtschaftssystemen. Erwartet werden JavaScript/TypeScript-Basis, API-Verständnis und datengetriebenes Denken.",
			},
			{
				ID:    "preset-public-sector",
				Label: "Behörden / Öffentlicher Dienst",
				Focus: FocusTeamfit,
				Text:  "Eine kommunale IT-Dienststelle sucht Auszubildende Fachinformatiker/in Anwendungsentwicklung (m/w/d) für Digitalisierungsprojekte. Sie unterstützen Bürgerportale, Formular-Workflows und barrierearme Oberflächen. Gefragt sind Sorgfalt, Datenschutzbewusstsein und klare Kommunikation.",
			},
			{
				ID:    "preset-agency",
				Label: "Digitalagentur Webprojekte",
				Focus: FocusFrontend,
				Text:  "Eine Agentur in Köln bietet eine Ausbildung im Bereich Anwendungsentwicklung an. Sie arbeiten in wechselnden Kundenprojekten an Landingpages, Content-Plattformen und UI-Komponenten. Gewünscht: saubere HTML/CSS/JS-Grundlagen, Kreativität und strukturierte Projektarbeit.",
			},
			{
				ID:    "preset-qa-testing",
				Label: "QA / Testing Fokus",
				Focus: FocusAI,
				Text:  "Ein Softwarehaus in Frankfurt sucht Auszubildende (m/w/d) mit Schwerpunkt Qualitätssicherung in der Entwicklung. Aufgaben sind Testfall-Design, automatisierte UI/API-Tests, Fehleranalyse und Zusammenarbeit mit Dev-Teams. Vorteilhaft: Interesse an Testing-Tools, CI und genauer Dokumentation.",
			},
		},
		focusOptions: []FocusOption{
			{Value: FocusFrontend, Label: "Frontend & UX", Hint: "Responsive UI, Accessibility, Performance"},
			{Value: FocusFullstack, Label: "Full-Stack Orientierung", Hint: "API-Denken, Datenfluss, saubere Schnittstellen"},
			{Value: FocusTeamfit, Label: "Teamfit & Ausbildung", Hint: "Lernkurve, Zuverlässigkeit, Zusammenarbeit"},
			{Value: FocusAI, Label: "AI-Produktivität", Hint: "Automatisierung, strukturierte Prompt-Workflows"},
		},
		toneOptions: []ToneOption{
			{Value: ToneProfessional, Label: "Professionell", Hint: "Klar, sachlich, HR-sicher"},
			{Value: ToneMotivated, Label: "Motiviert", Hint: "Mehr Energie, starke Eigeninitiative"},
			{Value: ToneDirect, Label: "Direkt", Hint: "Kompakt, selbstbewusst, auf den Punkt"},
		},
		strengths: []Strength{
			{ID: "initiative", Label: "Eigeninitiative"},
			{ID: "learning", Label: "Schnelle Lernkurve"},
			{ID: "structure", Label: "Strukturierte Arbeitsweise"},
			{ID: "team", Label: "Teamorientierung"},
			{ID: "communication", Label: "Klare Kommunikation"},
		},
		focusParagraphs: map[Focus]string{
			FocusFrontend:  "Besonders stark bin ich in der Umsetzung responsiver Frontend-Lösungen mit Next.js und TypeScript. Ich achte konsequent auf Accessibility, Performance und eine klare Informationsarchitektur.",
			FocusFullstack: "Neben der UI-Umsetzung denke ich Schnittstellen und Datenfluss mit. In Projekten habe ich API-Integrationen, Validierung und wartbare Strukturierung von Frontend- und Backend-Logik kombiniert.",
			FocusTeamfit:   "Ich suche bewusst ein Ausbildungsteam, bei dem ich strukturiert Verantwortung übernehme, Feedback schnell in bessere Lösungen übersetze und mich fachlich wie menschlich weiterentwickle.",
			FocusAI:        "Ich nutze KI-Tools produktiv und verantwortungsvoll: für Recherche, Strukturierung und schnellere Iteration, immer mit klarer Qualitätskontrolle im finalen Code.",
		},
		toneOpeners: map[Tone]string{
			ToneProfessional: "mit großem Interesse habe ich Ihre Ausschreibung gelesen und möchte mich hiermit um die Position bewerben.",
			ToneMotivated:    "Ihre Ausschreibung hat mich sofort angesprochen, weil sie genau den Mix aus Praxis, Lernkurve und Verantwortung beschreibt, den ich suche.",
			ToneDirect:       "ich bewerbe mich gezielt auf diese Position, weil mein Profil fachlich und von der Arbeitsweise sehr gut zu Ihren Anforderungen passt.",
		},
		strengthSentences: map[string]string{
			"initiative":    "Eigeninitiative zeige ich durch konsequentes Selbststudium und die eigenständige Umsetzung kompletter Projektmodule.",
			"learning":      "Neue Technologien und Arbeitsweisen eigne ich mir schnell an und setze Feedback direkt in konkrete Verbesserungen um.",
			"structure":     "Ich arbeite strukturiert, dokumentiere nachvollziehbar und behalte auch unter Zeitdruck Prioritäten im Blick.",
			"team":          "In der Zusammenarbeit bin ich verlässlich, hilfsbereit und orientiere mich an gemeinsamen Zielen statt Einzelinteressen.",
			"communication": "Technische Inhalte kann ich präzise und verständlich kommunizieren, sowohl im Team als auch gegenüber nicht-technischen Stakeholdern.",
		},
	},
	smartchat.LocaleEN: {
		strings: Strings{
			Title:           "AI Application Assistant",
			ErrorRequired:   "Please paste a job description first.",
			StatusIdle:      "Ready to analyze",
			StatusAnalyzing: "Analyzing vacancy ...",
			StatusDrafting:  "Building first draft ...",
			StatusPolishing: "Polishing wording ...",
			StatusDone:      "Done, ready to copy",
			Copy:            "Copy",
			Copied:          "Copied",
			CopyError:       "Error",
			GeneratedAt:     "Generated at",
			Company:         "Company",
			Role:            "Role",
			Keywords:        "Detected keywords",
			Argument:        "Argument focus",
			UnknownCompany:  "your company",
			FallbackRole:    "the advertised role",
			NoKeywords:      "No clear keywords detected yet",
		},
		presets: []Preset{
			{
				ID:    "preset-startup-frontend",
				Label: "Startup frontend (Berlin)",
				Focus: FocusFrontend,
				Text:  "A Berlin SaaS startup is hiring an apprentice software developer (m/f/d) starting August 2026. You will build product-facing frontend features with React, Next.js and TypeScript, collaborate closely with product/design and improve UX and page performance.",
			},
			{
				ID:    "preset-corporate-it",
				Label: "Corporate IT (in-house)",
				Focus: FocusTeamfit,
				Text:  "Our central IT department in Munich is hiring apprentice developers. You work on internal tools, APIs and workflow automation. We expect clear documentation, cross-team collaboration and reliable delivery in a structured environment.",
			},
			{
				ID:    "preset-ecommerce",
				Label: "E-commerce platform",
				Focus: FocusFullstack,
				Text:  "A fast-growing e-commerce company in Hamburg is looking for apprentices (m/f/d). Tasks include improving storefront features, checkout flows and integrations with payment/inventory systems. We value JavaScript/TypeScript basics, API understanding and data-aware thinking.",
			},
			{
				ID:    "preset-public-sector",
				Label: "Public sector / government IT",
				Focus: FocusTeamfit,
				Text:  "A municipal IT service provider offers an apprenticeship in software development. You support citizen portals, digital form workflows and accessibility-focused interfaces. We are looking for diligence, privacy awareness and clear communication.",
			},
			{
				ID:    "preset-agency",
				Label: "Digital agency client work",
				Focus: FocusFrontend,
				Text:  "A digital agency in Cologne is hiring apprentices for web application development. You contribute to multiple client projects: landing pages, content platforms and reusable UI components. Solid HTML/CSS/JS basics, creativity and structured teamwork are required.",
			},
			{
				ID:    "preset-qa-testing",
				Label: "QA / testing-focused role",
				Focus: FocusAI,
				Text:  "A software company in Frankfurt is hiring apprentices with a QA/testing focus. Responsibilities include test case design, automated UI/API testing, bug triage and collaboration with developers. Interest in testing tools, CI pipelines and precise documentation is a plus.",
			},
		},
		focusOptions: []FocusOption{
			{Value: FocusFrontend, Label: "Frontend & UX", Hint: "Responsive UI, accessibility, performance"},
			{Value: FocusFullstack, Label: "Full-stack mindset", Hint: "API thinking, data flow, integration quality"},
			{Value: FocusTeamfit, Label: "Team fit & Ausbildung", Hint: "Learning speed, reliability, collaboration"},
			{Value: FocusAI, Label: "AI productivity", Hint: "Automation and structured prompting"},
		},
		toneOptions: []ToneOption{
			{Value: ToneProfessional, Label: "Professional", Hint: "Formal and clear"},
			{Value: ToneMotivated, Label: "Motivated", Hint: "More energy and ownership"},
			{Value: ToneDirect, Label: "Direct", Hint: "Compact and confident"},
		},
		strengths: []Strength{
			{ID: "initiative", Label: "Initiative"},
			{ID: "learning", Label: "Fast learner"},
			{ID: "structure", Label: "Structured execution"},
			{ID: "team", Label: "Team player"},
			{ID: "communication", Label: "Clear communication"},
		},
		focusParagraphs: map[Focus]string{
			FocusFrontend:  "I am strongest when building responsive frontend solutions with Next.js and TypeScript, with clear attention to accessibility, performance and hierarchy.",
			FocusFullstack: "Beyond UI delivery, I think in APIs and data flow. In projects, I combine integration work, validation and maintainable frontend/backend structures.",
			FocusTeamfit:   "I am intentionally looking for an Ausbildung team where I can take ownership early, turn feedback into better solutions quickly and grow in a structured environment.",
			FocusAI:        "I use AI tools productively and responsibly for research, structuring and faster iteration, always with strict quality checks before final delivery.",
		},
		toneOpeners: map[Tone]string{
			ToneProfessional: "I have read your job posting with great interest and would like to apply for this role.",
			ToneMotivated:    "Your posting immediately resonated with me because it combines practical product work, learning growth and responsibility.",
			ToneDirect:       "I am applying for this role because my skills and work style are a strong match for your requirements.",
		},
		strengthSentences: map[string]string{
			"initiative":    "I show initiative through disciplined self-learning and independent delivery of complete project modules.",
			"learning":      "I learn new technologies quickly and turn feedback into concrete improvements without delay.",
			"structure":     "I work in a structured way, document clearly and keep priorities visible even under time pressure.",
			"team":          "In collaboration, I am reliable and supportive, focusing on shared outcomes instead of individual spotlight.",
			"communication": "I communicate technical topics clearly to both technical teammates and non-technical stakeholders.",
		},
	},
}

type keywordEntry struct {
	match   string
	labelDE string
	labelEN string
}

var keywordLibrary = []keywordEntry{
	{"next.js", "Next.js", "Next.js"},
	{"nextjs", "Next.js", "Next.js"},
	{"react", "React", "React"},
	{"typescript", "TypeScript", "TypeScript"},
	{"javascript", "JavaScript", "JavaScript"},
	{"api", "API", "API"},
	{"rest", "REST", "REST"},
	{"sql", "SQL", "SQL"},
	{"datenbank", "Datenbanken", "Databases"},
	{"database", "Datenbanken", "Databases"},
	{"ux", "UX", "UX"},
	{"accessibility", "Accessibility", "Accessibility"},
	{"barriere", "Barrierefreiheit", "Accessibility"},
	{"performance", "Performance", "Performance"},
	{"team", "Teamarbeit", "Teamwork"},
	{"agil", "Agile Arbeitsweise", "Agile"},
	{"agile", "Agile Arbeitsweise", "Agile"},
	{"dokumentation", "Dokumentation", "Documentation"},
	{"cloud", "Cloud", "Cloud"},
	{"python", "Python", "Python"},
	{"node", "Node.js", "Node.js"},
}
