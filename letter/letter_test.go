package letter_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/letter"
	"github.com/kodewerk/smartchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("company after bei", func(t *testing.T) {
		t.Parallel()
		a := letter.Analyze(smartchat.LocaleDE, "Ausbildung bei Muster GmbH, Berlin", letter.FocusFrontend)
		assert.Equal(t, "Muster GmbH", a.Company)
	})

	t.Run("company after label", func(t *testing.T) {
		t.Parallel()
		a := letter.Analyze(smartchat.LocaleDE, "Arbeitgeber: Stadtwerke Nord.", letter.FocusFrontend)
		assert.Equal(t, "Stadtwerke Nord", a.Company)
	})

	t.Run("company before sucht", func(t *testing.T) {
		t.Parallel()
		a := letter.Analyze(smartchat.LocaleDE, "Acme Digital sucht dich", letter.FocusFrontend)
		assert.Equal(t, "Acme Digital", a.Company)
	})

	t.Run("unknown company", func(t *testing.T) {
		t.Parallel()
		a := letter.Analyze(smartchat.LocaleEN, "we want someone", letter.FocusFrontend)
		assert.Equal(t, "your company", a.Company)
		assert.Equal(t, "the advertised role", a.Role)
		assert.Empty(t, a.Keywords)
	})

	t.Run("roles", func(t *testing.T) {
		t.Parallel()
		tests := map[string]string{
			"Fachinformatiker für Anwendungsentwicklung": "Fachinformatiker/in für Anwendungsentwicklung (m/w/d)",
			"Frontend position":                          "Frontend Developer / Frontend-Ausbildung (m/w/d)",
			"a Full-Stack job":                           "Full-Stack Developer (m/w/d)",
			"Ausbildung Software":                        "Ausbildung im Bereich Softwareentwicklung (m/w/d)",
			"Softwareentwickler gesucht":                 "Software Developer (m/w/d)",
			"apprentice software developer":              "Software Developer (m/w/d)",
		}
		for vacancy, want := range tests {
			a := letter.Analyze(smartchat.LocaleDE, vacancy, letter.FocusFrontend)
			assert.Equal(t, want, a.Role, vacancy)
		}
	})

	t.Run("keywords deduplicated and capped", func(t *testing.T) {
		t.Parallel()
		vacancy := "Next.js nextjs React TypeScript JavaScript API REST SQL Datenbank Cloud"
		a := letter.Analyze(smartchat.LocaleEN, vacancy, letter.FocusFrontend)
		assert.Equal(t, []string{"Next.js", "React", "TypeScript", "JavaScript", "API", "REST", "SQL"}, a.Keywords)
	})

	t.Run("keyword labels per locale", func(t *testing.T) {
		t.Parallel()
		de := letter.Analyze(smartchat.LocaleDE, "database team", letter.FocusFrontend)
		en := letter.Analyze(smartchat.LocaleEN, "database team", letter.FocusFrontend)
		assert.Equal(t, []string{"Datenbanken", "Teamarbeit"}, de.Keywords)
		assert.Equal(t, []string{"Databases", "Teamwork"}, en.Keywords)
	})

	t.Run("argument is focus label", func(t *testing.T) {
		t.Parallel()
		a := letter.Analyze(smartchat.LocaleEN, "x", letter.FocusAI)
		assert.Equal(t, "AI productivity", a.Argument)
		a = letter.Analyze(smartchat.LocaleEN, "x", "bogus")
		assert.Equal(t, "Frontend & UX", a.Argument)
	})

	t.Run("presets analyze", func(t *testing.T) {
		t.Parallel()
		for _, p := range letter.Presets(smartchat.LocaleDE) {
			a := letter.Analyze(smartchat.LocaleDE, p.Text, p.Focus)
			assert.NotEmpty(t, a.Company, p.ID)
			assert.NotEmpty(t, a.Role, p.ID)
		}
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("german letter", func(t *testing.T) {
		t.Parallel()
		text, err := letter.Build(letter.Request{
			Locale:    smartchat.LocaleDE,
			Vacancy:   "Ausbildung bei Muster GmbH, React und TypeScript im Team",
			Focus:     letter.FocusFrontend,
			Tone:      letter.ToneDirect,
			Strengths: []string{"team", "unknown"},
			City:      "Berlin",
			Date:      date,
		})
		require.NoError(t, err)
		lines := strings.Split(text, "\n")
		assert.Equal(t, "Berlin, den 4.3.2026", lines[0])
		assert.Equal(t, "", lines[1])
		assert.Equal(t, "Betreff: Bewerbung um die ausgeschriebene Position", lines[2])
		assert.Equal(t, "Sehr geehrtes Recruiting-Team der Muster GmbH,", lines[4])
		assert.True(t, strings.HasPrefix(lines[6], "ich bewerbe mich gezielt"))
		assert.Contains(t, text, "insbesondere React, TypeScript, Teamarbeit als zentrale Anforderungen")
		assert.Contains(t, text, "In der Zusammenarbeit bin ich verlässlich")
		assert.Equal(t, "Anlagen: Lebenslauf, Zeugnisse", lines[len(lines)-1])
		assert.Equal(t, letter.DefaultName, lines[len(lines)-3])
	})

	t.Run("english letter without city", func(t *testing.T) {
		t.Parallel()
		text, err := letter.Build(letter.Request{
			Locale:  smartchat.LocaleEN,
			Vacancy: "we want someone",
			Name:    "  Ada  ",
		})
		require.NoError(t, err)
		lines := strings.Split(text, "\n")
		assert.Equal(t, "Subject: Application for the advertised role", lines[0])
		assert.Equal(t, "Dear recruiting team,", lines[2])
		assert.Equal(t, "I have read your job posting with great interest and would like to apply for this role.", lines[4])
		assert.Contains(t, text, "I value your focus on learning mindset")
		assert.Contains(t, text, "I work with ownership")
		assert.Equal(t, "Ada", lines[len(lines)-1])
		assert.Equal(t, "Kind regards,", lines[len(lines)-2])
	})

	t.Run("english date line", func(t *testing.T) {
		t.Parallel()
		text, err := letter.Build(letter.Request{Locale: smartchat.LocaleEN, Vacancy: "x", City: "Munich", Date: date})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "Munich, March 4, 2026\n\n"))
	})

	t.Run("blank vacancy", func(t *testing.T) {
		t.Parallel()
		_, err := letter.Build(letter.Request{Vacancy: " \n "})
		assert.ErrorIs(t, err, smartchat.ErrEmptyVacancy)
	})

	t.Run("invalid tone", func(t *testing.T) {
		t.Parallel()
		_, err := letter.Build(letter.Request{Vacancy: "x", Tone: "angry"})
		assert.ErrorIs(t, err, smartchat.ErrValidation)
	})

	t.Run("strength sentences keep selection order", func(t *testing.T) {
		t.Parallel()
		text, err := letter.Build(letter.Request{
			Locale:    smartchat.LocaleEN,
			Vacancy:   "x",
			Strengths: []string{"structure", "initiative"},
		})
		require.NoError(t, err)
		assert.Less(t, strings.Index(text, "I work in a structured way"), strings.Index(text, "I show initiative"))
	})
}

func TestSelection(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"initiative", "structure"}, letter.DefaultSelection().IDs())
	})

	t.Run("never empty", func(t *testing.T) {
		t.Parallel()
		s := letter.NewSelection("team")
		s = s.Toggle("team")
		assert.Equal(t, []string{"team"}, s.IDs())
	})

	t.Run("evicts oldest", func(t *testing.T) {
		t.Parallel()
		s := letter.DefaultSelection().Toggle("team").Toggle("learning")
		assert.Equal(t, []string{"structure", "team", "learning"}, s.IDs())
	})

	t.Run("removes selected", func(t *testing.T) {
		t.Parallel()
		s := letter.DefaultSelection().Toggle("initiative")
		assert.Equal(t, []string{"structure"}, s.IDs())
		assert.False(t, s.Contains("initiative"))
	})

	t.Run("toggle does not mutate receiver", func(t *testing.T) {
		t.Parallel()
		s := letter.DefaultSelection()
		_ = s.Toggle("team")
		assert.Equal(t, []string{"initiative", "structure"}, s.IDs())
	})

	t.Run("new selection keeps last three distinct", func(t *testing.T) {
		t.Parallel()
		s := letter.NewSelection("a", "b", "a", "c", "d")
		assert.Equal(t, []string{"b", "c", "d"}, s.IDs())
		assert.Equal(t, letter.DefaultSelection(), letter.NewSelection())
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		progress   float64
		generating bool
		hasTarget  bool
		want       letter.Phase
	}{
		{0, false, false, letter.PhaseIdle},
		{0.5, true, false, letter.PhaseIdle},
		{0, true, true, letter.PhaseAnalyzing},
		{0.279, true, true, letter.PhaseAnalyzing},
		{0.28, true, true, letter.PhaseDrafting},
		{0.719, true, true, letter.PhaseDrafting},
		{0.72, true, true, letter.PhasePolishing},
		{1, true, true, letter.PhasePolishing},
		{1, false, true, letter.PhaseDone},
		{0.1, false, true, letter.PhaseDone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, letter.Status(tt.progress, tt.generating, tt.hasTarget), "%+v", tt)
	}

	assert.Equal(t, "Analysiere Stellenanzeige ...", letter.PhaseAnalyzing.Label(smartchat.LocaleDE))
	assert.Equal(t, "Ready to analyze", letter.PhaseIdle.Label(smartchat.LocaleEN))
}

func TestCopier(t *testing.T) {
	t.Parallel()

	t.Run("copied then idle", func(t *testing.T) {
		t.Parallel()
		var got string
		clip := &mock.Clipboard{WriteAllFn: func(text string) error {
			got = text
			return nil
		}}
		sched := mock.NewScheduler(time.Time{})
		c := letter.NewCopier(clip, sched)

		assert.Equal(t, letter.CopyCopied, c.Copy("Dear team"))
		assert.Equal(t, "Dear team", got)
		sched.Advance(letter.CopyResetDelay - time.Millisecond)
		assert.Equal(t, letter.CopyCopied, c.State())
		sched.Advance(time.Millisecond)
		assert.Equal(t, letter.CopyIdle, c.State())
	})

	t.Run("failure is reported through state", func(t *testing.T) {
		t.Parallel()
		clip := &mock.Clipboard{WriteAllFn: func(string) error { return errors.New("no display") }}
		sched := mock.NewScheduler(time.Time{})
		c := letter.NewCopier(clip, sched)

		assert.Equal(t, letter.CopyError, c.Copy("text"))
		assert.Equal(t, "Fehler", c.State().Label(smartchat.LocaleDE))
		sched.RunUntilIdle()
		assert.Equal(t, letter.CopyIdle, c.State())
	})

	t.Run("blank text is ignored", func(t *testing.T) {
		t.Parallel()
		clip := &mock.Clipboard{WriteAllFn: func(string) error {
			t.Fatal("unexpected write")
			return nil
		}}
		sched := mock.NewScheduler(time.Time{})
		c := letter.NewCopier(clip, sched)
		assert.Equal(t, letter.CopyIdle, c.Copy("  "))
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("second copy restarts reset timer", func(t *testing.T) {
		t.Parallel()
		clip := &mock.Clipboard{WriteAllFn: func(string) error { return nil }}
		sched := mock.NewScheduler(time.Time{})
		c := letter.NewCopier(clip, sched)

		c.Copy("one")
		sched.Advance(time.Second)
		c.Copy("two")
		sched.Advance(time.Second)
		assert.Equal(t, letter.CopyCopied, c.State())
		assert.Equal(t, 1, sched.Pending())
		sched.Advance(time.Second)
		assert.Equal(t, letter.CopyIdle, c.State())
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	presets := letter.Presets(smartchat.LocaleEN)
	require.Len(t, presets, 6)
	p, err := letter.LookupPreset(smartchat.LocaleDE, "preset-qa-testing")
	require.NoError(t, err)
	assert.Equal(t, letter.FocusAI, p.Focus)
	_, err = letter.LookupPreset(smartchat.LocaleDE, "nope")
	assert.ErrorIs(t, err, smartchat.ErrValidation)

	assert.Len(t, letter.FocusOptions(smartchat.LocaleDE), 4)
	assert.Len(t, letter.ToneOptions(smartchat.LocaleEN), 3)
	assert.Len(t, letter.Strengths(smartchat.LocaleEN), 5)

	_, err = letter.ParseFocus("design")
	assert.ErrorIs(t, err, smartchat.ErrValidation)
}
