package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/ansi"
	"github.com/kodewerk/smartchat/letter"
	"github.com/kodewerk/smartchat/stream"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

type letterOptions struct {
	preset    string
	vacancy   string
	focus     string
	tone      string
	strengths []string
	name      string
	city      string
	width     int
	clipboard bool
	list      bool
}

func newLetterCmd(a *app) *cobra.Command {
	var opts letterOptions
	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Write a cover letter for a vacancy",
		Long: `Analyse a vacancy and write a cover letter for it.

The vacancy comes from a preset (--preset) or a file (--vacancy, "-" for
stdin). On a terminal the letter is revealed as a stream; the analysis and
progress are written to stderr.

Examples:
  smartchat letter --preset preset-startup-frontend
  smartchat letter --vacancy job.txt --focus teamfit --tone direct --strength learning
  smartchat letter --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := a.locale(cmd)
			if opts.list {
				return listLetterOptions(cmd.OutOrStdout(), locale)
			}
			return writeLetter(cmd, a, locale, opts)
		},
	}
	cmd.Flags().String("locale", "", "language of the letter: de or en")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "vacancy preset ID (see --list)")
	cmd.Flags().StringVar(&opts.vacancy, "vacancy", "", `vacancy text file, "-" reads stdin`)
	cmd.Flags().StringVar(&opts.focus, "focus", "", "focus: frontend, fullstack, teamfit or ai")
	cmd.Flags().StringVar(&opts.tone, "tone", "", "tone: professional, motivated or direct")
	cmd.Flags().StringSliceVar(&opts.strengths, "strength", nil, "strength ID, repeatable, at most 3 are kept")
	cmd.Flags().StringVar(&opts.name, "name", "", "applicant name (default from settings)")
	cmd.Flags().StringVar(&opts.city, "city", "", "city for the date line (default from settings)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "wrap width (default terminal width)")
	cmd.Flags().BoolVar(&opts.clipboard, "copy", false, "copy the letter to the clipboard")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list presets, focus, tone and strength options")
	cmd.MarkFlagsMutuallyExclusive("preset", "vacancy")
	return cmd
}

func writeLetter(cmd *cobra.Command, a *app, locale smartchat.Locale, opts letterOptions) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	text := letter.Text(locale)

	vacancy, focus, err := resolveVacancy(cmd.InOrStdin(), locale, opts)
	if err != nil {
		return err
	}
	name := opts.name
	if name == "" {
		name = a.cfg.Letter.Name
	}
	city := opts.city
	if city == "" {
		city = a.cfg.Letter.City
	}
	req := letter.Request{
		Locale:    locale,
		Vacancy:   vacancy,
		Focus:     letter.Focus(focus),
		Tone:      letter.Tone(opts.tone),
		Strengths: letter.NewSelection(opts.strengths...).IDs(),
		Name:      name,
		City:      city,
		Date:      a.now(),
	}
	body, err := letter.Build(req)
	if err != nil {
		if strings.TrimSpace(vacancy) == "" {
			return fmt.Errorf("%s: %w", text.ErrorRequired, err)
		}
		return err
	}
	a.log.WithFields(logrus.Fields{
		"locale":    locale,
		"focus":     req.Focus,
		"tone":      req.Tone,
		"strengths": req.Strengths,
	}).Info("letter built")

	status := newStatusPrinter(stderr, locale, isTerminal(stdout) && isTerminal(stderr))
	status.analysis(letter.Analyze(locale, vacancy, letter.Focus(focus)))

	width := opts.width
	if width <= 0 {
		width = terminalWidth(stdout, defaultWidth)
	}
	wrapped := wrapLetter(body, width)

	if isTerminal(stdout) {
		err = revealLetter(cmd, wrapped, a.cfg.Letter.Pacing.Stream(), status)
	} else {
		status.update(1, true)
		_, err = io.WriteString(stdout, wrapped)
		status.update(1, false)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	if opts.clipboard {
		copier := letter.NewCopier(a.clip, stream.TimerScheduler{})
		state := copier.Copy(body)
		if state == letter.CopyError {
			a.log.Warn("clipboard unavailable")
		}
		status.copied(state)
	}
	return nil
}

// resolveVacancy returns the vacancy text and the focus to use: the flag
// when given, else the preset's focus.
func resolveVacancy(stdin io.Reader, locale smartchat.Locale, opts letterOptions) (string, string, error) {
	focus := opts.focus
	switch {
	case opts.preset != "":
		p, err := letter.LookupPreset(locale, opts.preset)
		if err != nil {
			return "", "", err
		}
		if focus == "" {
			focus = string(p.Focus)
		}
		return p.Text, focus, nil
	case opts.vacancy == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read vacancy: %w", err)
		}
		return ansi.Sanitize(string(data)), focus, nil
	case opts.vacancy != "":
		data, err := os.ReadFile(opts.vacancy)
		if err != nil {
			return "", "", fmt.Errorf("read vacancy: %w", err)
		}
		return ansi.Sanitize(string(data)), focus, nil
	default:
		return "", focus, nil
	}
}

// wrapLetter word-wraps text at spaces only, so hyphenated words stay
// whole, then hard-wraps any word longer than width.
func wrapLetter(text string, width int) string {
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(text))
	_ = w.Close()
	return wrap.String(w.String(), width)
}

// revealLetter streams text to the command's stdout, writing only the part
// of each prefix that was not written yet.
func revealLetter(cmd *cobra.Command, text string, pacing stream.Pacing, status *statusPrinter) error {
	out := cmd.OutOrStdout()
	total := len(text)
	written := 0
	var werr error
	err := stream.Reveal(cmd.Context(), stream.TimerScheduler{}, text, func(e smartchat.Event) {
		var prefix string
		switch e := e.(type) {
		case smartchat.EventReveal:
			prefix = e.Prefix
			status.update(float64(len(prefix))/float64(total), true)
		case smartchat.EventDone:
			prefix = e.Text
		}
		if werr == nil && len(prefix) > written {
			_, werr = io.WriteString(out, prefix[written:])
			written = len(prefix)
		}
	}, stream.WithPacing(pacing))
	if err != nil {
		return err
	}
	status.update(1, false)
	return werr
}

func listLetterOptions(w io.Writer, locale smartchat.Locale) error {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Presets")
	for _, p := range letter.Presets(locale) {
		fmt.Fprintf(w, "  %-16s %s\n", p.ID, p.Label)
	}
	bold.Fprintln(w, "Focus")
	for _, f := range letter.FocusOptions(locale) {
		fmt.Fprintf(w, "  %-16s %s\n", f.Value, f.Hint)
	}
	bold.Fprintln(w, "Tone")
	for _, t := range letter.ToneOptions(locale) {
		fmt.Fprintf(w, "  %-16s %s\n", t.Value, t.Hint)
	}
	bold.Fprintln(w, "Strengths")
	for _, s := range letter.Strengths(locale) {
		fmt.Fprintf(w, "  %-16s %s\n", s.ID, s.Label)
	}
	return nil
}

// statusPrinter reports the analysis and generation phase on stderr. When
// the letter streams to the same terminal only the final phase is printed,
// so that progress lines do not break into the letter.
type statusPrinter struct {
	w      io.Writer
	locale smartchat.Locale
	quiet  bool
	last   letter.Phase
}

func newStatusPrinter(w io.Writer, locale smartchat.Locale, quiet bool) *statusPrinter {
	return &statusPrinter{w: w, locale: locale, quiet: quiet, last: letter.PhaseIdle}
}

func (s *statusPrinter) analysis(a letter.Analysis) {
	text := letter.Text(s.locale)
	label := color.New(color.FgCyan, color.Bold)
	keywords := strings.Join(a.Keywords, ", ")
	if keywords == "" {
		keywords = text.NoKeywords
	}
	fmt.Fprintf(s.w, "%s %s\n", label.Sprint(text.Company+":"), a.Company)
	fmt.Fprintf(s.w, "%s %s\n", label.Sprint(text.Role+":"), a.Role)
	fmt.Fprintf(s.w, "%s %s\n", label.Sprint(text.Keywords+":"), keywords)
	fmt.Fprintf(s.w, "%s %s\n\n", label.Sprint(text.Argument+":"), a.Argument)
}

func (s *statusPrinter) update(progress float64, generating bool) {
	phase := letter.Status(progress, generating, true)
	if phase == s.last {
		return
	}
	s.last = phase
	if s.quiet && phase != letter.PhaseDone {
		return
	}
	c := color.New(color.FgYellow)
	if phase == letter.PhaseDone {
		c = color.New(color.FgGreen)
	}
	fmt.Fprintln(s.w, c.Sprint("» "+phase.Label(s.locale)))
}

func (s *statusPrinter) copied(state letter.CopyState) {
	c := color.New(color.FgGreen)
	if state == letter.CopyError {
		c = color.New(color.FgRed)
	}
	fmt.Fprintln(s.w, c.Sprint(state.Label(s.locale)))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalWidth returns the width of w when it is a terminal, then $COLUMNS,
// then fallback.
func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return fallback
}
