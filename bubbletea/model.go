package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/chat"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

const (
	// sidebarWidth is the width of the thread list including its border.
	sidebarWidth = 30
	// sidebarMinWidth is the terminal width below which the thread list is hidden.
	sidebarMinWidth = 100
)

// Option configures a Model.
type Option func(*Model)

// WithClock sets the time source for the relative labels in the thread list.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithSaver sets a function that persists the session after each finished
// reply and after thread changes. A failed save is shown as an error.
func WithSaver(save func(smartchat.Session) error) Option {
	return func(m *Model) { m.save = save }
}

// Model is the Bubble Tea model for the chat TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	store   *chat.Store
	reply   ReplyFunc
	theme   smartchat.Theme
	styles  Styles
	spinner spinner.Model
	now     func() time.Time
	save    func(smartchat.Session) error

	// replies caches rendered reply blocks by message ID so finalized
	// paragraphs are not re-rendered on every reveal.
	replies map[string]*AssistantTextBlock
	quick   int

	seq     int
	cancel  context.CancelFunc
	eventCh chan smartchat.Event
	doneCh  chan error
	err     error
	ready   bool
	width   int
}

// New creates a new TUI Model driving store. Replies are revealed with reply.
func New(store *chat.Store, reply ReplyFunc, theme smartchat.Theme, opts ...Option) Model {
	text := store.Strings()
	ti := textinput.New()
	ti.Placeholder = text.Placeholder
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0

	styles := NewStyles(theme)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Accent))

	m := Model{
		Input:   ti,
		store:   store,
		reply:   reply,
		theme:   theme,
		styles:  styles,
		spinner: sp,
		now:     time.Now,
		replies: make(map[string]*AssistantTextBlock),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Running returns whether a reply is currently streaming.
func (m Model) Running() bool { return m.store.Streaming() }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StreamEventMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m = m.processEvent(msg.Event)
		m = m.refresh()
		if m.eventCh != nil {
			return m, listenForEvent(m.seq, m.eventCh, m.doneCh)
		}
		return m, nil

	case ReplyDoneMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.cancel = nil
		m.eventCh = nil
		m.doneCh = nil
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		// A reply that ended without EventDone keeps what was revealed.
		m.store.Stop()
		m = m.persist()
		m = m.refresh()
		cmds = append(cmds, m.Input.Focus())
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.store.Streaming() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.Viewport.SetContent(m.renderContent())
		return m, cmd
	}

	// Pass remaining messages to sub-components.
	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.store.Streaming() {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")

	main := m.Viewport.View()
	if m.sidebarVisible() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), " ", main)
	}
	b.WriteString(main)
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	b.WriteString(m.Input.View())

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	headerHeight := 1
	statusHeight := 1
	inputHeight := 1
	vpHeight := msg.Height - headerHeight - statusHeight - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	m.width = msg.Width
	vpWidth := msg.Width
	if m.sidebarVisible() {
		vpWidth = msg.Width - sidebarWidth - 1
	}

	if !m.ready {
		m.Viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = vpWidth
		m.Viewport.Height = vpHeight
	}
	m = m.refresh()

	m.Input.Width = msg.Width - lipgloss.Width(m.Input.Prompt) - 1
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	streaming := m.store.Streaming()

	switch msg.Type {
	case tea.KeyCtrlC:
		if streaming {
			m = m.stop()
			return m, m.Input.Focus()
		}
		return m, tea.Quit

	case tea.KeyCtrlS:
		if streaming {
			m = m.stop()
			return m, m.Input.Focus()
		}
		return m, nil

	case tea.KeyEnter:
		if streaming {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlN:
		if _, err := m.store.NewThread(); err != nil {
			return m, nil
		}
		m.err = nil
		m.quick = 0
		m = m.persist()
		return m.refresh(), nil

	case tea.KeyCtrlT:
		if err := m.store.SelectModel(m.nextModel()); err != nil {
			return m, nil
		}
		return m.refresh(), nil

	case tea.KeyTab:
		return m.switchThread(1), nil

	case tea.KeyShiftTab:
		return m.switchThread(-1), nil

	case tea.KeyCtrlP:
		if !streaming {
			prompts := m.store.Strings().QuickPrompts
			if len(prompts) > 0 {
				m.Input.SetValue(prompts[m.quick%len(prompts)])
				m.Input.CursorEnd()
				m.quick++
			}
		}
		return m, nil
	}

	// When idle, pass keys to both input (for typing) and viewport
	// (for scrolling). Only forward non-character keys to viewport to avoid
	// conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !streaming {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	reply, err := m.store.Send(text)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.Input.SetValue("")
	m.err = nil

	// Any earlier reply has already ended; its late messages carry an old Seq.
	if m.cancel != nil {
		m.cancel()
	}
	m.seq++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.eventCh = make(chan smartchat.Event, 256)
	m.doneCh = make(chan error, 1)

	m.Input.Blur()
	m = m.refresh()

	return m, tea.Batch(
		startReply(m.reply, ctx, reply, m.eventCh, m.doneCh),
		listenForEvent(m.seq, m.eventCh, m.doneCh),
		m.spinner.Tick,
	)
}

// stop cancels the streaming reply and keeps the text revealed so far.
func (m Model) stop() Model {
	if m.cancel != nil {
		m.cancel()
	}
	m.store.Stop()
	m = m.persist()
	return m.refresh()
}

// processEvent applies a reveal event to the streaming message.
func (m Model) processEvent(evt smartchat.Event) Model {
	switch e := evt.(type) {
	case smartchat.EventReveal:
		m.store.Update(e.Prefix)
	case smartchat.EventDone:
		m.store.Update(e.Text)
		m.store.Finish()
	}
	return m
}

func (m Model) nextModel() smartchat.ModelID {
	models := chat.Models(m.store.Locale())
	current := m.store.ActiveModel().ID
	i := slices.IndexFunc(models, func(p chat.Profile) bool { return p.ID == current })
	return models[(i+1)%len(models)].ID
}

// switchThread focuses the thread delta positions away in the history list,
// wrapping around.
func (m Model) switchThread(delta int) Model {
	threads := m.store.Threads()
	if len(threads) < 2 {
		return m
	}
	active := m.store.Active().ID
	i := slices.IndexFunc(threads, func(t smartchat.Thread) bool { return t.ID == active })
	next := threads[((i+delta)%len(threads)+len(threads))%len(threads)]
	if err := m.store.Switch(next.ID); err != nil {
		return m
	}
	m.err = nil
	m.quick = 0
	return m.refresh()
}

func (m Model) persist() Model {
	if m.save == nil {
		return m
	}
	if err := m.save(m.store.Session()); err != nil {
		m.err = fmt.Errorf("saving session: %w", err)
	}
	return m
}

func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

// blocks builds the blocks of the active thread.
func (m Model) blocks() []MessageBlock {
	thread := m.store.Active()
	text := m.store.Strings()
	label := text.AssistantLabel + " · " + m.store.ActiveModel().Label

	var blocks []MessageBlock
	for _, msg := range thread.Messages {
		switch msg.Role {
		case smartchat.RoleUser:
			blocks = append(blocks, NewUserMessageBlock(text.UserLabel, msg.Content, m.styles))
		case smartchat.RoleAssistant:
			if msg.Streaming && msg.Content == "" {
				blocks = append(blocks, NewTypingBlock(label, text.Typing, m.spinner, m.styles))
				continue
			}
			b, ok := m.replies[msg.ID]
			if !ok {
				b = NewAssistantTextBlock(label, m.theme, m.styles)
				m.replies[msg.ID] = b
			}
			b.Set(msg.Content)
			blocks = append(blocks, b)
		}
	}
	if m.err != nil {
		blocks = append(blocks, NewErrorBlock(m.store.Strings().ErrorLabel, m.err, m.styles))
	}
	return blocks
}

func (m Model) renderContent() string {
	width := m.Viewport.Width
	var b strings.Builder
	for i, block := range m.blocks() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(width))
	}
	if !m.store.Active().HasUserMessage() {
		b.WriteString("\n\n")
		b.WriteString(m.quickPrompts(width))
	}
	return b.String()
}

func (m Model) quickPrompts(width int) string {
	text := m.store.Strings()
	var b strings.Builder
	b.WriteString(m.styles.Muted.Render(text.QuickPromptsTitle + " (ctrl+p)"))
	for _, p := range text.QuickPrompts {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(truncate("• "+p, width)))
	}
	return b.String()
}

func (m Model) header() string {
	text := m.store.Strings()
	model := m.store.ActiveModel()
	info := model.Label + " · " + model.Badge + " · " + m.store.Active().Title
	if m.width > 0 {
		info = truncate(info, max(m.width-runewidth.StringWidth(text.Title)-2, 1))
	}
	return m.styles.Title.Render(text.Title) + "  " + m.styles.Muted.Render(info)
}

func (m Model) sidebarVisible() bool {
	return m.width >= sidebarMinWidth
}

func (m Model) sidebar() string {
	inner := sidebarWidth - 2
	list := renderThreadList(threadList{
		threads: m.store.Threads(),
		active:  m.store.Active().ID,
		now:     m.now(),
		locale:  m.store.Locale(),
		text:    m.store.Strings(),
		width:   inner,
		height:  m.Viewport.Height,
		styles:  m.styles,
	})
	return m.styles.Sidebar.Width(sidebarWidth - 1).Height(m.Viewport.Height).Render(list)
}

func (m Model) statusLine() string {
	text := m.store.Strings()
	if m.err != nil {
		return m.styles.Error.Render(text.ErrorHint)
	}
	if m.store.Streaming() {
		return m.spinner.View() + " " + m.styles.Muted.Render(text.Typing)
	}
	return m.styles.Muted.Render(text.Hint)
}

// startReply runs the reply in a goroutine and signals completion on doneCh.
// eventCh is never closed: a custom ReplyFunc may leave senders behind.
func startReply(run ReplyFunc, ctx context.Context, text string, eventCh chan<- smartchat.Event, doneCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		err := run(ctx, text, func(e smartchat.Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
		doneCh <- err
		return nil
	}
}

// listenForEvent waits for the next event or for the reply to finish.
// Events sent before the reply returned are delivered before ReplyDoneMsg.
func listenForEvent(seq int, ch <-chan smartchat.Event, doneCh chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-ch:
			return StreamEventMsg{Seq: seq, Event: evt}
		case err := <-doneCh:
			select {
			case evt := <-ch:
				doneCh <- err
				return StreamEventMsg{Seq: seq, Event: evt}
			default:
			}
			return ReplyDoneMsg{Seq: seq, Err: err}
		}
	}
}
