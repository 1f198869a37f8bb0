// Package chat implements the thread history and mock replies of the chat.
package chat

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/ansi"
	"github.com/sirupsen/logrus"
)

// Store holds the threads of one chat session and tracks the reply that is
// currently streaming. Only one reply streams at a time; operations that
// would change the conversation under it are refused with
// smartchat.ErrStreaming. Store is not safe for concurrent use.
type Store struct {
	locale smartchat.Locale
	text   Strings
	now    func() time.Time
	newID  func() string
	log    logrus.FieldLogger

	threads []smartchat.Thread
	active  string

	streaming    bool
	streamThread string
	streamMsg    string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs sets the thread and message ID generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithSession restores a saved session. Messages that were streaming when
// the session was saved are kept as stopped replies.
func WithSession(session smartchat.Session) Option {
	return func(s *Store) {
		s.threads = make([]smartchat.Thread, 0, len(session.Threads))
		for _, t := range session.Threads {
			t = cloneThread(t)
			for i := range t.Messages {
				t.Messages[i].Streaming = false
			}
			s.threads = append(s.threads, t)
		}
		s.active = session.ActiveThreadID
	}
}

// NewStore returns a Store for locale. Without a restored session it starts
// with one thread holding the welcome message.
func NewStore(locale smartchat.Locale, opts ...Option) *Store {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Store{
		locale: smartchat.ParseLocale(string(locale)),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		log:    discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.text = Copy(s.locale)
	if len(s.threads) == 0 {
		t := s.newThread(smartchat.ModelGPT4o)
		s.threads = []smartchat.Thread{t}
		s.active = t.ID
	}
	if s.index(s.active) < 0 {
		s.active = s.Threads()[0].ID
	}
	return s
}

// Locale returns the store's locale.
func (s *Store) Locale() smartchat.Locale { return s.locale }

// Strings returns the chat text for the store's locale.
func (s *Store) Strings() Strings { return s.text }

// Streaming reports whether a reply is being streamed.
func (s *Store) Streaming() bool { return s.streaming }

// Active returns a copy of the thread in focus.
func (s *Store) Active() smartchat.Thread {
	return cloneThread(s.threads[s.index(s.active)])
}

// ActiveModel returns the profile of the model the active thread uses.
func (s *Store) ActiveModel() Profile {
	p, err := Model(s.locale, s.threads[s.index(s.active)].Model)
	if err != nil {
		return Models(s.locale)[0]
	}
	return p
}

// Threads returns copies of all threads, most recently updated first.
func (s *Store) Threads() []smartchat.Thread {
	out := make([]smartchat.Thread, 0, len(s.threads))
	for _, t := range s.threads {
		out = append(out, cloneThread(t))
	}
	slices.SortStableFunc(out, func(a, b smartchat.Thread) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// Session returns the state to persist.
func (s *Store) Session() smartchat.Session {
	threads := make([]smartchat.Thread, 0, len(s.threads))
	for _, t := range s.threads {
		threads = append(threads, cloneThread(t))
	}
	return smartchat.Session{Locale: s.locale, ActiveThreadID: s.active, Threads: threads}
}

// NewThread creates a thread using the active thread's model and focuses it.
func (s *Store) NewThread() (smartchat.Thread, error) {
	if s.streaming {
		return smartchat.Thread{}, fmt.Errorf("new thread: %w", smartchat.ErrStreaming)
	}
	t := s.newThread(s.threads[s.index(s.active)].Model)
	s.threads = append([]smartchat.Thread{t}, s.threads...)
	s.active = t.ID
	s.log.WithField("thread", t.ID).Debug("thread created")
	return cloneThread(t), nil
}

// Switch focuses the thread with id.
func (s *Store) Switch(id string) error {
	if s.streaming {
		return fmt.Errorf("switch thread: %w", smartchat.ErrStreaming)
	}
	if s.index(id) < 0 {
		return fmt.Errorf("switch thread %q: %w", id, smartchat.ErrThreadNotFound)
	}
	s.active = id
	return nil
}

// SelectModel sets the model of the active thread.
func (s *Store) SelectModel(id smartchat.ModelID) error {
	if s.streaming {
		return fmt.Errorf("select model: %w", smartchat.ErrStreaming)
	}
	if _, err := smartchat.ParseModelID(string(id)); err != nil {
		return fmt.Errorf("select model: %w", err)
	}
	t := &s.threads[s.index(s.active)]
	t.Model = id
	t.UpdatedAt = s.now()
	s.log.WithFields(logrus.Fields{"thread": t.ID, "model": id}).Debug("model selected")
	return nil
}

// Send appends prompt and an empty streaming assistant message to the
// active thread and returns the full reply to reveal into it. The first
// prompt of a thread also becomes its title.
func (s *Store) Send(prompt string) (string, error) {
	if s.streaming {
		return "", fmt.Errorf("send: %w", smartchat.ErrStreaming)
	}
	trimmed := strings.TrimSpace(ansi.Sanitize(prompt))
	if trimmed == "" {
		return "", fmt.Errorf("send: %w", smartchat.ErrEmptyText)
	}

	t := &s.threads[s.index(s.active)]
	if !t.HasUserMessage() {
		t.Title = ThreadTitle(trimmed, s.text.Untitled)
	}
	reply := BuildReply(s.locale, trimmed, s.ActiveModel())

	ts := s.now()
	user := smartchat.ChatMessage{ID: s.newID(), Role: smartchat.RoleUser, Content: trimmed, CreatedAt: ts}
	assistant := smartchat.ChatMessage{ID: s.newID(), Role: smartchat.RoleAssistant, CreatedAt: ts, Streaming: true}
	t.Messages = append(t.Messages, user, assistant)
	t.UpdatedAt = ts

	s.streaming = true
	s.streamThread = t.ID
	s.streamMsg = assistant.ID
	s.log.WithFields(logrus.Fields{
		"thread": t.ID,
		"model":  t.Model,
		"topic":  RouteTopic(s.locale, trimmed),
	}).Info("reply started")
	return reply, nil
}

// Update sets the content of the streaming reply. It is a no-op when no
// reply is streaming.
func (s *Store) Update(prefix string) {
	if m := s.streamingMessage(); m != nil {
		m.Content = prefix
	}
}

// Finish marks the streaming reply as complete.
func (s *Store) Finish() {
	s.endStream("reply finished")
}

// Stop ends the streaming reply early, keeping the content revealed so far.
func (s *Store) Stop() {
	s.endStream("reply stopped")
}

func (s *Store) endStream(msg string) {
	m := s.streamingMessage()
	if m == nil {
		return
	}
	m.Streaming = false
	s.streaming = false
	s.log.WithFields(logrus.Fields{"thread": s.streamThread, "chars": len(m.Content)}).Info(msg)
}

func (s *Store) streamingMessage() *smartchat.ChatMessage {
	if !s.streaming {
		return nil
	}
	i := s.index(s.streamThread)
	if i < 0 {
		return nil
	}
	t := &s.threads[i]
	t.UpdatedAt = s.now()
	for j := range t.Messages {
		if t.Messages[j].ID == s.streamMsg {
			return &t.Messages[j]
		}
	}
	return nil
}

func (s *Store) newThread(model smartchat.ModelID) smartchat.Thread {
	ts := s.now()
	return smartchat.Thread{
		ID:        s.newID(),
		Title:     s.text.Untitled,
		Model:     model,
		CreatedAt: ts,
		UpdatedAt: ts,
		Messages: []smartchat.ChatMessage{{
			ID:        s.newID(),
			Role:      smartchat.RoleAssistant,
			Content:   s.text.Welcome,
			CreatedAt: ts,
		}},
	}
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.threads, func(t smartchat.Thread) bool { return t.ID == id })
}

func cloneThread(t smartchat.Thread) smartchat.Thread {
	t.Messages = slices.Clone(t.Messages)
	return t
}
