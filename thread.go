package smartchat

import "time"

// ChatMessage is one message of a chat thread. Streaming is true while the
// assistant reply is still being revealed.
type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
	Streaming bool
}

// Thread is one conversation in the chat history.
type Thread struct {
	ID        string
	Title     string
	Model     ModelID
	CreatedAt time.Time
	UpdatedAt time.Time
	Messages  []ChatMessage
}

// HasUserMessage reports whether the thread contains a message from the user.
func (t Thread) HasUserMessage() bool {
	for _, m := range t.Messages {
		if m.Role == RoleUser {
			return true
		}
	}
	return false
}

// Last returns a pointer to the last message, or nil for an empty thread.
// The pointer refers to the backing array shared by copies of t.
func (t Thread) Last() *ChatMessage {
	if len(t.Messages) == 0 {
		return nil
	}
	return &t.Messages[len(t.Messages)-1]
}

// Session is a persisted chat history: its threads and the thread in focus.
type Session struct {
	Locale         Locale
	ActiveThreadID string
	Threads        []Thread
}
