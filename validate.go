package smartchat

import "fmt"

// Validate checks the structural constraints of a restored session: thread
// and message IDs are present and unique within their scope, every message
// has a known role, and only the last message of a thread may be streaming.
func (s Session) Validate() error {
	seen := make(map[string]bool, len(s.Threads))
	for i, t := range s.Threads {
		if t.ID == "" {
			return fmt.Errorf("thread %d: missing id: %w", i, ErrValidation)
		}
		if seen[t.ID] {
			return fmt.Errorf("thread %d: duplicate id %q: %w", i, t.ID, ErrValidation)
		}
		seen[t.ID] = true
		if err := t.Validate(); err != nil {
			return fmt.Errorf("thread %s: %w", t.ID, err)
		}
	}
	if s.ActiveThreadID != "" && !seen[s.ActiveThreadID] {
		return fmt.Errorf("active thread %q: %w", s.ActiveThreadID, ErrThreadNotFound)
	}
	return nil
}

// Validate checks a thread's model and messages.
func (t Thread) Validate() error {
	if _, err := ParseModelID(string(t.Model)); err != nil {
		return err
	}
	ids := make(map[string]bool, len(t.Messages))
	for i, m := range t.Messages {
		if err := ValidateMessage(m); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		if ids[m.ID] {
			return fmt.Errorf("message %d: duplicate id %q: %w", i, m.ID, ErrValidation)
		}
		ids[m.ID] = true
		if m.Streaming && i != len(t.Messages)-1 {
			return fmt.Errorf("message %d: streaming message is not last: %w", i, ErrValidation)
		}
	}
	return nil
}

// ValidateMessage checks that a message has an ID and a known role, and that
// only assistant messages are marked as streaming.
func ValidateMessage(m ChatMessage) error {
	if m.ID == "" {
		return fmt.Errorf("missing message id: %w", ErrValidation)
	}
	switch m.Role {
	case RoleUser:
		if m.Streaming {
			return fmt.Errorf("streaming not allowed in %s message: %w", m.Role, ErrValidation)
		}
	case RoleAssistant:
	default:
		return fmt.Errorf("unknown role %q: %w", m.Role, ErrValidation)
	}
	return nil
}
