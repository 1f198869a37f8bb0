package json

import (
	"fmt"
	"time"

	"github.com/kodewerk/smartchat"
)

type threadDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Model     string       `json:"model"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Messages  []messageDTO `json:"messages"`
}

// messageDTO is the JSON representation of a ChatMessage.
type messageDTO struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Streaming bool      `json:"streaming,omitempty"`
}

func marshalThread(t smartchat.Thread) threadDTO {
	dto := threadDTO{
		ID:        t.ID,
		Title:     t.Title,
		Model:     string(t.Model),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Messages:  make([]messageDTO, len(t.Messages)),
	}
	for i, m := range t.Messages {
		dto.Messages[i] = messageDTO{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
			Streaming: m.Streaming,
		}
	}
	return dto
}

func unmarshalThread(dto threadDTO) (smartchat.Thread, error) {
	model, err := smartchat.ParseModelID(dto.Model)
	if err != nil {
		return smartchat.Thread{}, err
	}
	msgs := make([]smartchat.ChatMessage, len(dto.Messages))
	for i, m := range dto.Messages {
		role, err := unmarshalRole(m.Role)
		if err != nil {
			return smartchat.Thread{}, fmt.Errorf("message %d: %w", i, err)
		}
		msgs[i] = smartchat.ChatMessage{
			ID:        m.ID,
			Role:      role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
			Streaming: m.Streaming,
		}
	}
	return smartchat.Thread{
		ID:        dto.ID,
		Title:     dto.Title,
		Model:     model,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		Messages:  msgs,
	}, nil
}

func unmarshalRole(s string) (smartchat.Role, error) {
	switch r := smartchat.Role(s); r {
	case smartchat.RoleUser, smartchat.RoleAssistant:
		return r, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}
