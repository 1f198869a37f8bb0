package smartchat

import "fmt"

// ModelID identifies a mock model profile.
type ModelID string

const (
	ModelGPT4o        ModelID = "gpt4o"
	ModelClaudeSonnet ModelID = "claude-sonnet"
	ModelLlama        ModelID = "llama"
)

// ModelIDs lists the model profiles in display order.
var ModelIDs = []ModelID{ModelGPT4o, ModelClaudeSonnet, ModelLlama}

// ParseModelID returns the ModelID for s.
func ParseModelID(s string) (ModelID, error) {
	for _, id := range ModelIDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownModel)
}
