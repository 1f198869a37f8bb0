package smartchat

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrEmptyText indicates a reveal or prompt was started with empty text.
	ErrEmptyText = errors.New("empty text")

	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrStreaming indicates an operation that is refused while a reply streams.
	ErrStreaming = errors.New("reply is streaming")

	// ErrThreadNotFound indicates the requested thread does not exist.
	ErrThreadNotFound = errors.New("thread not found")

	// ErrUnknownModel indicates the requested model profile does not exist.
	ErrUnknownModel = errors.New("unknown model")

	// ErrEmptyVacancy indicates a cover letter was requested without a vacancy text.
	ErrEmptyVacancy = errors.New("vacancy text is required")
)
