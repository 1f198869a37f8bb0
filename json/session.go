// Package json persists chat sessions as versioned JSON documents.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kodewerk/smartchat"
)

// envelope is the v1 wire format for a persisted session.
type envelope struct {
	Version        int         `json:"version"`
	Locale         string      `json:"locale"`
	ActiveThreadID string      `json:"active_thread_id"`
	Threads        []threadDTO `json:"threads"`
}

// MarshalSession serializes a Session to JSON in v1 envelope format.
func MarshalSession(s smartchat.Session) ([]byte, error) {
	env := envelope{
		Version:        1,
		Locale:         string(s.Locale),
		ActiveThreadID: s.ActiveThreadID,
		Threads:        make([]threadDTO, len(s.Threads)),
	}
	for i, t := range s.Threads {
		env.Threads[i] = marshalThread(t)
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalSession deserializes a Session from JSON in v1 envelope format.
func UnmarshalSession(data []byte) (smartchat.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return smartchat.Session{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return smartchat.Session{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	threads := make([]smartchat.Thread, len(env.Threads))
	for i, dto := range env.Threads {
		t, err := unmarshalThread(dto)
		if err != nil {
			return smartchat.Session{}, fmt.Errorf("thread %d: %w", i, err)
		}
		threads[i] = t
	}
	s := smartchat.Session{
		Locale:         smartchat.ParseLocale(env.Locale),
		ActiveThreadID: env.ActiveThreadID,
		Threads:        threads,
	}
	if err := s.Validate(); err != nil {
		return smartchat.Session{}, fmt.Errorf("invalid session: %w", err)
	}
	return s, nil
}

// Save writes a Session to a JSON file, creating parent directories as needed.
func Save(path string, s smartchat.Session) error {
	data, err := MarshalSession(s)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Session from a JSON file.
func Load(path string) (smartchat.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return smartchat.Session{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalSession(data)
}

// List returns the paths of all JSON files below dir, sorted. A missing dir
// yields no paths.
func List(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.json", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
	}
	slices.Sort(paths)
	return paths, nil
}
