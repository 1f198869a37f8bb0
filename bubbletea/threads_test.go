package bubbletea_test

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kodewerk/smartchat"
	bt "github.com/kodewerk/smartchat/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderThreadList(t *testing.T) {
	t.Parallel()

	threads := []smartchat.Thread{
		{
			ID:        "a",
			Title:     "Streaming chat in React with a very long title",
			UpdatedAt: epoch.Add(-30 * time.Second),
			Messages: []smartchat.ChatMessage{
				{Role: smartchat.RoleAssistant, Content: "Here is   the\ncode"},
			},
		},
		{
			ID:        "b",
			Title:     "Architecture",
			UpdatedAt: epoch.Add(-5 * time.Minute),
			Messages: []smartchat.ChatMessage{
				{Role: smartchat.RoleAssistant, Streaming: true},
			},
		},
	}

	t.Run("marks the active thread", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderThreadList(threads, "b", epoch, smartchat.LocaleEN, 28, 20)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "Chat history", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "  Streaming chat"))
		assert.Equal(t, "▸ Architecture", lines[3])
	})

	t.Run("shows relative time and preview", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderThreadList(threads, "a", epoch, smartchat.LocaleEN, 60, 20)
		assert.Contains(t, out, "just now · Here is the code")
		assert.Contains(t, out, "5 min ago · Streaming response ...")
	})

	t.Run("german labels", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderThreadList(threads, "a", epoch, smartchat.LocaleDE, 60, 20)
		assert.Contains(t, out, "Chat-Verlauf")
		assert.Contains(t, out, "gerade eben")
		assert.Contains(t, out, "vor 5 Min")
	})

	t.Run("truncates to width", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderThreadList(threads, "a", epoch, smartchat.LocaleEN, 20, 20)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 20, "line too wide: %q", line)
		}
		assert.Contains(t, out, "…")
	})

	t.Run("leaves out threads that do not fit", func(t *testing.T) {
		t.Parallel()
		out := bt.RenderThreadList(threads, "a", epoch, smartchat.LocaleEN, 28, 3)
		assert.Contains(t, out, "Streaming chat")
		assert.NotContains(t, out, "Architecture")
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"cut with ellipsis", "hello world", 6, "hello…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
		{"zero width keeps text", "hello", 0, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bt.Truncate(tt.in, tt.width))
		})
	}
}
