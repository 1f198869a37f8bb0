package bubbletea_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kodewerk/smartchat"
	bt "github.com/kodewerk/smartchat/bubbletea"
	"github.com/kodewerk/smartchat/markdown"
	"github.com/stretchr/testify/assert"
)

func newAssistantBlock(label string) *bt.AssistantTextBlock {
	theme := smartchat.DefaultTheme()
	return bt.NewAssistantTextBlock(label, theme, bt.NewStyles(theme))
}

func TestAssistantTextBlock_View(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("hello **world**")
		view := block.View(80)
		assert.Contains(t, view, "hello")
		assert.Contains(t, view, "world")
		assert.NotContains(t, view, "**")
	})

	t.Run("label heads the reply", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("SmartChat · GPT-4o")
		block.Set("hello")
		lines := strings.Split(block.View(80), "\n")
		assert.Equal(t, "SmartChat · GPT-4o", lines[0])
		assert.Contains(t, lines[1], "hello")
	})

	t.Run("longer prefixes replace the text", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("hello ")
		block.Set("hello world")
		assert.Equal(t, "hello world", block.Text())
		assert.Contains(t, block.View(80), "hello world")
	})

	t.Run("diverging text drops the finalized cache", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("first paragraph\n\nsecond")
		block.View(80)
		block.Set("other text")
		view := block.View(80)
		assert.NotContains(t, view, "first paragraph")
		assert.Contains(t, view, "other text")
	})

	t.Run("wraps paragraphs to width", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("short words that keep going and going beyond thirty columns easily")
		view := block.View(30)
		assert.Contains(t, view, "easily")
		assert.Greater(t, strings.Count(view, "\n"), 0)
	})

	t.Run("finalized paragraph stays while trailing text streams", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("first paragraph\n\n")
		block.Set("first paragraph\n\ntrailing")
		view := block.View(80)
		assert.Contains(t, view, "first paragraph")
		assert.Contains(t, view, "trailing")
		assert.Equal(t, 1, strings.Count(view, "\n\n"))
	})

	t.Run("width change re-renders cached finalized content", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("word1 word2 word3 word4 word5 word6\n\ntail")
		narrow := block.View(20)
		wide := block.View(80)
		assert.NotEqual(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
	})

	t.Run("content ending at paragraph boundary has no spurious whitespace", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("complete paragraph\n\n")
		view := block.View(80)
		assert.Equal(t, strings.TrimRight(view, "\n"), strings.TrimRight(
			markdown.Render("complete paragraph", 80, smartchat.DefaultTheme()), "\n",
		))
	})

	t.Run("unclosed fenced code block renders as code", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("```go\nfmt.Println(\"x\")")
		view := block.View(80)
		assert.Contains(t, view, "fmt.Println")
		assert.Contains(t, view, "go")
		assert.NotContains(t, view, "```")
	})

	t.Run("blank line inside code fence does not split finalization", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("text\n\n```go\nfunc() {\n\ncode")
		view := block.View(80)
		assert.Contains(t, view, "code")
		assert.Contains(t, view, "text")
		assert.NotContains(t, view, "```")
	})

	t.Run("update returns self with no command", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("hello")
		updated, cmd := block.Update(tea.KeyMsg{})
		assert.Equal(t, block, updated)
		assert.Nil(t, cmd)
	})

	t.Run("empty content renders empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, newAssistantBlock("").View(80))
	})

	t.Run("empty content with label renders only the label", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "SmartChat", newAssistantBlock("SmartChat").View(80))
	})

	t.Run("zero width renders gracefully", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("hello world")
		assert.NotPanics(t, func() { block.View(0) })
		assert.Contains(t, block.View(0), "hello world")
	})

	t.Run("zero width keeps finalized paragraphs", func(t *testing.T) {
		t.Parallel()
		block := newAssistantBlock("")
		block.Set("first paragraph\n\nsecond part")
		view := block.View(0)
		assert.Contains(t, view, "first paragraph")
		assert.Contains(t, view, "second part")
	})
}
