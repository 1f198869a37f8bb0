package markdown_test

import (
	"strings"
	"testing"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("code fence between paragraphs", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("intro\n```ts\nconst a = 1;\n```\nend")
		assert.Equal(t, []smartchat.Block{
			smartchat.Paragraph{Text: "intro"},
			smartchat.CodeBlock{Language: "typescript", Lines: []string{"const a = 1;"}},
			smartchat.Paragraph{Text: "end"},
		}, blocks)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, markdown.Parse(""))
		assert.Empty(t, markdown.Parse("\n\n  \n"))
	})

	t.Run("code fence without tag is text", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("```\nplain\n  indented\n```")
		assert.Equal(t, []smartchat.Block{
			smartchat.CodeBlock{Language: "text", Lines: []string{"plain", "  indented"}},
		}, blocks)
	})

	t.Run("unknown fence tag is text", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("```cobol\nDISPLAY 'HI'.\n```")
		require.Len(t, blocks, 1)
		assert.Equal(t, "text", blocks[0].(smartchat.CodeBlock).Language)
	})

	t.Run("fence tag aliases", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("```SH\nls\n```\n```js\nx\n```")
		require.Len(t, blocks, 2)
		assert.Equal(t, "bash", blocks[0].(smartchat.CodeBlock).Language)
		assert.Equal(t, "javascript", blocks[1].(smartchat.CodeBlock).Language)
	})

	t.Run("code keeps markdown markers verbatim", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("```bash\n# comment\n- not a list\n```")
		assert.Equal(t, []smartchat.Block{
			smartchat.CodeBlock{Language: "bash", Lines: []string{"# comment", "- not a list"}},
		}, blocks)
	})

	t.Run("unclosed fence degrades to paragraph", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("intro\n```ts\nconst a")
		require.NotEmpty(t, blocks)
		last, ok := blocks[len(blocks)-1].(smartchat.Paragraph)
		require.True(t, ok)
		assert.Contains(t, last.Text, "const a")
	})

	t.Run("every prefix parses", func(t *testing.T) {
		t.Parallel()
		doc := "## Plan\n\nSteps:\n\n1. **Read** the `diff`\n2. Test\n\n> note\n\n```go\nfunc main() {}\n```\n- done"
		for i := 1; i <= len(doc); i++ {
			assert.NotPanics(t, func() {
				blocks := markdown.Parse(doc[:i])
				assert.NotEmpty(t, blocks, "prefix %q", doc[:i])
			})
		}
	})

	t.Run("headings", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("## Two\n### Three\n#### Four")
		assert.Equal(t, []smartchat.Block{
			smartchat.Heading{Level: 2, Text: "Two"},
			smartchat.Heading{Level: 3, Text: "Three"},
			smartchat.Heading{Level: 4, Text: "Four"},
		}, blocks)
	})

	t.Run("level one and five headings are paragraphs", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("# One\n\n##### Five")
		assert.Equal(t, []smartchat.Block{
			smartchat.Paragraph{Text: "# One"},
			smartchat.Paragraph{Text: "##### Five"},
		}, blocks)
	})

	t.Run("heading ends a paragraph", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("first line\nsecond line\n## Next")
		assert.Equal(t, []smartchat.Block{
			smartchat.Paragraph{Text: "first line second line"},
			smartchat.Heading{Level: 2, Text: "Next"},
		}, blocks)
	})

	t.Run("hash without space continues paragraph", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("see\n##tag here")
		assert.Equal(t, []smartchat.Block{
			smartchat.Paragraph{Text: "see ##tag here"},
		}, blocks)
	})

	t.Run("unordered list", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("- one\n* two\n-   three")
		assert.Equal(t, []smartchat.Block{
			smartchat.List{Items: []string{"one", "two", "three"}},
		}, blocks)
	})

	t.Run("ordered list", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("1. first\n2. second\n10. tenth")
		assert.Equal(t, []smartchat.Block{
			smartchat.List{Ordered: true, Items: []string{"first", "second", "tenth"}},
		}, blocks)
	})

	t.Run("list kinds do not merge", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("- a\n1. b")
		assert.Equal(t, []smartchat.Block{
			smartchat.List{Items: []string{"a"}},
			smartchat.List{Ordered: true, Items: []string{"b"}},
		}, blocks)
	})

	t.Run("quote lines join", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("> one\n> two\nafter")
		assert.Equal(t, []smartchat.Block{
			smartchat.Quote{Text: "one two"},
			smartchat.Paragraph{Text: "after"},
		}, blocks)
	})

	t.Run("paragraphs split on blank lines", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.Parse("a\nb\n\n\nc")
		assert.Equal(t, []smartchat.Block{
			smartchat.Paragraph{Text: "a b"},
			smartchat.Paragraph{Text: "c"},
		}, blocks)
	})

	t.Run("block text is lossless", func(t *testing.T) {
		t.Parallel()
		src := "## Title\n\nSome text\nwrapped here\n\n- item one\n- item two\n\n> quoted\n\n3. numbered"
		var got []string
		for _, b := range markdown.Parse(src) {
			switch b := b.(type) {
			case smartchat.Heading:
				got = append(got, b.Text)
			case smartchat.Paragraph:
				got = append(got, b.Text)
			case smartchat.List:
				got = append(got, b.Items...)
			case smartchat.Quote:
				got = append(got, b.Text)
			}
		}
		assert.Equal(t, []string{"Title", "Some text wrapped here", "item one", "item two", "quoted", "numbered"}, got)
	})
}

func TestParseInline(t *testing.T) {
	t.Parallel()

	t.Run("bold and code", func(t *testing.T) {
		t.Parallel()
		tokens := markdown.ParseInline("use **bold** and `code` here")
		assert.Equal(t, []smartchat.InlineToken{
			smartchat.PlainText{Text: "use "},
			smartchat.Bold{Text: "bold"},
			smartchat.PlainText{Text: " and "},
			smartchat.InlineCode{Text: "code"},
			smartchat.PlainText{Text: " here"},
		}, tokens)
	})

	t.Run("unmatched delimiters stay plain", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"**open", "a ` b", "****", "``", "**a*b**"} {
			tokens := markdown.ParseInline(text)
			require.Len(t, tokens, 1, text)
			assert.Equal(t, smartchat.PlainText{Text: text}, tokens[0])
		}
	})

	t.Run("no nesting", func(t *testing.T) {
		t.Parallel()
		tokens := markdown.ParseInline("**`x`**")
		assert.Equal(t, []smartchat.InlineToken{smartchat.Bold{Text: "`x`"}}, tokens)
	})

	t.Run("literals concatenate to text without delimiters", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{
			"plain",
			"**a** b `c` **d**",
			"`one``two`",
			"Grüße **für** dich",
		} {
			var sb strings.Builder
			for _, tok := range markdown.ParseInline(text) {
				sb.WriteString(tok.Literal())
			}
			want := strings.NewReplacer("**", "", "`", "").Replace(text)
			assert.Equal(t, want, sb.String(), text)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, markdown.ParseInline(""))
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := smartchat.DefaultTheme()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", markdown.Render("", 80, theme))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, markdown.Render("hello world", 80, theme), "hello world")
	})

	t.Run("inline delimiters are removed", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("a **bold** and `code`", 80, theme)
		assert.Contains(t, result, "bold")
		assert.Contains(t, result, "code")
		assert.NotContains(t, result, "**")
		assert.NotContains(t, result, "`")
	})

	t.Run("fenced code block preserves content without reflow", func(t *testing.T) {
		t.Parallel()
		src := "```go\nfmt.Println(\"hello world\")\n```"
		result := markdown.Render(src, 20, theme)
		assert.Contains(t, result, `fmt.Println("hello world")`)
	})

	t.Run("fenced code block shows language label", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("```python\nprint('hi')\n```", 80, theme)
		assert.Contains(t, result, "python")
		assert.Contains(t, result, "print('hi')")
	})

	t.Run("untagged code block is labeled txt", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("```\nx\n```", 80, theme)
		assert.True(t, strings.HasPrefix(result, "txt"))
	})

	t.Run("bullet list", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("- one\n- two\n- three", 80, theme)
		assert.Contains(t, result, "- one")
		assert.Contains(t, result, "- two")
		assert.Contains(t, result, "- three")
	})

	t.Run("ordered list is renumbered", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("3. first\n7. second", 80, theme)
		assert.Contains(t, result, "1. first")
		assert.Contains(t, result, "2. second")
	})

	t.Run("quote has gutter", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("> quoted text", 80, theme)
		assert.Contains(t, result, "│ quoted text")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		result := markdown.Render(long, 30, theme)
		assert.Contains(t, result, "word1")
		assert.Contains(t, result, "word12")
		assert.Greater(t, len(strings.Split(result, "\n")), 1)
	})

	t.Run("zero width disables wrapping", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("word ", 40)
		result := markdown.Render(long, 0, theme)
		assert.NotContains(t, result, "\n")
	})

	t.Run("list item continuation lines are indented", func(t *testing.T) {
		t.Parallel()
		src := "- alpha beta gamma delta epsilon zeta eta theta iota kappa"
		result := markdown.Render(src, 24, theme)
		lines := strings.Split(result, "\n")
		require.Greater(t, len(lines), 1)
		for _, line := range lines[1:] {
			assert.True(t, strings.HasPrefix(line, "  "), "line %q not indented", line)
		}
	})

	t.Run("blocks separated by blank lines", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("first\n\nsecond", 80, theme)
		assert.Contains(t, result, "first\n\nsecond")
	})

	t.Run("partial fence renders", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("intro\n```ts\nconst a", 80, theme)
		assert.Contains(t, result, "const a")
	})
}
