package smartchat

// Block is a sealed interface representing one structural unit of rendered
// markdown. The unexported marker method prevents external implementations.
type Block interface {
	block()
}

// Heading is a single-line heading of level 2, 3 or 4.
type Heading struct {
	Level int
	Text  string
}

func (Heading) block() {}

// Paragraph holds consecutive plain lines joined with a single space.
type Paragraph struct {
	Text string
}

func (Paragraph) block() {}

// List holds sibling items of an ordered or unordered list, markers stripped.
type List struct {
	Ordered bool
	Items   []string
}

func (List) block() {}

// Quote holds consecutive "> " lines joined with a single space.
type Quote struct {
	Text string
}

func (Quote) block() {}

// CodeBlock holds the lines of a fenced code block. Language is normalized
// and is "text" when the fence carried no recognized tag.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (CodeBlock) block() {}

// InlineToken is a sealed interface representing a span within block text.
type InlineToken interface {
	inlineToken()
	// Literal returns the span content with its delimiters stripped.
	Literal() string
}

// PlainText is text outside any inline span.
type PlainText struct {
	Text string
}

func (PlainText) inlineToken() {}

// Literal returns the text.
func (t PlainText) Literal() string { return t.Text }

// Bold is a **bold** span.
type Bold struct {
	Text string
}

func (Bold) inlineToken() {}

// Literal returns the text between the ** delimiters.
func (t Bold) Literal() string { return t.Text }

// InlineCode is a `code` span.
type InlineCode struct {
	Text string
}

func (InlineCode) inlineToken() {}

// Literal returns the text between the backticks.
func (t InlineCode) Literal() string { return t.Text }

// Interface compliance checks.
var (
	_ Block = Heading{}
	_ Block = Paragraph{}
	_ Block = List{}
	_ Block = Quote{}
	_ Block = CodeBlock{}

	_ InlineToken = PlainText{}
	_ InlineToken = Bold{}
	_ InlineToken = InlineCode{}
)
