package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is an entry of a document outline.
type Heading struct {
	Level int
	Text  string
}

// Outline returns the top-level headings of markdown source as plain text,
// in document order.
func Outline(source string) []Heading {
	src := []byte(source)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var out []Heading
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if h, ok := c.(*ast.Heading); ok {
			out = append(out, Heading{Level: h.Level, Text: collectInline(h, src)})
		}
	}
	return out
}

// collectInline recursively collects the plain text of a node's children.
func collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(c, source, &buf)
	}
	return buf.String()
}

func writeInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			buf.WriteByte(' ')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.AutoLink:
		buf.Write(n.URL(source))

	case *ast.RawHTML:
		// Dropped from plain text.

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(c, source, buf)
		}
	}
}
