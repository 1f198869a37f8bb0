// Package goldmark exports chat threads as standalone HTML documents, using
// goldmark with the GitHub Flavored Markdown extension for message bodies.
package goldmark

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/chat"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var page = template.Must(template.New("thread").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
section { border-top: 1px solid #ddd; padding: 0.5rem 0; }
section.user h2 { color: #2563eb; }
h2 { font-size: 0.9rem; }
time { color: #777; font-weight: normal; }
pre { background: #f5f5f5; padding: 0.75rem; overflow-x: auto; }
nav li.h3 { margin-left: 1rem; }
nav li.h4 { margin-left: 2rem; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p>{{.Model}} · <time datetime="{{.Updated}}">{{.Updated}}</time></p>
</header>
{{- if .Outline}}
<nav><ul>
{{- range .Outline}}
<li class="h{{.Level}}">{{.Text}}</li>
{{- end}}
</ul></nav>
{{- end}}
{{- range .Messages}}
<section class="{{.Role}}">
<h2>{{.Label}} <time datetime="{{.Time}}">{{.Clock}}</time></h2>
{{.Body}}
</section>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Lang     string
	Title    string
	Model    string
	Updated  string
	Outline  []Heading
	Messages []messageData
}

type messageData struct {
	Role  string
	Label string
	Time  string
	Clock string
	Body  template.HTML
}

// ExportHTML renders thread as a standalone HTML document. Message bodies
// are converted from markdown; raw HTML inside them is not passed through.
// The outline lists the headings of the assistant replies.
func ExportHTML(thread smartchat.Thread, locale smartchat.Locale) ([]byte, error) {
	locale = smartchat.ParseLocale(string(locale))
	text := chat.Copy(locale)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	data := pageData{
		Lang:    string(locale),
		Title:   thread.Title,
		Model:   string(thread.Model),
		Updated: thread.UpdatedAt.Format("2006-01-02 15:04"),
	}
	if p, err := chat.Model(locale, thread.Model); err == nil {
		data.Model = p.Label
	}

	for i, m := range thread.Messages {
		var body bytes.Buffer
		if err := md.Convert([]byte(m.Content), &body); err != nil {
			return nil, fmt.Errorf("convert message %d: %w", i, err)
		}
		label := text.AssistantLabel
		if m.Role == smartchat.RoleUser {
			label = text.UserLabel
		} else {
			data.Outline = append(data.Outline, Outline(m.Content)...)
		}
		data.Messages = append(data.Messages, messageData{
			Role:  string(m.Role),
			Label: label,
			Time:  m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Clock: m.CreatedAt.Format("15:04"),
			// goldmark escapes raw HTML unless html.WithUnsafe is set.
			Body: template.HTML(body.String()),
		})
	}

	var out bytes.Buffer
	if err := page.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}
