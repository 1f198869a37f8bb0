// Package highlight classifies the substrings of a code line for syntax
// coloring. It is a heuristic shared by all languages, not a lexer: it finds
// comments, quoted strings, numbers and identifiers, and checks identifiers
// against one fixed keyword table.
package highlight

import (
	"slices"
	"strings"

	"github.com/kodewerk/smartchat"
)

var keywords = map[string]bool{
	"const": true, "let": true, "var": true, "function": true, "return": true,
	"if": true, "else": true, "switch": true, "case": true, "break": true,
	"for": true, "while": true, "type": true, "interface": true, "extends": true,
	"import": true, "export": true, "from": true, "async": true, "await": true,
	"try": true, "catch": true, "new": true, "class": true, "public": true,
	"private": true, "protected": true, "readonly": true, "null": true,
	"undefined": true, "true": true, "false": true,
}

var jsonKeywords = map[string]bool{"true": true, "false": true, "null": true}

// Keywords returns the keyword table, sorted.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Tokenize splits line into classified tokens. Characters outside any
// comment, string, number or identifier match are returned as plain runs.
// The tokens concatenate to line.
func Tokenize(line, language string) []smartchat.CodeToken {
	language = NormalizeLanguage(language)
	var tokens []smartchat.CodeToken
	cursor := 0
	for i := 0; i < len(line); {
		end := match(line, i)
		if end < 0 {
			i++
			continue
		}
		if i > cursor {
			tokens = append(tokens, smartchat.CodeToken{Kind: smartchat.TokenPlain, Text: line[cursor:i]})
		}
		text := line[i:end]
		tokens = append(tokens, smartchat.CodeToken{Kind: Classify(text, language), Text: text})
		cursor = end
		i = end
	}
	if cursor < len(line) {
		tokens = append(tokens, smartchat.CodeToken{Kind: smartchat.TokenPlain, Text: line[cursor:]})
	}
	return tokens
}

// Classify returns the kind of a matched token under language.
func Classify(token, language string) smartchat.CodeTokenKind {
	switch {
	case strings.HasPrefix(token, "//"), strings.HasPrefix(token, "#"), strings.HasPrefix(token, "/*"):
		return smartchat.TokenComment
	case token != "" && isQuote(token[0]):
		return smartchat.TokenString
	case isNumber(token):
		return smartchat.TokenNumber
	}
	lower := strings.ToLower(token)
	if NormalizeLanguage(language) == "json" {
		if jsonKeywords[lower] {
			return smartchat.TokenKeyword
		}
		return smartchat.TokenPlain
	}
	if keywords[lower] {
		return smartchat.TokenKeyword
	}
	return smartchat.TokenPlain
}

// match returns the end of the token starting at i, or -1. Alternatives are
// tried in priority order: line comment, quoted string, number, identifier.
func match(line string, i int) int {
	switch {
	case strings.HasPrefix(line[i:], "//"), line[i] == '#':
		return len(line)
	case isQuote(line[i]):
		return matchString(line, i)
	case isDigit(line[i]):
		return matchNumber(line, i)
	case isIdentStart(line[i]):
		if i > 0 && isWord(line[i-1]) {
			return -1
		}
		j := i + 1
		for j < len(line) && isWord(line[j]) {
			j++
		}
		return j
	}
	return -1
}

// matchString matches a quoted string allowing backslash escapes. An
// unterminated string does not match.
func matchString(line string, i int) int {
	quote := line[i]
	for j := i + 1; j < len(line); j++ {
		switch line[j] {
		case '\\':
			if j+1 >= len(line) {
				return -1
			}
			j++
		case quote:
			return j + 1
		}
	}
	return -1
}

// matchNumber matches \b\d+(\.\d+)?\b.
func matchNumber(line string, i int) int {
	if i > 0 && isWord(line[i-1]) {
		return -1
	}
	j := i
	for j < len(line) && isDigit(line[j]) {
		j++
	}
	if j+1 < len(line) && line[j] == '.' && isDigit(line[j+1]) {
		k := j + 1
		for k < len(line) && isDigit(line[k]) {
			k++
		}
		if atBoundary(line, k) {
			return k
		}
	}
	if atBoundary(line, j) {
		return j
	}
	return -1
}

func atBoundary(line string, j int) bool {
	return j >= len(line) || !isWord(line[j])
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasFrac || allDigits(frac)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isQuote(c byte) bool { return c == '"' || c == '\'' || c == '`' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' }

func isWord(c byte) bool { return isIdentStart(c) || isDigit(c) }
