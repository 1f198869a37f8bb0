package highlight

import "strings"

var languageAliases = map[string]string{
	"ts":    "typescript",
	"js":    "javascript",
	"sh":    "bash",
	"zsh":   "bash",
	"shell": "bash",
}

var knownLanguages = map[string]bool{
	"text":       true,
	"typescript": true,
	"javascript": true,
	"tsx":        true,
	"jsx":        true,
	"bash":       true,
	"json":       true,
	"go":         true,
	"python":     true,
	"css":        true,
	"html":       true,
	"sql":        true,
	"yaml":       true,
}

// NormalizeLanguage case-folds a fence tag and resolves aliases. Empty and
// unrecognized tags become "text".
func NormalizeLanguage(tag string) string {
	raw := strings.ToLower(strings.TrimSpace(tag))
	if alias, ok := languageAliases[raw]; ok {
		return alias
	}
	if knownLanguages[raw] {
		return raw
	}
	return "text"
}
