package smartchat

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg int // User message accent
	Error   int // Error messages
	Success int // Success indicators
	Muted   int // Status bar, placeholders, code gutter
	Accent  int // Headings, active thread

	Comment int // Code comments
	String  int // Code string literals
	Number  int // Code number literals
	Keyword int // Code keywords
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg: 4,
		Error:   1,
		Success: 2,
		Muted:   8,
		Accent:  5,
		Comment: 8,
		String:  2,
		Number:  3,
		Keyword: 5,
	}
}
