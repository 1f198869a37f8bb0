package smartchat

// CodeTokenKind classifies a substring of a code line for highlighting.
type CodeTokenKind int

const (
	TokenPlain CodeTokenKind = iota
	TokenComment
	TokenString
	TokenNumber
	TokenKeyword
)

// String returns the kind name.
func (k CodeTokenKind) String() string {
	switch k {
	case TokenComment:
		return "comment"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenKeyword:
		return "keyword"
	default:
		return "plain"
	}
}

// CodeToken is a classified substring of a code line. Tokens of a line
// concatenate back to the line, whitespace included.
type CodeToken struct {
	Kind CodeTokenKind
	Text string
}
