// Package dlx tokenizes DLX assembly source for the editor's colorizer.
package dlx

// Kind classifies a token.
type Kind int

const (
	KindUnknown Kind = iota
	KindOpCode
	KindRegisterInt
	KindRegisterFloat
	KindRegisterStatus
	KindIntegerLiteral
	KindImmediateInteger
	KindLabel
	KindIdentifier
	KindColon
	KindComma
	KindComment
	KindNewLine
)

// String returns the kind name, for logs and tests.
func (k Kind) String() string {
	switch k {
	case KindOpCode:
		return "OpCode"
	case KindRegisterInt:
		return "RegisterInt"
	case KindRegisterFloat:
		return "RegisterFloat"
	case KindRegisterStatus:
		return "RegisterStatus"
	case KindIntegerLiteral:
		return "IntegerLiteral"
	case KindImmediateInteger:
		return "ImmediateInteger"
	case KindLabel:
		return "Label"
	case KindIdentifier:
		return "Identifier"
	case KindColon:
		return "Colon"
	case KindComma:
		return "Comma"
	case KindComment:
		return "Comment"
	case KindNewLine:
		return "NewLine"
	default:
		return "Unknown"
	}
}

// Token is one lexeme. Line and Column are 1-based; Column counts bytes
// from the start of the line, Length is the byte length of the lexeme.
type Token struct {
	Kind   Kind
	Line   int
	Column int
	Length int
	Text   string
}

// ParseError describes a problem found while scanning. Line is 1-based.
type ParseError struct {
	Line    int
	Message string
}

// Program is the result of tokenizing a source text.
type Program struct {
	Tokens []Token
	Errors []ParseError
}

// Tokenizer produces a Program from DLX assembly source.
type Tokenizer struct{}

// NewTokenizer returns a stateless tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}
