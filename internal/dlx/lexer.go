package dlx

import (
	"fmt"
	"strconv"
	"strings"
)

const maxRegisterIndex = 31

// Tokenize scans source into tokens and parse errors. It never fails;
// malformed input produces Unknown tokens plus errors.
func (t *Tokenizer) Tokenize(source string) Program {
	var prog Program

	lineNo := 1
	for _, line := range strings.Split(source, "\n") {
		t.scanLine(&prog, line, lineNo)
		prog.Tokens = append(prog.Tokens, Token{
			Kind:   KindNewLine,
			Line:   lineNo,
			Column: len(line) + 1,
			Length: 1,
			Text:   "\n",
		})
		lineNo++
	}

	// Drop the newline appended after the final line.
	if n := len(prog.Tokens); n > 0 {
		prog.Tokens = prog.Tokens[:n-1]
	}

	return prog
}

func (t *Tokenizer) scanLine(prog *Program, line string, lineNo int) {
	// The first word on a line (past an optional "label:") must be a
	// mnemonic; everything after it is arguments.
	sawOpCode := false

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++

		case c == ';' || c == '/':
			// Comment runs to end of line.
			prog.Tokens = append(prog.Tokens, Token{
				Kind:   KindComment,
				Line:   lineNo,
				Column: i + 1,
				Length: len(line) - i,
				Text:   line[i:],
			})
			return

		case c == ':':
			prog.Tokens = append(prog.Tokens, Token{Kind: KindColon, Line: lineNo, Column: i + 1, Length: 1, Text: ":"})
			i++

		case c == ',':
			prog.Tokens = append(prog.Tokens, Token{Kind: KindComma, Line: lineNo, Column: i + 1, Length: 1, Text: ","})
			i++

		case c == '#':
			start := i
			i++
			if i < len(line) && (line[i] == '-' || line[i] == '+') {
				i++
			}
			digits := i
			for i < len(line) && isDigit(line[i]) {
				i++
			}
			text := line[start:i]
			kind := KindImmediateInteger
			if i == digits {
				kind = KindUnknown
				prog.Errors = append(prog.Errors, ParseError{
					Line:    lineNo,
					Message: fmt.Sprintf("invalid immediate %q", text),
				})
			}
			prog.Tokens = append(prog.Tokens, Token{Kind: kind, Line: lineNo, Column: start + 1, Length: i - start, Text: text})

		case isDigit(c) || ((c == '-' || c == '+') && i+1 < len(line) && isDigit(line[i+1])):
			start := i
			if c == '-' || c == '+' {
				i++
			}
			for i < len(line) && (isDigit(line[i]) || isHexDigit(line[i]) || line[i] == 'x' || line[i] == 'X') {
				i++
			}
			text := line[start:i]
			if _, err := strconv.ParseInt(text, 0, 32); err != nil {
				prog.Errors = append(prog.Errors, ParseError{
					Line:    lineNo,
					Message: fmt.Sprintf("integer literal %q out of range", text),
				})
			}
			prog.Tokens = append(prog.Tokens, Token{Kind: KindIntegerLiteral, Line: lineNo, Column: start + 1, Length: i - start, Text: text})

		case isWordByte(c):
			start := i
			for i < len(line) && isWordByte(line[i]) {
				i++
			}
			word := line[start:i]
			tok := t.classifyWord(prog, word, lineNo, followedByColon(line, i))
			tok.Column = start + 1
			tok.Length = i - start
			tok.Text = word

			if tok.Kind == KindIdentifier && !sawOpCode && !followedByColon(line, i) {
				// Not a label and not a mnemonic where one is required.
				prog.Errors = append(prog.Errors, ParseError{
					Line:    lineNo,
					Message: fmt.Sprintf("unknown instruction %q", word),
				})
			}
			if tok.Kind == KindOpCode {
				sawOpCode = true
			}
			prog.Tokens = append(prog.Tokens, tok)

		default:
			prog.Tokens = append(prog.Tokens, Token{Kind: KindUnknown, Line: lineNo, Column: i + 1, Length: 1, Text: string(c)})
			i++
		}
	}
}

// classifyWord decides what a bare word is: register, mnemonic or label.
func (t *Tokenizer) classifyWord(prog *Program, word string, lineNo int, labelPos bool) Token {
	tok := Token{Line: lineNo}

	upper := strings.ToUpper(word)
	switch {
	case upper == "FPSR":
		tok.Kind = KindRegisterStatus
	case isRegisterName(upper, 'R'):
		tok.Kind = KindRegisterInt
		if !validRegisterIndex(upper[1:], prog, lineNo, word) {
			tok.Kind = KindIdentifier
		}
	case isRegisterName(upper, 'F'):
		tok.Kind = KindRegisterFloat
		if !validRegisterIndex(upper[1:], prog, lineNo, word) {
			tok.Kind = KindIdentifier
		}
	case IsOpCode(word):
		tok.Kind = KindOpCode
	case labelPos:
		tok.Kind = KindLabel
	default:
		tok.Kind = KindIdentifier
	}
	return tok
}

func validRegisterIndex(digits string, prog *Program, lineNo int, word string) bool {
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxRegisterIndex {
		prog.Errors = append(prog.Errors, ParseError{
			Line:    lineNo,
			Message: fmt.Sprintf("invalid register %q", word),
		})
		return false
	}
	return true
}

func isRegisterName(upper string, prefix byte) bool {
	if len(upper) < 2 || upper[0] != prefix {
		return false
	}
	for i := 1; i < len(upper); i++ {
		if !isDigit(upper[i]) {
			return false
		}
	}
	return true
}

func followedByColon(line string, i int) bool {
	for ; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isWordByte(b byte) bool {
	return b == '_' || b == '.' || isDigit(b) ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
