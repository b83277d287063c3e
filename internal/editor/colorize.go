package editor

import (
	"github.com/dlxed/dlxed/internal/dlx"
	"github.com/dlxed/dlxed/internal/logger"
)

// Tokenizer is the external lexer contract: given the full buffer text
// it returns tokens (1-based line, 1-based byte column, byte length)
// and parse errors. The source string must not be retained.
type Tokenizer interface {
	Tokenize(source string) dlx.Program
}

// Retokenize consumes the text-changed flag: it runs the tokenizer over
// the full buffer, replaces the error markers with the parse errors and
// recolors every glyph. Reports whether anything was done.
func (e *Editor) Retokenize() bool {
	if !e.textChanged {
		return false
	}
	e.textChanged = false

	if e.tokenizer == nil {
		return true
	}

	program := e.tokenizer.Tokenize(e.Text())

	e.ClearErrorMarkers()
	for _, parseErr := range program.Errors {
		e.AddErrorMarker(parseErr.Line, parseErr.Message)
	}
	e.notifyMarkersChanged()

	e.recolor(program.Tokens)
	logger.Debugf("editor: retokenized %d lines, %d tokens, %d errors",
		len(e.lines), len(program.Tokens), len(program.Errors))
	return true
}

// recolor resets every glyph to the default tag and then paints token
// spans. Continuation bytes always share their leading byte's tag.
func (e *Editor) recolor(tokens []dlx.Token) {
	for _, line := range e.lines {
		for i := range line {
			line[i].Color = TagDefault
		}
	}

	for _, token := range tokens {
		tag, ok := colorTagFor(token.Kind)
		if !ok {
			continue
		}

		lineIndex := token.Line - 1
		if lineIndex < 0 || lineIndex >= len(e.lines) {
			continue
		}
		line := e.lines[lineIndex]

		for index := token.Column - 1; index < token.Column-1+token.Length; index++ {
			if index < 0 || index >= len(line) {
				break
			}
			line[index].Color = tag
		}
	}
}

// colorTagFor maps token kinds onto palette tags. Newlines are skipped;
// unlisted kinds fall back to the default tag.
func colorTagFor(kind dlx.Kind) (ColorTag, bool) {
	switch kind {
	case dlx.KindComment:
		return TagComment, true
	case dlx.KindImmediateInteger, dlx.KindIntegerLiteral:
		return TagIntegerLiteral, true
	case dlx.KindOpCode:
		return TagOpCode, true
	case dlx.KindRegisterFloat, dlx.KindRegisterInt, dlx.KindRegisterStatus:
		return TagRegister, true
	case dlx.KindNewLine:
		return TagDefault, false
	default:
		return TagDefault, true
	}
}

// GlyphColor returns the tag rendering should use for a glyph, honoring
// the colorizer toggle without mutating stored tags.
func (e *Editor) GlyphColor(g Glyph) ColorTag {
	if !e.colorizerEnabled {
		return TagDefault
	}
	return g.Color
}
