package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokensOf(t *testing.T, source string) []Token {
	t.Helper()
	return NewTokenizer().Tokenize(source).Tokens
}

func TestTokenizeInstruction(t *testing.T) {
	tokens := tokensOf(t, "ADD R1 R2 R3")

	require.Len(t, tokens, 4)
	assert.Equal(t, KindOpCode, tokens[0].Kind)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 3, tokens[0].Length)

	for i, col := range []int{5, 8, 11} {
		tok := tokens[i+1]
		assert.Equal(t, KindRegisterInt, tok.Kind)
		assert.Equal(t, col, tok.Column)
		assert.Equal(t, 2, tok.Length)
	}
}

func TestTokenizeRegisters(t *testing.T) {
	tokens := tokensOf(t, "MOVF F0 F31\nMOVS2I R1 FPSR")

	assert.Equal(t, KindRegisterFloat, tokens[1].Kind)
	assert.Equal(t, KindRegisterFloat, tokens[2].Kind)

	// Line break token separates the lines.
	assert.Equal(t, KindNewLine, tokens[3].Kind)
	assert.Equal(t, KindRegisterStatus, tokens[6].Kind)
	assert.Equal(t, 2, tokens[6].Line)
}

func TestTokenizeCommentRunsToEndOfLine(t *testing.T) {
	tokens := tokensOf(t, "NOP ; rest is comment R1 #5")

	require.Len(t, tokens, 2)
	assert.Equal(t, KindOpCode, tokens[0].Kind)
	assert.Equal(t, KindComment, tokens[1].Kind)
	assert.Equal(t, 5, tokens[1].Column)
	assert.Equal(t, "; rest is comment R1 #5", tokens[1].Text)
}

func TestTokenizeImmediateAndLiteral(t *testing.T) {
	tokens := tokensOf(t, "ADDI R1 R0 #-42\nTRAP 3")

	assert.Equal(t, KindImmediateInteger, tokens[3].Kind)
	assert.Equal(t, "#-42", tokens[3].Text)
	assert.Equal(t, KindIntegerLiteral, tokens[6].Kind)
	assert.Equal(t, "3", tokens[6].Text)
}

func TestTokenizeLabel(t *testing.T) {
	tokens := tokensOf(t, "loop: SUBI R1 R1 #1\nBNEZ R1 loop")

	assert.Equal(t, KindLabel, tokens[0].Kind)
	assert.Equal(t, "loop", tokens[0].Text)
	assert.Equal(t, KindColon, tokens[1].Kind)

	// A label reference in argument position stays an identifier.
	last := tokens[len(tokens)-1]
	assert.Equal(t, KindIdentifier, last.Kind)
	assert.Equal(t, "loop", last.Text)
}

func TestUnknownInstructionReportsError(t *testing.T) {
	prog := NewTokenizer().Tokenize("FROB R1 R2")

	require.Len(t, prog.Errors, 1)
	assert.Equal(t, 1, prog.Errors[0].Line)
	assert.Contains(t, prog.Errors[0].Message, "FROB")
}

func TestInvalidRegisterReportsError(t *testing.T) {
	prog := NewTokenizer().Tokenize("ADD R1 R99 R2")

	require.Len(t, prog.Errors, 1)
	assert.Contains(t, prog.Errors[0].Message, "R99")
}

func TestMalformedImmediateReportsError(t *testing.T) {
	prog := NewTokenizer().Tokenize("ADDI R1 R0 #x")

	require.NotEmpty(t, prog.Errors)
	assert.Contains(t, prog.Errors[0].Message, "immediate")
}

func TestIntegerOutOfRangeReportsError(t *testing.T) {
	prog := NewTokenizer().Tokenize("TRAP 99999999999")
	require.NotEmpty(t, prog.Errors)
	assert.Contains(t, prog.Errors[0].Message, "out of range")
}

func TestOpCodeCaseInsensitive(t *testing.T) {
	tokens := tokensOf(t, "add r1 r2 r3")
	assert.Equal(t, KindOpCode, tokens[0].Kind)
	assert.Equal(t, KindRegisterInt, tokens[1].Kind)
}

func TestTokenizeEmptySource(t *testing.T) {
	prog := NewTokenizer().Tokenize("")
	assert.Empty(t, prog.Tokens)
	assert.Empty(t, prog.Errors)
}

func TestColumnsAreByteOffsets(t *testing.T) {
	tokens := tokensOf(t, "\tNOP")
	require.NotEmpty(t, tokens)
	// The tab is one byte, so the mnemonic starts at byte column 2.
	assert.Equal(t, 2, tokens[0].Column)
}
