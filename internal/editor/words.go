package editor

// Word boundary queries. A "word" is a run of glyphs sharing a color tag
// without a whitespace-class flip, which makes double-click selection
// follow token boundaries once the colorizer has run.

// FindWordStart walks backward from a coordinate to the start of the
// word under it, skipping trailing whitespace first.
func (e *Editor) FindWordStart(from Coordinate) Coordinate {
	if from.Line >= len(e.lines) {
		return from
	}

	line := e.lines[from.Line]
	cindex := e.characterIndex(from)
	if cindex >= len(line) {
		return from
	}

	for cindex > 0 && isSpaceByte(line[cindex].Char) {
		cindex--
	}

	cstart := line[cindex].Color
	for cindex > 0 {
		g := line[cindex]
		if !isUTFContinuation(g.Char) {
			if g.Char <= 32 && isSpaceByte(g.Char) {
				cindex++
				break
			}
			if cstart != line[cindex-1].Color {
				break
			}
		}
		cindex--
	}

	return Coordinate{Line: from.Line, Column: e.characterColumn(from.Line, cindex)}
}

// FindWordEnd walks forward from a coordinate to the end of the word
// under it, consuming a trailing whitespace run.
func (e *Editor) FindWordEnd(from Coordinate) Coordinate {
	if from.Line >= len(e.lines) {
		return from
	}

	line := e.lines[from.Line]
	cindex := e.characterIndex(from)
	if cindex >= len(line) {
		return from
	}

	prevSpace := isSpaceByte(line[cindex].Char)
	cstart := line[cindex].Color
	for cindex < len(line) {
		g := line[cindex]
		if cstart != g.Color {
			break
		}
		if prevSpace != isSpaceByte(g.Char) {
			if isSpaceByte(g.Char) {
				for cindex < len(line) && isSpaceByte(line[cindex].Char) {
					cindex++
				}
			}
			break
		}
		cindex += utf8CharLength(g.Char)
	}

	return Coordinate{Line: from.Line, Column: e.characterColumn(from.Line, cindex)}
}

// FindNextWord advances to the start of the next alphanumeric run,
// crossing line boundaries.
func (e *Editor) FindNextWord(from Coordinate) Coordinate {
	at := from
	if at.Line >= len(e.lines) {
		return at
	}

	cindex := e.characterIndex(from)
	isWord := false
	skip := false
	if cindex < len(e.lines[at.Line]) {
		isWord = isAlphaNumericByte(e.lines[at.Line][cindex].Char)
		skip = isWord
	}

	for !isWord || skip {
		if at.Line >= len(e.lines) {
			l := len(e.lines) - 1
			if l < 0 {
				l = 0
			}
			return Coordinate{Line: l, Column: e.LineMaxColumn(l)}
		}

		line := e.lines[at.Line]
		if cindex < len(line) {
			isWord = isAlphaNumericByte(line[cindex].Char)
			if isWord && !skip {
				return Coordinate{Line: at.Line, Column: e.characterColumn(at.Line, cindex)}
			}
			if !isWord {
				skip = false
			}
			cindex++
		} else {
			cindex = 0
			at.Line++
			skip = false
			isWord = false
		}
	}

	return at
}

// IsOnWordBoundary reports whether a coordinate sits on a word edge:
// the line start, line end, or a color/whitespace class change.
func (e *Editor) IsOnWordBoundary(at Coordinate) bool {
	if at.Line >= len(e.lines) || at.Column == 0 {
		return true
	}

	line := e.lines[at.Line]
	cindex := e.characterIndex(at)
	if cindex >= len(line) {
		return true
	}
	if cindex <= 0 {
		return true
	}

	if e.colorizerEnabled {
		return line[cindex].Color != line[cindex-1].Color
	}
	return isSpaceByte(line[cindex].Char) != isSpaceByte(line[cindex-1].Char)
}

// WordAt returns the text of the word covering a coordinate.
func (e *Editor) WordAt(coords Coordinate) string {
	if coords.Line >= len(e.lines) || coords.Line < 0 {
		return ""
	}

	start := e.FindWordStart(coords)
	end := e.FindWordEnd(coords)

	istart := e.characterIndex(start)
	iend := e.characterIndex(end)

	line := e.lines[coords.Line]
	buf := make([]byte, 0, iend-istart)
	for i := istart; i < iend && i < len(line); i++ {
		buf = append(buf, line[i].Char)
	}
	return string(buf)
}

// WordUnderCursor returns the text of the word at the cursor.
func (e *Editor) WordUnderCursor() string {
	return e.WordAt(e.CursorPosition())
}
