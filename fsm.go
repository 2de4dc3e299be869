package tabtok

// Tokenize consumes bytes starting at the current source position until a
// row count of end data rows has been produced (end >= 0; -1 means "to
// end of input"), end of input is reached, or a fatal error occurs.
//
// When header is true, the entire first significant line is stored as a
// single field in a single column — the delimiter and quote bytes are not
// special inside a header line, it is captured raw for the caller to
// split later. When false, exactly numCols columns per row are expected.
func (t *Tokenizer) Tokenize(end int, header bool, numCols int) error {
	t.err = nil
	t.header = header

	if header {
		err := t.tokenizeHeader()
		t.err, _ = err.(*TokenizeError)
		return err
	}

	t.numCols = numCols
	t.curCol = 0
	t.numRows = 0
	t.requestedEnd = end
	t.state = stateStartLine
	t.oldState = stateStartLine
	t.fieldStart = 0
	t.firstColWhitespace = true
	t.cols = newColumnStore(numCols)

	pos := t.pos
	for pos <= len(t.src) {
		atVirtualEnd := pos == len(t.src)
		var b byte
		if atVirtualEnd {
			b = '\n'
		} else {
			b = t.src[pos]
		}

		consumed, done, err := t.step(b, pos)
		if err != nil {
			t.pos = pos
			t.err, _ = err.(*TokenizeError)
			return err
		}
		if consumed {
			pos++
		}
		if done {
			t.pos = pos
			return nil
		}
		if atVirtualEnd && !consumed {
			// The virtual newline was handed on to QUOTED_FIELD, i.e. a quoted
			// field is still open at end of input. End the quoted portion so
			// the virtual newline closes the field and the row in FIELD.
			if t.state == stateQuotedField {
				t.state = stateField
				continue
			}
			t.pos = pos
			return nil
		}
	}
	t.pos = pos
	return nil
}

// tokenizeHeader advances past any leading comment or blank lines — per
// §4.2's header predicate, a whitespace-only line counts as significant
// but a comment or truly-blank one does not — then captures the raw bytes
// of the first significant line (up to but not including its terminator)
// as the sole field of a single-column store, and stops. It bypasses the
// FSM entirely: delimiter and quote bytes are ordinary content on a
// header line. If no significant line is found before the source ends,
// it reports ErrInvalidLine, mirroring SkipLines' header-ran-out case.
func (t *Tokenizer) tokenizeHeader() error {
	pos := t.pos

	for pos < len(t.src) {
		lineStart := pos
		i := pos
		for i < len(t.src) && t.src[i] != '\n' && t.src[i] != '\r' {
			i++
		}
		lineEnd := i

		next := lineEnd
		if next < len(t.src) {
			if t.src[next] == '\r' {
				next++
				if next < len(t.src) && t.src[next] == '\n' {
					next++
				}
			} else {
				next++
			}
		}

		if isSignificantLine(t.src[lineStart:lineEnd], t.cfg.Comment, true) {
			t.cols = newColumnStore(1)
			for k := lineStart; k < lineEnd; k++ {
				t.cols.push(0, t.src[k])
			}
			if t.cols.cursor[0] == 0 {
				t.cols.push(0, fieldEmptyMark)
			}
			t.cols.push(0, fieldTerminator)
			t.numRows = 1
			t.pos = next
			return nil
		}
		pos = next
	}

	t.pos = pos
	return t.newError(InvalidLine, ErrInvalidLine)
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

// step processes a single byte against the current state and reports
// whether the read position should advance (consumed), whether Tokenize
// should return now (done), and any error. When consumed is false, the
// same byte is fed again on the next call against the (now different)
// state — this is the explicit stand-in for the reference implementation's
// C-style case-fallthrough between states that re-dispatch without
// advancing the read cursor.
//
// pos is the source index of b; it is passed through unchanged when a
// CARRIAGE_RETURN state synthesizes a newline for its old state.
func (t *Tokenizer) step(b byte, pos int) (consumed, done bool, err error) {
	switch t.state {

	case stateStartLine:
		switch {
		case b == '\n':
			return true, false, nil
		case b == '\r':
			t.oldState = stateStartLine
			t.state = stateCarriageReturn
			return true, false, nil
		case isSpaceOrTab(b) && t.cfg.StripWhitespaceLines:
			return true, false, nil
		case t.cfg.Comment != 0 && b == t.cfg.Comment:
			t.state = stateComment
			return true, false, nil
		default:
			t.curCol = 0
			t.firstColWhitespace = true
			t.fieldStart = t.cols.cursor[0]
			t.state = stateStartField
			return false, false, nil
		}

	case stateStartField:
		switch {
		// Whitespace-skip is checked ahead of the delimiter test so that
		// configuring Delimiter as space/tab together with
		// StripWhitespaceFields collapses runs of the delimiter into one
		// separator instead of closing an empty field per repeated byte.
		case isSpaceOrTab(b) && t.cfg.StripWhitespaceFields:
			return true, false, nil
		case b == t.cfg.Delimiter:
			if cerr := t.closeField(); cerr != nil {
				return true, false, cerr
			}
			return true, false, nil
		case b == '\n':
			return t.startFieldNewline()
		case b == '\r':
			t.oldState = stateStartField
			t.state = stateCarriageReturn
			return true, false, nil
		case t.cfg.Comment != 0 && b == t.cfg.Comment && !t.cfg.StripWhitespaceLines:
			t.state = stateComment
			return true, false, nil
		case b == t.cfg.Quote:
			if cerr := t.checkColBound(); cerr != nil {
				return true, false, cerr
			}
			t.state = stateStartQuotedField
			return true, false, nil
		default:
			if cerr := t.checkColBound(); cerr != nil {
				return true, false, cerr
			}
			t.state = stateField
			return false, false, nil
		}

	case stateField:
		switch {
		case b == t.cfg.Delimiter:
			if cerr := t.closeField(); cerr != nil {
				return true, false, cerr
			}
			return true, false, nil
		case b == '\n':
			if cerr := t.closeField(); cerr != nil {
				return true, false, cerr
			}
			return t.endOfLine()
		case b == '\r':
			t.oldState = stateField
			t.state = stateCarriageReturn
			return true, false, nil
		default:
			if t.curCol == 0 && t.firstColWhitespace && t.cfg.Comment != 0 && b == t.cfg.Comment {
				t.rollbackField(0)
				t.state = stateComment
				return true, false, nil
			}
			if !isSpaceOrTab(b) {
				t.firstColWhitespace = false
			}
			t.cols.push(t.curCol, b)
			return true, false, nil
		}

	case stateStartQuotedField:
		if b == t.cfg.Quote {
			t.state = stateField
			return true, false, nil
		}
		t.state = stateQuotedField
		return false, false, nil

	case stateQuotedField:
		switch {
		case b == t.cfg.Quote:
			t.state = stateField
			return true, false, nil
		case b == '\n':
			t.cols.push(t.curCol, b)
			t.state = stateQuotedFieldNewline
			return true, false, nil
		case b == '\r':
			t.oldState = stateQuotedField
			t.state = stateCarriageReturn
			return true, false, nil
		default:
			t.cols.push(t.curCol, b)
			return true, false, nil
		}

	case stateQuotedFieldNewline:
		switch {
		case b == t.cfg.Quote:
			t.state = stateField
			return true, false, nil
		case b == '\r':
			t.oldState = stateQuotedFieldNewline
			t.state = stateCarriageReturn
			return true, false, nil
		default:
			t.state = stateQuotedField
			return false, false, nil
		}

	case stateComment:
		switch {
		case b == '\n':
			t.state = stateStartLine
			return true, false, nil
		case b == '\r':
			t.oldState = stateStartLine
			t.state = stateCarriageReturn
			return true, false, nil
		default:
			return true, false, nil
		}

	case stateCarriageReturn:
		// Either way the CR was a line terminator for the old state, and
		// that state needs its actual newline action run (closeField,
		// endOfLine) rather than a bare resume — only whether the real
		// byte b is itself consumed differs: a CRLF pair consumes both
		// bytes, a lone CR leaves b to be reprocessed against whatever
		// state the synthesis lands on (usually START_LINE).
		if b == '\n' {
			t.state = t.oldState
			_, innerDone, innerErr := t.step('\n', pos-1)
			if innerErr != nil {
				return true, false, innerErr
			}
			return true, innerDone, nil
		}
		t.state = t.oldState
		_, innerDone, innerErr := t.step('\n', pos-1)
		if innerErr != nil {
			return false, false, innerErr
		}
		return false, innerDone, nil
	}

	return true, false, nil
}

// checkColBound raises TooManyCols if a field is about to begin (or
// close) at a column index at or past numCols.
func (t *Tokenizer) checkColBound() error {
	if t.curCol >= t.numCols {
		return t.newError(TooManyCols, ErrTooManyCols)
	}
	return nil
}

// closeField finalizes the field currently being written in column
// curCol: trims trailing whitespace if configured, marks it empty if
// nothing remains, pushes the terminator, and advances to the next
// column's field.
func (t *Tokenizer) closeField() error {
	if cerr := t.checkColBound(); cerr != nil {
		return cerr
	}
	col := t.curCol
	if t.cfg.StripWhitespaceFields {
		buf := t.cols.buffers[col]
		cur := t.cols.cursor[col]
		for cur > t.fieldStart && isSpaceOrTab(buf[cur-1]) {
			cur--
		}
		t.cols.cursor[col] = cur
	}
	if t.cols.cursor[col] == t.fieldStart {
		t.cols.push(col, fieldEmptyMark)
	}
	t.cols.push(col, fieldTerminator)
	t.curCol++
	if t.curCol < t.numCols {
		t.fieldStart = t.cols.cursor[t.curCol]
	}
	t.state = stateStartField
	return nil
}

// rollbackField discards whatever has been pushed into col for the field
// in progress, used when a line is reclassified as a comment after
// whitespace had already been accumulated into column 0.
func (t *Tokenizer) rollbackField(col int) {
	t.cols.cursor[col] = t.fieldStart
}

// startFieldNewline handles a line terminator reached while still in
// START_FIELD — a field that is either empty, or whose leading
// whitespace was silently skipped by StripWhitespaceFields. Either way
// closeField sees nothing between fieldStart and the write cursor (any
// whitespace closeField would otherwise trim is whitespace that was never
// pushed in the first place), so it closes to an empty field. No
// backtracking is done here, whichever whitespace flags are set; see
// DESIGN.md's Open Question #1.
func (t *Tokenizer) startFieldNewline() (consumed, done bool, err error) {
	if cerr := t.closeField(); cerr != nil {
		return true, false, cerr
	}
	return t.endOfLine()
}

// endOfLine applies fill_extra_cols/NOT_ENOUGH_COLS policy, increments
// numRows, resets to START_LINE, and reports whether the requested row
// count has now been reached.
func (t *Tokenizer) endOfLine() (consumed, done bool, err error) {
	if t.curCol < t.numCols {
		if !t.cfg.FillExtraCols {
			return true, false, t.newError(NotEnoughCols, ErrNotEnoughCols)
		}
		for t.curCol < t.numCols {
			t.cols.push(t.curCol, fieldEmptyMark)
			t.cols.push(t.curCol, fieldTerminator)
			t.curCol++
		}
	}
	t.numRows++
	t.state = stateStartLine
	t.curCol = 0
	t.firstColWhitespace = true
	if t.requestedEnd >= 0 && t.numRows == t.requestedEnd {
		return true, true, nil
	}
	return true, false, nil
}
