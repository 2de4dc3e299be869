package tabtok

// SkipLines advances the source position past offset significant logical
// lines. A line is significant if it contains at least one byte that is
// not a line terminator and it is not a comment line. When header is
// true, a whitespace-only line still counts as significant (only a
// zero-length line is blank to the header predicate); when false, blank
// and whitespace-only lines never count.
//
// If the source runs out before offset significant lines are found:
// header true signals ErrInvalidLine (a header was expected but absent),
// header false is a no-op (there is no data to parse; the caller's next
// Tokenize call will simply do nothing).
func (t *Tokenizer) SkipLines(offset int, header bool) error {
	t.err = nil
	pos := t.pos
	count := 0

	for count < offset {
		if pos >= len(t.src) {
			if header {
				t.err = t.newError(InvalidLine, ErrInvalidLine)
				return t.err
			}
			t.pos = pos
			return nil
		}

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

		if isSignificantLine(t.src[lineStart:lineEnd], t.cfg.Comment, header) {
			count++
		}
		pos = next
	}

	t.pos = pos
	return nil
}

// isSignificantLine implements the shared predicate used by SkipLines and
// header capture: a comment line is never significant; a truly-blank line
// (zero bytes, i.e. back-to-back terminators) is never significant either,
// header or not; a whitespace-only line (at least one space/tab byte) is
// significant only when header is true (the header predicate counts
// whitespace as significant; for data, whitespace-only lines are skipped
// exactly like empty ones).
func isSignificantLine(line []byte, comment byte, header bool) bool {
	if len(line) == 0 {
		return false
	}

	firstNonWS := -1
	for i, b := range line {
		if b != ' ' && b != '\t' {
			firstNonWS = i
			break
		}
	}

	if firstNonWS >= 0 && comment != 0 && line[firstNonWS] == comment {
		return false
	}

	if firstNonWS < 0 {
		return header
	}
	return true
}
