package tabtok

import "errors"

// Sentinel errors corresponding to the five error codes a tokenizer can
// raise. They are wrapped (never returned bare) inside a *TokenizeError so
// callers get row/column context via errors.As.
var (
	ErrInvalidLine   = errors.New("tabtok: header line not found")
	ErrTooManyCols   = errors.New("tabtok: too many columns")
	ErrNotEnoughCols = errors.New("tabtok: not enough columns")
	ErrConversion    = errors.New("tabtok: conversion error")
	ErrOverflow      = errors.New("tabtok: overflow")
)

// ErrorCode enumerates the outcomes a tokenizer call can record on itself,
// mirroring the reference implementation's integer error codes.
type ErrorCode int

const (
	NoError ErrorCode = iota
	InvalidLine
	TooManyCols
	NotEnoughCols
	ConversionError
	OverflowError
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "NoError"
	case InvalidLine:
		return "InvalidLine"
	case TooManyCols:
		return "TooManyCols"
	case NotEnoughCols:
		return "NotEnoughCols"
	case ConversionError:
		return "ConversionError"
	case OverflowError:
		return "OverflowError"
	default:
		return "Unknown"
	}
}

// TokenizeError reports the code, row, and column at which a tokenizer
// call aborted. It unwraps to one of the package's sentinel errors.
type TokenizeError struct {
	Code ErrorCode
	Row  int
	Col  int
	Err  error
}

func (e *TokenizeError) Error() string {
	if e == nil {
		return ""
	}
	return "tabtok: " + e.Code.String() + " at row " + itoa(e.Row) + ", column " + itoa(e.Col) + ": " + e.Err.Error()
}

func (e *TokenizeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Config holds the construction-time knobs of a Tokenizer, mirroring the
// reference implementation's constructor parameters.
type Config struct {
	Delimiter byte
	// Comment is the comment-line leading byte; 0 disables comment handling.
	Comment byte
	Quote   byte

	FillExtraCols         bool
	StripWhitespaceLines  bool
	StripWhitespaceFields bool
	UseFastConverter      bool
}

type fsmState int

const (
	stateStartLine fsmState = iota
	stateStartField
	stateField
	stateStartQuotedField
	stateQuotedField
	stateQuotedFieldNewline
	stateComment
	stateCarriageReturn
)

// Tokenizer converts a borrowed byte slice into a columnar field store. It
// is not safe for concurrent use by multiple goroutines; distinct
// Tokenizer instances over distinct sources are independent.
type Tokenizer struct {
	cfg Config

	src []byte
	pos int

	state    fsmState
	oldState fsmState

	cols *columnStore

	numCols int
	curCol  int
	numRows int

	fieldStart int
	// firstColWhitespace tracks whether column 0's content so far in the
	// current row is entirely space/tab bytes (FIELD state's comment
	// reclassification quirk, preserved verbatim from the reference).
	firstColWhitespace bool

	requestedEnd int
	header       bool

	err *TokenizeError

	iterCol    int
	iterPos    int
	emptyField [2]byte
}

// NewTokenizer constructs a Tokenizer with the given configuration. No
// source is bound yet; call SetSource before SkipLines/Tokenize.
func NewTokenizer(cfg Config) *Tokenizer {
	return &Tokenizer{cfg: cfg}
}

// SetSource binds the byte slice the tokenizer will read from. The slice
// is borrowed: the Tokenizer never copies, allocates, or frees it, and it
// must remain valid for the duration of every subsequent call.
func (t *Tokenizer) SetSource(src []byte) {
	t.src = src
	t.pos = 0
}

// Err returns the error recorded by the most recent SkipLines or Tokenize
// call, or nil if the instance has not errored.
func (t *Tokenizer) Err() *TokenizeError {
	return t.err
}

// ErrorCode reports the code of the most recent error, or NoError.
func (t *Tokenizer) ErrorCode() ErrorCode {
	if t.err == nil {
		return NoError
	}
	return t.err.Code
}

// NumRows reports how many data rows the last Tokenize call produced.
func (t *Tokenizer) NumRows() int {
	return t.numRows
}

func (t *Tokenizer) newError(code ErrorCode, base error) *TokenizeError {
	return &TokenizeError{Code: code, Row: t.numRows, Col: t.curCol, Err: base}
}
