package tabtok

import (
	"errors"
	"io"
)

// initialColumnCapacity is the starting size of each column's backing
// buffer. resize always doubles it, so capacity stays a power-of-two
// multiple of this constant regardless of how many times it grows.
const initialColumnCapacity = 50

// fieldEmptyMark and fieldTerminator are the two sentinel bytes used to
// encode field boundaries in-band within a column buffer. Neither byte is
// expected to occur in ordinary tabular text; if it does, it is still
// stored verbatim, since both are simply "the next byte" as far as
// push/resize are concerned. It is not read back intact: NextField ends a
// field at any 0x00 byte and reads a field starting with 0x01 as empty,
// and FinishedIteration treats a 0x00 at a field start as end of column.
const (
	fieldTerminator byte = 0x00
	fieldEmptyMark  byte = 0x01
)

// columnStore holds one growable buffer per column. Fields within a
// buffer are separated by fieldTerminator; an empty field is the two-byte
// sequence fieldEmptyMark, fieldTerminator. There is no secondary index of
// field offsets — the buffer itself is the output.
type columnStore struct {
	buffers [][]byte
	cursor  []int
}

func newColumnStore(numCols int) *columnStore {
	cs := &columnStore{
		buffers: make([][]byte, numCols),
		cursor:  make([]int, numCols),
	}
	for i := range cs.buffers {
		cs.buffers[i] = make([]byte, initialColumnCapacity)
	}
	return cs
}

// push appends b to column col, resizing first if the write cursor has
// reached the buffer's capacity.
func (cs *columnStore) push(col int, b byte) {
	if cs.cursor[col] == len(cs.buffers[col]) {
		cs.resize(col)
	}
	cs.buffers[col][cs.cursor[col]] = b
	cs.cursor[col]++
}

// resize doubles the buffer's capacity. make zero-fills the new upper
// half automatically, which is what lets FinishedIteration treat a
// leftover 0x00 as "no more fields" without tracking a separate write
// length per column.
func (cs *columnStore) resize(col int) {
	grown := make([]byte, len(cs.buffers[col])*2)
	copy(grown, cs.buffers[col])
	cs.buffers[col] = grown
}

// StartIteration positions the iteration cursor at the beginning of col.
func (t *Tokenizer) StartIteration(col int) error {
	if t.cols == nil || col < 0 || col >= len(t.cols.buffers) {
		return errors.New("tabtok: column index out of range")
	}
	t.iterCol = col
	t.iterPos = 0
	return nil
}

// FinishedIteration reports whether the current column's iteration cursor
// has walked off the buffer or landed on a terminator with nothing behind
// it — i.e. there are no more fields to read.
func (t *Tokenizer) FinishedIteration() bool {
	buf := t.cols.buffers[t.iterCol]
	return t.iterPos >= len(buf) || buf[t.iterPos] == fieldTerminator
}

// NextField returns the next field in the current column: a zero-copy
// slice into the column buffer, or — for an empty field — the
// instance's reserved two-byte buffer sliced to length zero. It returns
// io.EOF once FinishedIteration is true.
func (t *Tokenizer) NextField() ([]byte, error) {
	if t.FinishedIteration() {
		return nil, io.EOF
	}
	buf := t.cols.buffers[t.iterCol]
	if buf[t.iterPos] == fieldEmptyMark {
		t.iterPos += 2
		return t.emptyField[:0], nil
	}
	start := t.iterPos
	i := start
	for buf[i] != fieldTerminator {
		i++
	}
	t.iterPos = i + 1
	return buf[start:i], nil
}
