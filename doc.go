// # tabtok: a streaming tabular-text tokenizer
//
// tabtok turns a borrowed byte slice of delimited text (CSV-like, with
// configurable delimiter, quote, and comment bytes) into an in-memory
// columnar store of null-terminated field values. It is built to sit
// underneath a higher-level ingestion layer: type inference, text
// decoding, and file I/O orchestration are the caller's job.
//
// # Features
//
// - Byte-driven state machine handling quoting, escaped quotes, embedded
// newlines in quoted fields, comment lines, mixed LF/CRLF/CR endings, and
// configurable whitespace stripping.
// - Columnar output: one growable buffer per column, fields separated by
// sentinel bytes, enabling zero-copy field reads via an iteration cursor.
// - Locale-independent decimal-to-double conversion (Xstrtod) with
// configurable decimal, exponent, and thousands-separator bytes.
// - A read-only memory-mapping helper for feeding whole files to the
// tokenizer without a copy.
//
// # Getting Started
//
// The module path is `github.com/oleg578/tabtok`. Import it directly when
// working inside this repository or adjust the module path for your fork.
package tabtok
