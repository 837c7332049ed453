package yes

// Package yes implements a parser for YES ("Your Extensible Script")
// documents: line-oriented scriptlets made of an element name, optional
// leading attributes, and comma or space delimited arguments.
//
// Scope:
// - Literal spans (custom begin/end pairs, quotes always active)
// - Backslash line continuation, span-aware
// - Element / attribute / argument tokenization
// - Typed value access with default fallback
//
// Non-goals (by design):
// - Semantic validation of keys and values
// - Native nested sub-documents
// - Comment preservation beyond the line payload
//
// The grammar carries no meaning of its own; elements, attributes, and
// keys are interpreted entirely by the caller, which makes the package a
// substrate for config files, animation scripts, and small DSLs.

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// =========================
// Result Model
// =========================

// Kind tags the outcome of one logical line.
type Kind uint8

const (
	KindElement Kind = iota
	KindComment
	KindBlank
	KindError
)

// Result is the outcome for one logical line. Exactly one of El, Text,
// and Err is meaningful, selected by Kind. Line is the first physical
// line of the logical line; continuation lines collapse to one number.
type Result struct {
	Kind Kind
	Line int
	El   *Element
	Text string
	Err  *ParseError
}

// Ok reports whether the line parsed without a structural error.
func (r Result) Ok() bool {
	return r.Kind != KindError
}

func errResult(line int, code ErrorCode) Result {
	return Result{Kind: KindError, Line: line, Err: newError(line, code)}
}

// =========================
// Public API
// =========================

// Parse reads a YES document from r and returns one Result per logical
// line, in input order. A bad line never aborts the document: its Result
// carries the diagnostic and parsing continues. The returned error is
// non-nil only for an invalid literal table or a read failure.
func Parse(r io.Reader, literals ...Literal) ([]Result, error) {
	table, err := newLiteralTable(literals)
	if err != nil {
		return nil, err
	}

	var results []Result
	joiner := newLineJoiner(table)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if ln, ok := joiner.push(lineNo, scanner.Text()); ok {
			results = append(results, parseLogicalLine(ln, table))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Input ended while a continuation was still pending. There is no
	// next line to resume on, so this closes the document.
	if start, pending := joiner.flush(); pending {
		results = append(results, errResult(start, ErrUnterminatedContinuation))
	}

	return results, nil
}

// ParseString parses a document held in memory.
func ParseString(body string, literals ...Literal) ([]Result, error) {
	return Parse(strings.NewReader(body), literals...)
}

// ParseFile parses the document at path.
func ParseFile(path string, literals ...Literal) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, literals...)
}
