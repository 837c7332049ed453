package yes

import "fmt"

// Reserved structural glyphs. None of them may serve as a literal
// delimiter because the tokenizer interprets them positionally.
const (
	glyphSpace     = ' '
	glyphTab       = '\t'
	glyphComma     = ','
	glyphEqual     = '='
	glyphHash      = '#'
	glyphBang      = '!'
	glyphQuote     = '"'
	glyphBackslash = '\\'
)

// Literal is a begin/end delimiter pair. Bytes between a free begin byte
// and the matching end byte form a span in which structural glyphs are
// plain content. Begin and end may be the same byte (quotes are).
type Literal struct {
	Begin byte
	End   byte
}

// Quotes is the default literal pair. It is always active, whether or not
// the caller supplies custom literals.
func Quotes() Literal {
	return Literal{Begin: glyphQuote, End: glyphQuote}
}

func reservedGlyph(b byte) bool {
	switch b {
	case glyphSpace, glyphTab, glyphComma, glyphEqual, glyphHash, glyphBang, glyphQuote, glyphBackslash:
		return true
	}
	return false
}

// NewLiteral validates a custom delimiter pair. Reserved structural bytes
// are rejected so that scanning stays unambiguous.
func NewLiteral(begin, end byte) (Literal, error) {
	if reservedGlyph(begin) {
		return Literal{}, fmt.Errorf("literal begin %q is a reserved glyph", begin)
	}
	if reservedGlyph(end) {
		return Literal{}, fmt.Errorf("literal end %q is a reserved glyph", end)
	}
	return Literal{Begin: begin, End: end}, nil
}

// literalTable is the ordered set of active literal pairs for one parse
// call. It is built once and shared read-only across every line.
type literalTable struct {
	entries []Literal
}

// newLiteralTable injects the quote pair first, then appends the caller's
// literals. Two entries with the same begin byte make scanning ambiguous
// and are rejected before any line is processed.
func newLiteralTable(custom []Literal) (*literalTable, error) {
	entries := make([]Literal, 0, len(custom)+1)
	entries = append(entries, Quotes())

	for _, lit := range custom {
		if lit == Quotes() {
			continue
		}
		for _, prev := range entries {
			if prev.Begin == lit.Begin {
				return nil, &ParseError{
					Code:    ErrConfiguration,
					Message: fmt.Sprintf("duplicate literal begin byte %q", lit.Begin),
				}
			}
		}
		entries = append(entries, lit)
	}

	return &literalTable{entries: entries}, nil
}

// lookup returns the literal whose begin byte is b.
func (t *literalTable) lookup(b byte) (Literal, bool) {
	for _, lit := range t.entries {
		if lit.Begin == b {
			return lit, true
		}
	}
	return Literal{}, false
}

// bounded reports whether s is wrapped by a matching literal pair, so the
// delimiters can be stripped from a stored value.
func (t *literalTable) bounded(s string) bool {
	if len(s) < 2 {
		return false
	}
	lit, ok := t.lookup(s[0])
	return ok && lit.End == s[len(s)-1]
}
