package yes

// spanScanner walks a line left to right and classifies every byte as
// free or inside a literal span. At most one span is open at a time; the
// joiner resumes the same scanner across continued physical lines so that
// span state survives the line boundary.
type spanScanner struct {
	table *literalTable
	open  *Literal
}

func newSpanScanner(table *literalTable) spanScanner {
	return spanScanner{table: table}
}

func (s *spanScanner) reset() {
	s.open = nil
}

// inSpan reports whether a span is still open after the bytes fed so far.
func (s *spanScanner) inSpan() bool {
	return s.open != nil
}

// feed consumes one line fragment and returns a mask where free[i] is
// true when line[i] sits outside any literal span. Span delimiters
// themselves count as spanned. The first structural conflict is reported
// through code; scanning continues so the mask always covers the whole
// fragment.
func (s *spanScanner) feed(line string) (free []bool, code ErrorCode) {
	free = make([]bool, len(line))
	code = ErrNone

	for i := 0; i < len(line); i++ {
		c := line[i]

		if s.open != nil {
			if c == s.open.End {
				s.open = nil
				continue
			}
			// Reopening an asymmetric pair inside itself would need a
			// nesting stack, which the format does not have.
			if c == s.open.Begin && code == ErrNone {
				code = ErrNestedSpan
			}
			continue
		}

		if lit, ok := s.table.lookup(c); ok {
			s.open = &lit
			continue
		}

		free[i] = true
	}

	return free, code
}

// classify scans a complete logical line from a clean state and also
// checks that no span is left open at end of line.
func (s *spanScanner) classify(line string) ([]bool, ErrorCode) {
	s.reset()
	free, code := s.feed(line)
	if code == ErrNone && s.open != nil {
		code = ErrUnterminatedSpan
	}
	s.reset()
	return free, code
}
