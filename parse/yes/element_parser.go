package yes

import "strings"

// =========================
// Element Tokenizer
// =========================

// elementParser tokenizes one logical line using the free-byte mask
// produced by the span scanner, so no delimiter inside a literal span is
// ever interpreted as structure.
type elementParser struct {
	table  *literalTable
	line   string
	free   []bool
	lineNo int
	pos    int
}

// parseLogicalLine classifies and tokenizes one logical line.
func parseLogicalLine(ln logicalLine, table *literalTable) Result {
	line := strings.TrimSpace(ln.text)
	if line == "" {
		return Result{Kind: KindBlank, Line: ln.number}
	}
	if line[0] == glyphHash {
		return Result{Kind: KindComment, Line: ln.number, Text: strings.TrimSpace(line[1:])}
	}

	scan := newSpanScanner(table)
	free, code := scan.classify(line)
	if code != ErrNone {
		return errResult(ln.number, code)
	}

	p := &elementParser{table: table, line: line, free: free, lineNo: ln.number}
	return p.parse()
}

func (p *elementParser) parse() Result {
	el := &Element{Line: p.lineNo}

	// Leading [tag] attributes. The bracket only counts when it is a free
	// byte: a caller-registered bracket literal shadows attribute syntax.
	p.skipSpaces()
	for p.pos < len(p.line) && p.line[p.pos] == '[' && p.free[p.pos] {
		attr, code := p.readAttribute()
		if code != ErrNone {
			return errResult(p.lineNo, code)
		}
		el.Attrs = append(el.Attrs, attr)
		p.skipSpaces()
	}

	if p.pos < len(p.line) && p.line[p.pos] == glyphBang && p.free[p.pos] {
		el.Global = true
		p.pos++
	}

	nameEnd := p.nextFreeSpace(p.pos)
	el.Name = stripQuotes(p.line[p.pos:nameEnd])
	if el.Name == "" {
		return errResult(p.lineNo, ErrMissingElement)
	}

	p.pos = nameEnd
	p.skipSpaces()
	if code := p.parseArguments(el); code != ErrNone {
		return errResult(p.lineNo, code)
	}

	return Result{Kind: KindElement, Line: p.lineNo, El: el}
}

// readAttribute consumes one [tag] or [tag=value] group at p.pos.
func (p *elementParser) readAttribute() (Attribute, ErrorCode) {
	end := -1
	for i := p.pos + 1; i < len(p.line); i++ {
		if p.line[i] == ']' && p.free[i] {
			end = i
			break
		}
	}
	if end < 0 {
		return Attribute{}, ErrMalformedAttribute
	}

	tag := strings.TrimSpace(p.line[p.pos+1 : end])
	if tag == "" {
		return Attribute{}, ErrMalformedAttribute
	}

	attr := Attribute{Name: tag}
	if i := strings.IndexByte(tag, glyphEqual); i >= 0 {
		attr.Name = strings.TrimSpace(tag[:i])
		attr.Value = stripQuotes(strings.TrimSpace(tag[i+1:]))
		if attr.Name == "" {
			return Attribute{}, ErrMalformedAttribute
		}
	}

	p.pos = end + 1
	return attr, ErrNone
}

func (p *elementParser) skipSpaces() {
	for p.pos < len(p.line) && p.free[p.pos] && isSpace(p.line[p.pos]) {
		p.pos++
	}
}

// nextFreeSpace returns the index of the first free whitespace byte at or
// after from, or the line length when none exists.
func (p *elementParser) nextFreeSpace(from int) int {
	for i := from; i < len(p.line); i++ {
		if p.free[i] && isSpace(p.line[i]) {
			return i
		}
	}
	return len(p.line)
}

// =========================
// Argument Parser
// =========================

// parseArguments splits the tail starting at p.pos into the element's
// arguments. The delimiter is learned first: the format allows both comma
// and space delimited tails, and a lone key = value group may be spaced
// out around the equals sign.
func (p *elementParser) parseArguments(el *Element) ErrorCode {
	start := p.pos
	if start >= len(p.line) {
		return ErrNone
	}

	delim := p.learnDelimiter(start)

	segStart := start
	for i := start; i <= len(p.line); i++ {
		if i < len(p.line) && !p.delimiterAt(i, delim) {
			continue
		}
		if code := p.emitArgument(el, segStart, i); code != ErrNone {
			return code
		}
		segStart = i + 1
	}

	return ErrNone
}

// learnDelimiter scans the tail once. A free comma anywhere selects comma
// delimiting. With no comma, a tail that is exactly one key = value group
// still gets comma semantics so the spaces around its equals sign do not
// shatter it. Everything else splits on free whitespace.
func (p *elementParser) learnDelimiter(start int) byte {
	equals := 0
	firstEq := -1
	tokensBefore := 0
	tokensAfter := 0
	spaceSeen := false
	inToken := false

	for i := start; i < len(p.line); i++ {
		c := p.line[i]
		if p.free[i] {
			if c == glyphComma {
				return glyphComma
			}
			if c == glyphEqual {
				inToken = false
				equals++
				if firstEq < 0 {
					firstEq = i
				}
				continue
			}
			if isSpace(c) {
				inToken = false
				spaceSeen = true
				continue
			}
		}
		// Free content bytes and spanned bytes both extend a token.
		if !inToken {
			if firstEq < 0 {
				tokensBefore++
			} else {
				tokensAfter++
			}
			inToken = true
		}
	}

	if equals == 1 && tokensBefore == 1 && tokensAfter <= 1 && spaceSeen {
		return glyphComma
	}
	return glyphSpace
}

func (p *elementParser) delimiterAt(i int, delim byte) bool {
	if !p.free[i] {
		return false
	}
	if delim == glyphSpace {
		return isSpace(p.line[i])
	}
	return p.line[i] == delim
}

// emitArgument evaluates one raw slice [s, e) into a KeyVal. Empty slices
// and a bare equals sign are dropped.
func (p *elementParser) emitArgument(el *Element, s, e int) ErrorCode {
	s, e = p.trimRange(s, e)
	if s >= e {
		return ErrNone
	}
	if e-s == 1 && p.line[s] == glyphEqual {
		return ErrNone
	}

	pivot := -1
	for i := s; i < e; i++ {
		if p.free[i] && p.line[i] == glyphEqual {
			pivot = i
			break
		}
	}

	if pivot < 0 {
		el.Args = append(el.Args, KeyVal{Val: p.stripBounded(s, e)})
		return ErrNone
	}

	ks, ke := p.trimRange(s, pivot)
	if ks >= ke {
		return ErrInvalidKey
	}
	for i := ks; i < ke; i++ {
		if p.free[i] && isSpace(p.line[i]) {
			return ErrInvalidKey
		}
	}

	vs, ve := p.trimRange(pivot+1, e)
	el.Args = append(el.Args, KeyVal{
		Key: stripQuotes(p.line[ks:ke]),
		Val: p.stripBounded(vs, ve),
	})
	return ErrNone
}

// trimRange shrinks [s, e) past free whitespace on both ends. Spanned
// whitespace is value content and stays.
func (p *elementParser) trimRange(s, e int) (int, int) {
	for s < e && p.free[s] && isSpace(p.line[s]) {
		s++
	}
	for e > s && p.free[e-1] && isSpace(p.line[e-1]) {
		e--
	}
	return s, e
}

// stripBounded extracts [s, e) and removes one literal pair wrapping the
// whole value, so a quoted or bracketed value stores only its content.
func (p *elementParser) stripBounded(s, e int) string {
	v := p.line[s:e]
	if p.table.bounded(v) {
		return v[1 : len(v)-1]
	}
	return v
}

func isSpace(b byte) bool {
	return b == glyphSpace || b == glyphTab
}

// stripQuotes removes one surrounding quote pair; names and keys may be
// quoted to embed reserved glyphs.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == glyphQuote && s[len(s)-1] == glyphQuote {
		return s[1 : len(s)-1]
	}
	return s
}
