package yes

import "strings"

// logicalLine is one fully stitched line, numbered by the first physical
// line it started on.
type logicalLine struct {
	number int
	text   string
}

// lineJoiner merges physical lines ending in an unescaped backslash with
// the lines that follow. The marker only counts when it sits outside any
// open literal span, so the joiner runs its own span scan over every
// fragment and carries the state across the boundary.
type lineJoiner struct {
	scan    spanScanner
	pending strings.Builder
	start   int
	joining bool
}

func newLineJoiner(table *literalTable) *lineJoiner {
	return &lineJoiner{scan: newSpanScanner(table)}
}

// continuationMarker reports whether line ends in an unescaped backslash
// that is free per the fragment mask. An even run of trailing backslashes
// is an escaped backslash, not a marker.
func continuationMarker(line string, free []bool) bool {
	n := 0
	for n < len(line) && line[len(line)-1-n] == glyphBackslash {
		n++
	}
	if n == 0 || n%2 == 0 {
		return false
	}
	return free[len(line)-1]
}

// push consumes one physical line. When a logical line completes it is
// returned with ok=true; while a continuation is pending ok is false.
func (j *lineJoiner) push(lineNo int, line string) (logicalLine, bool) {
	free, _ := j.scan.feed(line)

	if len(line) > 0 && continuationMarker(line, free) {
		if !j.joining {
			j.joining = true
			j.start = lineNo
		}
		// Joined with no inserted separator; only the marker is removed.
		j.pending.WriteString(line[:len(line)-1])
		return logicalLine{}, false
	}

	number := lineNo
	text := line
	if j.joining {
		number = j.start
		text = j.pending.String() + line
	}

	j.pending.Reset()
	j.joining = false
	j.scan.reset()

	return logicalLine{number: number, text: text}, true
}

// flush reports a continuation still pending at end of input, returning
// the physical line number the join started on.
func (j *lineJoiner) flush() (int, bool) {
	if !j.joining {
		return 0, false
	}
	start := j.start
	j.pending.Reset()
	j.joining = false
	j.scan.reset()
	return start, true
}
