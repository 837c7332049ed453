package yes

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ParseStringParallel parses like ParseString but tokenizes logical lines
// concurrently. Joining stays sequential (continuation must resolve
// first); each logical line is then independent, so the fan-out writes
// into an indexed results slice and output order matches input order.
// jobs <= 0 uses GOMAXPROCS.
func ParseStringParallel(ctx context.Context, body string, jobs int, literals ...Literal) ([]Result, error) {
	table, err := newLiteralTable(literals)
	if err != nil {
		return nil, err
	}

	// Split the way a line scanner reads: a trailing newline does not
	// open one more empty line, and a CR before the newline is dropped.
	lines := strings.Split(body, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	var logical []logicalLine
	joiner := newLineJoiner(table)
	for i, line := range lines {
		if ln, ok := joiner.push(i+1, line); ok {
			logical = append(logical, ln)
		}
	}
	start, pending := joiner.flush()

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(logical))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(logical), 1)))

	for i, ln := range logical {
		i, ln := i, ln
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = parseLogicalLine(ln, table)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if pending {
		results = append(results, errResult(start, ErrUnterminatedContinuation))
	}

	return results, nil
}
