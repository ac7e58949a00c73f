package medit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// tokenReader turns a line-oriented input into a flat token stream.
// Tokens are whitespace-separated fields; comment lines (leading '#')
// and blank lines contribute nothing. A record's tokens may span any
// number of physical lines, so callers ask for token counts, never
// for lines.
type tokenReader struct {
	scanner *bufio.Scanner
	line    []string
	pos     int
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{scanner: bufio.NewScanner(r)}
}

// next returns exactly the next n tokens, reading ahead across line
// boundaries as needed. If the input is exhausted first it returns
// ErrUnexpectedEOF; the reader must not be reused after that.
func (t *tokenReader) next(n int) ([]string, error) {
	items := make([]string, 0, n)
	for len(items) < n {
		if t.pos >= len(t.line) {
			if err := t.advance(); err != nil {
				return nil, fmt.Errorf("%w: wanted %d more tokens", err, n-len(items))
			}
		}
		take := n - len(items)
		if rest := len(t.line) - t.pos; take > rest {
			take = rest
		}
		items = append(items, t.line[t.pos:t.pos+take]...)
		t.pos += take
	}
	return items, nil
}

// nextToken returns the next single token.
func (t *tokenReader) nextToken() (string, error) {
	items, err := t.next(1)
	if err != nil {
		return "", err
	}
	return items[0], nil
}

// advance loads the next line that carries tokens, skipping comment
// and blank lines.
func (t *tokenReader) advance() error {
	for t.scanner.Scan() {
		line := strings.TrimSpace(t.scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		t.line = strings.Fields(line)
		t.pos = 0
		return nil
	}
	if err := t.scanner.Err(); err != nil {
		return fmt.Errorf("read line: %w", err)
	}
	return ErrUnexpectedEOF
}
