package medit

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenReaderNext(t *testing.T) {
	t.Parallel()

	t.Run("pulls across line boundaries", func(t *testing.T) {
		t.Parallel()

		tr := newTokenReader(strings.NewReader("a b\nc\nd e f\n"))

		got, err := tr.next(4)
		if err != nil {
			t.Fatalf("next(4) error = %v", err)
		}
		want := []string{"a", "b", "c", "d"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("token %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("skips comment and blank lines", func(t *testing.T) {
		t.Parallel()

		input := "# header comment\n\n   \na\n# between\nb\n"
		tr := newTokenReader(strings.NewReader(input))

		got, err := tr.next(2)
		if err != nil {
			t.Fatalf("next(2) error = %v", err)
		}
		if got[0] != "a" || got[1] != "b" {
			t.Errorf("tokens = %v, want [a b]", got)
		}
	})

	t.Run("splits on arbitrary whitespace", func(t *testing.T) {
		t.Parallel()

		tr := newTokenReader(strings.NewReader("  a\t\tb   c  \n"))

		got, err := tr.next(3)
		if err != nil {
			t.Fatalf("next(3) error = %v", err)
		}
		if got[0] != "a" || got[1] != "b" || got[2] != "c" {
			t.Errorf("tokens = %v, want [a b c]", got)
		}
	})

	t.Run("zero tokens is a no-op", func(t *testing.T) {
		t.Parallel()

		tr := newTokenReader(strings.NewReader("a\n"))

		if _, err := tr.next(0); err != nil {
			t.Fatalf("next(0) error = %v", err)
		}

		// The single token must still be available.
		tok, err := tr.nextToken()
		if err != nil {
			t.Fatalf("nextToken() error = %v", err)
		}
		if tok != "a" {
			t.Errorf("token = %q, want %q", tok, "a")
		}
	})

	t.Run("reports unexpected end of input", func(t *testing.T) {
		t.Parallel()

		tr := newTokenReader(strings.NewReader("a b\n"))

		_, err := tr.next(3)
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("next(3) error = %v, want ErrUnexpectedEOF", err)
		}
	})

	t.Run("comment-only input is empty", func(t *testing.T) {
		t.Parallel()

		tr := newTokenReader(strings.NewReader("# only\n# comments\n\n"))

		_, err := tr.nextToken()
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("nextToken() error = %v, want ErrUnexpectedEOF", err)
		}
	})
}
