package parsec

import (
	"fmt"
	"strings"
)

// Parser is the type of all parsers. A parser either returns a value and
// the state following the recognized input, or an error.
// The returned state is meaningless if the error is non-nil.
type Parser[T any] func(State) (T, State, *Error)

// Satisfy matches a single rune for which pred holds.
// what is the description used for error messages.
func Satisfy(what string, pred func(rune) bool) Parser[rune] {
	return func(st State) (rune, State, *Error) {
		r, ok := st.Peek()
		if !ok || !pred(r) {
			return 0, st, expected(st, what)
		}
		return r, st.advance(1), nil
	}
}

// Char matches the rune c.
func Char(c rune) Parser[rune] {
	return Satisfy(fmt.Sprintf("%q", c), func(r rune) bool {
		return r == c
	})
}

// String matches a literal string. If only a prefix of s matches, the
// parser fails with input consumed.
func String(s string) Parser[string] {
	lit := []rune(s)
	what := fmt.Sprintf("%q", s)
	return func(st State) (string, State, *Error) {
		cur := st
		for _, c := range lit {
			r, ok := cur.Peek()
			if !ok || r != c {
				return "", st, expected(cur, what).after(st, cur)
			}
			cur = cur.advance(1)
		}
		return s, cur, nil
	}
}

// OneOf matches any rune contained in chars.
func OneOf(chars string) Parser[rune] {
	return Satisfy(fmt.Sprintf("one of %q", chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// NoneOf matches any rune not contained in chars.
func NoneOf(chars string) Parser[rune] {
	return Satisfy(fmt.Sprintf("none of %q", chars), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// Letter matches an ASCII letter.
func Letter() Parser[rune] {
	return Satisfy("letter", isLetter)
}

// Space matches a single space character, excluding newline.
func Space() Parser[rune] {
	return Satisfy("space", func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\v'
	})
}

// Newline matches '\n'.
func Newline() Parser[rune] {
	return Satisfy("newline", func(r rune) bool {
		return r == '\n'
	})
}

// Whitespace matches a possibly empty run of spaces and newlines.
// It never fails.
func Whitespace() Parser[string] {
	return ManyString(Choice(Space(), Newline()))
}

// EOF succeeds at the end of input only.
func EOF() Parser[struct{}] {
	return func(st State) (struct{}, State, *Error) {
		if !st.AtEnd() {
			return struct{}{}, st, expected(st, "end of input")
		}
		return struct{}{}, st, nil
	}
}

// Return succeeds with v without consuming input.
func Return[T any](v T) Parser[T] {
	return func(st State) (T, State, *Error) {
		return v, st, nil
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
