package parsec

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNestingTooDeep is the cause of errors raised by Nested if the
// recursion limit is exceeded.
var ErrNestingTooDeep = errors.New("nesting too deep")

// Error is the failure type of parsers.
//
// A syntax error is raised whenever a parser's expectation about the input
// is not met. It has a nil Cause. A semantic error is raised by a check on
// input which already has been recognized (see AndThen); its Cause is set.
type Error struct {
	Offset   int      // rune offset of the failure
	Expected []string // descriptions of what would have been accepted
	Cause    error    // non-nil for semantic errors

	consumed bool // input has been consumed before failing
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Cause.Error())
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at offset %d", e.Offset)
	}
	return fmt.Sprintf("syntax error at offset %d: expected %s", e.Offset,
		strings.Join(e.Expected, " or "))
}

// Unwrap returns the cause of a semantic error, making errors.Is work
// for sentinel causes.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsSemantic is true for errors raised by a semantic check.
// Semantic errors are never backtracked.
func (e *Error) IsSemantic() bool {
	return e.Cause != nil
}

// Consumed reports whether the failing parser consumed input.
func (e *Error) Consumed() bool {
	return e.consumed || e.Cause != nil
}

// recoverable errors allow a Choice to try its next alternative.
func (e *Error) recoverable() bool {
	return !e.Consumed()
}

func expected(st State, what ...string) *Error {
	return &Error{Offset: st.offset, Expected: what}
}

func semantic(st State, cause error) *Error {
	return &Error{Offset: st.offset, Cause: cause, consumed: true}
}

// after marks e as consuming if cur has moved beyond start.
func (e *Error) after(start, cur State) *Error {
	if e.consumed || cur.offset == start.offset {
		return e
	}
	c := *e
	c.consumed = true
	return &c
}

// mergeErrors combines the errors of alternatives which failed without
// consuming input. The error furthest into the input wins; expectations
// at that offset are collected.
func mergeErrors(errs []*Error) *Error {
	if len(errs) == 0 {
		return nil
	}
	offset := errs[0].Offset
	for _, e := range errs[1:] {
		if e.Offset > offset {
			offset = e.Offset
		}
	}
	merged := &Error{Offset: offset}
	seen := make(map[string]bool)
	for _, e := range errs {
		if e.Offset != offset {
			continue
		}
		for _, x := range e.Expected {
			if !seen[x] {
				seen[x] = true
				merged.Expected = append(merged.Expected, x)
			}
		}
	}
	return merged
}
