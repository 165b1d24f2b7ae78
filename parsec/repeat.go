package parsec

import (
	fp "github.com/npillmayer/fpweb"
)

// Many applies p zero or more times. It stops as soon as p fails without
// consuming input; a failure of p after consuming input is an error.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(st State) ([]T, State, *Error) {
		var items []T
		cur := st
		for {
			v, next, err := p(cur)
			if err != nil {
				if err.recoverable() {
					return items, cur, nil
				}
				return nil, st, err.after(st, cur)
			}
			if next.offset == cur.offset { // p accepts the empty input
				tracer().Debugf("many: parser succeeded without consuming input %v", cur)
				return append(items, v), next, nil
			}
			items = append(items, v)
			cur = next
		}
	}
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Map(Seq2(p, Many(p)), func(x fp.Pair[T, []T]) []T {
		return append([]T{x.Left}, x.Right...)
	})
}

// ManyString matches zero or more runes with p and returns them as a string.
func ManyString(p Parser[rune]) Parser[string] {
	return Map(Many(p), runesToString)
}

// Many1String matches one or more runes with p and returns them as a string.
func Many1String(p Parser[rune]) Parser[string] {
	return Map(Many1(p), runesToString)
}

// SepBy matches zero or more occurrences of p, separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(st State) ([]T, State, *Error) {
		v, next, err := p(st)
		if err != nil {
			if err.recoverable() {
				return nil, st, nil
			}
			return nil, st, err
		}
		rest, next, err := Many(Then(sep, p))(next)
		if err != nil {
			return nil, st, err.after(st, next)
		}
		return append([]T{v}, rest...), next, nil
	}
}

// SepBy1 matches one or more occurrences of p, separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(Seq2(p, Many(Then(sep, p))), func(x fp.Pair[T, []T]) []T {
		return append([]T{x.Left}, x.Right...)
	})
}

// SepEndBy matches zero or more occurrences of p, separated and optionally
// terminated by sep.
func SepEndBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(st State) ([]T, State, *Error) {
		var items []T
		cur := st
		for {
			v, next, err := p(cur)
			if err != nil {
				if err.recoverable() {
					return items, cur, nil
				}
				return nil, st, err.after(st, cur)
			}
			items = append(items, v)
			cur = next
			if _, next, err = sep(cur); err != nil {
				if err.recoverable() {
					return items, cur, nil
				}
				return nil, st, err.after(st, cur)
			}
			if next.offset == cur.offset {
				return items, next, nil
			}
			cur = next
		}
	}
}

func runesToString(rs []rune) string {
	return string(rs)
}
