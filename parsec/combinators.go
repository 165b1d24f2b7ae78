package parsec

import (
	fp "github.com/npillmayer/fpweb"
	"github.com/npillmayer/fpweb/maybe"
	"github.com/npillmayer/fpweb/result"
)

// Map transforms the result of p with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(st State) (U, State, *Error) {
		v, next, err := p(st)
		if err != nil {
			var zero U
			return zero, st, err
		}
		return f(v), next, nil
	}
}

// AndThen runs p and checks its result with f. If f returns an error
// result, the parser fails with a semantic error located at the start of p.
// Semantic errors are never backtracked.
func AndThen[T, U any](p Parser[T], f func(T) result.Result[U]) Parser[U] {
	return func(st State) (U, State, *Error) {
		var zero U
		v, next, err := p(st)
		if err != nil {
			return zero, st, err
		}
		u, cause := f(v).Get()
		if cause != nil {
			tracer().Debugf("semantic check failed %v: %v", st, cause)
			return zero, st, semantic(st, cause)
		}
		return u, next, nil
	}
}

// Seq2 runs p and q in sequence.
func Seq2[A, B any](p Parser[A], q Parser[B]) Parser[fp.Pair[A, B]] {
	return func(st State) (fp.Pair[A, B], State, *Error) {
		var zero fp.Pair[A, B]
		a, cur, err := p(st)
		if err != nil {
			return zero, st, err
		}
		b, cur2, err := q(cur)
		if err != nil {
			return zero, st, err.after(st, cur)
		}
		return fp.P(a, b), cur2, nil
	}
}

// Seq3 runs three parsers in sequence.
func Seq3[A, B, C any](p Parser[A], q Parser[B], r Parser[C]) Parser[fp.Triple[A, B, C]] {
	return Map(Seq2(Seq2(p, q), r), func(x fp.Pair[fp.Pair[A, B], C]) fp.Triple[A, B, C] {
		return fp.T3(x.Left.Left, x.Left.Right, x.Right)
	})
}

// Seq4 runs four parsers in sequence.
func Seq4[A, B, C, D any](p Parser[A], q Parser[B], r Parser[C], s Parser[D]) Parser[fp.Quad[A, B, C, D]] {
	return Map(Seq2(Seq3(p, q, r), s), func(x fp.Pair[fp.Triple[A, B, C], D]) fp.Quad[A, B, C, D] {
		return fp.T4(x.Left.First, x.Left.Second, x.Left.Third, x.Right)
	})
}

// Skip runs p and q in sequence and keeps the result of p.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Seq2(p, q), func(x fp.Pair[A, B]) A {
		return x.Left
	})
}

// Then runs p and q in sequence and keeps the result of q.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Seq2(p, q), func(x fp.Pair[A, B]) B {
		return x.Right
	})
}

// Between runs open, p and close in sequence and keeps the result of p.
func Between[O, C, T any](open Parser[O], close Parser[C], p Parser[T]) Parser[T] {
	return Skip(Then(open, p), close)
}

// Choice tries its alternatives in order; the first one to succeed wins.
// If an alternative fails after consuming input, Choice fails
// without trying the remaining alternatives.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	return func(st State) (T, State, *Error) {
		var zero T
		var errs []*Error
		for _, p := range alternatives {
			v, next, err := p(st)
			if err == nil {
				return v, next, nil
			}
			if !err.recoverable() {
				return zero, st, err
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return zero, st, expected(st)
		}
		return zero, st, mergeErrors(errs)
	}
}

// Attempt runs p. If p fails with a syntax error, Attempt reports the
// failure as if no input had been consumed, allowing an enclosing Choice
// to try further alternatives from the original position.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(st State) (T, State, *Error) {
		v, next, err := p(st)
		if err != nil {
			if err.IsSemantic() || !err.consumed {
				return v, st, err
			}
			rewound := *err
			rewound.consumed = false
			return v, st, &rewound
		}
		return v, next, nil
	}
}

// Optional runs p. If p fails without consuming input, Optional succeeds
// with Nothing.
func Optional[T any](p Parser[T]) Parser[maybe.Maybe[T]] {
	return func(st State) (maybe.Maybe[T], State, *Error) {
		v, next, err := p(st)
		if err != nil {
			if err.recoverable() {
				return maybe.Nothing[T](), st, nil
			}
			return nil, st, err
		}
		return maybe.Just(v), next, nil
	}
}

// Label replaces the expectations of p with what, if p fails without
// consuming input.
func Label[T any](p Parser[T], what string) Parser[T] {
	return func(st State) (T, State, *Error) {
		v, next, err := p(st)
		if err != nil && err.recoverable() {
			return v, st, &Error{Offset: st.offset, Expected: []string{what}}
		}
		return v, next, err
	}
}
