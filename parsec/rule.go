package parsec

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Rule is a named parser which may be referenced before it is defined.
// Rules are the means to construct recursive grammars:
//
//     element := NewRule[*Node]("element")
//     contents := Many(Choice(Attempt(element.Parser()), text))
//     element.Define(Seq3(openTag, contents, closeTag) …)
//
// A rule must be defined exactly once, before the first input is parsed.
// After that, it is safe for concurrent use.
type Rule[T any] struct {
	name string
	p    Parser[T]
}

// NewRule creates an undefined rule.
func NewRule[T any](name string) *Rule[T] {
	return &Rule[T]{name: name}
}

// Name returns the name of the rule.
func (r *Rule[T]) Name() string {
	return r.name
}

// Define sets the parser of the rule. Redefining a rule panics.
func (r *Rule[T]) Define(p Parser[T]) *Rule[T] {
	if r.p != nil {
		panic(fmt.Sprintf("parsec: rule %q defined twice", r.name))
	}
	r.p = p
	return r
}

// Parser returns a parser which defers to the rule's definition at parse time.
func (r *Rule[T]) Parser() Parser[T] {
	return func(st State) (T, State, *Error) {
		if r.p == nil {
			panic(fmt.Sprintf("parsec: rule %q used before definition", r.name))
		}
		v, next, err := r.p(st)
		if err != nil {
			tracer().Debugf("rule %s failed %v: %v", r.name, st, err)
		} else {
			tracer().Debugf("rule %s matched %v", r.name, st)
		}
		return v, next, err
	}
}

// Lazy defers the construction of a parser until its first use.
func Lazy[T any](mk func() Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]
	return func(st State) (T, State, *Error) {
		once.Do(func() {
			p = mk()
		})
		return p(st)
	}
}

// Nested guards recursion: it runs p one nesting level deeper and fails
// with a semantic error wrapping ErrNestingTooDeep if the nesting depth
// would exceed limit. As the check does not look at the input, Nested
// should wrap the body of a recursive construct after its opening
// delimiter has been recognized.
func Nested[T any](limit int, p Parser[T]) Parser[T] {
	return func(st State) (T, State, *Error) {
		if st.depth >= limit {
			var zero T
			tracer().Infof("nesting depth limit %d reached %v", limit, st)
			return zero, st, semantic(st, errors.Wrapf(ErrNestingTooDeep, "limit is %d", limit))
		}
		inner := st
		inner.depth++
		v, next, err := p(inner)
		next.depth = st.depth
		return v, next, err
	}
}

// Parse runs p on input. It returns the parsed value and the unconsumed
// remainder of input.
func Parse[T any](p Parser[T], input string) (T, string, error) {
	v, next, err := p(NewState(input))
	if err != nil {
		var zero T
		return zero, input, err
	}
	return v, next.Remaining(), nil
}
