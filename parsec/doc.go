/*
Package parsec is a small parser combinator library.

Overview

A Parser[T] is a function from an input State to a value of type T and a new
State, or to an *Error. Input states are immutable values, which makes
backtracking trivial: a parser which fails simply returns its error and the
caller continues with the state it already holds.

Grammars are composed from a handful of primitives:

   Char, String, Satisfy, Letter, Space, Newline   // single-token matches
   Seq2, Seq3, Seq4, Skip, Then, Between           // sequencing
   Many, Many1, SepBy, SepBy1, SepEndBy            // repetition
   Choice, Attempt, Optional                       // alternatives
   Map, AndThen, Label                             // transformation
   Rule, Lazy, Nested                              // recursion

Consumption and Backtracking

The semantics follow the tradition of Parsec: an alternative of a Choice is
only tried if the previous alternatives failed without consuming input. A
branch which consumed input before failing commits the whole choice.
Wrap a branch into Attempt to make it pretend it did not consume anything
on failure:

   sel := Choice(Attempt(attributeSelector), typeSelector)

Errors

Syntax errors carry the offset of the failure and a list of expectations.
Errors created from a failed semantic check (see AndThen) carry a cause and
are never recovered from: Attempt, Choice and the repetition combinators
always propagate them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.parsec'.
func tracer() tracing.Trace {
	return tracing.Select("fp.parsec")
}
