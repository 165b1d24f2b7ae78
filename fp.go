/*
Package fp holds small functional helpers shared by the parsers of this module.

The sub-packages build on these: package result and package maybe provide
option-like types, package parsec is a parser combinator library, and packages
markup and css are grammars written with parsec.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Always returns a function which ignores its argument and produces a.
func Always[A, T any](a T) func(A) T {
	return func(A) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
