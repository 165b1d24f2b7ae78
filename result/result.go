package result

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, mapError
-}
*/

// Result is the outcome of a computation which may fail. Parser callbacks
// return Results to signal semantic errors, i.e. errors which are detected
// after the input has been recognized.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err should be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of creates a Result from a conventional Go (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

// Get unwraps a result into a Go-style return pair.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to the value of an Ok result.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&e):
	}
	return Err[S](e)
}

// AndThen chains a computation which may fail to an Ok result.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// MapError transforms the error of an Err result.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	var e error
	switch m := r.Match(); m {
	case m.Err(&e):
		return Err[T](f(e))
	}
	return r
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher holds a pointer to keep matchers comparable for any T.
type matcher[T any] struct {
	r *result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
