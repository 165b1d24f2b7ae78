package fp

// --- Tuples ----------------------------------------------------------------
//
// Parsers which run sub-parsers in sequence produce tuples of their
// sub-results. Go has no tuple types, so we provide a small set of them.

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T3 creates a triple.
func T3[A, B, C any](x A, y B, z C) Triple[A, B, C] {
	return Triple[A, B, C]{x, y, z}
}

// Decompose returns the components of a triple.
func (t Triple[A, B, C]) Decompose() (A, B, C) {
	return t.First, t.Second, t.Third
}

// Quad is a 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// T4 creates a quad.
func T4[A, B, C, D any](w A, x B, y C, z D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{w, x, y, z}
}

// Decompose returns the components of a quad.
func (q Quad[A, B, C, D]) Decompose() (A, B, C, D) {
	return q.First, q.Second, q.Third, q.Fourth
}
