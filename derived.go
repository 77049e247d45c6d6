package ambiparse

// Combinators in this file are built only out of the primitives.
// The ones ending in Vecs take parsers that already produce slices
// and splice their outputs together instead of nesting them.

// Vecify wraps the value of `p` into a single element slice
func Vecify[T comparable, A any](p Parser[T, A]) Parser[T, []A] {
	return Map(p, func(v A) []A { return []A{v} })
}

// Concat runs `left` then `right` and collects both values in a slice
func Concat[T comparable, A any](left, right Parser[T, A]) Parser[T, []A] {
	return ConcatVecs(Vecify(left), Vecify(right))
}

// ConcatVecs runs `left` then `right` and appends their slices
func ConcatVecs[T comparable, A any](left, right Parser[T, []A]) Parser[T, []A] {
	return Map(Then(left, right), func(p Pair[[]A, []A]) []A {
		out := make([]A, 0, len(p.First)+len(p.Second))
		out = append(out, p.First...)
		return append(out, p.Second...)
	})
}

// Series matches `p` one or more times.  Every length that works is a
// derivation, not just the longest one.
func Series[T comparable, A any](p Parser[T, A]) Parser[T, []A] {
	return SeriesVecs(Vecify(p))
}

// SeriesVecs matches `p` one or more times, appending its slices
func SeriesVecs[T comparable, A any](p Parser[T, []A]) Parser[T, []A] {
	rest := Lazy(func() Parser[T, []A] { return SeriesVecs(p) })
	return p.Or(ConcatVecs(p, rest))
}

// RepeatNTimes matches `p` exactly `n` times.  It panics if `n` is
// less than one.
func RepeatNTimes[T comparable, A any](p Parser[T, A], n int) Parser[T, []A] {
	return RepeatNTimesVecs(Vecify(p), n)
}

// RepeatNTimesVecs matches `p` exactly `n` times, appending its
// slices.  It panics if `n` is less than one.
func RepeatNTimesVecs[T comparable, A any](p Parser[T, []A], n int) Parser[T, []A] {
	if n < 1 {
		panic("Can't repeat a parser less than once")
	}
	out := p
	for i := 1; i < n; i++ {
		out = ConcatVecs(out, p)
	}
	return out
}

// RepeatMultipleOfNTimes matches one or more blocks of exactly `n`
// matches of `p`
func RepeatMultipleOfNTimes[T comparable, A any](p Parser[T, A], n int) Parser[T, []A] {
	return RepeatMultipleOfNTimesVecs(Vecify(p), n)
}

func RepeatMultipleOfNTimesVecs[T comparable, A any](p Parser[T, []A], n int) Parser[T, []A] {
	return SeriesVecs(RepeatNTimesVecs(p, n))
}

// Alternating matches sequences that strictly alternate between
// `left` and `right`, starting with either of them.  A single match
// of either side counts too.
func Alternating[T comparable, A any](left, right Parser[T, A]) Parser[T, []A] {
	return AlternatingVecs(Vecify(left), Vecify(right))
}

func AlternatingVecs[T comparable, A any](a, b Parser[T, []A]) Parser[T, []A] {
	abx := SeriesVecs(ConcatVecs(a, b))
	bax := SeriesVecs(ConcatVecs(b, a))
	return Disjunction(
		a,
		b,
		abx,
		bax,
		ConcatVecs(a, bax),
		ConcatVecs(b, abx),
	)
}

// Conjoin runs every parser in order and collects their values.
// Without parsers it succeeds with an empty slice and consumes
// nothing.
func Conjoin[T comparable, A any](parsers ...Parser[T, A]) Parser[T, []A] {
	vecs := make([]Parser[T, []A], 0, len(parsers))
	for _, p := range parsers {
		vecs = append(vecs, Vecify(p))
	}
	return ConjoinVecs(vecs...)
}

func ConjoinVecs[T comparable, A any](parsers ...Parser[T, []A]) Parser[T, []A] {
	if len(parsers) == 0 {
		return Succeed[T]([]A{})
	}
	out := parsers[0]
	for _, p := range parsers[1:] {
		out = ConcatVecs(out, p)
	}
	return out
}

// Disjunction explores every parser.  Without parsers it never
// succeeds.
func Disjunction[T comparable, A any](parsers ...Parser[T, A]) Parser[T, A] {
	if len(parsers) == 0 {
		return Fail[T, A]()
	}
	out := parsers[0]
	for _, p := range parsers[1:] {
		out = out.Or(p)
	}
	return out
}
