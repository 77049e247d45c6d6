package ambiparse

type mapParser[T comparable, A, B any] struct {
	parser Parser[T, A]
	fn     func(A) B
}

func (p mapParser[T, A, B]) Attempt(tokens []T) (*DerivationSet[T, B], error) {
	set, err := p.parser.Attempt(tokens)
	if err != nil {
		return nil, err
	}
	// the input set isn't empty, so neither is the output one.
	// distinct inputs may map to equal outputs, Insert drops those.
	first := set.items[0]
	out := NewDerivationSet(Derivation[T, B]{Value: p.fn(first.Value), Remaining: first.Remaining})
	for _, d := range set.items[1:] {
		out.Insert(Derivation[T, B]{Value: p.fn(d.Value), Remaining: d.Remaining})
	}
	return out, nil
}

func (p mapParser[T, A, B]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		return RecursionNotOk()
	}
	return p.parser.CheckLeftRecursion(depth - 1)
}

// Map applies `fn` to the value of every derivation of `p`.  Errors
// pass through untouched.
func Map[T comparable, A, B any](p Parser[T, A], fn func(A) B) Parser[T, B] {
	return Parser[T, B]{inner: mapParser[T, A, B]{parser: p, fn: fn}}
}

type filterParser[T comparable, A any] struct {
	parser Parser[T, A]
	fn     func(A) bool
	err    ParseError[T]
}

func (p filterParser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	set, err := p.parser.Attempt(tokens)
	if err != nil {
		return nil, err
	}
	var kept []Derivation[T, A]
	for _, d := range set.items {
		if p.fn(d.Value) {
			kept = append(kept, d)
		}
	}
	out, err := DerivationSetFrom(kept)
	if err != nil {
		return nil, p.err
	}
	return out, nil
}

func (p filterParser[T, A]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		return RecursionNotOk()
	}
	return p.parser.CheckLeftRecursion(depth - 1)
}

// Filter keeps the derivations whose value satisfies `fn`.  When `p`
// succeeds but nothing is kept, it fails with `err`.  Failures of `p`
// itself are returned as they are.
func (p Parser[T, A]) Filter(fn func(A) bool, err ParseError[T]) Parser[T, A] {
	return Parser[T, A]{inner: filterParser[T, A]{parser: p, fn: fn, err: err}}
}

type splitParser[T comparable, A, B any] struct {
	parser Parser[T, A]
	fn     func(A) []B
}

func (p splitParser[T, A, B]) Attempt(tokens []T) (*DerivationSet[T, B], error) {
	set, err := p.parser.Attempt(tokens)
	if err != nil {
		return nil, err
	}
	var out []Derivation[T, B]
	for _, d := range set.items {
		for _, v := range p.fn(d.Value) {
			out = append(out, Derivation[T, B]{Value: v, Remaining: d.Remaining})
		}
	}
	result, err := DerivationSetFrom(out)
	if err != nil {
		// every derivation split into nothing.  There's no more
		// specific error to report than the position it got to.
		return nil, splitEmptyError(set.Shortest().Remaining)
	}
	return result, nil
}

func (p splitParser[T, A, B]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		return RecursionNotOk()
	}
	return p.parser.CheckLeftRecursion(depth - 1)
}

// Split expands every derivation of `p` into as many derivations as
// `fn` returns values for it, all sharing the original remainder.
// This is how one parser yields several productions from a single
// parse.
func Split[T comparable, A, B any](p Parser[T, A], fn func(A) []B) Parser[T, B] {
	return Parser[T, B]{inner: splitParser[T, A, B]{parser: p, fn: fn}}
}

func splitEmptyError[T comparable](rest []T) ParseError[T] {
	if len(rest) == 0 {
		return NewUnexpectedEndError[T]()
	}
	return NewUnexpectedTokenError[T]()
}
