package ambiparse

import (
	"fmt"
	"slices"
)

// Combinator is the contract every parsing strategy fulfills.  A
// combinator graph is built once and then only read from, so
// implementations must not keep any state between calls.
type Combinator[T comparable, A any] interface {
	// Attempt returns every distinct way this combinator can
	// consume a (possibly empty) prefix of `tokens`, or the most
	// informative error if there's none.  A successful return is
	// never empty.  Every Remaining must be a suffix of `tokens`
	// sliced from it, since derivations are told apart by how many
	// tokens they left.  Callers only read the returned set, so it
	// may be shared between calls.
	Attempt(tokens []T) (*DerivationSet[T, A], error)

	// CheckLeftRecursion tells if the combinator may reach itself
	// without consuming input.  It doesn't look at any tokens.
	// `depth` bounds how far the check walks through recursive
	// combinators; reaching zero before proving termination is
	// reported as not ok.
	CheckLeftRecursion(depth int) LeftRecursionVerdict
}

// Parser is the handle users hold.  It's cheap to copy and safe to
// share between goroutines since the combinator it wraps is
// immutable.  The zero Parser isn't usable; create parsers with the
// primitives (Exact, Pred, Lazy, ...) and combine them.
type Parser[T comparable, A any] struct {
	inner Combinator[T, A]
}

// FromCombinator wraps a custom strategy into a Parser so it can be
// composed with the built-in ones
func FromCombinator[T comparable, A any](c Combinator[T, A]) Parser[T, A] {
	if p, ok := c.(Parser[T, A]); ok {
		return p
	}
	return Parser[T, A]{inner: c}
}

// Attempt runs the parser against the front of `tokens` and returns
// every partial derivation.  Derivations don't need to consume the
// whole input.
func (p Parser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	return p.inner.Attempt(tokens)
}

// CheckLeftRecursion runs the static left recursion check.  It's
// meant to be called once on the root of a grammar after building
// it, with a depth big enough to cover its longest intended chain of
// rules.
func (p Parser[T, A]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	return p.inner.CheckLeftRecursion(depth)
}

// ParseUnambiguous requires exactly one distinct value among the
// derivations that consumed all of `tokens`.  If none did, the error
// carries the leftovers of the derivation that got closest to the
// end.  If more than one did, the error lists them all.
func (p Parser[T, A]) ParseUnambiguous(tokens []T) (A, error) {
	var zero A
	set, err := p.Attempt(tokens)
	if err != nil {
		return zero, err
	}
	complete := set.Complete()
	switch len(complete) {
	case 0:
		rest := set.Shortest().Remaining
		return zero, unhandledTokensError(slices.Clone(rest))
	case 1:
		return complete[0], nil
	default:
		interpretations := make([]string, 0, len(complete))
		for _, v := range complete {
			interpretations = append(interpretations, fmt.Sprintf("%v", v))
		}
		return zero, ambiguousGrammarError[T](interpretations)
	}
}

// ParseAll returns the distinct values of every derivation that
// consumed all of `tokens`.  Ambiguity isn't an error here, and any
// failure just produces no values.
func (p Parser[T, A]) ParseAll(tokens []T) []A {
	set, err := p.Attempt(tokens)
	if err != nil {
		return nil
	}
	return set.Complete()
}
