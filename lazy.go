package ambiparse

type lazyParser[T comparable, A any] struct {
	factory func() Parser[T, A]
}

func (p lazyParser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	return p.factory().Attempt(tokens)
}

// CheckLeftRecursion assumes the worst at depth zero.  Calling the
// factory could build an identical lazy node again, and stopping
// here is what bounds the check.
func (p lazyParser[T, A]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		return RecursionNotOk()
	}
	return p.factory().CheckLeftRecursion(depth - 1)
}

// Lazy defers building a parser until it's used, calling `factory` on
// every attempt.  It's the only way to write rules that refer to
// themselves or to each other:
//
//	var expr Parser[Token, Expr]
//	group := Lazy(func() Parser[Token, Expr] { return expr })
//
// The factory may read variables assigned after Lazy returns.
func Lazy[T comparable, A any](factory func() Parser[T, A]) Parser[T, A] {
	return Parser[T, A]{inner: lazyParser[T, A]{factory: factory}}
}
