package ambiparse

type exactParser[T comparable] struct {
	token T
}

func (p exactParser[T]) Attempt(tokens []T) (*DerivationSet[T, T], error) {
	if len(tokens) == 0 {
		return nil, NewExpectedEndError(p.token)
	}
	if c := tokens[0]; c != p.token {
		return nil, NewExpectedTokenError(p.token, c)
	}
	return NewDerivationSet(Derivation[T, T]{Value: tokens[0], Remaining: tokens[1:]}), nil
}

func (exactParser[T]) CheckLeftRecursion(int) LeftRecursionVerdict { return RecursionOk() }

// Exact matches the first token if it equals `token` and produces the
// matched token
func Exact[T comparable](token T) Parser[T, T] {
	return Parser[T, T]{inner: exactParser[T]{token: token}}
}

type predParser[T comparable, A any] struct {
	fn func(T) (A, bool)
}

func (p predParser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	if len(tokens) == 0 {
		return nil, NewUnexpectedEndError[T]()
	}
	v, ok := p.fn(tokens[0])
	if !ok {
		return nil, NewUnexpectedTokenError[T]()
	}
	return NewDerivationSet(Derivation[T, A]{Value: v, Remaining: tokens[1:]}), nil
}

func (predParser[T, A]) CheckLeftRecursion(int) LeftRecursionVerdict { return RecursionOk() }

// Pred matches the first token if `fn` accepts it, producing the
// value `fn` returns.  Since there's no single expected token,
// failures are reported with the unknown variants of ParseError.
func Pred[T comparable, A any](fn func(T) (A, bool)) Parser[T, A] {
	return Parser[T, A]{inner: predParser[T, A]{fn: fn}}
}

type succeedParser[T comparable, A any] struct {
	value A
}

func (p succeedParser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	return NewDerivationSet(Derivation[T, A]{Value: p.value, Remaining: tokens}), nil
}

func (succeedParser[T, A]) CheckLeftRecursion(int) LeftRecursionVerdict { return RecursionOk() }

// Succeed always succeeds with `value` and consumes nothing.  Keep it
// out of unions: an Or with a branch that makes no progress fails
// with KindNoProgress.
func Succeed[T comparable, A any](value A) Parser[T, A] {
	return Parser[T, A]{inner: succeedParser[T, A]{value: value}}
}

// Fail never succeeds.  It behaves like a predicate that rejects
// every token.
func Fail[T comparable, A any]() Parser[T, A] {
	return Pred(func(T) (A, bool) {
		var zero A
		return zero, false
	})
}
