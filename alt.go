package ambiparse

import "slices"

type altParser[T comparable, A any] struct {
	p1 Parser[T, A]
	p2 Parser[T, A]
}

// Attempt tries both branches against the same input:
//
//	p1 success and p2 success: union of both
//	p1 success and p2 fail: p1
//	p1 fail and p2 success: p2
//	p1 fail and p2 fail: p1's error
func (p altParser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	r1, err1 := p.p1.Attempt(tokens)
	r2, err2 := p.p2.Attempt(tokens)
	switch {
	case err1 != nil && err2 != nil:
		return nil, err1
	case err1 != nil:
		return r2, nil
	case err2 != nil:
		return r1, nil
	}
	// neither branch's set is modified, custom combinators may hand
	// out the same set on every call
	out := NewDerivationSet(r1.items[0])
	for _, d := range r1.items[1:] {
		out.Insert(d)
	}
	out.Extend(r2)
	if out.MaxRemaining() >= len(tokens) {
		return nil, noProgressError(slices.Clone(tokens))
	}
	return out, nil
}

// CheckLeftRecursion is ok at depth zero, otherwise it's not ok if
// either branch isn't
func (p altParser[T, A]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		return RecursionOk()
	}
	return p.p1.CheckLeftRecursion(depth - 1).NotOkOrElse(func() LeftRecursionVerdict {
		return p.p2.CheckLeftRecursion(depth - 1)
	})
}

// Or explores both `p` and `other` and keeps every derivation either
// of them produces.  A union where some derivation consumed nothing
// fails with KindNoProgress.
func (p Parser[T, A]) Or(other Parser[T, A]) Parser[T, A] {
	return Parser[T, A]{inner: altParser[T, A]{p1: p, p2: other}}
}
