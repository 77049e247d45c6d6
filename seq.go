package ambiparse

import "fmt"

// Pair is the value produced by Then
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

type seqParser[T comparable, A, B any] struct {
	p1 Parser[T, A]
	p2 Parser[T, B]
}

func (p seqParser[T, A, B]) Attempt(tokens []T) (*DerivationSet[T, Pair[A, B]], error) {
	first, err := p.p1.Attempt(tokens)
	if err != nil {
		return nil, err
	}
	var (
		results *DerivationSet[T, Pair[A, B]]
		p2Err   error
	)
	for _, r1 := range first.items {
		second, err := p.p2.Attempt(r1.Remaining)
		if err != nil {
			// the first failure in p1's order is the one reported
			// if nothing works out
			if p2Err == nil {
				p2Err = err
			}
			continue
		}
		for _, r2 := range second.items {
			d := Derivation[T, Pair[A, B]]{
				Value:     Pair[A, B]{First: r1.Value, Second: r2.Value},
				Remaining: r2.Remaining,
			}
			if results == nil {
				results = NewDerivationSet(d)
			} else {
				results.Insert(d)
			}
		}
	}
	if results == nil {
		return nil, p2Err
	}
	return results, nil
}

// CheckLeftRecursion only looks at p1, p2 can't be reached before p1
// consumes something
func (p seqParser[T, A, B]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		return RecursionNotOk()
	}
	return p.p1.CheckLeftRecursion(depth - 1)
}

// Then runs `p2` after every derivation of `p1` and collects the
// cross product as pairs.  If `p1` fails its error is returned.  If
// `p2` fails after every derivation of `p1`, the error of its first
// attempt is returned.
func Then[T comparable, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, Pair[A, B]] {
	return Parser[T, Pair[A, B]]{inner: seqParser[T, A, B]{p1: p1, p2: p2}}
}
