package ambiparse

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Derivation is one candidate way of having consumed a prefix of the
// input.  Value is what the parser built so far and Remaining is the
// unconsumed suffix of the input the parser was given.  Remaining is
// a view into the caller's slice, tokens are never copied.
type Derivation[T comparable, A any] struct {
	Value     A
	Remaining []T
}

// Equal reports whether both derivations hold the same value and
// stopped at the same position.  Remainders are always suffixes of
// the same input, so comparing their lengths is enough.
func (d Derivation[T, A]) Equal(o Derivation[T, A]) bool {
	return len(d.Remaining) == len(o.Remaining) && valuesEqual(d.Value, o.Value)
}

func (d Derivation[T, A]) String() string {
	return fmt.Sprintf("%v @ %d", d.Value, len(d.Remaining))
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// valuesEqual compares two ASTs structurally.  Types that know how to
// compare themselves through an `Equal(A) bool` method are trusted to
// do so.
func valuesEqual[A any](a, b A) bool {
	if eq, ok := any(a).(interface{ Equal(A) bool }); ok {
		return eq.Equal(b)
	}
	return cmp.Equal(a, b, exportAll)
}

// DerivationSet is a non-empty collection of unique derivations that
// remembers insertion order.  It's what every successful attempt
// returns: either there's at least one way to read the input, or
// there's an error.
type DerivationSet[T comparable, A any] struct {
	items []Derivation[T, A]
	// positions of items grouped by remaining length, equal
	// derivations always land in the same bucket
	byRemaining map[int][]int
}

// NewDerivationSet creates a set holding `first`
func NewDerivationSet[T comparable, A any](first Derivation[T, A]) *DerivationSet[T, A] {
	s := &DerivationSet[T, A]{byRemaining: map[int][]int{}}
	s.Insert(first)
	return s
}

// DerivationSetFrom creates a set out of `items`, dropping
// duplicates.  It fails with ErrEmptyDerivationSet if there's
// nothing to hold.
func DerivationSetFrom[T comparable, A any](items []Derivation[T, A]) (*DerivationSet[T, A], error) {
	if len(items) == 0 {
		return nil, ErrEmptyDerivationSet
	}
	s := NewDerivationSet(items[0])
	for _, d := range items[1:] {
		s.Insert(d)
	}
	return s, nil
}

// Insert adds `d` to the end of the set unless an equal derivation is
// already there.  It returns true if the set grew.
func (s *DerivationSet[T, A]) Insert(d Derivation[T, A]) bool {
	n := len(d.Remaining)
	for _, i := range s.byRemaining[n] {
		if s.items[i].Equal(d) {
			return false
		}
	}
	s.byRemaining[n] = append(s.byRemaining[n], len(s.items))
	s.items = append(s.items, d)
	return true
}

// Extend inserts every derivation of `other`, in order
func (s *DerivationSet[T, A]) Extend(other *DerivationSet[T, A]) {
	for _, d := range other.items {
		s.Insert(d)
	}
}

// Len is never zero
func (s *DerivationSet[T, A]) Len() int { return len(s.items) }

func (s *DerivationSet[T, A]) At(i int) Derivation[T, A] { return s.items[i] }

// Items returns a copy of the derivations in insertion order
func (s *DerivationSet[T, A]) Items() []Derivation[T, A] {
	out := make([]Derivation[T, A], len(s.items))
	copy(out, s.items)
	return out
}

// Values returns the AST of each derivation in insertion order.
// Values may repeat when two derivations stopped at different
// positions.
func (s *DerivationSet[T, A]) Values() []A {
	out := make([]A, 0, len(s.items))
	for _, d := range s.items {
		out = append(out, d.Value)
	}
	return out
}

// Complete returns the values of the derivations that consumed the
// whole input.  They all share the same remainder, so the values are
// distinct.
func (s *DerivationSet[T, A]) Complete() []A {
	var out []A
	for _, i := range s.byRemaining[0] {
		out = append(out, s.items[i].Value)
	}
	return out
}

// Shortest returns the derivation with the fewest remaining tokens,
// the earliest one wins ties
func (s *DerivationSet[T, A]) Shortest() Derivation[T, A] {
	best := s.items[0]
	for _, d := range s.items[1:] {
		if len(d.Remaining) < len(best.Remaining) {
			best = d
		}
	}
	return best
}

// MaxRemaining returns the length of the longest remainder held by
// the set
func (s *DerivationSet[T, A]) MaxRemaining() int {
	n := 0
	for _, d := range s.items {
		n = max(n, len(d.Remaining))
	}
	return n
}

func (s *DerivationSet[T, A]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, d := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString("}")
	return b.String()
}
