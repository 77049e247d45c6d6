package ambiparse

import (
	"errors"
	"fmt"
)

// ErrEmptyDerivationSet is returned when a DerivationSet would be
// built out of zero derivations
var ErrEmptyDerivationSet = errors.New("derivation set can't be empty")

// ErrorKind tells which variant of ParseError a value holds.  Kinds
// are errors too, so callers can match a ParseError with errors.Is
// without knowing its token type.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindAmbiguousGrammar means more than one distinct AST consumed
	// the whole input.  Only produced by ParseUnambiguous.
	KindAmbiguousGrammar
	// KindUnexpectedToken is reported by primitives that can't name
	// what they expected, like the ones built with Pred.
	KindUnexpectedToken
	KindUnexpectedTokenKnown
	KindUnexpectedEndOfInput
	KindUnexpectedEndOfInputKnown
	// KindUnhandledTokens means no derivation consumed the whole
	// input.  Only produced by ParseUnambiguous.
	KindUnhandledTokens
	// KindNoProgress is reported by Or when both branches succeed
	// and a merged derivation didn't consume any input.
	KindNoProgress
)

func (k ErrorKind) Error() string {
	return map[ErrorKind]string{
		KindUnknown:                   "unknown error",
		KindAmbiguousGrammar:          "ambiguous grammar",
		KindUnexpectedToken:           "unexpected token",
		KindUnexpectedTokenKnown:      "unexpected token",
		KindUnexpectedEndOfInput:      "unexpected end of input",
		KindUnexpectedEndOfInputKnown: "unexpected end of input",
		KindUnhandledTokens:           "unhandled tokens",
		KindNoProgress:                "no progress",
	}[k]
}

// ParseError is the error returned when a parser can't produce any
// derivation.  Which fields are meaningful depends on Kind:
// Expected/Found for the known variants, Tokens for unhandled
// tokens and no progress, and Interpretations for ambiguity.  It
// never carries partial ASTs.
type ParseError[T comparable] struct {
	Kind            ErrorKind
	Expected        T
	Found           T
	Tokens          []T
	Interpretations []string
}

// Error returns the human readable representation of a parsing error
func (e ParseError[T]) Error() string {
	switch e.Kind {
	case KindAmbiguousGrammar:
		return fmt.Sprintf("Grammar permits multiple interpretations: %q", e.Interpretations)
	case KindUnexpectedToken:
		return "Unexpected token"
	case KindUnexpectedTokenKnown:
		return fmt.Sprintf("Unexpected token %v, expected: %v", e.Found, e.Expected)
	case KindUnexpectedEndOfInput:
		return "Unexpected end of input"
	case KindUnexpectedEndOfInputKnown:
		return fmt.Sprintf("Unexpected end of input, expected: %v", e.Expected)
	case KindUnhandledTokens:
		return fmt.Sprintf("Unhandled tokens: %v", e.Tokens)
	case KindNoProgress:
		return fmt.Sprintf("Alternative consumed no input, remaining: %v", e.Tokens)
	default:
		return e.Kind.Error()
	}
}

// Is allows errors.Is(err, KindX) to match on the variant
func (e ParseError[T]) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// NewUnexpectedTokenError creates the error of a primitive that
// rejected a token without knowing which one it wanted
func NewUnexpectedTokenError[T comparable]() ParseError[T] {
	return ParseError[T]{Kind: KindUnexpectedToken}
}

// NewExpectedTokenError creates the error of a primitive that wanted
// `expected` but saw `found`
func NewExpectedTokenError[T comparable](expected, found T) ParseError[T] {
	return ParseError[T]{Kind: KindUnexpectedTokenKnown, Expected: expected, Found: found}
}

// NewUnexpectedEndError creates the error of a primitive that ran out
// of input without knowing which token it wanted
func NewUnexpectedEndError[T comparable]() ParseError[T] {
	return ParseError[T]{Kind: KindUnexpectedEndOfInput}
}

// NewExpectedEndError creates the error of a primitive that ran out
// of input while looking for `expected`
func NewExpectedEndError[T comparable](expected T) ParseError[T] {
	return ParseError[T]{Kind: KindUnexpectedEndOfInputKnown, Expected: expected}
}

func unhandledTokensError[T comparable](tokens []T) ParseError[T] {
	return ParseError[T]{Kind: KindUnhandledTokens, Tokens: tokens}
}

func ambiguousGrammarError[T comparable](interpretations []string) ParseError[T] {
	return ParseError[T]{Kind: KindAmbiguousGrammar, Interpretations: interpretations}
}

func noProgressError[T comparable](tokens []T) ParseError[T] {
	return ParseError[T]{Kind: KindNoProgress, Tokens: tokens}
}
