package ambiparse

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	SetDefaultLogger(zerolog.Nop())
}

// SetDefaultLogger sets the logger picked up by Debug and DebugLabel
// when they build a parser.  Parsers built before the call keep the
// logger they were built with.
func SetDefaultLogger(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
}

// DefaultLogger returns the logger used by Debug and DebugLabel.  It
// discards everything until SetDefaultLogger is called.
func DefaultLogger() zerolog.Logger {
	return *defaultLogger.Load()
}

type debugParser[T comparable, A any] struct {
	inner  Parser[T, A]
	label  string
	logger zerolog.Logger
}

func (p debugParser[T, A]) event() *zerolog.Event {
	e := p.logger.Debug()
	if p.label != "" {
		e = e.Str("label", p.label)
	}
	return e
}

func (p debugParser[T, A]) Attempt(tokens []T) (*DerivationSet[T, A], error) {
	p.event().Int("remaining_tokens", len(tokens)).Msg("parsing")
	set, err := p.inner.Attempt(tokens)
	if err != nil {
		p.event().Err(err).Msg("parse error")
		return nil, err
	}
	p.event().Int("count", set.Len()).Stringer("results", set).Msg("parse results")
	return set, nil
}

// CheckLeftRecursion adds the label to the path of a not ok verdict,
// so the path names the rules the check walked through
func (p debugParser[T, A]) CheckLeftRecursion(depth int) LeftRecursionVerdict {
	if depth <= 0 {
		if p.label == "" {
			return RecursionNotOk()
		}
		return RecursionNotOk(p.label)
	}
	return p.inner.CheckLeftRecursion(depth - 1).withLabel(p.label)
}

// Debug logs every attempt of `p` at debug level with the default
// logger.  It doesn't change what `p` parses.
func (p Parser[T, A]) Debug() Parser[T, A] {
	return p.DebugWith(DefaultLogger(), "")
}

// DebugLabel is Debug with `label` attached to every log event and
// to left recursion paths
func (p Parser[T, A]) DebugLabel(label string) Parser[T, A] {
	return p.DebugWith(DefaultLogger(), label)
}

// DebugWith is DebugLabel with an explicit logger
func (p Parser[T, A]) DebugWith(logger zerolog.Logger, label string) Parser[T, A] {
	return Parser[T, A]{inner: debugParser[T, A]{inner: p, label: label, logger: logger}}
}
