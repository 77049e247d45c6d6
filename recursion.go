package ambiparse

import (
	"fmt"
	"strings"
)

// LeftRecursionVerdict is the outcome of CheckLeftRecursion.  When
// the check couldn't prove termination within its depth, Path holds
// the debug labels met on the way down, innermost first.  It's a
// static artifact and never changes how parsing behaves.
type LeftRecursionVerdict struct {
	notOk bool
	Path  []string
}

// RecursionOk is the verdict of a parser that can't reach itself
// without consuming input first
func RecursionOk() LeftRecursionVerdict { return LeftRecursionVerdict{} }

// RecursionNotOk is the verdict of a parser whose check ran out of
// depth
func RecursionNotOk(path ...string) LeftRecursionVerdict {
	return LeftRecursionVerdict{notOk: true, Path: path}
}

func (v LeftRecursionVerdict) IsOk() bool    { return !v.notOk }
func (v LeftRecursionVerdict) IsNotOk() bool { return v.notOk }

// NotOkOrElse returns `v` if it's not ok, otherwise it returns what
// `f` computes.  `f` isn't called at all in the first case.
func (v LeftRecursionVerdict) NotOkOrElse(f func() LeftRecursionVerdict) LeftRecursionVerdict {
	if v.notOk {
		return v
	}
	return f()
}

// withLabel appends `label` to the path of a not ok verdict
func (v LeftRecursionVerdict) withLabel(label string) LeftRecursionVerdict {
	if !v.notOk || label == "" {
		return v
	}
	path := make([]string, len(v.Path), len(v.Path)+1)
	copy(path, v.Path)
	return RecursionNotOk(append(path, label)...)
}

func (v LeftRecursionVerdict) String() string {
	if !v.notOk {
		return "Ok"
	}
	return fmt.Sprintf("NotOk(%s)", strings.Join(v.Path, " < "))
}
