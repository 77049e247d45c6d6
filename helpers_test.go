package ambiparse

func digit() Parser[rune, int] {
	return Pred(func(r rune) (int, bool) {
		if r >= '0' && r <= '9' {
			return int(r - '0'), true
		}
		return 0, false
	})
}

func const_[A any](v A) func(rune) A {
	return func(rune) A { return v }
}

// remainders returns how many tokens each derivation left behind, in
// order
func remainders[T comparable, A any](s *DerivationSet[T, A]) []int {
	var out []int
	for _, d := range s.Items() {
		out = append(out, len(d.Remaining))
	}
	return out
}
