package ambiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerived(t *testing.T) {
	a, b, c := Exact('a'), Exact('b'), Exact('c')

	t.Run("Vecify", func(t *testing.T) {
		v, err := Vecify(digit()).ParseUnambiguous([]rune("3"))
		require.NoError(t, err)
		assert.Equal(t, []int{3}, v)
	})

	t.Run("Concat", func(t *testing.T) {
		v, err := Concat(digit(), digit()).ParseUnambiguous([]rune("12"))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, v)

		v, err = ConcatVecs(Series(digit()), Vecify(Map(a, const_(0)))).ParseUnambiguous([]rune("12a"))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 0}, v)
	})

	t.Run("Series yields every length", func(t *testing.T) {
		s, err := Series(digit()).Attempt([]rune("123"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1}, {1, 2}, {1, 2, 3}}, s.Values())
	})

	t.Run("RepeatNTimes", func(t *testing.T) {
		p := RepeatNTimes(digit(), 3)
		v, err := p.ParseUnambiguous([]rune("123"))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, v)

		_, err = p.ParseUnambiguous([]rune("12"))
		assert.ErrorIs(t, err, KindUnexpectedEndOfInput)

		_, err = p.ParseUnambiguous([]rune("1234"))
		assert.Equal(t, unhandledTokensError([]rune("4")), err)

		assert.Panics(t, func() { RepeatNTimes(digit(), 0) })
	})

	t.Run("RepeatMultipleOfNTimes", func(t *testing.T) {
		p := RepeatMultipleOfNTimes(digit(), 2)
		v, err := p.ParseUnambiguous([]rune("1234"))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, v)

		_, err = p.ParseUnambiguous([]rune("123"))
		assert.Equal(t, unhandledTokensError([]rune("3")), err)
	})

	t.Run("Alternating", func(t *testing.T) {
		p := Alternating(a, b)
		for _, input := range []string{"a", "b", "ab", "ba", "abab", "bab", "ababa"} {
			v, err := p.ParseUnambiguous([]rune(input))
			require.NoError(t, err, input)
			assert.Equal(t, []rune(input), v)
		}
		assert.Empty(t, p.ParseAll([]rune("aa")))
		assert.Empty(t, p.ParseAll([]rune("abb")))
		assert.True(t, p.CheckLeftRecursion(32).IsOk())
	})

	t.Run("Conjoin", func(t *testing.T) {
		v, err := Conjoin(a, b, c).ParseUnambiguous([]rune("abc"))
		require.NoError(t, err)
		assert.Equal(t, []rune("abc"), v)

		_, err = Conjoin(a, b, c).ParseUnambiguous([]rune("abd"))
		assert.Equal(t, NewExpectedTokenError('c', 'd'), err)
	})

	t.Run("Conjoin without parsers consumes nothing", func(t *testing.T) {
		p := Conjoin[rune, rune]()
		v, err := p.ParseUnambiguous(nil)
		require.NoError(t, err)
		assert.Equal(t, []rune{}, v)

		s, err := p.Attempt([]rune("x"))
		require.NoError(t, err)
		assert.Len(t, s.At(0).Remaining, 1)
	})

	t.Run("Disjunction", func(t *testing.T) {
		v, err := Disjunction(a, b, c).ParseUnambiguous([]rune("b"))
		require.NoError(t, err)
		assert.Equal(t, 'b', v)

		_, err = Disjunction(a, b, c).ParseUnambiguous([]rune("d"))
		assert.Equal(t, NewExpectedTokenError('a', 'd'), err)
	})

	t.Run("Disjunction without parsers never succeeds", func(t *testing.T) {
		p := Disjunction[rune, rune]()
		_, err := p.ParseUnambiguous([]rune("a"))
		assert.ErrorIs(t, err, KindUnexpectedToken)
		_, err = p.ParseUnambiguous(nil)
		assert.ErrorIs(t, err, KindUnexpectedEndOfInput)
	})
}
