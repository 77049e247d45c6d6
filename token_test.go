package ambiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExact(t *testing.T) {
	p := Exact('a')

	t.Run("matches the first token", func(t *testing.T) {
		input := []rune("ab")
		s, err := p.Attempt(input)
		require.NoError(t, err)
		require.Equal(t, 1, s.Len())
		assert.Equal(t, 'a', s.At(0).Value)
		assert.Equal(t, []rune("b"), s.At(0).Remaining)
	})

	t.Run("names the token it expected", func(t *testing.T) {
		_, err := p.Attempt([]rune("ba"))
		require.Error(t, err)
		assert.Equal(t, NewExpectedTokenError('a', 'b'), err)
	})

	t.Run("names the token it expected at the end of the input", func(t *testing.T) {
		_, err := p.Attempt(nil)
		require.Error(t, err)
		assert.Equal(t, NewExpectedEndError('a'), err)
	})

	t.Run("never recurses", func(t *testing.T) {
		assert.True(t, p.CheckLeftRecursion(0).IsOk())
		assert.True(t, p.CheckLeftRecursion(10).IsOk())
	})
}

func TestPred(t *testing.T) {
	p := digit()

	t.Run("produces the value of the predicate", func(t *testing.T) {
		s, err := p.Attempt([]rune("7x"))
		require.NoError(t, err)
		require.Equal(t, 1, s.Len())
		assert.Equal(t, 7, s.At(0).Value)
		assert.Equal(t, []rune("x"), s.At(0).Remaining)
	})

	t.Run("rejected tokens report the unknown variant", func(t *testing.T) {
		_, err := p.Attempt([]rune("x"))
		assert.ErrorIs(t, err, KindUnexpectedToken)
	})

	t.Run("empty input reports the unknown variant", func(t *testing.T) {
		_, err := p.Attempt([]rune{})
		assert.ErrorIs(t, err, KindUnexpectedEndOfInput)
	})

	t.Run("never recurses", func(t *testing.T) {
		assert.True(t, p.CheckLeftRecursion(0).IsOk())
	})
}

func TestSucceedAndFail(t *testing.T) {
	t.Run("succeed consumes nothing", func(t *testing.T) {
		input := []rune("abc")
		s, err := Succeed[rune]("ok").Attempt(input)
		require.NoError(t, err)
		require.Equal(t, 1, s.Len())
		assert.Equal(t, "ok", s.At(0).Value)
		assert.Len(t, s.At(0).Remaining, 3)
	})

	t.Run("succeed works on empty input", func(t *testing.T) {
		v, err := Succeed[rune](1).ParseUnambiguous(nil)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("fail never succeeds", func(t *testing.T) {
		p := Fail[rune, int]()
		_, err := p.Attempt([]rune("a"))
		assert.ErrorIs(t, err, KindUnexpectedToken)
		_, err = p.Attempt(nil)
		assert.ErrorIs(t, err, KindUnexpectedEndOfInput)
		assert.True(t, p.CheckLeftRecursion(0).IsOk())
	})
}
