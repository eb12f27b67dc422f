package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type writerSettings struct {
	precision int
	strict    bool
	calls     []string
}

func withPrecision(p int) Option[*writerSettings] {
	return New(func(s *writerSettings) error {
		if p < 0 {
			return errors.New("precision cannot be negative")
		}
		s.precision = p
		s.calls = append(s.calls, "precision")

		return nil
	})
}

func withStrict(v bool) Option[*writerSettings] {
	return NoError(func(s *writerSettings) {
		s.strict = v
		s.calls = append(s.calls, "strict")
	})
}

func TestApply(t *testing.T) {
	t.Run("AppliesInOrder", func(t *testing.T) {
		s := &writerSettings{}
		err := Apply(s, withStrict(true), withPrecision(8), withStrict(false))
		require.NoError(t, err)
		require.Equal(t, 8, s.precision)
		require.False(t, s.strict, "later options override earlier ones")
		require.Equal(t, []string{"strict", "precision", "strict"}, s.calls)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		s := &writerSettings{}
		err := Apply(s, withPrecision(-1), withStrict(true))
		require.ErrorContains(t, err, "precision cannot be negative")
		require.False(t, s.strict)
		require.Empty(t, s.calls)
	})

	t.Run("SkipsNil", func(t *testing.T) {
		s := &writerSettings{}
		require.NoError(t, Apply(s, nil, withPrecision(3)))
		require.Equal(t, 3, s.precision)
	})

	t.Run("NoOptions", func(t *testing.T) {
		s := &writerSettings{precision: 5}
		require.NoError(t, Apply(s))
		require.Equal(t, 5, s.precision)
	})
}
