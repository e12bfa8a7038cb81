package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{ArrayStrategy, StringStrategy}

func forEachStrategy(t *testing.T, fn func(t *testing.T, s Strategy)) {
	t.Helper()
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			fn(t, s)
		})
	}
}

func mustNew(t *testing.T, components []string, opts ...Option) Name {
	t.Helper()
	n, err := New(components, opts...)
	require.NoError(t, err)
	return n
}

func mustParse(t *testing.T, s string, opts ...Option) Name {
	t.Helper()
	n, err := Parse(s, opts...)
	require.NoError(t, err)
	return n
}

func TestConstruct(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		n := mustParse(t, "oss.fau.de", WithStrategy(s))
		assert.Equal(t, '.', n.Delimiter())
		assert.Equal(t, s, n.Strategy())
		assert.Equal(t, 3, n.NoComponents())
		assert.False(t, n.IsEmpty())

		c, err := n.Component(1)
		require.NoError(t, err)
		assert.Equal(t, "fau", c)

		empty := mustNew(t, nil, WithStrategy(s))
		assert.True(t, empty.IsEmpty())
		assert.Equal(t, 0, empty.NoComponents())
		assert.Equal(t, "", empty.String())

		// an empty delimited string holds one empty component
		single := mustParse(t, "", WithStrategy(s))
		assert.Equal(t, 1, single.NoComponents())
	})
}

func TestConstructInvalid(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		_, err := New([]string{"a"}, WithStrategy(s), WithDelimiter(EscapeCharacter))
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = Parse("a.b", WithStrategy(s), WithDelimiter(-1))
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = New([]string{"a", "b.c"}, WithStrategy(s))
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = New([]string{`trailing\`}, WithStrategy(s))
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = Parse(`a.b\`, WithStrategy(s))
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRepresentationEquivalence(t *testing.T) {
	array := mustNew(t, []string{"oss", "fau", "de"}, WithStrategy(ArrayStrategy))
	str := mustParse(t, "oss.fau.de", WithStrategy(StringStrategy))

	eq, err := array.Equal(str)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = str.Equal(array)
	require.NoError(t, err)
	assert.True(t, eq)

	assert.Equal(t, array.HashCode(), str.HashCode())
	assert.Equal(t, array.DataString(), str.DataString())

	longer, err := str.Append("blub")
	require.NoError(t, err)
	eq, err = longer.Equal(array)
	require.NoError(t, err)
	assert.False(t, eq)
	assert.NotEqual(t, longer.HashCode(), array.HashCode())
}

func TestEqualDifferentDelimiters(t *testing.T) {
	dot := mustNew(t, []string{"a", "b"})
	slash := mustNew(t, []string{"a", "b"}, WithDelimiter('/'))

	eq, err := dot.Equal(slash)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = dot.Equal(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAsString(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		n := mustNew(t, []string{"a", "b", "c"}, WithStrategy(s))
		out, err := n.AsString('-')
		require.NoError(t, err)
		assert.Equal(t, "a-b-c", out)
		assert.Equal(t, "a.b.c", n.String())

		_, err = n.AsString(EscapeCharacter)
		require.ErrorIs(t, err, ErrInvalidArgument)

		escaped := mustNew(t, []string{"oss", `cs\.fau`, "de"}, WithStrategy(s))
		assert.Equal(t, "oss.cs.fau.de", escaped.String())
		out, err = escaped.AsString('/')
		require.NoError(t, err)
		assert.Equal(t, "oss/cs.fau/de", out)
	})
}

func TestScenarios(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		inserted, err := mustNew(t, []string{"oss", "fau", "de"}, WithStrategy(s)).Insert(1, "cs")
		require.NoError(t, err)
		assert.Equal(t, "oss.cs.fau.de", inserted.String())

		removed, err := mustParse(t, "oss.cs.fau.de", WithStrategy(s)).Remove(0)
		require.NoError(t, err)
		assert.Equal(t, "cs.fau.de", removed.String())

		concat, err := mustNew(t, []string{"a", "b"}, WithStrategy(s)).Concat(mustNew(t, []string{"c", "d"}))
		require.NoError(t, err)
		assert.Equal(t, "a.b.c.d", concat.String())

		set, err := mustParse(t, "oss.fau.de", WithStrategy(s)).SetComponent(1, "cs")
		require.NoError(t, err)
		assert.Equal(t, "oss.cs.de", set.String())
	})
}

func TestPersistentLeavesReceiver(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		n := mustParse(t, "oss.fau.de", WithStrategy(s))

		_, err := n.Append("x")
		require.NoError(t, err)
		_, err = n.Insert(0, "x")
		require.NoError(t, err)
		_, err = n.Remove(2)
		require.NoError(t, err)
		_, err = n.SetComponent(0, "x")
		require.NoError(t, err)
		_, err = n.Concat(n)
		require.NoError(t, err)

		assert.Equal(t, []string{"oss", "fau", "de"}, n.Components())
	})
}

func TestBoundaryFaults(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		n := mustNew(t, []string{"a", "b"}, WithStrategy(s))

		_, err := n.Component(2)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Component(-1)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Insert(5, "x")
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Insert(2, "x")
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Remove(-1)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.SetComponent(2, "x")
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.SetComponent(0, "x.y")
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Append("x.y")
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Concat(nil)
		require.ErrorIs(t, err, ErrInvalidArgument)

		var absent *Mutable
		_, err = n.Concat(absent)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = n.Equal(absent)
		require.ErrorIs(t, err, ErrInvalidArgument)

		assert.Equal(t, []string{"a", "b"}, n.Components())
	})
}

func TestConcatForeignDelimiter(t *testing.T) {
	dot := mustNew(t, []string{"a"})
	slash := mustNew(t, []string{"b.c"}, WithDelimiter('/'))

	_, err := dot.Concat(slash)
	require.ErrorIs(t, err, ErrInvalidArgument)

	ok := mustNew(t, []string{"x"}, WithDelimiter('/'))
	out, err := dot.Concat(ok)
	require.NoError(t, err)
	assert.Equal(t, '.', out.Delimiter())
	assert.Equal(t, "a.x", out.String())
}

func TestAppendRemoveIdentity(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		for _, n := range []Name{
			mustNew(t, nil, WithStrategy(s)),
			mustNew(t, []string{""}, WithStrategy(s)),
			mustParse(t, "oss.fau.de", WithStrategy(s)),
		} {
			for _, c := range []string{"", "x", `cs\.fau`} {
				appended, err := n.Append(c)
				require.NoError(t, err)
				back, err := appended.Remove(n.NoComponents())
				require.NoError(t, err)

				eq, err := back.Equal(n)
				require.NoError(t, err)
				assert.True(t, eq, "append(%q) then remove on %q", c, n.DataString())
			}
		}
	})
}

func TestClone(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		n := mustParse(t, "oss.fau.de", WithStrategy(s))
		c := n.Clone()

		assert.NotSame(t, n, c)
		eq, err := c.Equal(n)
		require.NoError(t, err)
		assert.True(t, eq)
		assert.Equal(t, n.Strategy(), c.Strategy())
	})
}

func TestThawFreeze(t *testing.T) {
	n := mustParse(t, "oss.fau.de")
	m := n.Thaw()
	require.NoError(t, m.Append("x"))

	assert.Equal(t, 3, n.NoComponents())
	assert.Equal(t, 4, m.NoComponents())

	frozen := m.Freeze()
	require.NoError(t, m.Remove(0))
	assert.Equal(t, "oss.fau.de.x", frozen.String())
	assert.Equal(t, "fau.de.x", m.String())
}
