package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-ap/arr"
	"github.com/hasbyte1/go-ap/collections"
)

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

// ─── Constructors & accessors ─────────────────────────────────────────────────

func TestNewCopies(t *testing.T) {
	src := []int{1, 2, 3}
	c := collections.From(src)
	src[0] = 99

	v, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, c.Count())
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, []int{}, c.All())

	_, ok := c.Get(0)
	assert.False(t, ok)
}

func TestEach(t *testing.T) {
	var sum, idx int
	ints(1, 2, 3).Each(func(n, i int) { sum += n; idx += i })
	assert.Equal(t, 6, sum)
	assert.Equal(t, 3, idx)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1,2,3]", ints(1, 2, 3).String())
}

// ─── Collection.Ap ────────────────────────────────────────────────────────────

func TestMethodAp(t *testing.T) {
	c := collections.New(
		func(n int) int { return n + 1 },
		func(n int) int { return n * 2 },
		func(n int) int { return n - 3 },
	)
	res, err := c.Ap(10)
	require.NoError(t, err)
	assert.Equal(t, []any{11, 20, 7}, res.Values())
	assert.Equal(t, 3, c.Count(), "receiver must be unchanged")
}

func TestMethodApEmpty(t *testing.T) {
	res, err := collections.Empty[func(int) int]().Ap(5)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestMethodApHole(t *testing.T) {
	calls := 0
	c := collections.New[func(int) int](
		func(n int) int { calls++; return n },
		nil,
		func(n int) int { calls++; return n },
	)
	res, err := c.Ap(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Holes())
	assert.Equal(t, 2, calls)
}

func TestMethodApMissingArgument(t *testing.T) {
	called := false
	c := collections.New(func(n int) int { called = true; return n })

	_, err := c.Ap()
	assert.ErrorIs(t, err, arr.ErrMissingArgument)
	assert.False(t, called)
}

func TestMethodApInvalidElement(t *testing.T) {
	calls := 0
	c := collections.New[any](
		func(n int) int { calls++; return n },
		"not a function",
		func(n int) int { calls++; return n },
	)
	res, err := c.Ap(1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, arr.ErrInvalidElement)
	assert.Equal(t, 1, calls)
}

func TestMethodApNonFunctionCollection(t *testing.T) {
	_, err := ints(1, 2).Ap(1)
	var ie *arr.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, ie.Index)
	assert.ErrorIs(t, err, arr.ErrInvalidElement)

	res, err := ints().Ap(1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}
