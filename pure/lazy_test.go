package pure_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	rows  []int
	calls int
	total pure.Lazy[int]
}

func (r *report) Total() int {
	return r.total.Get(func() int {
		r.calls++
		sum := 0
		for _, v := range r.rows {
			sum += v
		}
		return sum
	})
}

func TestLazy_GetAndInvalidate(t *testing.T) {
	r := &report{rows: []int{1, 2, 3}}
	_, ok := r.total.Peek()
	assert.False(t, ok)

	assert.Equal(t, 6, r.Total())
	assert.Equal(t, 6, r.Total())
	assert.Equal(t, 1, r.calls)

	r.rows = append(r.rows, 4)
	assert.Equal(t, 6, r.Total())

	r.total.Invalidate()
	assert.Equal(t, 10, r.Total())
	assert.Equal(t, 2, r.calls)
}

func TestLazy_GetEDoesNotCacheFailure(t *testing.T) {
	var l pure.Lazy[string]
	boom := errors.New("boom")

	_, err := l.GetE(func() (string, error) { return "", boom })
	assert.Same(t, boom, err)
	_, ok := l.Peek()
	assert.False(t, ok)

	v, err := l.GetE(func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	v, err = l.GetE(func() (string, error) { return "", boom })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestLazy_ValueIsOwnedByItsInstance(t *testing.T) {
	a := &report{rows: []int{1}}
	b := &report{rows: []int{2}}

	assert.Equal(t, 1, a.Total())
	_, ok := b.total.Peek()
	assert.False(t, ok)
	assert.Equal(t, 2, b.Total())
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}
