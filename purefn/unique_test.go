package purefn_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/pure_ive_go/purefn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStableUnique(t *testing.T) {
	assert.Equal(t, []int{1, 4, 6, 5, 7}, purefn.StableUnique([]int{1, 4, 6, 4, 6, 5, 7}))
	assert.Equal(t, []string{"b", "a"}, purefn.StableUnique([]string{"b", "a", "b", "a"}))
}

func TestStableUnique_Empty(t *testing.T) {
	got := purefn.StableUnique([]int{})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = purefn.StableUnique([]int(nil))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStableUnique_DoesNotMutateInput(t *testing.T) {
	in := []int{3, 3, 1, 3}
	out := purefn.StableUnique(in)
	assert.Equal(t, []int{3, 1}, out)
	assert.Equal(t, []int{3, 3, 1, 3}, in)

	out[0] = 100
	assert.Equal(t, 3, in[0])
}

type ids []int

func TestStableUnique_KeepsNamedSliceType(t *testing.T) {
	got := purefn.StableUnique(ids{2, 2, 1})
	assert.IsType(t, ids{}, got)
	assert.Equal(t, ids{2, 1}, got)
}

func TestStableUniqueFunc(t *testing.T) {
	words := []string{"Go", "rust", "GO", "Rust", "zig"}
	got := purefn.StableUniqueFunc(words, strings.ToLower)
	assert.Equal(t, []string{"Go", "rust", "zig"}, got)
	assert.Equal(t, []string{"Go", "rust", "GO", "Rust", "zig"}, words)
}

func TestStableUniqueAny(t *testing.T) {
	got, err := purefn.StableUniqueAny([]any{1, "1", 1, nil, "1", nil})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "1", nil}, got)

	type point struct{ X, Y int }
	in := []any{point{1, 2}, point{1, 2}, point{2, 1}}
	got, err = purefn.StableUniqueAny(in)
	require.NoError(t, err)
	assert.Equal(t, []any{point{1, 2}, point{2, 1}}, got)
	assert.Len(t, in, 3)

	_, err = purefn.StableUniqueAny([]any{1, 1, []int{2}})
	assert.ErrorIs(t, err, purefn.ErrUnhashableArgument)
}
