package pure_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := pure.NewTrie[string]()

	// store a value
	trie.Store([]pure.TableKey{"a", "b", "c"}, "final")

	// load it back
	val, ok := trie.Load([]pure.TableKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]pure.TableKey{"a", "b", "x"})
	assert.False(t, ok)

	// prefix of a stored path holds no value
	_, ok = trie.Load([]pure.TableKey{"a", "b"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]pure.TableKey{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]pure.TableKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, trie.Len())
}

func TestTrie_PrefixAndLongerPathCoexist(t *testing.T) {
	trie := pure.NewTrie[int]()
	trie.Store([]pure.TableKey{"a"}, 1)
	trie.Store([]pure.TableKey{"a", "b"}, 2)

	v, ok := trie.Load([]pure.TableKey{"a"})
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = trie.Load([]pure.TableKey{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, trie.Len())
}

func TestTrie_EmptyKeysUseRoot(t *testing.T) {
	trie := pure.NewTrie[int]()
	_, ok := trie.Load([]pure.TableKey{})
	assert.False(t, ok)

	trie.Store(nil, 7)
	v, ok := trie.Load([]pure.TableKey{})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestTrie_DeleteAndClear(t *testing.T) {
	trie := pure.NewTrie[int]()
	trie.Store([]pure.TableKey{1, 2}, 3)
	trie.Store([]pure.TableKey{1, 3}, 4)

	assert.True(t, trie.Delete([]pure.TableKey{1, 2}))
	assert.False(t, trie.Delete([]pure.TableKey{1, 2}))
	assert.False(t, trie.Delete([]pure.TableKey{9}))
	assert.Equal(t, 1, trie.Len())

	_, ok := trie.Load([]pure.TableKey{1, 2})
	assert.False(t, ok)

	trie.Clear()
	assert.Equal(t, 0, trie.Len())
	_, ok = trie.Load([]pure.TableKey{1, 3})
	assert.False(t, ok)
}

func TestTrie_LenMatchesContentAfterConcurrentClear(t *testing.T) {
	trie := pure.NewTrie[int]()
	const writers, perWriter = 8, 200

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				trie.Store([]pure.TableKey{w, i}, i)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 50 {
			trie.Clear()
		}
	}()
	wg.Wait()

	present := 0
	for w := range writers {
		for i := range perWriter {
			if _, ok := trie.Load([]pure.TableKey{w, i}); ok {
				present++
			}
		}
	}
	assert.Equal(t, present, trie.Len())
}
