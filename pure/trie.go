package pure

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/pure_ive_go/shared/helper"
)

// leafKey marks the value slot of a node. It is unexported, so no caller key can collide with it.
type leafKey struct{}

// Trie is an unbounded memo table keyed by paths of normalized keys.
// Every node is a sync.Map; children are created with LoadOrStore, so concurrent
// writers never clobber each other's branches.
type Trie[O any] struct {
	gen atomic.Pointer[generation]
}

// generation is a root and the count of values under it. Clear swaps in a fresh one,
// so a write racing with Clear lands in the old generation along with its count.
type generation struct {
	root sync.Map
	size atomic.Int64
}

func NewTrie[O any]() *Trie[O] {
	t := &Trie[O]{}
	t.gen.Store(&generation{})
	return t
}

func (t *Trie[O]) Load(keys []TableKey) (O, bool) {
	node, ok := t.find(t.gen.Load(), keys)
	if !ok {
		var zero O
		return zero, false
	}
	return helper.GetTypedValueOf2[O](func() (any, bool) {
		return node.Load(leafKey{})
	})
}

func (t *Trie[O]) Store(keys []TableKey, value O) {
	gen := t.gen.Load()
	node := &gen.root
	for _, k := range keys {
		v, ok := node.Load(k)
		if !ok {
			v, _ = node.LoadOrStore(k, &sync.Map{})
		}
		node = v.(*sync.Map)
	}
	if _, loaded := node.Swap(leafKey{}, value); !loaded {
		gen.size.Add(1)
	}
}

// Delete removes the value stored under keys. Empty branches are left in place.
func (t *Trie[O]) Delete(keys []TableKey) bool {
	gen := t.gen.Load()
	node, ok := t.find(gen, keys)
	if !ok {
		return false
	}
	if _, loaded := node.LoadAndDelete(leafKey{}); loaded {
		gen.size.Add(-1)
		return true
	}
	return false
}

// Len returns the number of stored values.
func (t *Trie[O]) Len() int {
	return int(t.gen.Load().size.Load())
}

// Clear drops every stored value.
func (t *Trie[O]) Clear() {
	t.gen.Store(&generation{})
}

func (t *Trie[O]) find(gen *generation, keys []TableKey) (*sync.Map, bool) {
	node := &gen.root
	for _, k := range keys {
		v, ok := node.Load(k)
		if !ok {
			return nil, false
		}
		node = v.(*sync.Map)
	}
	return node, true
}
