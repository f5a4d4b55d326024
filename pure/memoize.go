package pure

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Func is the shape every memoized function is reduced to.
type Func func(args []any, kwargs map[string]any) (any, error)

// Stats is a snapshot of a Memoizer's counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Memoizer caches the results of fn by call Signature.
// It owns its table for as long as it lives; the table is never bounded.
type Memoizer struct {
	id     string
	name   string
	fn     Func
	table  *Trie[any]
	logger *zap.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemoizer wraps fn. fn runs at most once per distinct signature unless the
// entry is forgotten or fn fails.
func NewMemoizer(fn Func, opts ...Option) *Memoizer {
	o := newOptions("memoizer", opts)
	return &Memoizer{
		id:     uuid.New().String(),
		name:   o.name,
		fn:     fn,
		table:  NewTrie[any](),
		logger: o.logger,
	}
}

// Call returns the cached result for (args, kwargs), computing it on a miss.
// Errors from fn are returned unchanged and nothing is cached for that signature.
func (m *Memoizer) Call(args []any, kwargs map[string]any) (any, error) {
	sig, err := NewSignature(args, kwargs)
	if err != nil {
		return nil, err
	}
	path := sig.path()
	if v, ok := m.table.Load(path); ok {
		m.hits.Add(1)
		return v, nil
	}

	m.misses.Add(1)
	v, err := m.fn(args, kwargs)
	if err != nil {
		return nil, err
	}
	m.table.Store(path, v)
	m.debug("memoized result", sig)
	return v, nil
}

// Lookup reads the cache without computing anything.
func (m *Memoizer) Lookup(args []any, kwargs map[string]any) (any, bool, error) {
	sig, err := NewSignature(args, kwargs)
	if err != nil {
		return nil, false, err
	}
	v, ok := m.table.Load(sig.path())
	return v, ok, nil
}

// Forget drops the entry for (args, kwargs) so the next Call recomputes it.
func (m *Memoizer) Forget(args []any, kwargs map[string]any) (bool, error) {
	sig, err := NewSignature(args, kwargs)
	if err != nil {
		return false, err
	}
	deleted := m.table.Delete(sig.path())
	if deleted {
		m.debug("forgot memoized result", sig)
	}
	return deleted, nil
}

// Reset drops every entry. Counters are kept.
func (m *Memoizer) Reset() {
	m.table.Clear()
	m.logger.Debug("reset memoizer", zap.String("memoizer", m.name), zap.String("memoizerId", m.id))
}

// debug fingerprints sig only when debug logging is enabled.
func (m *Memoizer) debug(msg string, sig Signature) {
	if ce := m.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("memoizer", m.name),
			zap.String("memoizerId", m.id),
			zap.Uint64("signature", sig.Fingerprint()),
		)
	}
}

func (m *Memoizer) Len() int { return m.table.Len() }

func (m *Memoizer) ID() string { return m.id }

func (m *Memoizer) Name() string { return m.name }

func (m *Memoizer) Stats() Stats {
	return Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Entries: m.table.Len(),
	}
}
