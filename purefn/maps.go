package purefn

import (
	"errors"

	"github.com/samber/lo"
)

// ErrEmptyInput is returned by UnionDicts when called without maps.
var ErrEmptyInput = errors.New("union of no maps")

// UnionDicts returns a new map holding every entry of dicts.
// Maps are applied left to right, so later values win on key collision.
func UnionDicts[M ~map[K]V, K comparable, V any](dicts ...M) (M, error) {
	if len(dicts) == 0 {
		return nil, ErrEmptyInput
	}
	plain := lo.Map(dicts, func(d M, _ int) map[K]V {
		return map[K]V(d)
	})
	return M(lo.Assign[K, V](plain...)), nil
}

// MustUnionDicts is the panic-on-failure variant of UnionDicts.
func MustUnionDicts[M ~map[K]V, K comparable, V any](dicts ...M) M {
	m, err := UnionDicts(dicts...)
	if err != nil {
		panic(err)
	}
	return m
}
