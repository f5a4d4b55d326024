package purefn

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/on-the-ground/pure_ive_go/shared/helper"
	"github.com/samber/lo"
)

// ErrUnhashableArgument is returned by StableUniqueAny for elements that cannot be map keys.
var ErrUnhashableArgument = helper.ErrUnhashableArgument

// StableUnique returns a copy of items without duplicates.
// The order of the remaining items is unchanged.
func StableUnique[S ~[]E, E comparable](items S) S {
	seen := mapset.NewThreadUnsafeSet[E]()
	result := make(S, 0, len(items))
	for _, item := range items {
		if seen.Contains(item) {
			continue
		}
		seen.Add(item)
		result = append(result, item)
	}
	return result
}

// StableUniqueFunc is StableUnique for elements compared by key.
func StableUniqueFunc[S ~[]E, E any, K comparable](items S, key func(E) K) S {
	return S(lo.UniqBy([]E(items), key))
}

// StableUniqueAny is StableUnique for elements whose comparability is only known at run time.
// It fails on the first element that cannot be a map key.
func StableUniqueAny(items []any) ([]any, error) {
	seen := mapset.NewThreadUnsafeSet[any]()
	result := make([]any, 0, len(items))
	for _, item := range items {
		if err := helper.CheckHashable(item); err != nil {
			return nil, err
		}
		if seen.Contains(item) {
			continue
		}
		seen.Add(item)
		result = append(result, item)
	}
	return result, nil
}
