package pure

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// CachedAttribute is a lazily computed, per-instance attribute.
//
// The first Get for an instance runs compute and stores the result in the instance's
// slot; later reads return the slot directly. Invalidate empties the slot so the next
// Get computes again. Instances are keyed by identity, so O is usually a pointer type.
//
// Example:
//
//	var area = pure.CachedAttributeOf("area", func(s *Shape) float64 { return s.w * s.h })
//
//	func (s *Shape) Area() float64 { return area.MustGet(s) }
//
// Slots hold a strong reference to their instance until invalidated; call Invalidate
// when an instance is discarded if the attribute outlives it, or use Lazy, whose value
// lives inside the instance and goes away with it.
type CachedAttribute[O comparable, V any] struct {
	name    string
	compute func(O) (V, error)
	slots   sync.Map
	logger  *zap.Logger
}

func NewCachedAttribute[O comparable, V any](
	name string,
	compute func(O) (V, error),
	opts ...Option,
) *CachedAttribute[O, V] {
	o := newOptions(name, opts)
	return &CachedAttribute[O, V]{
		name:    name,
		compute: compute,
		logger:  o.logger,
	}
}

// CachedAttributeOf is NewCachedAttribute for computations that cannot fail.
// The attribute keeps every instance it has seen reachable until Invalidate;
// prefer a Lazy field when the value should be freed with its instance.
func CachedAttributeOf[O comparable, V any](
	name string,
	compute func(O) V,
	opts ...Option,
) *CachedAttribute[O, V] {
	return NewCachedAttribute(name, func(inst O) (V, error) {
		return compute(inst), nil
	}, opts...)
}

func (a *CachedAttribute[O, V]) Name() string { return a.name }

// Get returns the cached value for inst, computing and storing it on first read.
// An error from compute is returned unchanged and leaves the slot empty.
func (a *CachedAttribute[O, V]) Get(inst O) (V, error) {
	if v, ok := a.Peek(inst); ok {
		return v, nil
	}
	v, err := a.compute(inst)
	if err != nil {
		var zero V
		return zero, err
	}
	a.slots.Store(inst, v)
	a.logger.Debug("computed cached attribute",
		zap.String("attribute", a.name),
		zap.String("instance", describeInstance(inst)),
	)
	return v, nil
}

// MustGet is the panic-on-failure variant of Get.
func (a *CachedAttribute[O, V]) MustGet(inst O) V {
	v, err := a.Get(inst)
	if err != nil {
		panic(err)
	}
	return v
}

// Peek reports the slot's content without computing.
func (a *CachedAttribute[O, V]) Peek(inst O) (V, bool) {
	raw, ok := a.slots.Load(inst)
	if !ok {
		var zero V
		return zero, false
	}
	v, _ := raw.(V)
	return v, true
}

// Set overwrites the slot for inst; compute is not called.
func (a *CachedAttribute[O, V]) Set(inst O, v V) {
	a.slots.Store(inst, v)
}

// Invalidate empties the slot for inst. It reports whether a value was cached.
func (a *CachedAttribute[O, V]) Invalidate(inst O) bool {
	_, loaded := a.slots.LoadAndDelete(inst)
	if loaded {
		a.logger.Debug("invalidated cached attribute",
			zap.String("attribute", a.name),
			zap.String("instance", describeInstance(inst)),
		)
	}
	return loaded
}

func describeInstance(inst any) string {
	if v := reflect.ValueOf(inst); v.Kind() == reflect.Pointer {
		return fmt.Sprintf("%T(%p)", inst, inst)
	}
	return fmt.Sprintf("%T(%v)", inst, inst)
}
