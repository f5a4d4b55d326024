package pure

import "github.com/on-the-ground/pure_ive_go/shared/helper"

// The typed wrappers below panic with ErrUnhashableArgument when an argument is
// neither comparable nor a Keyer. The ...E variants return that error instead.

func MemoizeI1O1[I1 ComparableOrKeyer, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) (func(I1) O1, *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return pureFn(argAs[I1](args[0])), nil
	}, opts...)
	return func(i1 I1) O1 {
		return mustCall[O1](memo, i1)
	}, memo
}

func MemoizeI2O1[I1, I2 ComparableOrKeyer, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) (func(I1, I2) O1, *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return pureFn(argAs[I1](args[0]), argAs[I2](args[1])), nil
	}, opts...)
	return func(i1 I1, i2 I2) O1 {
		return mustCall[O1](memo, i1, i2)
	}, memo
}

func MemoizeI3O1[I1, I2, I3 ComparableOrKeyer, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) (func(I1, I2, I3) O1, *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return pureFn(argAs[I1](args[0]), argAs[I2](args[1]), argAs[I3](args[2])), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return mustCall[O1](memo, i1, i2, i3)
	}, memo
}

func MemoizeI4O1[I1, I2, I3, I4 ComparableOrKeyer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...Option,
) (func(I1, I2, I3, I4) O1, *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return pureFn(argAs[I1](args[0]), argAs[I2](args[1]), argAs[I3](args[2]), argAs[I4](args[3])), nil
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return mustCall[O1](memo, i1, i2, i3, i4)
	}, memo
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func MemoizeI1O2[I1 ComparableOrKeyer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...Option,
) (func(I1) (O1, O2), *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		v1, v2 := pureFn(argAs[I1](args[0]))
		return result[O1, O2]{O1: v1, O2: v2}, nil
	}, opts...)
	return func(i1 I1) (O1, O2) {
		res := mustCall[result[O1, O2]](memo, i1)
		return res.O1, res.O2
	}, memo
}

func MemoizeI2O2[I1, I2 ComparableOrKeyer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...Option,
) (func(I1, I2) (O1, O2), *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		v1, v2 := pureFn(argAs[I1](args[0]), argAs[I2](args[1]))
		return result[O1, O2]{O1: v1, O2: v2}, nil
	}, opts...)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := mustCall[result[O1, O2]](memo, i1, i2)
		return res.O1, res.O2
	}, memo
}

func MemoizeI1E[I1 ComparableOrKeyer, O1 any](
	fn func(I1) (O1, error),
	opts ...Option,
) (func(I1) (O1, error), *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return fn(argAs[I1](args[0]))
	}, opts...)
	return func(i1 I1) (O1, error) {
		return call[O1](memo, i1)
	}, memo
}

func MemoizeI2E[I1, I2 ComparableOrKeyer, O1 any](
	fn func(I1, I2) (O1, error),
	opts ...Option,
) (func(I1, I2) (O1, error), *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return fn(argAs[I1](args[0]), argAs[I2](args[1]))
	}, opts...)
	return func(i1 I1, i2 I2) (O1, error) {
		return call[O1](memo, i1, i2)
	}, memo
}

func MemoizeI3E[I1, I2, I3 ComparableOrKeyer, O1 any](
	fn func(I1, I2, I3) (O1, error),
	opts ...Option,
) (func(I1, I2, I3) (O1, error), *Memoizer) {
	memo := NewMemoizer(func(args []any, _ map[string]any) (any, error) {
		return fn(argAs[I1](args[0]), argAs[I2](args[1]), argAs[I3](args[2]))
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return call[O1](memo, i1, i2, i3)
	}, memo
}

func call[O any](memo *Memoizer, args ...any) (O, error) {
	return helper.GetTypedValueOf[O](func() (any, error) {
		return memo.Call(args, nil)
	})
}

func mustCall[O any](memo *Memoizer, args ...any) O {
	return helper.MustGetTypedValue[O](func() (any, error) {
		return memo.Call(args, nil)
	})
}

// argAs tolerates nil for interface-typed parameters.
func argAs[T any](v any) T {
	t, _ := v.(T)
	return t
}
