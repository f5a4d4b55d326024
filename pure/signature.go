package pure

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/pure_ive_go/shared/helper"
	"go.uber.org/multierr"
)

// ErrUnhashableArgument is returned when an argument is neither comparable nor a Keyer
// with a comparable MemoKey.
var ErrUnhashableArgument = helper.ErrUnhashableArgument

// Keyer lets a type that cannot be a map key opt in to memoization.
// MemoKey must return a comparable value, and two receivers must return equal keys
// exactly when they are equal. MemoKey is only consulted for values that are not
// comparable themselves.
type Keyer interface {
	MemoKey() any
}

// ComparableOrKeyer is any value accepted as a memoized argument: it is either
// comparable at run time or implements Keyer.
type ComparableOrKeyer any

// TableKey is a normalized key, always safe to use as a map key.
type TableKey any

// KeywordArg is one normalized keyword argument of a Signature.
type KeywordArg struct {
	Name string
	Key  TableKey
}

// Signature is the normalized form of a call: positional keys in order followed by
// keyword arguments sorted by name.
type Signature struct {
	Args   []TableKey
	Kwargs []KeywordArg
}

// arity heads every trie path so calls with different shapes never share a branch.
type arity struct {
	positional int
	keyword    int
}

// keyerKey stands in for a non-comparable Keyer. The dynamic type keeps it apart
// from a plain value equal to its MemoKey.
type keyerKey struct {
	typ reflect.Type
	key any
}

// NewSignature normalizes args and kwargs into a Signature.
// Every argument that cannot be keyed is reported, combined into one error
// that matches ErrUnhashableArgument.
func NewSignature(args []any, kwargs map[string]any) (Signature, error) {
	var errs error
	sig := Signature{
		Args:   make([]TableKey, len(args)),
		Kwargs: make([]KeywordArg, 0, len(kwargs)),
	}
	for i, arg := range args {
		k, err := tableKey(arg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("argument %d: %w", i, err))
			continue
		}
		sig.Args[i] = k
	}

	names := make([]string, 0, len(kwargs))
	for name := range kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k, err := tableKey(kwargs[name])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("keyword %q: %w", name, err))
			continue
		}
		sig.Kwargs = append(sig.Kwargs, KeywordArg{Name: name, Key: k})
	}

	if errs != nil {
		return Signature{}, errs
	}
	return sig, nil
}

// path flattens the signature into trie keys.
func (s Signature) path() []TableKey {
	keys := make([]TableKey, 0, 1+len(s.Args)+len(s.Kwargs))
	keys = append(keys, arity{positional: len(s.Args), keyword: len(s.Kwargs)})
	keys = append(keys, s.Args...)
	for _, kw := range s.Kwargs {
		keys = append(keys, kw)
	}
	return keys
}

// Fingerprint is a compact hash of the signature, meant for logs.
// Distinct signatures may share a fingerprint; never use it as a cache key.
func (s Signature) Fingerprint() uint64 {
	d := xxhash.New()
	for _, k := range s.path() {
		fmt.Fprintf(d, "%T:%v;", k, k)
	}
	return d.Sum64()
}

func tableKey(i ComparableOrKeyer) (TableKey, error) {
	if helper.IsHashable(i) {
		return i, nil
	}
	if keyer, ok := i.(Keyer); ok {
		k := keyer.MemoKey()
		if err := helper.CheckHashable(k); err != nil {
			return nil, fmt.Errorf("%T.MemoKey: %w", i, err)
		}
		return keyerKey{typ: reflect.TypeOf(i), key: k}, nil
	}
	return nil, helper.CheckHashable(i)
}
