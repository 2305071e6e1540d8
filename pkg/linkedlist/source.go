package linkedlist

import (
	"iter"
	"reflect"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/ds"
	"go.llib.dev/frameless/port/ds/dsset"
)

// Source is the capability a value needs to seed or extend a List.
// Ordered sources yield their values in order,
// unordered ones (sets, maps) in whatever order they iterate.
type Source[T any] interface {
	ds.Values[T]
}

// Pair is how a mapping entry is represented as a single list value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MapEntries turns a map into a Source of its key-value pairs.
func MapEntries[K comparable, V any](m map[K]V) Source[Pair[K, V]] {
	return mapEntries[K, V](m)
}

type mapEntries[K comparable, V any] map[K]V

func (m mapEntries[K, V]) Values() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range m {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// valuesOf checks whether src is enumerable as a sequence of T values.
// It is the single gate for every operation that accepts a source,
// so a rejected source never leaves a list half modified.
func valuesOf[T any](src any) (iter.Seq[T], error) {
	switch src := src.(type) {
	case nil:
		return nil, ErrInvalidArgument.F("nil is not an enumerable source")
	case *List[T]:
		if src == nil {
			return nil, ErrInvalidArgument.F("nil %T", src)
		}
		return src.Values(), nil
	case Source[T]:
		return src.Values(), nil
	case iter.Seq[T]:
		if src == nil {
			return nil, ErrInvalidArgument.F("nil %T", src)
		}
		return src, nil
	case func(func(T) bool):
		if src == nil {
			return nil, ErrInvalidArgument.F("nil %T", src)
		}
		return src, nil
	case dsset.Set[T]:
		return src.Values(), nil
	case []T:
		return iterkit.FromSlice(src), nil
	}
	return reflectValuesOf[T](reflect.ValueOf(src))
}

// reflectValuesOf handles sources whose element type only becomes known at runtime,
// like a *List[int] or an iter.Seq[int] used to build a List[any].
func reflectValuesOf[T any](rv reflect.Value) (iter.Seq[T], error) {
	if !rv.IsValid() {
		return nil, ErrInvalidArgument.F("invalid source")
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrInvalidArgument.F("nil %s", rv.Type())
	}
	if seq, ok := valuesMethodOf(rv); ok {
		return reflectSeqOf[T](seq)
	}
	target := reflect.TypeFor[T]()
	switch rv.Kind() {
	case reflect.Func:
		return reflectSeqOf[T](rv)
	case reflect.Slice, reflect.Array:
		if !rv.Type().Elem().AssignableTo(target) {
			return nil, ErrInvalidArgument.F("%s elements are not assignable to %s", rv.Type(), target)
		}
		return func(yield func(T) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(castTo[T](rv.Index(i))) {
					return
				}
			}
		}, nil
	case reflect.Map:
		mkPair, ok := pairConstructorFor[T](rv.Type())
		if !ok {
			return nil, ErrInvalidArgument.F("%s entries can't be represented as %s", rv.Type(), target)
		}
		return func(yield func(T) bool) {
			entries := rv.MapRange()
			for entries.Next() {
				if !yield(mkPair(entries.Key(), entries.Value())) {
					return
				}
			}
		}, nil
	default:
		return nil, ErrInvalidArgument.F("%s is not an enumerable source", rv.Type())
	}
}

// valuesMethodOf calls the Values method of rv when it returns an iterator.
// Methods with a pointer receiver are found on a copy of rv.
func valuesMethodOf(rv reflect.Value) (reflect.Value, bool) {
	m := rv.MethodByName("Values")
	if !m.IsValid() && rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		m = ptr.MethodByName("Values")
	}
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || !isIterFunc(mt.Out(0)) {
		return reflect.Value{}, false
	}
	return m.Call(nil)[0], true
}

// reflectSeqOf adapts a func(func(E) bool) iterator to iter.Seq[T] when E is assignable to T.
func reflectSeqOf[T any](fn reflect.Value) (iter.Seq[T], error) {
	target := reflect.TypeFor[T]()
	if !isIterFunc(fn.Type()) {
		return nil, ErrInvalidArgument.F("%s is not an enumerable source", fn.Type())
	}
	if elem := fn.Type().In(0).In(0); !elem.AssignableTo(target) {
		return nil, ErrInvalidArgument.F("%s elements are not assignable to %s", fn.Type(), target)
	}
	if fn.IsNil() {
		return nil, ErrInvalidArgument.F("nil %s", fn.Type())
	}
	return func(yield func(T) bool) {
		for v := range fn.Seq() {
			if !yield(castTo[T](v)) {
				return
			}
		}
	}, nil
}

func isIterFunc(t reflect.Type) bool {
	return t.Kind() == reflect.Func && t.CanSeq()
}

// pairConstructorFor finds how a map entry of mapType becomes a T.
// T is either a struct with assignable Key and Value fields, like Pair[K, V],
// or an interface that Pair[any, any] satisfies.
func pairConstructorFor[T any](mapType reflect.Type) (func(k, v reflect.Value) T, bool) {
	target := reflect.TypeFor[T]()
	if target.Kind() == reflect.Struct {
		kf, okK := target.FieldByName("Key")
		vf, okV := target.FieldByName("Value")
		if !okK || !okV ||
			!mapType.Key().AssignableTo(kf.Type) ||
			!mapType.Elem().AssignableTo(vf.Type) {
			return nil, false
		}
		return func(k, v reflect.Value) T {
			ptr := reflect.New(target)
			ptr.Elem().FieldByIndex(kf.Index).Set(k)
			ptr.Elem().FieldByIndex(vf.Index).Set(v)
			return ptr.Elem().Interface().(T)
		}, true
	}
	if reflect.TypeFor[Pair[any, any]]().AssignableTo(target) {
		return func(k, v reflect.Value) T {
			var p any = Pair[any, any]{Key: k.Interface(), Value: v.Interface()}
			return p.(T)
		}, true
	}
	return nil, false
}

func castTo[T any](rv reflect.Value) T {
	v, _ := rv.Interface().(T) // nil interface elements become the zero T
	return v
}

var (
	_ Source[any]              = (*List[any])(nil)
	_ Source[int]              = (*dsset.Set[int])(nil)
	_ ds.Len                   = (*List[any])(nil)
	_ ds.Containable[any]      = (*List[any])(nil)
	_ ds.SliceConveratble[any] = (*List[any])(nil)
)
