package iterate

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/ib-77/flowless/pkg/rop"
)

// Indexed is implemented by ordered sequences that are not Go slices.
type Indexed interface {
	Len() int
	At(i int) any
}

// Keyed is implemented by key-value mappings with their own key order.
type Keyed interface {
	Entries() iter.Seq2[any, any]
}

// Callback receives one element, its index, position or key, and the
// collection being walked.
type Callback func(value, key, collection any)

type shape int

const (
	shapeUnsupported shape = iota
	shapeGenerated
	shapeIndexed
	shapeKeyed
)

// ForEach calls callback once per element of collection, synchronously and
// in the collection's order:
//   - Range: generated values, keyed by position
//   - slices, arrays and Indexed: ascending index
//   - Keyed (such as *OrderedMap): the mapping's own key order
//   - Go maps: ascending key order
//
// Any other collection, or a nil callback, is an error and nothing is
// called.
func ForEach(callback Callback, collection any) error {
	if callback == nil {
		return rop.NewError(rop.ErrCodeInvalidArgument, "nil callback")
	}

	switch classify(collection) {
	case shapeGenerated:
		r := asRange(collection)
		for pos, v := range r.All() {
			callback(v, pos, collection)
		}
	case shapeIndexed:
		if ix, ok := collection.(Indexed); ok {
			for i := 0; i < ix.Len(); i++ {
				callback(ix.At(i), i, collection)
			}
			return nil
		}
		rv := reflect.ValueOf(collection)
		for i := 0; i < rv.Len(); i++ {
			callback(rv.Index(i).Interface(), i, collection)
		}
	case shapeKeyed:
		if kd, ok := collection.(Keyed); ok {
			for k, v := range kd.Entries() {
				callback(v, k, collection)
			}
			return nil
		}
		rv := reflect.ValueOf(collection)
		for _, k := range sortedKeys(rv) {
			callback(rv.MapIndex(k).Interface(), k.Interface(), collection)
		}
	default:
		return rop.NewError(rop.ErrCodeUnsupportedCollection,
			"cannot iterate over %T", collection).
			WithDetail("type", fmt.Sprintf("%T", collection))
	}
	return nil
}

func classify(collection any) shape {
	if collection == nil {
		return shapeUnsupported
	}

	switch c := collection.(type) {
	case Range:
		return shapeGenerated
	case *Range:
		if c != nil {
			return shapeGenerated
		}
		return shapeUnsupported
	case Keyed:
		if rop.IsNil(c) {
			return shapeUnsupported
		}
		return shapeKeyed
	case Indexed:
		if rop.IsNil(c) {
			return shapeUnsupported
		}
		return shapeIndexed
	}

	// nil slices and maps are empty collections
	switch reflect.TypeOf(collection).Kind() {
	case reflect.Slice, reflect.Array:
		return shapeIndexed
	case reflect.Map:
		return shapeKeyed
	}
	return shapeUnsupported
}

func asRange(collection any) Range {
	if r, ok := collection.(*Range); ok {
		return *r
	}
	return collection.(Range)
}

// sortedKeys orders map keys: natural order for numbers and strings, their
// formatted form for anything else.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.CanInt() && b.CanInt():
			return cmp.Compare(a.Int(), b.Int())
		case a.CanUint() && b.CanUint():
			return cmp.Compare(a.Uint(), b.Uint())
		case a.CanFloat() && b.CanFloat():
			return cmp.Compare(a.Float(), b.Float())
		case a.Kind() == reflect.String && b.Kind() == reflect.String:
			return cmp.Compare(a.String(), b.String())
		}
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})
	return keys
}
