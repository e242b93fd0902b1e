// Package objects provides pipeline stages that treat a struct, or a map with
// string keys, as a set of named fields.
//
// Field names follow the `mapstructure` struct tag and default to the Go
// field name. Only exported fields are visible. Keys, Values and Entries are
// ordered by field name.
//
// The stages panic when their input cannot be viewed as fields; call Fields
// directly to get the error instead.
package objects

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/halfpipe-go/halfpipe"
	"github.com/halfpipe-go/halfpipe/maps"
)

// Fields decodes obj into a map from field name to value.
func Fields[T any](obj T) (map[string]any, error) {
	out := make(map[string]any)
	if err := mapstructure.Decode(obj, &out); err != nil {
		return nil, fmt.Errorf("objects: cannot view %T as fields: %w", obj, err)
	}
	return out, nil
}

func mustFields[T any](obj T) map[string]any {
	fields, err := Fields(obj)
	if err != nil {
		panic(err)
	}
	return fields
}

// Get returns the value of the named field, or None when there is no such
// field or its value is nil. A nil pointer, map, slice, channel or func
// counts as nil.
func Get[T any](key string) func(T) mo.Option[any] {
	return func(obj T) mo.Option[any] {
		v, ok := mustFields(obj)[key]
		return mo.TupleToOption(v, ok && !lo.IsNil(v))
	}
}

// Keys returns the field names in ascending order.
func Keys[T any]() func(T) []string {
	return func(obj T) []string {
		return halfpipe.Pipe2(obj, mustFields[T], maps.SortedKeys[string, any]())
	}
}

// Values returns the field values ordered by field name.
func Values[T any]() func(T) []any {
	return func(obj T) []any {
		return lo.Map(Entries[T]()(obj), func(e lo.Entry[string, any], _ int) any {
			return e.Value
		})
	}
}

// Entries returns the field name/value pairs ordered by field name.
func Entries[T any]() func(T) []lo.Entry[string, any] {
	return func(obj T) []lo.Entry[string, any] {
		fields := mustFields(obj)
		return lo.Map(halfpipe.Pipe1(fields, maps.SortedKeys[string, any]()), func(k string, _ int) lo.Entry[string, any] {
			return lo.Entry[string, any]{Key: k, Value: fields[k]}
		})
	}
}

// Has reports whether obj has the named field.
func Has[T any](key string) func(T) bool {
	return func(obj T) bool {
		return halfpipe.Pipe2(obj, mustFields[T], maps.Has[string, any](key))
	}
}
