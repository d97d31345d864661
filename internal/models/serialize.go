package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is the serialized form of an entity. Keys keep the entity's
// canonical field order when marshalled to JSON.
type Record = orderedmap.OrderedMap[string, any]

// SerializeOption controls which fields and relations Serialize emits
type SerializeOption func(*serializeOptions)

type serializeOptions struct {
	only      []string
	relations bool
	parents   bool
}

// Only restricts the output to the named fields. Unknown names are ignored and
// the canonical order is kept regardless of the order given here.
func Only(fields ...string) SerializeOption {
	return func(o *serializeOptions) {
		o.only = fields
	}
}

// WithRelations adds the restaurant's associations under "restaurant_pizzas"
func WithRelations() SerializeOption {
	return func(o *serializeOptions) {
		o.relations = true
	}
}

// WithParents nests the pizza and restaurant of an association
func WithParents() SerializeOption {
	return func(o *serializeOptions) {
		o.parents = true
	}
}

func newSerializeOptions(opts []SerializeOption) serializeOptions {
	var o serializeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type field struct {
	name  string
	value any
}

// project copies the allowed fields into a new Record. An empty allow-list keeps everything.
func project(fields []field, only []string) *Record {
	allowed := make(map[string]struct{}, len(only))
	for _, name := range only {
		allowed[name] = struct{}{}
	}

	record := orderedmap.New[string, any]()
	for _, f := range fields {
		if len(only) > 0 {
			if _, ok := allowed[f.name]; !ok {
				continue
			}
		}
		record.Set(f.name, f.value)
	}
	return record
}
