package dsl

import (
	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// Builder accumulates field declarations for a schema over source type T.
// Declaration order is the output order.
type Builder[T any] struct {
	name   string
	fields []fieldDef[T]
	seen   map[string]struct{}
	iss    goshape.Issues
}

type fieldDef[T any] struct {
	name  string
	field FieldOf[T]
}

// Object creates a new schema builder. The name identifies the schema in
// diagnostics (cyclic_reference reports the schemas on the cycle).
func Object[T any](name string) *Builder[T] {
	return &Builder[T]{name: name, seen: map[string]struct{}{}}
}

// Field registers a field. Field names must be unique within a schema;
// duplicates are reported at Build time.
func (b *Builder[T]) Field(name string, f FieldOf[T]) *Builder[T] {
	if _, dup := b.seen[name]; dup {
		b.iss = goshape.AppendIssues(b.iss, goshape.Issue{
			Path:    goshape.PointerField(name),
			Code:    goshape.CodeDuplicateField,
			Message: i18n.T(goshape.CodeDuplicateField, nil),
		})
		return b
	}
	b.seen[name] = struct{}{}
	b.fields = append(b.fields, fieldDef[T]{name: name, field: f})
	return b
}

// Build validates the builder and returns an immutable Schema.
func (b *Builder[T]) Build() (goshape.Schema[T], error) {
	if len(b.iss) > 0 {
		return nil, b.iss
	}
	names := make([]string, len(b.fields))
	for i, fd := range b.fields {
		names[i] = fd.name
	}
	fields := make([]fieldDef[T], len(b.fields))
	copy(fields, b.fields)
	return &objectSchema[T]{name: b.name, fields: fields, fieldNames: names}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[T]) MustBuild() goshape.Schema[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
