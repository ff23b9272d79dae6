package dsl

import (
	"context"
	"reflect"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// Nested declares a singular nested field: the related object returned by
// get is dumped through the target schema. A nil related object renders as
// null. The target holds a reference, not ownership; pass a *Ref to declare
// the relationship before the target schema exists.
func Nested[T, R any](target goshape.Dumper, get func(T) R) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		rel := get(src)
		if isNilRelated(rel) {
			return nil, nil
		}
		doc, err := target.DumpAny(ctx, rel)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}}
}

// NestedMany declares a plural nested field: each related object returned by
// get is dumped through the target schema, producing an ordered sequence of
// Documents. get may read a stored collection or compute a derived one (for
// example a Registry lookup); input order is preserved in the output.
func NestedMany[T, R any](target goshape.Dumper, get func(T) []R) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		rel := get(src)
		docs := make([]*goshape.Document, 0, len(rel))
		for i, r := range rel {
			doc, err := target.DumpAny(ctx, r)
			if err != nil {
				return nil, goshape.RebaseIssues(goshape.PointerIndex(i), err)
			}
			docs = append(docs, doc)
		}
		return docs, nil
	}}
}

// NestedAttr declares a nested field whose related object (or slice of
// related objects when many is true) is read reflectively from the named
// attribute. Used by schemafile-built schemas.
func NestedAttr[T any](name string, target goshape.Dumper, many bool) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		raw, err := attrValue(src, name)
		if err != nil {
			return nil, err
		}
		if !many {
			if isNilRelated(raw) {
				return nil, nil
			}
			doc, derr := target.DumpAny(ctx, raw)
			if derr != nil {
				return nil, derr
			}
			return doc, nil
		}
		if raw == nil {
			return []*goshape.Document{}, nil
		}
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, goshape.Issues{{
				Path:    "/",
				Code:    goshape.CodeInvalidType,
				Message: i18n.T(goshape.CodeInvalidType, nil),
				Hint:    "plural nested attribute must hold a slice",
				Params:  map[string]any{"attr": name},
			}}
		}
		docs := make([]*goshape.Document, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			doc, derr := target.DumpAny(ctx, rv.Index(i).Interface())
			if derr != nil {
				return nil, goshape.RebaseIssues(goshape.PointerIndex(i), derr)
			}
			docs = append(docs, doc)
		}
		return docs, nil
	}}
}

func isNilRelated(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Ref is a late-bound schema reference. It lets two schemas declare nested
// fields against each other before either is built; the reference is
// resolved at dump time, not at construction time. Dumping through an
// unresolved Ref fails with unresolved_ref.
type Ref struct {
	name   string
	target goshape.Dumper
}

var _ goshape.Dumper = (*Ref)(nil)

// SchemaRef declares a named forward reference.
func SchemaRef(name string) *Ref { return &Ref{name: name} }

// Resolve binds the reference to its target schema. It returns the Ref for
// chaining and panics when called twice; a reference has exactly one target.
func (r *Ref) Resolve(d goshape.Dumper) *Ref {
	if r.target != nil {
		panic("goshape: SchemaRef " + r.name + " resolved twice")
	}
	r.target = d
	return r
}

// Name returns the target's name when resolved, the declared name otherwise.
func (r *Ref) Name() string {
	if r.target != nil {
		return r.target.Name()
	}
	return r.name
}

// Fields returns the target's declared field names, or nil when unresolved.
func (r *Ref) Fields() []string {
	if r.target != nil {
		return r.target.Fields()
	}
	return nil
}

// DumpAny delegates to the resolved target.
func (r *Ref) DumpAny(ctx context.Context, src any) (*goshape.Document, error) {
	if r.target == nil {
		return nil, goshape.Issues{{
			Path:    "/",
			Code:    goshape.CodeUnresolvedRef,
			Message: i18n.T(goshape.CodeUnresolvedRef, nil),
			Params:  map[string]any{"schema": r.name},
		}}
	}
	return r.target.DumpAny(ctx, src)
}
