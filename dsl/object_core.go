package dsl

import (
	"context"
	"fmt"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// objectSchema applies field descriptors in declaration order to produce one
// Document per source object.
type objectSchema[T any] struct {
	name       string
	fields     []fieldDef[T]
	fieldNames []string
}

// Ensure objectSchema implements goshape.Schema[T] (and thereby goshape.Dumper).
var _ goshape.Schema[any] = (*objectSchema[any])(nil)

func (o *objectSchema[T]) Name() string { return o.name }

func (o *objectSchema[T]) Fields() []string { return o.fieldNames }

// Dump iterates the field descriptors in declared order, failing fast on the
// first field error with the field name attached. The (schema, object) pair
// is registered on the traversal path for the duration of the call so that
// bidirectional nesting surfaces as cyclic_reference instead of recursing.
func (o *objectSchema[T]) Dump(ctx context.Context, src T) (*goshape.Document, error) {
	ctx, leave, err := goshape.EnterNode(ctx, o, any(src))
	if err != nil {
		return nil, err
	}
	defer leave()
	doc := goshape.NewDocument()
	for _, fd := range o.fields {
		v, ferr := fd.field.extract(ctx, src)
		if ferr != nil {
			return nil, goshape.RebaseIssues(goshape.PointerField(fd.name), ferr)
		}
		doc.Set(fd.name, v)
	}
	return doc, nil
}

// DumpMany applies Dump to each source in input order. Default behavior is
// fail-fast on the first failing object; under goshape.IsCollect the issues
// of all failing objects are gathered, each prefixed with the object index.
// Either way no partial result is returned on failure.
func (o *objectSchema[T]) DumpMany(ctx context.Context, srcs []T) ([]*goshape.Document, error) {
	docs := make([]*goshape.Document, 0, len(srcs))
	var iss goshape.Issues
	for i, src := range srcs {
		doc, err := o.Dump(ctx, src)
		if err != nil {
			iss = goshape.AppendIssues(iss, goshape.RebaseIssues(goshape.PointerIndex(i), err)...)
			if !goshape.IsCollect(ctx) {
				return nil, iss
			}
			continue
		}
		docs = append(docs, doc)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return docs, nil
}

// DumpAny narrows src to the schema's source type and dumps it.
func (o *objectSchema[T]) DumpAny(ctx context.Context, src any) (*goshape.Document, error) {
	tv, ok := src.(T)
	if !ok {
		return nil, goshape.Issues{{
			Path:    "/",
			Code:    goshape.CodeInvalidType,
			Message: i18n.T(goshape.CodeInvalidType, nil),
			Hint:    fmt.Sprintf("schema %q cannot dump %T", o.name, src),
		}}
	}
	return o.Dump(ctx, tv)
}
