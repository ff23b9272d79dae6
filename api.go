package goshape

import (
	"context"
)

// Schema describes, in declaration order, how one object type is transformed
// into a Document. Schemas are built once (see dsl) and treated as immutable,
// reusable definitions; Dump and DumpMany are safe for concurrent use as long
// as source objects are not mutated during the call.
type Schema[T any] interface {
	// Every Schema is also its own untyped view, so a built schema can be
	// handed directly to nested field constructors.
	Dumper

	// Dump produces one Document for src. Field descriptors run in
	// declaration order; the first failing field fails the whole call with
	// its field name attached (no partial documents).
	Dump(ctx context.Context, src T) (*Document, error)
	// DumpMany applies Dump to each source in input order. By default it
	// fails fast on the first failing object; see DumpOpt.Collect.
	DumpMany(ctx context.Context, srcs []T) ([]*Document, error)
}

// Dumper is the untyped view of a Schema. Nested field resolution and
// late-bound references (dsl.SchemaRef) work through this interface so that
// schemas over different source types can reference each other, including
// circularly.
type Dumper interface {
	// DumpAny dumps a source of unknown static type. Implementations fail
	// with an invalid_type issue when src is not the schema's source type.
	DumpAny(ctx context.Context, src any) (*Document, error)
	// Fields returns the declared field names in declaration order.
	Fields() []string
	// Name returns the schema's declared name, used in diagnostics.
	Name() string
}

// DumpOpt controls engine-level dump behavior.
type DumpOpt struct {
	// Collect makes DumpMany gather issues across all failing objects
	// instead of stopping at the first one. Issue paths are prefixed with
	// the object's index (for example /1/email). Successful documents are
	// still not returned when any object fails; dumps are all-or-nothing.
	Collect bool
}

// Dump is the top-level entry point for a single object. It establishes a
// fresh traversal path for the guard and delegates to the schema.
func Dump[T any](ctx context.Context, s Schema[T], src T) (*Document, error) {
	return s.Dump(ctx, src)
}

// DumpMany is the top-level entry point for a sequence of objects.
func DumpMany[T any](ctx context.Context, s Schema[T], srcs []T, opt ...DumpOpt) ([]*Document, error) {
	if len(opt) > 0 {
		ctx = WithCollect(ctx, opt[0].Collect)
	}
	return s.DumpMany(ctx, srcs)
}

// ---- Dump-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const (
	_ctxKeyCollect contextKey = iota
	_ctxKeyPath
)

// WithCollect returns a child context that marks collecting DumpMany behavior.
// This is set by DumpMany based on DumpOpt and consumed by schema implementations.
func WithCollect(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyCollect, enabled)
}

// IsCollect reports whether the current DumpMany should gather per-object
// issues instead of stopping at the first failing object.
func IsCollect(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyCollect)
	b, _ := v.(bool)
	return b
}
