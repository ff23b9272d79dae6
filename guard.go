package goshape

import (
	"context"
	"reflect"
)

// nodeKey identifies one (schema, object) pair on the active traversal path.
// The object part is a normalized identity: pointer address for reference
// kinds, the value itself for comparable values.
type nodeKey struct {
	schema Dumper
	typ    reflect.Type
	object any
}

// traversalPath is the per-dump-call record of pairs currently being
// resolved. Dumps are synchronous, so a single mutable path per call is
// enough; concurrent top-level dumps each start their own.
type traversalPath struct {
	active map[nodeKey]struct{}
	names  []string
}

// EnterNode records (schema, object) on the active traversal path carried by
// ctx, creating the path when absent. It returns a child context, a leave
// function to call when the node's dump completes, and an error with code
// cyclic_reference when the pair is already being resolved on this path.
//
// Objects without a stable identity (nil, or non-comparable values that are
// not references) cannot participate in reference cycles and are not tracked;
// the returned leave function is then a no-op.
func EnterNode(ctx context.Context, s Dumper, object any) (context.Context, func(), error) {
	tp, _ := ctx.Value(_ctxKeyPath).(*traversalPath)
	if tp == nil {
		tp = &traversalPath{active: map[nodeKey]struct{}{}}
		ctx = context.WithValue(ctx, _ctxKeyPath, tp)
	}
	key, ok := objectIdentity(object)
	if !ok {
		return ctx, func() {}, nil
	}
	nk := nodeKey{schema: s, typ: reflect.TypeOf(object), object: key}
	if _, busy := tp.active[nk]; busy {
		schemas := append(append([]string{}, tp.names...), s.Name())
		return ctx, nil, Issues{Issue{
			Path:    "/",
			Code:    CodeCyclicReference,
			Message: "cyclic reference detected during dump",
			Hint:    "declare nesting in only one direction per relationship pair",
			Params:  map[string]any{"schemas": schemas},
		}}
	}
	tp.active[nk] = struct{}{}
	tp.names = append(tp.names, s.Name())
	leave := func() {
		delete(tp.active, nk)
		tp.names = tp.names[:len(tp.names)-1]
	}
	return ctx, leave, nil
}

// objectIdentity normalizes an object into a hashable identity for path
// tracking. Reference kinds use their pointer; comparable values use the
// value itself.
func objectIdentity(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return nil, false
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil, false
		}
		return rv.Pointer(), true
	case reflect.Slice:
		return nil, false
	}
	if rv.Comparable() {
		return v, true
	}
	return nil, false
}
