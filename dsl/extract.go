package dsl

import (
	"context"
	"reflect"
	"time"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/codec"
	"github.com/reoring/goshape/i18n"
)

// Attr declares a field read reflectively from the source's attribute with
// the given name. Sources are duck-typed: exported struct fields, zero-arg
// methods, and string-keyed map entries all qualify; no base type is
// required. A source lacking the attribute fails the dump with
// missing_attribute naming the attribute.
func Attr[T any](name string) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		return attrValue(src, name)
	}}
}

// AttrWith is Attr followed by a Formatter. The attribute's raw value must
// be of the formatter's input type B; a nil value renders as null without
// invoking the formatter.
func AttrWith[T, A, B any](name string, f goshape.Formatter[A, B]) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		raw, err := attrValue(src, name)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, nil
		}
		b, ok := raw.(B)
		if !ok {
			return nil, goshape.Issues{{
				Path:    "/",
				Code:    goshape.CodeInvalidType,
				Message: i18n.T(goshape.CodeInvalidType, nil),
				Params:  map[string]any{"attr": name, "format": f.Name()},
			}}
		}
		out, ferr := f.Format(ctx, b)
		if ferr != nil {
			return nil, ferr
		}
		return out, nil
	}}
}

// AttrTime declares a datetime attribute rendered through f. The attribute
// may hold a time.Time or a string in either canonical layout (ISO-8601
// without zone, or RFC3339); anything else fails with invalid_format.
func AttrTime[T any](name string, f goshape.Formatter[string, time.Time]) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		raw, err := attrValue(src, name)
		if err != nil {
			return nil, err
		}
		switch v := raw.(type) {
		case time.Time:
			return f.Format(ctx, v)
		case string:
			tv, perr := codec.ParseTime(v)
			if perr != nil {
				return nil, goshape.Issues{{
					Path:    "/",
					Code:    goshape.CodeInvalidFormat,
					Message: i18n.T(goshape.CodeInvalidFormat, nil),
					Cause:   perr,
					Params:  map[string]any{"attr": name, "format": f.Name(), "value": v},
				}}
			}
			return f.Format(ctx, tv)
		default:
			return nil, goshape.Issues{{
				Path:    "/",
				Code:    goshape.CodeInvalidFormat,
				Message: i18n.T(goshape.CodeInvalidFormat, nil),
				Params:  map[string]any{"attr": name, "format": f.Name(), "value": raw},
			}}
		}
	}}
}

// attrValue resolves an attribute on an arbitrary source: struct field,
// zero-arg single-return method, or string-keyed map entry, checked in that
// order after pointer indirection.
func attrValue(src any, name string) (any, error) {
	rv := reflect.ValueOf(src)
	orig := rv
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, missingAttr(name)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		if f := rv.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface(), nil
		}
		// goshape/json tags may rename the external key
		if f, ok := fieldByKey(rv, name); ok {
			return f.Interface(), nil
		}
		// fall back to method lookup on the original (possibly pointer) value
		if m := orig.MethodByName(name); m.IsValid() {
			if out, ok := callAttrMethod(m); ok {
				return out, nil
			}
		}
		return nil, missingAttr(name)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, missingAttr(name)
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, missingAttr(name)
		}
		return mv.Interface(), nil
	case reflect.Invalid:
		return nil, missingAttr(name)
	}
	return nil, goshape.Issues{{
		Path:    "/",
		Code:    goshape.CodeInvalidType,
		Message: i18n.T(goshape.CodeInvalidType, nil),
		Hint:    "attribute access requires a struct, pointer to struct, or string-keyed map",
		Params:  map[string]any{"attr": name},
	}}
}

// fieldByKey scans exported struct fields for one whose resolved external
// key matches name.
func fieldByKey(rv reflect.Value, name string) (reflect.Value, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := goshape.ResolveStructKey(sf)
		if key == "-" || key != name {
			continue
		}
		f := rv.Field(i)
		if f.CanInterface() {
			return f, true
		}
	}
	return reflect.Value{}, false
}

// callAttrMethod invokes an accessor method. Only zero-argument
// single-return methods qualify as attributes.
func callAttrMethod(m reflect.Value) (any, bool) {
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

func missingAttr(name string) error {
	return goshape.Issues{{
		Path:    "/",
		Code:    goshape.CodeMissingAttribute,
		Message: i18n.T(goshape.CodeMissingAttribute, nil),
		Params:  map[string]any{"attr": name},
	}}
}
