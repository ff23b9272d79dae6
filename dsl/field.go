package dsl

import (
	"context"
	"time"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/codec"
)

// FieldOf describes how to extract and represent one attribute of a source
// object of type T. Values are immutable once constructed and owned by the
// schema that declares them. The extractor must be pure with respect to the
// source object (read-only).
type FieldOf[T any] struct {
	extract func(ctx context.Context, src T) (any, error)
}

// String declares a plain string field.
func String[T any](get func(T) string) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		return get(src), nil
	}}
}

// Int declares a plain integer field.
func Int[T any](get func(T) int) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		return get(src), nil
	}}
}

// Float declares a plain float64 field.
func Float[T any](get func(T) float64) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		return get(src), nil
	}}
}

// Bool declares a plain bool field.
func Bool[T any](get func(T) bool) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		return get(src), nil
	}}
}

// Any declares a field whose raw value is emitted as-is.
func Any[T any](get func(T) any) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		return get(src), nil
	}}
}

// Formatted declares a field whose extracted value is passed through a
// Formatter before being emitted. Formatter failures fail the dump with the
// field name attached.
func Formatted[T, A, B any](f goshape.Formatter[A, B], get func(T) B) FieldOf[T] {
	return FieldOf[T]{extract: func(ctx context.Context, src T) (any, error) {
		out, err := f.Format(ctx, get(src))
		if err != nil {
			return nil, err
		}
		return out, nil
	}}
}

// Time declares a datetime field rendered in canonical ISO-8601 form
// (e.g. "2023-02-28T18:50:00"), independent of platform locale.
func Time[T any](get func(T) time.Time) FieldOf[T] {
	return Formatted[T](codec.TimeISO8601(), get)
}

// TimeWith declares a datetime field with an explicit time Formatter
// (e.g. codec.TimeRFC3339()).
func TimeWith[T any](f goshape.Formatter[string, time.Time], get func(T) time.Time) FieldOf[T] {
	return Formatted[T](f, get)
}

// Email declares a validated, normalized email field.
func Email[T any](get func(T) string) FieldOf[T] {
	return Formatted[T](codec.Email(), get)
}
