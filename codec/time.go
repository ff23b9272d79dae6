package codec

import (
	"context"
	"time"

	goshape "github.com/reoring/goshape"
)

// isoLayout is the canonical second-precision rendering used by ISO8601
// datetime fields, independent of platform locale.
const isoLayout = "2006-01-02T15:04:05"

// TimeISO8601 returns a Formatter rendering time.Time as a canonical
// ISO-8601 string without zone designator, e.g. "2023-02-28T18:50:00".
func TimeISO8601() goshape.Formatter[string, time.Time] { return iso8601Formatter{} }

type iso8601Formatter struct{}

func (iso8601Formatter) Name() string { return "iso8601" }

func (iso8601Formatter) Format(ctx context.Context, t time.Time) (string, error) {
	if t.IsZero() {
		return "", goshape.Issues{{Path: "/", Code: goshape.CodeInvalidFormat, Message: "zero time", Params: map[string]any{"format": "iso8601"}}}
	}
	return t.Format(isoLayout), nil
}

// TimeRFC3339 returns a Formatter rendering time.Time in canonical RFC3339
// form: normalized to UTC, RFC3339Nano layout (Go trims trailing zeros).
func TimeRFC3339() goshape.Formatter[string, time.Time] { return rfc3339Formatter{} }

type rfc3339Formatter struct{}

func (rfc3339Formatter) Name() string { return "rfc3339" }

func (rfc3339Formatter) Format(ctx context.Context, t time.Time) (string, error) {
	if t.IsZero() {
		return "", goshape.Issues{{Path: "/", Code: goshape.CodeInvalidFormat, Message: "zero time", Params: map[string]any{"format": "rfc3339"}}}
	}
	return t.UTC().Format(time.RFC3339Nano), nil
}

// ParseTime accepts either canonical rendering and returns the time value.
// Used by schemafile-driven dumps whose sources carry datetimes as strings.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
