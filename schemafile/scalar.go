package schemafile

import (
	"context"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// scalarKind checks an extracted attribute value against its declared kind
// and normalizes the numeric representations. Sources that went through a
// JSON decode carry numbers as float64; integral float64 values satisfy
// kind int.
type scalarKind struct{ kind string }

var _ goshape.Formatter[any, any] = scalarKind{}

func (s scalarKind) Name() string { return s.kind }

func (s scalarKind) Format(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch s.kind {
	case "string":
		if sv, ok := v.(string); ok {
			return sv, nil
		}
	case "int":
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int32:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			if n == float64(int64(n)) {
				return int64(n), nil
			}
		case float32:
			if n == float32(int64(n)) {
				return int64(n), nil
			}
		}
	case "float":
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case "bool":
		if b, ok := v.(bool); ok {
			return b, nil
		}
	}
	return nil, goshape.Issues{{
		Path:    "/",
		Code:    goshape.CodeInvalidType,
		Message: i18n.T(goshape.CodeInvalidType, nil),
		Params:  map[string]any{"kind": s.kind, "value": v},
	}}
}
