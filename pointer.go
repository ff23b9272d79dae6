package goshape

import (
	"strconv"
	"strings"
)

// PointerField returns the JSON Pointer segment for a field name, escaping
// '~' as '~0' and '/' as '~1' per RFC 6901, with a leading '/'.
func PointerField(name string) string {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return "/" + esc
}

// PointerIndex returns the JSON Pointer segment for an array index.
func PointerIndex(i int) string {
	return "/" + strconv.Itoa(i)
}
