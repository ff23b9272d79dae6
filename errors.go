package goshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Field extraction and formatting.
	CodeMissingAttribute = "missing_attribute"
	CodeInvalidFormat    = "invalid_format"
	CodeInvalidType      = "invalid_type"
	// Traversal.
	CodeCyclicReference = "cyclic_reference"
	// Schema construction and resolution.
	CodeDuplicateField  = "duplicate_field"
	CodeDuplicateSchema = "duplicate_schema"
	CodeUnknownKind     = "unknown_kind"
	CodeUnresolvedRef   = "unresolved_ref"
	// Wrapping for foreign errors surfaced by extractors.
	CodeDumpError = "dump_error"
)

// Issue represents a single dump failure entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /books/1/author).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"attr":"Email", "value":"x"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of dump errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_attribute at /email
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// RebaseIssues re-anchors child issues under the given JSON Pointer segment.
// Non-Issues errors are wrapped with CodeDumpError at the base path.
func RebaseIssues(base string, err error) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{Issue{Path: base, Code: CodeDumpError, Message: err.Error(), Cause: err}}
	}
	var out Issues
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Params: it.Params})
	}
	return out
}
