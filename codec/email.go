package codec

import (
	"context"
	"net/mail"
	"strings"

	goshape "github.com/reoring/goshape"
)

// Email returns a Formatter validating and normalizing email addresses.
// The input must be a bare address (no display name); normalization trims
// surrounding space and lowercases the domain part.
func Email() goshape.Formatter[string, string] { return emailFormatter{} }

type emailFormatter struct{}

func (emailFormatter) Name() string { return "email" }

func (emailFormatter) Format(ctx context.Context, v string) (string, error) {
	s := strings.TrimSpace(v)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", goshape.Issues{{
			Path:    "/",
			Code:    goshape.CodeInvalidFormat,
			Message: "invalid email address",
			Cause:   err,
			Params:  map[string]any{"format": "email", "value": v},
		}}
	}
	at := strings.LastIndexByte(s, '@')
	return s[:at+1] + strings.ToLower(s[at+1:]), nil
}
