package goshape

import "context"

// Formatter converts a raw extracted value B into its wire representation A,
// validating along the way. Implementations live under codec/; failures carry
// code invalid_format with the offending value in Params.
type Formatter[A, B any] interface {
	// Name returns the format's name for diagnostics (e.g. "email").
	Name() string
	Format(ctx context.Context, v B) (A, error)
}
