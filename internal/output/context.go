package output

import "context"

// formatKey is a private type for storing the output format in context
// to avoid collisions with other packages.
type formatKey struct{}

// queryKey is a private type for storing the jq query in context.
type queryKey struct{}

// quietKey is a private type for storing the quiet flag in context.
type quietKey struct{}

// WithFormat returns a new context with the output format attached.
func WithFormat(ctx context.Context, format Format) context.Context {
	return context.WithValue(ctx, formatKey{}, format)
}

// FormatFrom retrieves the output format from the context, defaulting
// to FormatText.
func FormatFrom(ctx context.Context) Format {
	if v, ok := ctx.Value(formatKey{}).(Format); ok {
		return v
	}
	return FormatText
}

// WithQuery adds a jq query string to context.
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, queryKey{}, query)
}

// QueryFrom retrieves the jq query from context.
func QueryFrom(ctx context.Context) string {
	if q, ok := ctx.Value(queryKey{}).(string); ok {
		return q
	}
	return ""
}

// WithQuiet sets the --quiet flag in context.
func WithQuiet(ctx context.Context, quiet bool) context.Context {
	return context.WithValue(ctx, quietKey{}, quiet)
}

// QuietFrom returns true if the --quiet flag is set.
func QuietFrom(ctx context.Context) bool {
	if q, ok := ctx.Value(quietKey{}).(bool); ok {
		return q
	}
	return false
}
