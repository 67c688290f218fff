package logs

// Span identifies one host run, e.g. a single amplifier permutation.
type Span string

type spanKey struct{}

var SpanKey spanKey
