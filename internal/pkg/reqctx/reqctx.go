// Package reqctx carries per-request correlation metadata through the call
// chain as an explicit context value. The audit layer reads it to stamp
// entries; nothing in the process holds this state globally.
package reqctx

import "context"

// Meta is the best-effort request context attached to audit entries.
type Meta struct {
	RequestID string
	IPAddress string
	UserAgent string
}

type ctxKey struct{}

// WithMeta returns a context carrying meta.
func WithMeta(ctx context.Context, meta Meta) context.Context {
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext extracts the request metadata, if any was attached.
func FromContext(ctx context.Context) (Meta, bool) {
	meta, ok := ctx.Value(ctxKey{}).(Meta)
	return meta, ok
}
