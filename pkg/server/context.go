package server

import "context"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// contextKeyRequestID is the context key for request ID
	contextKeyRequestID contextKey = "requestID"
	// contextKeyAPIVersion is the context key for API version
	contextKeyAPIVersion contextKey = "apiVersion"
)

// GetRequestID returns the request ID assigned by the middleware,
// or an empty string when the context carries none.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// GetAPIVersion returns the negotiated API version for the request,
// or an empty string when the context carries none.
func GetAPIVersion(ctx context.Context) string {
	if v, ok := ctx.Value(contextKeyAPIVersion).(string); ok {
		return v
	}
	return ""
}
