package appctx

import "context"

type contextKey string

const RequestIDContextKey contextKey = "request_id"

// SetRequestID adds the inbound event's request ID to the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// GetRequestID extracts the request ID from the context, or "-" when none was set
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok && requestID != "" {
		return requestID
	}
	return "-"
}
