package vigilio

import "context"

// RequestIDHeader is the metadata key that carries the inbound request id upstream.
const RequestIDHeader = "x-request-id"

type contextKey string

const requestIDKey = contextKey("request_id")

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
