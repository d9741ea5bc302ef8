package constant

type contextKey string

// RequestIDKey carries the request id through the request context
const RequestIDKey contextKey = "request_id"
