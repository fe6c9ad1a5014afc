package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// Context keys copied onto every log line when present.
	RequestIDKey = "request_id"
)

type ctxKey string

// ContextKeyRequestID carries the request id set by the HTTP layer.
const ContextKeyRequestID ctxKey = RequestIDKey
