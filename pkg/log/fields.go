package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// User
	FieldUserID    = "user_id"
	FieldFollowers = "followers"

	// Cache
	FieldCacheKey = "cache_key"
	FieldCacheHit = "cache_hit"

	// Service
	FieldService = "service"

	// Log type (for audit log)
	FieldLogType = "log_type"
	LogTypeAudit = "audit"
)
