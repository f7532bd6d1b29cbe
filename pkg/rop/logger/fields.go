package logger

// Standard field key constants for structured logging.
const (
	FieldComponent    = "component"
	FieldInvocationID = "invocation_id"
	FieldFutureID     = "future_id"
	FieldStep         = "step"
	FieldFunction     = "function"
	FieldMode         = "mode"
	FieldError        = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Debug("step failed", logger.Fields("step", 2, "function", name))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
