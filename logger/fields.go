package logger

// Field keys shared by itkit log entries.
const (
	FieldComponent = "component"
	FieldAdapterID = "adapter_id"
	FieldEnd       = "end"
	FieldOutcome   = "outcome"
	FieldOperation = "operation"
	FieldSource    = "source"
	FieldFile      = "file"
	FieldError     = "error"
)

// Fields pairs up alternating keys and values. Non-string keys and a
// trailing key without a value are dropped.
//
//	log.Debug("producer pulled", logger.Fields(logger.FieldEnd, "back"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields describes a failed operation.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
