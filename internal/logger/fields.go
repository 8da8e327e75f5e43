package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Standard tracing fields propagated through the pipeline.
const (
	// FieldRequestID is the HTTP request ID (UUID).
	FieldRequestID = "request_id"

	// FieldRunID is the generation run ID.
	FieldRunID = "run_id"

	// FieldVariantID is the blueprint variant ID (e.g. "slime-2").
	FieldVariantID = "variant_id"

	// FieldTrigger is the matched trigger id.
	FieldTrigger = "trigger"

	// FieldComponent is the component/module name.
	FieldComponent = "component"
)

// Standard metric fields.
const (
	// FieldDurationMs is the execution duration in milliseconds.
	FieldDurationMs = "duration_ms"

	// FieldSize is a data size in bytes.
	FieldSize = "size"

	// FieldStatus is the operation status.
	FieldStatus = "status"
)
