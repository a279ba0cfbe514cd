package log

// Common field names for structured logging
const (
	FieldError  = "error"
	FieldID     = "id"
	FieldAmount = "amount"
	FieldClient = "client"
	FieldTitle  = "title"
	FieldDate   = "date"
	FieldYear   = "year"
	FieldKey    = "key"
	FieldPath   = "path"
	FieldCount  = "count"

	// FieldCategory labels both expense and event categories.
	FieldCategory = "category"
)
