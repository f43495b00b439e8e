package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"
	FieldLineNumber = "line_number"

	FieldLinesRead       = "lines_read"
	FieldLinesSkipped    = "lines_skipped"
	FieldRecords         = "records"
	FieldPreviousRecords = "previous_records"
	FieldTotalBytes      = "total_bytes"

	FieldDuration  = "duration"
	FieldErrorCode = "error_code"
)
