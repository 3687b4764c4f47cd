package errors

// Error codes carried by ServiceError and by JSON error responses.
const (
	CodeValidation      = "VALIDATION"
	CodeConflict        = "CONFLICT"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Never produced by services; used for anything that is not a ServiceError.
	CodeUnexpected = "UNEXPECTED"

	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"
)

// Entity names as they appear in user-facing messages.
const (
	EntityCategory = "categoria"
	EntityStudio   = "estudio"
	EntityGame     = "videojuego"
)
