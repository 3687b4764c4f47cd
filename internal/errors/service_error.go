package errors

// ServiceError is the only error type services hand back to controllers.
// Message is always safe to show to the user.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Is matches any ServiceError with the same code, so callers can write
// errors.Is(err, apperrors.ErrNotFound).
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrValidation      = &ServiceError{Code: CodeValidation}
	ErrConflict        = &ServiceError{Code: CodeConflict}
	ErrNotFound        = &ServiceError{Code: CodeNotFound}
	ErrOperationFailed = &ServiceError{Code: CodeOperationFailed}
)

func Validation(message string) *ServiceError {
	return &ServiceError{Code: CodeValidation, Message: message}
}

func Conflict(message string) *ServiceError {
	return &ServiceError{Code: CodeConflict, Message: message}
}

func NotFound(entity string) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Message: NotFoundMessage(entity)}
}

func OperationFailed() *ServiceError {
	return &ServiceError{Code: CodeOperationFailed, Message: MsgOperationFailed}
}
