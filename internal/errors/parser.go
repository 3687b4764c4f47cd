package errors

import "errors"

// ErrorInfo is what a controller needs to render an error
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError turns any error into a code and a message fit for the page.
// Domain errors keep their own message; anything else is replaced by a
// generic one so storage or runtime details never reach the client.
func ParseError(err error) ErrorInfo {
	var serviceErr *ServiceError
	if err != nil && errors.As(err, &serviceErr) && serviceErr.Message != "" {
		return ErrorInfo{Code: serviceErr.Code, Message: serviceErr.Message}
	}

	return ErrorInfo{
		Code:    CodeUnexpected,
		Message: MsgUnexpected,
	}
}

// IsUnexpected reports whether err would be shown as the generic message.
func IsUnexpected(err error) bool {
	info := ParseError(err)
	return info.Code == CodeUnexpected || info.Code == CodeOperationFailed
}
