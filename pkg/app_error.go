package pkg

import "fmt"

// AppError is the application-level error carried from usecases to the HTTP
// layer. Code is a stable machine-readable identifier; Message is safe to
// return to callers; Err holds the internal cause and never leaves the server.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned on failures.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError strips the internal cause before the error goes on the wire.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
