package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeDuplicate       Code = "DUPLICATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *APIError   { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func Duplicate(msg string) *APIError { return &APIError{Code: CodeDuplicate, Message: msg} }
func NotFound(msg string) *APIError  { return &APIError{Code: CodeNotFound, Message: msg} }
func Internal(msg string) *APIError  { return &APIError{Code: CodeInternal, Message: msg} }

// Duplicates are a client error here (400), not 409: uniqueness is checked
// before insert, there is no unique index behind it.
func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeDuplicate:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

type ErrorDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func Body(code Code, msg string) ErrorDTO {
	var e ErrorDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func FromErr(err error) ErrorDTO {
	var api *APIError
	if errors.As(err, &api) {
		return Body(api.Code, api.Message)
	}
	return Body(CodeInternal, err.Error())
}
