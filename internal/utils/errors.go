package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidationError      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeMissingParameter     ErrorCode = "MISSING_PARAMETER"
	ErrorCodeInvalidLinkFormat    ErrorCode = "INVALID_LINK_FORMAT"
	ErrorCodeFormatNotFound       ErrorCode = "FORMAT_NOT_FOUND"
	ErrorCodeUpstreamAccessDenied ErrorCode = "UPSTREAM_ACCESS_DENIED"
	ErrorCodeUpstreamRestricted   ErrorCode = "UPSTREAM_RESTRICTED"
	ErrorCodeExtractionFailed     ErrorCode = "EXTRACTION_FAILED"
	ErrorCodeStreamFailed         ErrorCode = "STREAM_FAILED"
	ErrorCodeInternalError        ErrorCode = "INTERNAL_ERROR"
)

// AccessDeniedMessage replaces the platform's own text when it refuses a request.
const AccessDeniedMessage = "The video platform refused the request. Please try again later."

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common error constructors
func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewMissingParameterError(name string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeMissingParameter,
		fmt.Sprintf("Query parameter %q is required", name),
		http.StatusBadRequest,
		map[string]interface{}{
			"parameter": name,
		},
	)
}

func NewInvalidLinkError(link string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidLinkFormat,
		"Invalid YouTube URL",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=VIDEO_ID",
			"provided":        link,
		},
	)
}

func NewFormatNotFoundError(itag string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeFormatNotFound,
		"Format not found",
		http.StatusBadRequest,
		map[string]interface{}{
			"itag": itag,
		},
	)
}

func NewAccessDeniedError(err error) *AppError {
	appErr := NewError(ErrorCodeUpstreamAccessDenied, AccessDeniedMessage, http.StatusInternalServerError)
	appErr.Err = err
	return appErr
}

func NewRestrictedError(err error) *AppError {
	appErr := NewError(ErrorCodeUpstreamRestricted, err.Error(), http.StatusInternalServerError)
	appErr.Err = err
	return appErr
}

func NewExtractionError(err error) *AppError {
	message := "Failed to fetch video information"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	appErr := NewError(ErrorCodeExtractionFailed, message, http.StatusInternalServerError)
	appErr.Err = err
	return appErr
}

func NewStreamError(err error) *AppError {
	message := "Failed to download video"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	appErr := NewError(ErrorCodeStreamFailed, message, http.StatusInternalServerError)
	appErr.Err = err
	return appErr
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
