package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors returned by the store and the composer session.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrSaveDisabled    = errors.New("save requires content and at least one platform")
	ErrComposerClosed  = errors.New("composer is not open")
	ErrComposerOpen    = errors.New("composer is already open")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownStatus   = errors.New("unknown status")
	ErrUnknownSection  = errors.New("unknown section")
)

// Error codes carried by AppError.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewConflictError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// Classify maps any error from the domain layers onto an AppError and the
// HTTP status it should be reported with.
func Classify(err error) (int, *AppError) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return statusForCode(appErr.Code), appErr
	}

	switch {
	case errors.Is(err, ErrPostNotFound):
		return fiber.StatusNotFound, &AppError{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, ErrSaveDisabled),
		errors.Is(err, ErrUnknownPlatform),
		errors.Is(err, ErrUnknownStatus),
		errors.Is(err, ErrUnknownSection):
		return fiber.StatusBadRequest, &AppError{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, ErrComposerClosed), errors.Is(err, ErrComposerOpen):
		return fiber.StatusConflict, &AppError{Code: CodeConflict, Message: err.Error()}
	}
	return fiber.StatusInternalServerError, NewInternalError(err)
}

func statusForCode(code string) int {
	switch code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeConflict:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}

// RespondWithAppError classifies err and writes the matching response.
func RespondWithAppError(c *fiber.Ctx, err error) error {
	status, appErr := Classify(err)
	return RespondWithError(c, status, appErr)
}
