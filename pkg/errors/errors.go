package errors

import "net/http"

// Pipeline stages, reported alongside errors so the frontend can tell the
// user where a submission died.
const (
	StageConfig    = "config"
	StageAuth      = "auth"
	StageExtract   = "extract"
	StageExplain   = "explain"
	StagePushCode  = "push_code"
	StagePushNotes = "push_notes"
	StageTranslate = "translate"
)

// AppError is a custom error type that includes an HTTP status code and the
// pipeline stage it originated from.
type AppError struct {
	Code    int    `json:"code"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, stage, message string) *AppError {
	return &AppError{
		Code:    code,
		Stage:   stage,
		Message: message,
	}
}

// ConfigMissing signals an operation attempted before /configure-github.
func ConfigMissing(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, StageConfig, msg)
}

// AuthError signals a bad or missing GitHub credential.
func AuthError(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, StageAuth, msg)
}

// SchemaValidation signals a completion response that could not be parsed
// into the expected structure. Surfaced to the caller, not retried.
func SchemaValidation(stage, msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, stage, msg)
}

// RemoteWrite signals that GitHub rejected a contents write. The message
// carries the store's status and response body.
func RemoteWrite(stage, msg string) *AppError {
	return NewAppError(http.StatusBadGateway, stage, msg)
}

func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, "", msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, "", msg)
}
