package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack-dev/fittrack/internal/logger"
)

// Auth failure reasons, surfaced so clients can tell "log in again"
// apart from a malformed request.
const (
	ReasonInvalidCredentials       = "invalid_credentials"
	ReasonIncorrectCurrentPassword = "incorrect_current_password"
	ReasonTokenMissing             = "token_missing"
	ReasonTokenExpired             = "token_expired"
	ReasonTokenInvalid             = "token_invalid"
	ReasonMalformedSubject         = "malformed_subject"
)

// ValidationError carries the full ordered list of violated-field messages.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Messages)
}

func NewValidation(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFoundError is returned both when a row does not exist and when it
// belongs to another user, so the two cases are indistinguishable.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

type AuthError struct {
	Reason  string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuth(reason, message string) *AuthError {
	return &AuthError{Reason: reason, Message: message}
}

// InternalError wraps a storage-layer or unexpected failure. The wrapped
// error is logged but never included in the response body.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternal(err error) *InternalError {
	return &InternalError{Err: err}
}

// Respond maps an error from the service layer onto an HTTP response.
func Respond(ctx *gin.Context, err error) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
		authErr       *AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Messages})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	case errors.As(err, &authErr):
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":  authErr.Message,
			"reason": authErr.Reason,
		})
	default:
		logger.Error("internal error", "error", err.Error(), "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
