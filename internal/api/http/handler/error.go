package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

const (
	// UnauthorizedMessage is the only detail ever returned with a 401.
	UnauthorizedMessage = "Could not validate credentials"

	internalErrorMessage = "internal server error"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// AbortWithError writes the response for err and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	status, detail := errorStatus(err)
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrAuthentication):
		return http.StatusUnauthorized, UnauthorizedMessage
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, domainMessage(err, "not found")
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict, domainMessage(err, "already exists")
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusUnprocessableEntity, domainMessage(err, "invalid input")
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// logFailure logs a failed service call. Rejections the caller caused are
// logged at Warn, anything else at Error.
func logFailure(l *logger.Logger, err error, msg string, args ...any) {
	args = append(args, "error", err.Error())
	status, _ := errorStatus(err)
	if status < http.StatusInternalServerError {
		l.Warn(msg, args...)
		return
	}
	l.Error(msg, args...)
}

func domainMessage(err error, fallback string) string {
	var domainErr *model.Error
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return fallback
}

// bindError turns a gin binding failure into a validation error.
func bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return model.NewValidationError("malformed request body")
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return model.NewValidationError("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// snakeCase turns a Go field name into the matching request key.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
