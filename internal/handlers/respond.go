package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
)

const msgInternalError = "Internal server error"

// respondError writes the envelope for err. AppErrors keep their status and
// message; bare sentinels get a generic message; anything else is a 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.NewGatewayTimeoutError("Request timed out")
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(appErr.Message, slog.String("error", err.Error()), slog.Int("status", appErr.Code))
		} else {
			logger.Warn("Request rejected", slog.String("reason", appErr.Message), slog.Int("status", appErr.Code))
		}
		c.JSON(appErr.Code, dto.Failure(appErr.Message))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Failure("Not found"))
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Failure("Unauthorized"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Failure("Forbidden"))
	default:
		logger.Error("Unhandled error", slog.String("error", err.Error()), slog.Int("status", http.StatusInternalServerError))
		c.JSON(http.StatusInternalServerError, dto.Failure(msgInternalError))
	}
}

// bindJSON binds the request body into obj and answers 400 on failure.
// An empty body binds as the zero value so services can report missing fields
// with their own messages.
func bindJSON(c *gin.Context, logger *slog.Logger, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = validateStruct(obj)
	}
	if err != nil {
		respondBindError(c, logger, err)
		return false
	}
	return true
}

// bindForm binds multipart form values into obj and answers 400 on failure.
func bindForm(c *gin.Context, logger *slog.Logger, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		respondBindError(c, logger, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, logger *slog.Logger, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBindError(c, logger, err)
		return false
	}
	return true
}

// currentUser returns the authenticated user or answers 401.
func currentUser(c *gin.Context, logger *slog.Logger) (*domain.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, dto.Failure("Authentication credentials were not provided."))
		return nil, false
	}
	return user, true
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, dto.Failure(describeValidationErrors(vErrs)))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
}

func describeValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, describeFieldError(fe))
	}
	return strings.Join(parts, " ")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required field."
	case "email":
		return "Enter a valid email address."
	case "min":
		return field + " must be at least " + fe.Param() + " characters."
	case "max":
		return field + " must be at most " + fe.Param() + " characters."
	case "username":
		return "Enter a valid username. It may contain only letters, numbers, and @/./+/-/_ characters."
	case "blogstatus":
		return "Status must be either draft or published."
	default:
		return field + " is invalid."
	}
}
