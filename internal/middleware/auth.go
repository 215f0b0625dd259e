package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
)

const (
	msgCredentialsMissing = "Authentication credentials were not provided."
	msgInvalidAuthHeader  = "Authorization header format must be Bearer {token}"
	msgSoftDeleted        = "User account has been soft-deleted."
)

// bearerFromHeader extracts the credential of an "Authorization: Bearer <token>"
// header. The "Token" keyword is accepted as well.
func bearerFromHeader(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", false
	}
	switch strings.ToLower(parts[0]) {
	case "bearer", "token":
		return parts[1], true
	default:
		return "", false
	}
}

// authenticate resolves the bearer token and stores the user and an enriched logger in the request.
func authenticate(c *gin.Context, tokens portssvc.TokenSvcFacade, token string) error {
	user, err := tokens.Authenticate(c.Request.Context(), token)
	if err != nil {
		return err
	}
	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", user.UserID))
	ctx := withUser(c.Request.Context(), user)
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
	return nil
}

// AuthMiddleware creates a Gin middleware handler that requires a valid bearer token.
func AuthMiddleware(tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(msgCredentialsMissing))
			return
		}

		token, ok := bearerFromHeader(authHeader)
		if !ok {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(msgInvalidAuthHeader))
			return
		}

		if err := authenticate(c, tokens, token); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				logger.Warn("Invalid token", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(appErr.Code, dto.Failure(appErr.Message))
				return
			}
			logger.Error("Failed to authenticate request", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure("Internal server error"))
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a valid bearer token is sent
// and lets anonymous or badly authenticated requests through as anonymous.
func OptionalAuthMiddleware(tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerFromHeader(c.GetHeader("Authorization"))
		if ok {
			if err := authenticate(c, tokens, token); err != nil {
				GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid optional credentials", slog.String("error", err.Error()))
			}
		}
		c.Next()
	}
}

// RequireLiveAccount rejects soft-deleted users. It must run after AuthMiddleware.
func RequireLiveAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(msgCredentialsMissing))
			return
		}
		if user.IsSoftDeleted() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Failure(msgSoftDeleted))
			return
		}
		c.Next()
	}
}
