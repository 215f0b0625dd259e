package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/blogging_platform_app/internal/dto"
)

// RecoveryMiddleware turns a panic into a 500 envelope and logs it at error level,
// which also raises an alert when the webhook is configured.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered",
			"error", fmt.Sprint(recovered),
			"status", http.StatusInternalServerError,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure("Internal server error"))
	})
}
