package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String(ContextRequestID, c.GetString(ContextRequestID)),
			zap.Stack("stack"),
		)
		httperr.Internal(c, "internal_error", "Unexpected error.")
		c.Abort()
	})
}
