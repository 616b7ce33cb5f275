package api

import (
	"errors"
	"net/http"

	"fintrack/internal/apperr"
	"fintrack/internal/logger"

	"github.com/gin-gonic/gin"
)

// RespondError writes err as a {"message": ...} body. Errors without an
// apperr kind are logged and reported as a 500 carrying fallback.
func RespondError(c *gin.Context, err error, fallback string) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		logger.WithError(err).Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: fallback})
		return
	}

	logger.Debug("request rejected",
		"kind", appErr.Kind.String(),
		"method", c.Request.Method,
		"path", c.FullPath(),
	)
	c.AbortWithStatusJSON(appErr.Kind.Status(), ErrorResponse{Message: appErr.Message})
}
