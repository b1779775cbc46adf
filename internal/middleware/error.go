package middleware

import (
	"errors"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/internal/pkg/logger"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
)

// ErrorHandler turns the last error a handler attached with c.Error into
// a JSON response. Storage failures are logged and answered with a
// generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil || c.Writer.Written() {
			return
		}

		status, body := classify(err.Err)
		if status == http.StatusInternalServerError {
			logger.L().Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.Error(err.Err),
			)
		}
		c.AbortWithStatusJSON(status, body)
	}
}

// Recovery logs a handler panic with its stack and answers with the same
// body as any other internal error.
func Recovery() gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(logger.L(), true, func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.MessageResponse{Message: types.MsgInternalServerError})
	})
}

func classify(err error) (int, interface{}) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, types.CreateFailedResponse{
			Message:  types.MsgRecipeCreateFailed,
			Required: types.RequiredRecipeFields,
		}
	case errors.Is(err, service.ErrRecipeNotFound):
		return http.StatusNotFound, types.MessageResponse{Message: types.MsgRecipeNotFound}
	default:
		return http.StatusInternalServerError, types.MessageResponse{Message: types.MsgInternalServerError}
	}
}
