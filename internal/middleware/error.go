package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/pageza/promptchef/backend/internal/types"
)

// Recovery turns a panicking handler into the generic JSON 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Error: %v\n%s", err, debug.Stack())
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.ErrMsgInternal})
			}
		}()
		c.Next()
	}
}
