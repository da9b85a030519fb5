package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
)

// Recovery converts a handler panic into a 500 in the standard response
// envelope instead of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("handler panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Success: false,
					Error: &response.Error{
						Code:    "INTERNAL_SERVER_ERROR",
						Message: "Internal server error",
					},
				})
			}
		}()

		c.Next()
	}
}
