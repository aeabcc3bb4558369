package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (s Server) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "gates.server.loggingMiddleware"
		start := time.Now()
		c.Next()
		s.log.Info(op,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
