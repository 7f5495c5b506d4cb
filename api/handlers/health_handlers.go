package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"widia-api/api/trace"
	"widia-api/logger"
)

// Pinger is satisfied by db.Mongo.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports 503 when the document store does not answer a ping.
func HealthHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			logger.ErrorWithFields("health check failed", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
