package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"widia-api/api/trace"
	"widia-api/logger"
)

const headerRequestID = "X-Request-Id"

// RequestTrace makes sure every request carries an X-Request-Id, echoes it
// on the response and logs the request once it completes.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		fields := logger.Fields{
			"method":       req.Method,
			"path":         req.URL.Path,
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start).String(),
			"request_id":   requestID,
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}
