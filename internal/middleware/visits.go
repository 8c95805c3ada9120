package middleware

import (
	"github.com/gin-gonic/gin"

	"tartarus/api/internal/service"
)

// TrackVisits counts every request passing through the public router group.
// Counting happens after the handler so failed tracking can never delay or
// fail the response.
func TrackVisits(visits *service.VisitService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		visits.Track(c.Request.Context(), c.ClientIP())
	}
}
