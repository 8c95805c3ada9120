package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error().Err(err).Msg("database ping failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "db connection failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"now":    time.Now().UTC().Format(time.RFC3339),
		"status": "healthy",
	})
}
