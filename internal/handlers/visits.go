package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) Visits(c *gin.Context) {
	count, err := h.visitService.Visits(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("read visit count failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": count})
}

func (h HandlerSet) Visitors(c *gin.Context) {
	count, err := h.visitService.Visitors(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("read visitor count failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visitors": count})
}
