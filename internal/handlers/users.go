package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultUserPageSize = 50

func (h HandlerSet) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), defaultUserPageSize)
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, publicUser(user))
	}

	c.JSON(http.StatusOK, gin.H{"users": resp})
}
