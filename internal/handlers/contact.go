package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tartarus/api/internal/service"
)

type contactRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=120"`
	Email    string  `json:"email" binding:"required,email,max=180"`
	Subject  string  `json:"subject" binding:"required,min=2,max=120"`
	Message  string  `json:"message" binding:"required,min=10,max=5000"`
	Budget   *string `json:"budget" binding:"omitempty,max=80"`
	Timeline *string `json:"timeline" binding:"omitempty,max=80"`
	// Website is the honeypot. It is present on the form but hidden; bots fill
	// it, humans never do.
	Website string `json:"website"`
}

func (h HandlerSet) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.contactService.Submit(c.Request.Context(), service.SubmitInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Budget:   req.Budget,
		Timeline: req.Timeline,
		Honeypot: req.Website,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("contact submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if result.ID == "" {
		// Honeypot hit: acknowledge as success so the bot learns nothing.
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": result.ID})
}
