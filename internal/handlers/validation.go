package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindJSON decodes and validates the request body against the struct's binding
// tags, writing a structured 400 on failure. Unknown extra fields are ignored.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldViolation{Field: fe.Field(), Rule: fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "fields": fields})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
	return false
}
