package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

var schemePrefix = regexp.MustCompile(`^https?://(www\.)?`)

// lastSegment derives a display username from a profile URL when no explicit
// username is configured.
func lastSegment(url string) string {
	trimmed := strings.TrimRight(schemePrefix.ReplaceAllString(url, ""), "/")
	parts := strings.Split(trimmed, "/")
	return parts[len(parts)-1]
}

func (h HandlerSet) PublicInfo(c *gin.Context) {
	social := h.cfg.Site.Social

	links := gin.H{
		"x":       social.X,
		"discord": social.Discord,
		"youtube": social.YouTube,
		"github":  social.GitHub,
	}
	usernames := gin.H{
		"x":       lastSegment(social.X),
		"discord": lastSegment(social.Discord),
		"youtube": lastSegment(social.YouTube),
		"github":  lastSegment(social.GitHub),
	}

	c.JSON(http.StatusOK, gin.H{
		"studioEmail": h.cfg.Site.StudioEmail,
		"social":      links,
		"usernames":   usernames,
	})
}
