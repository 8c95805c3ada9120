package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tartarus/api/internal/ids"
	"tartarus/api/internal/middleware"
	"tartarus/api/internal/repository"
)

type gameResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Platform    string     `json:"platform"`
	CreatedAt   time.Time  `json:"created_at"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

func (h HandlerSet) ListGames(c *gin.Context) {
	games, err := h.games.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list games failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	resp := make([]gameResponse, 0, len(games))
	for _, game := range games {
		resp = append(resp, gameResponse{
			ID:        game.ID,
			Slug:      game.Slug,
			Title:     game.Title,
			Platform:  game.Platform,
			CreatedAt: game.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"games": resp})
}

func (h HandlerSet) MyGames(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	games, err := h.games.ListLinked(c.Request.Context(), claims.Subject)
	if err != nil {
		h.log.Error().Err(err).Msg("list linked games failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	resp := make([]gameResponse, 0, len(games))
	for _, game := range games {
		connectedAt := game.ConnectedAt
		resp = append(resp, gameResponse{
			ID:          game.ID,
			Slug:        game.Slug,
			Title:       game.Title,
			Platform:    game.Platform,
			CreatedAt:   game.CreatedAt,
			ConnectedAt: &connectedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"games": resp})
}

type linkGameRequest struct {
	Slug string `json:"slug" binding:"required,min=2,max=120"`
}

type linkResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	GameID      string    `json:"game_id"`
	ConnectedAt time.Time `json:"connected_at"`
}

func (h HandlerSet) LinkGame(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req linkGameRequest
	if !bindJSON(c, &req) {
		return
	}

	game, err := h.games.FindBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		h.log.Error().Err(err).Msg("find game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	link, err := h.games.Link(c.Request.Context(), ids.New(), claims.Subject, game.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("link game failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"link": linkResponse{
			ID:          link.ID,
			UserID:      link.UserID,
			GameID:      link.GameID,
			ConnectedAt: link.ConnectedAt,
		},
	})
}
