package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tartarus/api/internal/middleware"
	"tartarus/api/internal/security"
)

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := security.IssueToken("test-secret", userID, "a@b.com", time.Hour)
	require.NoError(t, err)
	return token
}

func TestLinkGame_UnknownSlug(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, slug, title, platform, created_at`).
		WithArgs("unknown-slug").
		WillReturnError(pgx.ErrNoRows)

	h := testHandlerSet(t, mock)
	engine := newTestEngine()
	engine.POST("/api/games/link", middleware.Auth(h.cfg), h.LinkGame)

	rec := doJSON(engine, http.MethodPost, "/api/games/link",
		`{"slug":"unknown-slug"}`, bearerFor(t, "u1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"game not found"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkGame_RequiresToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	h := testHandlerSet(t, mock)
	engine := newTestEngine()
	engine.POST("/api/games/link", middleware.Auth(h.cfg), h.LinkGame)

	rec := doJSON(engine, http.MethodPost, "/api/games/link", `{"slug":"hades-gate"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing token"}`, rec.Body.String())

	rec = doJSON(engine, http.MethodPost, "/api/games/link", `{"slug":"hades-gate"}`, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet(), "rejected before any query")
}

func TestLinkGame_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	gameRows := pgxmock.NewRows([]string{"id", "slug", "title", "platform", "created_at"}).
		AddRow("g1", "hades-gate", "Hades Gate", "pc", now)
	mock.ExpectQuery(`SELECT id, slug, title, platform, created_at`).
		WithArgs("hades-gate").
		WillReturnRows(gameRows)

	linkRows := pgxmock.NewRows([]string{"id", "user_id", "game_id", "connected_at"}).
		AddRow("l1", "u1", "g1", now)
	mock.ExpectQuery(`INSERT INTO user_games`).
		WithArgs(pgxmock.AnyArg(), "u1", "g1").
		WillReturnRows(linkRows)

	h := testHandlerSet(t, mock)
	engine := newTestEngine()
	engine.POST("/api/games/link", middleware.Auth(h.cfg), h.LinkGame)

	rec := doJSON(engine, http.MethodPost, "/api/games/link",
		`{"slug":"hades-gate"}`, bearerFor(t, "u1"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), `"game_id":"g1"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkGame_SlugTooShort(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	h := testHandlerSet(t, mock)
	engine := newTestEngine()
	engine.POST("/api/games/link", middleware.Auth(h.cfg), h.LinkGame)

	rec := doJSON(engine, http.MethodPost, "/api/games/link", `{"slug":"x"}`, bearerFor(t, "u1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"Slug"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_NeverExposesPasswordHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	name := "Alice"
	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
		AddRow("u1", "a@b.com", []byte("super-secret-hash"), &name, time.Now())
	mock.ExpectQuery(`SELECT id, email, password_hash, name, created_at`).
		WithArgs(50).
		WillReturnRows(rows)

	h := testHandlerSet(t, mock)
	engine := newTestEngine()
	engine.GET("/api/users", middleware.Auth(h.cfg), h.ListUsers)

	rec := doJSON(engine, http.MethodGet, "/api/users", "", bearerFor(t, "u1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.com"`)
	assert.NotContains(t, rec.Body.String(), "super-secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NoError(t, mock.ExpectationsWereMet())
}
