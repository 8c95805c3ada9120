package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"tartarus/api/internal/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository struct {
	pool Querier
}

func NewGameRepository(pool Querier) *GameRepository {
	return &GameRepository{pool: pool}
}

func (r *GameRepository) List(ctx context.Context) ([]models.Game, error) {
	const query = `
		SELECT id, slug, title, platform, created_at
		FROM games
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var game models.Game
		if err := rows.Scan(
			&game.ID,
			&game.Slug,
			&game.Title,
			&game.Platform,
			&game.CreatedAt,
		); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func (r *GameRepository) FindBySlug(ctx context.Context, slug string) (models.Game, error) {
	const query = `
		SELECT id, slug, title, platform, created_at
		FROM games WHERE slug = $1
	`

	row := r.pool.QueryRow(ctx, query, slug)
	var game models.Game
	if err := row.Scan(
		&game.ID,
		&game.Slug,
		&game.Title,
		&game.Platform,
		&game.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		return models.Game{}, err
	}
	return game, nil
}

// Link associates a user with a game. Re-linking an existing pair refreshes
// connected_at instead of inserting a second row.
func (r *GameRepository) Link(ctx context.Context, linkID string, userID string, gameID string) (models.GameLink, error) {
	const query = `
		INSERT INTO user_games (id, user_id, game_id, connected_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, game_id)
		DO UPDATE SET connected_at = NOW()
		RETURNING id, user_id, game_id, connected_at
	`

	row := r.pool.QueryRow(ctx, query, linkID, userID, gameID)
	var link models.GameLink
	if err := row.Scan(
		&link.ID,
		&link.UserID,
		&link.GameID,
		&link.ConnectedAt,
	); err != nil {
		return models.GameLink{}, err
	}
	return link, nil
}

func (r *GameRepository) ListLinked(ctx context.Context, userID string) ([]models.LinkedGame, error) {
	const query = `
		SELECT g.id, g.slug, g.title, g.platform, g.created_at, ug.connected_at
		FROM user_games ug
		JOIN games g ON g.id = ug.game_id
		WHERE ug.user_id = $1
		ORDER BY ug.connected_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.LinkedGame
	for rows.Next() {
		var game models.LinkedGame
		if err := rows.Scan(
			&game.ID,
			&game.Slug,
			&game.Title,
			&game.Platform,
			&game.CreatedAt,
			&game.ConnectedAt,
		); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
