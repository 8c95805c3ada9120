package repository

import (
	"context"

	"tartarus/api/internal/models"
)

type ContactRepository struct {
	pool Querier
}

func NewContactRepository(pool Querier) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, contact models.Contact) error {
	const query = `
		INSERT INTO contacts (
			id, name, email, subject, message, budget, timeline, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		contact.Budget,
		contact.Timeline,
	)
	return err
}
