package offer

import (
	"context"

	"ai-store/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Offer, error) {
	const q = `
SELECT id::text, title, COALESCE(description, ''), discount_percent, active
FROM offers
WHERE active
ORDER BY title
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.Active); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	const q = `
INSERT INTO offers (title, description, discount_percent, active)
VALUES ($1, NULLIF($2, ''), $3, $4)
RETURNING id::text
`
	res := o
	if err := r.pool.QueryRow(ctx, q, o.Title, o.Description, o.DiscountPercent, o.Active).Scan(&res.ID); err != nil {
		return nil, err
	}
	return &res, nil
}
