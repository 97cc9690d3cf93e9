package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"ai-store/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, name, COALESCE(description, ''), price, stock, COALESCE(category, ''), COALESCE(tags, ''), created_at`

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + ` FROM products WHERE 1=1`)
	var args []interface{}

	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (name ILIKE $%d OR description ILIKE $%d OR tags ILIKE $%d)`, n, n, n)
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, c)
		fmt.Fprintf(&sb, ` AND category = $%d`, len(args))
	}
	for _, tag := range f.Tags {
		if tag = strings.TrimSpace(tag); tag == "" {
			continue
		}
		args = append(args, "%"+tag+"%")
		fmt.Fprintf(&sb, ` AND tags ILIKE $%d`, len(args))
	}
	sb.WriteString(` ORDER BY created_at DESC`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, stock, category, tags)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), NULLIF($6, ''))
RETURNING id::text, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		p.Category,
		domain.JoinTags(p.Tags),
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	return &res, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var tags string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &tags, &p.CreatedAt); err != nil {
		return domain.Product{}, err
	}
	p.Tags = domain.SplitTags(tags)
	return p, nil
}
