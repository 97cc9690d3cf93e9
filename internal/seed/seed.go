package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type userSeed struct {
	Username string
	Password string
	Role     string
}

type productSeed struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Tags        string
}

type offerSeed struct {
	Title           string
	Description     string
	DiscountPercent decimal.Decimal
	Active          bool
}

// Apply inserts demo data for manual testing. Each table is only seeded when
// it is empty, matching the original bootstrap behavior.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedUsers(ctx, pool); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedProducts(ctx, pool); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedOffers(ctx, pool); err != nil {
		return fmt.Errorf("seed offers: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "users")
	if err != nil || !empty {
		return err
	}
	users := []userSeed{
		{Username: "admin", Password: "admin123", Role: "admin"},
		{Username: "user", Password: "user123", Role: "user"},
	}
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)
`, u.Username, string(hashed), u.Role); err != nil {
			return fmt.Errorf("insert user %s: %w", u.Username, err)
		}
	}
	return nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "products")
	if err != nil || !empty {
		return err
	}
	products := []productSeed{
		{"Echo Speaker", "Smart speaker with voice assistant", decimal.NewFromFloat(49.99), 50, "Electronics", "smart,home,assistant"},
		{"AI Vacuum", "Robot vacuum cleaner with mapping", decimal.NewFromFloat(199.00), 20, "Home", "robot,cleaning,home"},
		{"Wireless Headphones", "Noise-cancelling over-ear", decimal.NewFromFloat(129.99), 35, "Electronics", "audio,wireless,headphones"},
		{"Smartwatch", "Fitness tracking and notifications", decimal.NewFromFloat(99.99), 40, "Wearables", "fitness,watch,smart"},
		{"Gaming Mouse", "High DPI ergonomic mouse", decimal.NewFromFloat(39.99), 60, "Accessories", "gaming,mouse,ergonomic"},
	}
	for _, p := range products {
		if _, err := pool.Exec(ctx, `
INSERT INTO products (name, description, price, stock, category, tags)
VALUES ($1, $2, $3, $4, $5, $6)
`, p.Name, p.Description, p.Price, p.Stock, p.Category, p.Tags); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}
	return nil
}

func seedOffers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "offers")
	if err != nil || !empty {
		return err
	}
	offers := []offerSeed{
		{"Back to School", "Save on study essentials", decimal.NewFromInt(15), true},
		{"Weekend Flash Sale", "Limited-time discounts!", decimal.NewFromInt(25), true},
	}
	for _, o := range offers {
		if _, err := pool.Exec(ctx, `
INSERT INTO offers (title, description, discount_percent, active)
VALUES ($1, $2, $3, $4)
`, o.Title, o.Description, o.DiscountPercent, o.Active); err != nil {
			return fmt.Errorf("insert offer %s: %w", o.Title, err)
		}
	}
	return nil
}

func tableEmpty(ctx context.Context, pool *pgxpool.Pool, table string) (bool, error) {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
