package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"tourismportal/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevPlaces inserts approved sample places for development. Skips places
// that already exist.
func (d *DB) SeedDevPlaces(ctx context.Context) error {
	places := []struct {
		placeName   string
		address     string
		description string
	}{
		{"Tinago Falls", "Iligan City", "A hidden waterfall reached by a winding staircase of 500 steps."},
		{"Maria Cristina Falls", "Iligan City", "The twin falls powering most of the region's hydroelectric grid."},
		{"Camiguin White Island", "Camiguin", "An uninhabited white sandbar with a full view of Mt. Hibok-Hibok."},
		{"Lake Sebu", "South Cotabato", "Highland lake known for its seven falls and T'boli culture."},
	}

	query := `
		INSERT INTO places (name, place_name, address, email_address, contact_no, description, status)
		VALUES ('Seed Data', $1, $2, 'tourism@example.com', '0900-000-0000', $3, 'Approved')
		ON CONFLICT DO NOTHING
	`

	for _, p := range places {
		if _, err := d.Pool.Exec(ctx, query, p.placeName, p.address, p.description); err != nil {
			return fmt.Errorf("failed to seed place %s: %w", p.placeName, err)
		}
	}

	return nil
}
