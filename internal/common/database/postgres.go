package database

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"adsynth-workers/internal/common/config"
	"adsynth-workers/internal/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when a lookup matches no row or cache entry.
var ErrNotFound = stderrors.New("not found")

type PostgresClient struct {
	DB *sql.DB
}

func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

// NewPostgresFromDB wraps an existing handle, e.g. one opened by sqlmock.
func NewPostgresFromDB(db *sql.DB) *PostgresClient {
	return &PostgresClient{DB: db}
}

func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// payload is bound as text and cast to jsonb.
const insertAdSetQuery = `INSERT INTO ad_sets (id, profile_hash, market, product_name, payload, generated_at)
VALUES ($1, $2, $3, $4, $5::jsonb, $6)
ON CONFLICT (profile_hash) DO UPDATE SET payload = EXCLUDED.payload, generated_at = EXCLUDED.generated_at
RETURNING id`

// SaveAdSet upserts an ad set keyed by its profile hash and returns the stored row id.
func (c *PostgresClient) SaveAdSet(ctx context.Context, profileHash string, set *models.AdSet) (string, error) {
	payload, err := json.Marshal(set)
	if err != nil {
		return "", fmt.Errorf("marshal ad set: %w", err)
	}

	var id string
	err = c.DB.QueryRowContext(ctx, insertAdSetQuery,
		uuid.NewString(),
		profileHash,
		string(set.Profile.Market),
		set.Profile.ProductName,
		string(payload),
		set.GeneratedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert ad set: %w", err)
	}
	return id, nil
}

const selectBrandKitQuery = `SELECT definition FROM brand_kits WHERE id = $1 AND active = TRUE`

// GetBrandKitDefinition returns the stored YAML or JSON definition of a brand kit.
func (c *PostgresClient) GetBrandKitDefinition(ctx context.Context, id string) ([]byte, error) {
	var definition []byte
	err := c.DB.QueryRowContext(ctx, selectBrandKitQuery, id).Scan(&definition)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("brand kit %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select brand kit: %w", err)
	}
	return definition, nil
}
