package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polesense/polesense-be/internal/models"
	"github.com/polesense/polesense-be/internal/storage"
)

// Compile-time interface checks.
var (
	_ storage.UserStore      = (*Store)(nil)
	_ storage.PoleStore      = (*Store)(nil)
	_ storage.TelemetryStore = (*Store)(nil)
	_ storage.AlertStore     = (*Store)(nil)
	_ storage.StatsStore     = (*Store)(nil)
	_ storage.Exporter       = (*Store)(nil)
)

// Store provides Postgres-backed persistence for users, poles, telemetry,
// and alerts.
type Store struct {
	pool *pgxpool.Pool
}

// New connects a pgx pool and applies migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies database connectivity for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			phone TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'technician',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS poles (
			pole_id TEXT PRIMARY KEY,
			cluster_id TEXT NOT NULL DEFAULT '',
			latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'OFF',
			communication_status TEXT NOT NULL DEFAULT 'OFFLINE',
			state TEXT NOT NULL DEFAULT '',
			district TEXT NOT NULL DEFAULT '',
			city_or_village TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL DEFAULT '',
			firmware_version TEXT NOT NULL DEFAULT '',
			update_time TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS telemetry_data (
			id BIGSERIAL PRIMARY KEY,
			pole_id TEXT NOT NULL REFERENCES poles(pole_id),
			status TEXT NOT NULL DEFAULT '',
			signal_strength DOUBLE PRECISION NOT NULL DEFAULT 0,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS telemetry_data_pole_ts_idx ON telemetry_data (pole_id, timestamp DESC);`,
		`CREATE TABLE IF NOT EXISTS alerts (
			id BIGSERIAL PRIMARY KEY,
			pole_id TEXT NOT NULL REFERENCES poles(pole_id),
			message TEXT NOT NULL DEFAULT '',
			severity TEXT NOT NULL DEFAULT '',
			alert_status TEXT NOT NULL DEFAULT 'ACTIVE',
			alert_type TEXT NOT NULL DEFAULT '',
			technician_id BIGINT,
			action_taken TEXT,
			remarks TEXT,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS alerts_ts_idx ON alerts (timestamp DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (name, email, phone, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, phone, role, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.Name, user.Email, user.Phone, user.Role, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT id, name, email, phone, role, password_hash, created_at
		FROM users
		WHERE email = $1;
	`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	const query = `
		SELECT id, name, email, phone, role, password_hash, created_at
		FROM users
		WHERE id = $1;
	`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
