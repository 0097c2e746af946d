// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package kv

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres is a Store backed by a single PostgreSQL table. It exists for
// deployments that already run Postgres and want the collections there
// instead of on local disk. The schema lives in internal/database.
type Postgres struct {
	db *sql.DB
}

// NewPostgres wraps a connected database handle. The caller is responsible
// for running migrations first (database.Migrate).
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Get returns the value stored under key, or ErrNotFound.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv postgres get %q: %w", key, err)
	}
	return value, nil
}

// Set replaces the value stored under key (upsert, last writer wins).
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv postgres set %q: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("kv postgres delete %q: %w", key, err)
	}
	return nil
}
