// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package kv

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces techpulse keys when the Valkey instance is shared.
const keyPrefix = "techpulse:"

// Valkey is a Store backed by a Valkey (Redis-compatible) server. Values
// are written without TTL — durability is the server's persistence policy.
type Valkey struct {
	client *redis.Client
}

// ConnectValkey creates a Valkey-backed store and verifies the connection
// with a ping.
func ConnectValkey(host, port, password string) (*Valkey, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return &Valkey{client: client}, nil
}

// NewValkey wraps an existing client. Used by tests that point at a
// dedicated database number.
func NewValkey(client *redis.Client) *Valkey {
	return &Valkey{client: client}
}

// Get returns the value stored under key, or ErrNotFound.
func (v *Valkey) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := v.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("valkey get %q: %w", key, err)
	}
	return data, nil
}

// Set replaces the value stored under key.
func (v *Valkey) Set(ctx context.Context, key string, value []byte) error {
	if err := v.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("valkey set %q: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (v *Valkey) Delete(ctx context.Context, key string) error {
	if err := v.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("valkey del %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying client connection.
func (v *Valkey) Close() error {
	return v.client.Close()
}
