// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// file.go provides the default Store backend: one file per key under a data
// directory. This is the single-instance local storage the application was
// designed around — durable across restarts, scoped to one machine, no
// sharing between instances.
package kv

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores each key as a file in dir. Writes go through a temp file and
// an atomic rename so a crash never leaves a half-written value behind.
type File struct {
	dir string
}

// NewFile creates the data directory if needed and returns a file-backed store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv file mkdir: %w", err)
	}
	return &File{dir: dir}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv file read %q: %w", key, err)
	}
	return data, nil
}

// Set replaces the value stored under key.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	target := f.path(key)

	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("kv file temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("kv file write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kv file close %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("kv file rename %q: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kv file delete %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file name. Keys may contain characters that are not
// filesystem-safe (":" namespacing in particular), so anything outside a
// conservative set is hex-escaped.
func (f *File) path(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteString(hex.EncodeToString([]byte{c}))
		}
	}
	return filepath.Join(f.dir, b.String()+".json")
}
