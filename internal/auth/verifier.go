// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth provides credential verification. The session layer is
// deliberately decoupled from any specific account source — it talks to the
// Verifier interface, and the static implementation here carries the fixed
// development accounts.
package auth

import (
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"techpulse/internal/models"
)

// Verifier checks a credential pair against an account source. On success
// it returns the matching user record with no credential material attached.
type Verifier interface {
	Verify(email, password string) (*models.User, bool)
}

// Directory answers existence queries against the account source. Signup
// uses it for duplicate-email checks.
type Directory interface {
	EmailTaken(email string) bool
}

// account pairs a user record with its password hash.
type account struct {
	user models.User
	hash []byte
}

// StaticVerifier verifies against a fixed in-memory account list. Passwords
// are bcrypt-hashed at construction; plaintext never outlives New.
//
// The list is immutable: accounts created through signup are NOT added
// here, so they cannot log back in after a logout. That mirrors the
// documented behavior of the mock backend this replaces.
type StaticVerifier struct {
	accounts []account
}

// SeedAccount is one entry of the fixed development account list.
type SeedAccount struct {
	User     models.User
	Password string
}

// DefaultAccounts returns the three development accounts.
func DefaultAccounts() []SeedAccount {
	return []SeedAccount{
		{
			User: models.User{
				ID:     "1",
				Name:   "John Doe",
				Email:  "john@example.com",
				Role:   models.RoleAdmin,
				Avatar: "https://i.pravatar.cc/150?u=john",
			},
			Password: "password",
		},
		{
			User: models.User{
				ID:     "2",
				Name:   "Jane Smith",
				Email:  "jane@example.com",
				Role:   models.RoleAuthor,
				Avatar: "https://i.pravatar.cc/150?u=jane",
			},
			Password: "password",
		},
		{
			User: models.User{
				ID:     "3",
				Name:   "Admin User",
				Email:  "admin@example.com",
				Role:   models.RoleAdmin,
				Avatar: "https://i.pravatar.cc/150?u=admin",
			},
			Password: "admin123",
		},
	}
}

// NewStaticVerifier hashes the seed passwords and returns the verifier.
func NewStaticVerifier(seeds []SeedAccount) (*StaticVerifier, error) {
	v := &StaticVerifier{accounts: make([]account, 0, len(seeds))}
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		v.accounts = append(v.accounts, account{user: seed.User, hash: hash})
	}
	slog.Info("static verifier initialized", "accounts", len(v.accounts))
	return v, nil
}

// Verify matches email exactly (case-insensitive) and checks the password
// against the stored hash.
func (v *StaticVerifier) Verify(email, password string) (*models.User, bool) {
	for _, a := range v.accounts {
		if strings.EqualFold(a.user.Email, email) {
			if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
				return nil, false
			}
			user := a.user
			return &user, true
		}
	}
	return nil, false
}

// EmailTaken reports whether an account with the given email exists.
func (v *StaticVerifier) EmailTaken(email string) bool {
	for _, a := range v.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return true
		}
	}
	return false
}
