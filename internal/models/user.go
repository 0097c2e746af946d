// Package models defines the data structures persisted by the key-value
// store and provides the core types used throughout the application.
package models

// Role represents a user's permission level in the system.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAuthor Role = "author"
	RoleUser   Role = "user"
)

// User represents an account identity. The password never appears here —
// credential checks happen inside the auth verifier, and only the stripped
// record is ever persisted in a session.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPublish reports whether the user may create or edit articles.
func (u *User) CanPublish() bool {
	return u.Role == RoleAdmin || u.Role == RoleAuthor
}
