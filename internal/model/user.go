package model

import "time"

// Role values stored on a user row.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User mirrors the `users` table. The bcrypt hash never leaves the
// process: handlers respond with UserSummary instead.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email (unique, lower-cased)
	PasswordHash string    // users.password_hash
	Role         string    // users.role ('user' or 'admin')
	CreatedAt    time.Time // users.created_at
}

// UserSummary is the JSON-safe projection of a user returned by signup,
// login and the account listing.
type UserSummary struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary strips the password hash from a user row.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
