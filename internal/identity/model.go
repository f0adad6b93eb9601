package identity

import "time"

// User represents a registered customer account. PasswordHash is never
// serialized and never leaves this package except through the repository.
type User struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	IsAdmin      bool       `json:"-"`
	IsActive     bool       `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// Profile is the client-facing projection of a user returned by auth and
// dashboard endpoints.
type Profile struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// Profile derives the client-safe projection of the user.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone}
}
