package user

import "time"

// Role distinguishes plan tiers. It is stored and returned to clients but no
// authorization rule reads it yet.
type Role string

const (
	RoleRegular Role = "regular"
	RolePro     Role = "pro"
)

// Provider identifies an external identity provider for federated logins.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGithub Provider = "github"
)

// User is an account row. PasswordHash is empty for accounts provisioned
// through a federated provider; such accounts cannot use password login.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasUsablePassword reports whether password login is possible for this
// account.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}
