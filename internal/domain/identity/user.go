package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/resinworks/backend/internal/domain/shared"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is an account owner. Every resin lot, sale item and client in the
// system is scoped to exactly one user via OwnerID.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	DisplayName  string
}

// NewUser creates a new user. The password must already be hashed by the
// application layer; the domain never sees plaintext credentials.
func NewUser(email, passwordHash, displayName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash is required")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		DisplayName:       strings.TrimSpace(displayName),
	}, nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash is required")
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}
