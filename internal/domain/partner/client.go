package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
)

// Client represents a buyer the owner has sold to. Clients are resolved
// from the free-text buyer names on sale items, so the same person often
// exists under slightly different spellings until a dedup pass merges them.
type Client struct {
	shared.OwnedAggregateRoot
	Name    string
	Email   string
	Phone   string
	Address string
}

// NormalizeName returns the canonical matching key for a client name:
// trimmed and lowercased. Two names with the same normalized form refer
// to the same client.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewClient creates a new client. Only the name is required; contact
// fields start empty and are filled in later by the user or a merge.
func NewClient(ownerID uuid.UUID, name, email, phone, address string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name is required")
	}

	client := &Client{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
		Email:              strings.TrimSpace(email),
		Phone:              strings.TrimSpace(phone),
		Address:            strings.TrimSpace(address),
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update replaces the client's fields.
func (c *Client) Update(name, email, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CLIENT_NAME", "Client name is required")
	}

	c.Name = name
	c.Email = strings.TrimSpace(email)
	c.Phone = strings.TrimSpace(phone)
	c.Address = strings.TrimSpace(address)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// NormalizedName returns the client's canonical matching key.
func (c *Client) NormalizedName() string {
	return NormalizeName(c.Name)
}

// AbsorbContact fills each empty contact field from another record.
// Existing values are never overwritten; the first non-empty value wins.
// It reports whether anything changed.
func (c *Client) AbsorbContact(other *Client) bool {
	changed := false
	if c.Email == "" && other.Email != "" {
		c.Email = other.Email
		changed = true
	}
	if c.Phone == "" && other.Phone != "" {
		c.Phone = other.Phone
		changed = true
	}
	if c.Address == "" && other.Address != "" {
		c.Address = other.Address
		changed = true
	}
	if changed {
		c.UpdatedAt = time.Now()
		c.IncrementVersion()
	}
	return changed
}
