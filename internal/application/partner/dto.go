package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/partner"
)

// CreateClientRequest is the request to create a client
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest is the request to update a client
type UpdateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientResponse is the API representation of a client
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to its API representation
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// MergeDuplicatesResponse summarizes one dedup pass
type MergeDuplicatesResponse struct {
	MergedGroups       int `json:"merged_groups"`
	DeletedClients     int `json:"deleted_clients"`
	RepointedSaleItems int `json:"repointed_sale_items"`
}
