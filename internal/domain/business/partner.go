package business

import (
	"strings"

	"github.com/ferrisys/backend/internal/domain/shared"
)

// Record status codes. 1 is active; disabled records keep their rows.
const (
	StatusActive   = 1
	StatusInactive = 0
)

// Client is a customer of the tenant
type Client struct {
	shared.BaseEntity
	Name    string
	Contact string
	Phone   string
	Address string
	NIT     string
	Status  int
}

// Provider is a supplier of the tenant
type Provider struct {
	shared.BaseEntity
	Name    string
	Contact string
	Phone   string
	Address string
	RUC     string
	Status  int
}

// NewClient creates an active client
func NewClient(name string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Status:     StatusActive,
	}, nil
}

// NewProvider creates an active provider
func NewProvider(name string) (*Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Provider name cannot be empty")
	}
	return &Provider{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Status:     StatusActive,
	}, nil
}

// Disable marks the client inactive
func (c *Client) Disable() {
	c.Status = StatusInactive
	c.Touch()
}

// Disable marks the provider inactive
func (p *Provider) Disable() {
	p.Status = StatusInactive
	p.Touch()
}
