// Package customer contains the Customer aggregate and its repository port.
package customer

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/biztime"
	"github.com/orderline-io/orderline/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Customer struct {
	dbID         uint
	sid          string
	email        string
	name         string
	passwordHash string
	role         authorization.Role
	status       Status

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewCustomer registers a new active customer. The password hash must be
// produced by the auth hasher; entities never see plaintext passwords.
func NewCustomer(email, name, passwordHash string, role authorization.Role) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address %q", email)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	sid, err := id.NewCustomerSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Customer{
		sid:          sid,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Rename changes the display name.
func (c *Customer) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	c.name = name
	c.touch()
	return nil
}

// ChangePasswordHash swaps in a new password hash.
func (c *Customer) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	c.passwordHash = hash
	c.touch()
	return nil
}

// Deactivate blocks the customer from logging in. Idempotent.
func (c *Customer) Deactivate() {
	if c.status == StatusInactive {
		return
	}
	c.status = StatusInactive
	c.touch()
}

// Activate re-enables a deactivated customer. Idempotent.
func (c *Customer) Activate() {
	if c.status == StatusActive {
		return
	}
	c.status = StatusActive
	c.touch()
}

func (c *Customer) IsActive() bool {
	return c.status == StatusActive
}

func (c *Customer) touch() {
	c.updatedAt = biztime.NowUTC()
	c.version++
}

// SetID records the database identity after first persistence.
func (c *Customer) SetID(dbID uint) {
	c.dbID = dbID
}

func (c *Customer) ID() uint                 { return c.dbID }
func (c *Customer) SID() string              { return c.sid }
func (c *Customer) Email() string            { return c.email }
func (c *Customer) Name() string             { return c.name }
func (c *Customer) PasswordHash() string     { return c.passwordHash }
func (c *Customer) Role() authorization.Role { return c.role }
func (c *Customer) Status() Status           { return c.status }
func (c *Customer) Version() int             { return c.version }
func (c *Customer) CreatedAt() time.Time     { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time     { return c.updatedAt }

// ReconstructParams carries persisted state back into a Customer.
type ReconstructParams struct {
	ID           uint
	SID          string
	Email        string
	Name         string
	PasswordHash string
	Role         authorization.Role
	Status       Status
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct rebuilds a Customer from persistence.
func Reconstruct(p ReconstructParams) *Customer {
	return &Customer{
		dbID:         p.ID,
		sid:          p.SID,
		email:        p.Email,
		name:         p.Name,
		passwordHash: p.PasswordHash,
		role:         p.Role,
		status:       p.Status,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}
