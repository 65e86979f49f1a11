package customer

import (
	"fmt"
	"time"

	"github.com/castellan-host/castellan/internal/shared/authorization"
)

// Customer represents the customer aggregate root. A customer owns zero or
// more bot subscriptions and carries an authorization scope: admins see
// every castle, clients see only their authorized castle IDs.
type Customer struct {
	id           uint
	code         string
	name         string
	email        string
	whatsapp     string
	address      string
	passwordHash string
	role         authorization.Role
	castleIDs    []string
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCustomer creates a new customer aggregate. The code is the unique
// human-facing identifier (e.g. "CLIENTE_007") and is immutable after
// creation.
func NewCustomer(code, name, email, passwordHash string, role authorization.Role) (*Customer, error) {
	if code == "" {
		return nil, fmt.Errorf("customer code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}

	now := time.Now().UTC()
	return &Customer{
		code:         code,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		castleIDs:    []string{},
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructCustomer reconstructs a customer from persistence.
func ReconstructCustomer(
	id uint,
	code, name, email, whatsapp, address, passwordHash string,
	role authorization.Role,
	castleIDs []string,
	version int,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("customer code is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}

	if castleIDs == nil {
		castleIDs = []string{}
	}

	return &Customer{
		id:           id,
		code:         code,
		name:         name,
		email:        email,
		whatsapp:     whatsapp,
		address:      address,
		passwordHash: passwordHash,
		role:         role,
		castleIDs:    castleIDs,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the customer ID
func (c *Customer) ID() uint {
	return c.id
}

// Code returns the unique human-facing customer code
func (c *Customer) Code() string {
	return c.code
}

// Name returns the customer's display name
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email
func (c *Customer) Email() string {
	return c.email
}

// Whatsapp returns the customer's WhatsApp contact
func (c *Customer) Whatsapp() string {
	return c.whatsapp
}

// Address returns the customer's address
func (c *Customer) Address() string {
	return c.address
}

// PasswordHash returns the bcrypt password hash
func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

// Role returns the customer's authorization role
func (c *Customer) Role() authorization.Role {
	return c.role
}

// CastleIDs returns the castle IDs this customer is authorized for.
// Meaningless for admins, whose scope is unrestricted.
func (c *Customer) CastleIDs() []string {
	return c.castleIDs
}

// Version returns the aggregate version for optimistic locking
func (c *Customer) Version() int {
	return c.version
}

// CreatedAt returns when the customer was created
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the customer was last updated
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetID sets the customer ID (only for persistence layer use)
func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateContact updates the mutable contact fields. Empty strings leave the
// corresponding field unchanged.
func (c *Customer) UpdateContact(name, email, whatsapp, address string) {
	changed := false
	if name != "" && name != c.name {
		c.name = name
		changed = true
	}
	if email != "" && email != c.email {
		c.email = email
		changed = true
	}
	if whatsapp != "" && whatsapp != c.whatsapp {
		c.whatsapp = whatsapp
		changed = true
	}
	if address != "" && address != c.address {
		c.address = address
		changed = true
	}
	if changed {
		c.updatedAt = time.Now().UTC()
		c.version++
	}
}

// ChangePasswordHash replaces the stored password hash.
func (c *Customer) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	c.passwordHash = hash
	c.updatedAt = time.Now().UTC()
	c.version++
	return nil
}

// GrantCastle adds a castle ID to the customer's authorized set. No-op if
// already present.
func (c *Customer) GrantCastle(castleID string) {
	for _, id := range c.castleIDs {
		if id == castleID {
			return
		}
	}
	c.castleIDs = append(c.castleIDs, castleID)
	c.updatedAt = time.Now().UTC()
	c.version++
}

// RevokeCastle removes a castle ID from the customer's authorized set.
func (c *Customer) RevokeCastle(castleID string) {
	for i, id := range c.castleIDs {
		if id == castleID {
			c.castleIDs = append(c.castleIDs[:i], c.castleIDs[i+1:]...)
			c.updatedAt = time.Now().UTC()
			c.version++
			return
		}
	}
}

// Identity builds the request-scoped identity used by the access gate and
// the entitlement resolver.
func (c *Customer) Identity() authorization.Identity {
	return authorization.Identity{
		CustomerID: c.id,
		Code:       c.code,
		Role:       c.role,
		CastleIDs:  append([]string{}, c.castleIDs...),
	}
}

// Validate performs domain-level validation
func (c *Customer) Validate() error {
	if c.code == "" {
		return fmt.Errorf("customer code is required")
	}
	if c.name == "" {
		return fmt.Errorf("customer name is required")
	}
	if !c.role.IsValid() {
		return fmt.Errorf("invalid role: %q", c.role)
	}
	return nil
}
