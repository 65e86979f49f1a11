package customer

import (
	"testing"
	"time"

	"github.com/castellan-host/castellan/internal/shared/authorization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer("CLIENTE_001", "João Silva", "joao@example.com", "$2a$10$hash", authorization.RoleClient)
	require.NoError(t, err)
	return c
}

func TestNewCustomer_Valid(t *testing.T) {
	c := newTestCustomer(t)

	assert.Equal(t, "CLIENTE_001", c.Code())
	assert.Equal(t, "João Silva", c.Name())
	assert.Equal(t, authorization.RoleClient, c.Role())
	assert.Empty(t, c.CastleIDs())
	assert.Equal(t, 1, c.Version())
}

func TestNewCustomer_Invalid(t *testing.T) {
	_, err := NewCustomer("", "João", "", "", authorization.RoleClient)
	assert.Error(t, err, "code is required")

	_, err = NewCustomer("CLIENTE_002", "", "", "", authorization.RoleClient)
	assert.Error(t, err, "name is required")

	_, err = NewCustomer("CLIENTE_002", "João", "", "", authorization.Role("superuser"))
	assert.Error(t, err, "unknown roles are rejected")
}

func TestCustomer_GrantAndRevokeCastle(t *testing.T) {
	c := newTestCustomer(t)

	c.GrantCastle("830123456")
	c.GrantCastle("830987654")
	c.GrantCastle("830123456") // duplicate, no-op

	assert.Equal(t, []string{"830123456", "830987654"}, c.CastleIDs())

	c.RevokeCastle("830123456")
	assert.Equal(t, []string{"830987654"}, c.CastleIDs())

	c.RevokeCastle("not-present")
	assert.Equal(t, []string{"830987654"}, c.CastleIDs())
}

func TestCustomer_UpdateContact(t *testing.T) {
	c := newTestCustomer(t)
	v := c.Version()

	c.UpdateContact("", "novo@example.com", "+55 11 99999-0000", "")

	assert.Equal(t, "João Silva", c.Name(), "empty fields stay unchanged")
	assert.Equal(t, "novo@example.com", c.Email())
	assert.Equal(t, "+55 11 99999-0000", c.Whatsapp())
	assert.Equal(t, v+1, c.Version())

	// no-op update does not bump the version
	c.UpdateContact("", "", "", "")
	assert.Equal(t, v+1, c.Version())
}

func TestCustomer_Identity(t *testing.T) {
	c := newTestCustomer(t)
	require.NoError(t, c.SetID(42))
	c.GrantCastle("830123456")

	id := c.Identity()

	assert.Equal(t, uint(42), id.CustomerID)
	assert.Equal(t, "CLIENTE_001", id.Code)
	assert.Equal(t, authorization.RoleClient, id.Role)
	assert.Equal(t, []string{"830123456"}, id.CastleIDs)

	// the identity holds a copy, not the aggregate's slice
	id.CastleIDs[0] = "mutated"
	assert.Equal(t, []string{"830123456"}, c.CastleIDs())
}

func TestReconstructCustomer(t *testing.T) {
	now := time.Now().UTC()
	c, err := ReconstructCustomer(7, "CLIENTE_007", "Maria", "maria@example.com", "", "", "$2a$10$hash",
		authorization.RoleAdmin, nil, 3, now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(7), c.ID())
	assert.True(t, c.Identity().IsAdmin())
	assert.NotNil(t, c.CastleIDs(), "nil castle set normalizes to empty")
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "CLIENTE_001", FormatCode(1))
	assert.Equal(t, "CLIENTE_042", FormatCode(42))
	assert.Equal(t, "CLIENTE_1234", FormatCode(1234))
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("CLIENTE_001"))
	assert.True(t, IsValidCode("CLIENTE_1234"))
	assert.False(t, IsValidCode("cliente_001"))
	assert.False(t, IsValidCode("CLIENTE_"))
	assert.False(t, IsValidCode("CLIENTE_01"))
	assert.False(t, IsValidCode("CUSTOMER_001"))
}
