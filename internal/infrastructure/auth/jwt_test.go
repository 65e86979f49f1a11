package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castellan-host/castellan/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Generate(42, "CLIENTE_042", authorization.RoleClient)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.CustomerID)
	assert.Equal(t, "CLIENTE_042", claims.Code)
	assert.Equal(t, authorization.RoleClient, claims.Role)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 60).Generate(1, "CLIENTE_001", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(7, "CLIENTE_007", authorization.RoleClient)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
