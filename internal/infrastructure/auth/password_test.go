package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndCompare(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, svc.Compare(hash, "correct horse battery staple"))
	assert.Error(t, svc.Compare(hash, "wrong password"))
}

func TestPasswordService_RejectsEmptyPassword(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	_, err := svc.Hash("")
	assert.Error(t, err)
}

func TestNewPasswordService_ClampsInvalidCost(t *testing.T) {
	svc := NewPasswordService(99)

	hash, err := svc.Hash("some-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
