package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    SubscriptionStatus
		to      SubscriptionStatus
		allowed bool
	}{
		{StatusActive, StatusPaused, true},
		{StatusActive, StatusCancelled, true},
		{StatusActive, StatusExpired, true},
		{StatusPaused, StatusCancelled, true},
		{StatusPaused, StatusActive, false},
		{StatusPaused, StatusExpired, false},
		{StatusExpired, StatusActive, true},
		{StatusExpired, StatusCancelled, true},
		{StatusExpired, StatusPaused, false},
		{StatusCancelled, StatusActive, false},
		{StatusCancelled, StatusPaused, false},
		{StatusCancelled, StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSubscriptionStatus_CanRenew(t *testing.T) {
	assert.True(t, StatusActive.CanRenew())
	assert.True(t, StatusExpired.CanRenew())
	assert.False(t, StatusPaused.CanRenew())
	assert.False(t, StatusCancelled.CanRenew())
}
