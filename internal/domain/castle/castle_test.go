package castle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultEntry(t *testing.T) {
	e := NewDefaultEntry("830123456")

	assert.Equal(t, "830123456", e.IGGID)
	assert.Equal(t, "Castle_830123456", e.Name)
	assert.Equal(t, 1, e.Level)
	assert.Equal(t, int64(0), e.Power)
	assert.Equal(t, int64(0), e.Troops)
}
