package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager()

	ctx := m.SetUserIDToContext(context.Background(), 42)
	id, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = m.GetUserIDFromContext(m.SetUserIDToContext(context.Background(), 0))
	assert.False(t, ok)
}
