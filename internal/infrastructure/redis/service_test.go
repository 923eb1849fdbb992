package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("missing address", func(t *testing.T) {
		svc, err := NewService(ctx, "", "")
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("unreachable server", func(t *testing.T) {
		svc, err := NewService(ctx, "127.0.0.1:1", "")
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}
