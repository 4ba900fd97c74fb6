package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the attached logger", func(t *testing.T) {
		log := zap.NewNop()
		ctx := WithContext(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("returns a usable no-op logger when nothing is attached", func(t *testing.T) {
		log := FromContext(context.Background())
		assert.NotPanics(t, func() { log.Info("ignored") })
	})
}

func TestContextTagging(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	ctx := context.Background()
	ctx, log = WithRequestID(ctx, log, "req-42")
	ctx, log = WithTenantID(ctx, log, "tenant-a")
	ctx, log = WithUserID(ctx, log, "buyer-7")

	log.Info("Order submitted")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "tenant-a", fields["tenant_id"])
	assert.Equal(t, "buyer-7", fields["user_id"])

	// the same IDs are readable from the context without the logger
	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Equal(t, "tenant-a", GetTenantID(ctx))
	assert.Equal(t, "buyer-7", GetUserID(ctx))
}

func TestContextTagging_PropagatesThroughFromContext(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx, _ := WithTenantID(context.Background(), zap.New(core), "tenant-a")

	// downstream code that only has the context still logs the tenant
	FromContext(ctx).Info("Allocating order number")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "tenant-a", entries[0].ContextMap()["tenant_id"])
}

func TestGetters_EmptyWhenUnset(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetTenantID(ctx))
	assert.Empty(t, GetUserID(ctx))
}
