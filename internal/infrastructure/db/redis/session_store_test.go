package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maybeTestClient connects to REDIS_ADDR or skips the test.
func maybeTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping redis integration test")
	}
	client, err := Connect(context.Background(), Config{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionStore_RevokeAndCheck(t *testing.T) {
	client := maybeTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	tokenID := uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, store.key(tokenID)) })

	revoked, err := store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, tokenID, time.Now().Add(time.Hour)))

	revoked, err = store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, store.key(tokenID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestSessionStore_ExpiredTokenKeepsMinimumTTL(t *testing.T) {
	client := maybeTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	tokenID := uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, store.key(tokenID)) })

	require.NoError(t, store.Revoke(ctx, tokenID, time.Now().Add(-time.Hour)))

	ttl, err := client.TTL(ctx, store.key(tokenID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, minRevocationTTL)
}

func TestSessionStore_Key(t *testing.T) {
	store := NewSessionStore(nil)
	assert.Equal(t, "session:revoked:abc", store.key("abc"))
}

func TestConfig_Options(t *testing.T) {
	opts := Config{Addr: "cache:6379", Password: "pw", DB: 2}.options()
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, clientName, opts.ClientName)
	assert.Equal(t, dialTimeout, opts.DialTimeout)
	assert.Equal(t, ioTimeout, opts.ReadTimeout)

	opts = Config{Addr: "cache:6379", Timeout: time.Second}.options()
	assert.Equal(t, time.Second, opts.DialTimeout)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
