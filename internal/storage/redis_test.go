package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisKV(t *testing.T) *RedisKV {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisKVFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisKVRoundTrip(t *testing.T) {
	kv := newTestRedisKV(t)
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, KeyMessages)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, KeyMessages, []byte(`[]`)))
	raw, ok, err := kv.Get(ctx, KeyMessages)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(raw))

	require.NoError(t, kv.Delete(ctx, KeyMessages))
	_, ok, err = kv.Get(ctx, KeyMessages)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisKVLoadJSON(t *testing.T) {
	kv := newTestRedisKV(t)
	ctx := context.Background()

	require.NoError(t, SaveJSON(ctx, kv, KeyUserPosts, []string{"p1", "p2"}))

	var ids []string
	assert.True(t, LoadJSON(ctx, kv, KeyUserPosts, &ids))
	assert.Equal(t, []string{"p1", "p2"}, ids)
}
