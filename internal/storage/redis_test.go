package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-engine/pkg/storage"
)

func setupTestRedis(t *testing.T, gameID uuid.UUID) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	rs, err := NewRedisStorage("redis://"+mr.Addr(), gameID, time.Hour, testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	t.Cleanup(func() {
		_ = rs.Close()
		mr.Close()
	})
	return rs, mr
}

func TestRedisStorage_WriteAndRead(t *testing.T) {
	gameID := uuid.New()
	rs, mr := setupTestRedis(t, gameID)
	ctx := context.Background()

	require.NoError(t, rs.Ping(ctx))
	require.NoError(t, rs.WriteText(ctx, "park/pond/objects.txt", "Old Key\nIron Poker"))
	require.NoError(t, rs.WriteText(ctx, "notebook.md", "# Detective's Notebook\n"))

	got, err := rs.ReadText(ctx, "park/pond/objects.txt")
	require.NoError(t, err)
	assert.Equal(t, "Old Key\nIron Poker", got)

	paths, err := rs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notebook.md", "park/pond/objects.txt"}, paths)

	key := "mystery:" + gameID.String() + ":notebook.md"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestRedisStorage_GamesAreIsolated(t *testing.T) {
	rs, mr := setupTestRedis(t, uuid.New())
	ctx := context.Background()

	other, err := NewRedisStorage("redis://"+mr.Addr(), uuid.New(), time.Hour, testLogger())
	require.NoError(t, err)
	defer other.Close()

	require.NoError(t, rs.WriteText(ctx, "clue.txt", "first game"))
	require.NoError(t, other.WriteText(ctx, "clue.txt", "second game"))

	got, err := rs.ReadText(ctx, "clue.txt")
	require.NoError(t, err)
	assert.Equal(t, "first game", got)

	paths, err := other.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"clue.txt"}, paths)
}

func TestRedisStorage_ReadMissing(t *testing.T) {
	rs, _ := setupTestRedis(t, uuid.New())
	_, err := rs.ReadText(context.Background(), "park/clue.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRedisStorage_Expiry(t *testing.T) {
	rs, mr := setupTestRedis(t, uuid.New())
	ctx := context.Background()

	require.NoError(t, rs.WriteText(ctx, "clue.txt", "soon gone"))
	mr.FastForward(2 * time.Hour)

	_, err := rs.ReadText(ctx, "clue.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRedisStorage_WriteFailsWhenServerDown(t *testing.T) {
	rs, mr := setupTestRedis(t, uuid.New())
	mr.Close()

	assert.Error(t, rs.WriteText(context.Background(), "clue.txt", "x"))
	assert.Error(t, rs.Ping(context.Background()))
}

func TestRedisStorage_WaitForConnection(t *testing.T) {
	rs, _ := setupTestRedis(t, uuid.New())
	assert.NoError(t, rs.WaitForConnection(context.Background(), 3, time.Millisecond))
}

func TestNewRedisStorage_InvalidURL(t *testing.T) {
	_, err := NewRedisStorage("not a url", uuid.New(), time.Hour, testLogger())
	assert.Error(t, err)
}
