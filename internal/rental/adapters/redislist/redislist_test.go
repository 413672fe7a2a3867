package redislist_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecards/internal/rental/adapters/redislist"
	"moviecards/pkg/retry"
)

func newList(t *testing.T) (*redislist.List, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	fast := retry.DefaultConfig()
	fast.InitialBackoff = time.Millisecond
	fast.MaxBackoff = 2 * time.Millisecond

	return redislist.New(client, "rental:", "cards", redislist.WithRetry(fast)), s
}

func TestLocation(t *testing.T) {
	list, _ := newList(t)
	assert.Equal(t, "redis://rental:cards", list.Location())
}

func TestReadLines_MissingKey(t *testing.T) {
	list, _ := newList(t)

	lines, err := list.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestWriteThenRead(t *testing.T) {
	ctx := context.Background()
	list, s := newList(t)

	require.NoError(t, list.WriteLines(ctx, []string{"first", "second"}))

	stored, err := s.List("rental:cards")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, stored)

	lines, err := list.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, lines)
}

func TestWriteLines_Replaces(t *testing.T) {
	ctx := context.Background()
	list, s := newList(t)

	require.NoError(t, list.WriteLines(ctx, []string{"a", "b", "c"}))
	require.NoError(t, list.WriteLines(ctx, []string{"z"}))

	lines, err := list.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, lines)

	require.NoError(t, list.WriteLines(ctx, nil))
	assert.False(t, s.Exists("rental:cards"))
}

func TestReadLines_ServerDown(t *testing.T) {
	list, s := newList(t)
	s.Close()

	_, err := list.ReadLines(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check key")
}

func TestWriteLines_RecoversAfterRestart(t *testing.T) {
	ctx := context.Background()
	list, s := newList(t)
	require.NoError(t, list.WriteLines(ctx, []string{"before"}))

	s.Close()
	require.NoError(t, s.Restart())

	require.NoError(t, list.WriteLines(ctx, []string{"after"}))
	lines, err := list.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"after"}, lines)
}

func TestReadLines_WrongType(t *testing.T) {
	list, s := newList(t)
	require.NoError(t, s.Set("rental:cards", "scalar"))

	_, err := list.ReadLines(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read list")
}
