package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()
	key := PostKey(uuid.New())

	calls := 0
	fetch := func(dest *item) func() error {
		return func() error {
			calls++
			dest.Name = "from-db"
			return nil
		}
	}

	var first item
	require.NoError(t, Aside(ctx, key, &first, time.Minute, fetch(&first)))
	assert.Equal(t, "from-db", first.Name)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	var second item
	require.NoError(t, Aside(ctx, key, &second, time.Minute, fetch(&second)))
	assert.Equal(t, "from-db", second.Name)
	assert.Equal(t, 1, calls)

	Invalidate(ctx, key)
	assert.False(t, mr.Exists(key))
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	mr := setupRedis(t)
	key := UserKey(uuid.New())

	var dest item
	err := Aside(context.Background(), key, &dest, time.Minute, func() error { return errors.New("db down") })
	assert.EqualError(t, err, "db down")
	assert.False(t, mr.Exists(key))
}

func TestAside_RedisDownFallsThrough(t *testing.T) {
	mr := setupRedis(t)
	mr.Close()

	var dest item
	err := Aside(context.Background(), "user:x", &dest, time.Minute, func() error {
		dest.Name = "db"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "db", dest.Name)
}

func TestNoClient(t *testing.T) {
	SetClient(nil)
	found, err := GetJSON(context.Background(), "k", &item{})
	assert.False(t, found)
	assert.NoError(t, err)
	assert.NoError(t, SetJSON(context.Background(), "k", item{}, time.Second))
	Invalidate(context.Background(), "k")
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { SetClient(nil) })

	require.NotNil(t, InitRedis(mr.Addr()))
	c := InitRedis("redis://" + mr.Addr() + "/0")
	require.NotNil(t, c)
	assert.Same(t, c, client)
	assert.Nil(t, InitRedis("redis://%zz"))
	assert.Nil(t, client)
}
