package notifications

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"devconnector/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestNotifier_PublishFeedThroughRedis(t *testing.T) {
	n := NewNotifier(newTestRedis(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 1)
	require.NoError(t, n.StartFeedSubscriber(ctx, func(p string) { payloads <- p }))

	postID := uuid.New()
	require.NoError(t, n.PublishFeed(context.Background(), models.FeedEvent{Type: models.FeedPostDeleted, PostID: postID}))

	select {
	case p := <-payloads:
		var got models.FeedEvent
		require.NoError(t, json.Unmarshal([]byte(p), &got))
		assert.Equal(t, models.FeedPostDeleted, got.Type)
		assert.Equal(t, postID, got.PostID)
	case <-time.After(time.Second):
		t.Fatal("feed event not delivered")
	}
}

func TestNotifier_LocalFallback(t *testing.T) {
	n := NewNotifier(nil)
	require.NoError(t, n.PublishFeed(context.Background(), models.FeedEvent{Type: models.FeedPostCreated}))

	var got atomic.Value
	require.NoError(t, n.StartFeedSubscriber(context.Background(), func(p string) { got.Store(p) }))
	require.NoError(t, n.PublishFeed(context.Background(), models.FeedEvent{Type: models.FeedPostCreated}))
	assert.Contains(t, got.Load(), `"type":"post_created"`)
}

func TestNotifier_SubscriberSurvivesPanic(t *testing.T) {
	n := NewNotifier(newTestRedis(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, n.StartFeedSubscriber(ctx, func(string) {
		if calls.Add(1) == 1 {
			panic("boom")
		}
	}))

	for i := 0; i < 2; i++ {
		require.NoError(t, n.PublishFeed(context.Background(), models.FeedEvent{Type: models.FeedLikesUpdated}))
	}
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestNotifier_StopsOnCancel(t *testing.T) {
	n := NewNotifier(newTestRedis(t))
	ctx, cancel := context.WithCancel(context.Background())

	var received atomic.Int32
	require.NoError(t, n.StartFeedSubscriber(ctx, func(string) { received.Add(1) }))
	require.NoError(t, n.PublishFeed(context.Background(), models.FeedEvent{Type: models.FeedPostCreated}))
	assert.Eventually(t, func() bool { return received.Load() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, n.PublishFeed(context.Background(), models.FeedEvent{Type: models.FeedPostCreated}))
	assert.Never(t, func() bool { return received.Load() > 1 }, 200*time.Millisecond, 10*time.Millisecond)
}
