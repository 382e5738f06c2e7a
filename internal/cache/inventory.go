package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	UserKeyPrefix = "user:"
	PostKeyPrefix = "post:"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 2 * time.Minute
)

func UserKey(userID uuid.UUID) string {
	return UserKeyPrefix + userID.String()
}

func PostKey(postID uuid.UUID) string {
	return PostKeyPrefix + postID.String()
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidatePost(ctx context.Context, postID uuid.UUID) {
	Invalidate(ctx, PostKey(postID))
}
