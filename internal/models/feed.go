package models

import "github.com/google/uuid"

// Feed event types broadcast to live feed subscribers.
const (
	FeedPostCreated     = "post_created"
	FeedPostDeleted     = "post_deleted"
	FeedLikesUpdated    = "likes_updated"
	FeedCommentsUpdated = "comments_updated"
)

// FeedEvent is one change to the public post feed.
type FeedEvent struct {
	Type     string    `json:"type"`
	PostID   uuid.UUID `json:"post_id"`
	UserID   uuid.UUID `json:"user_id"`
	Post     *Post     `json:"post,omitempty"`
	Likes    []Like    `json:"likes,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}
