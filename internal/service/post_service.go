package service

import (
	"context"
	"errors"
	"log/slog"

	"devconnector/internal/middleware"
	"devconnector/internal/models"
	"devconnector/internal/observability"
	"devconnector/internal/repository"
	"devconnector/internal/validation"

	"github.com/google/uuid"
)

// FeedPublisher broadcasts feed changes to live subscribers.
type FeedPublisher interface {
	PublishFeed(ctx context.Context, event models.FeedEvent) error
}

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	feed     FeedPublisher
}

// NewPostService wires the post use cases. feed may be nil.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, feed FeedPublisher) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, feed: feed}
}

func (s *PostService) publish(ctx context.Context, event models.FeedEvent) {
	observability.PostEvents.WithLabelValues(event.Type).Inc()
	if s.feed == nil {
		return
	}
	if err := s.feed.PublishFeed(ctx, event); err != nil {
		middleware.Logger.WarnContext(ctx, "feed publish failed",
			slog.String("type", event.Type),
			slog.String("error", err.Error()))
	}
}

func (s *PostService) author(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// CreatePost stores a post with a snapshot of the author's name and avatar.
func (s *PostService) CreatePost(ctx context.Context, userID uuid.UUID, in models.TextRequest) (*models.Post, error) {
	if err := validation.Post.Validate(in).Err(); err != nil {
		return nil, err
	}
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:         userID,
		Text:           in.Text,
		AuthorSnapshot: models.SnapshotOf(user),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	s.publish(ctx, models.FeedEvent{Type: models.FeedPostCreated, PostID: post.ID, UserID: userID, Post: post})
	return post, nil
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError("Post not found")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// DeletePost removes a post owned by userID.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.NewNotFoundError("Post not found")
		}
		return models.NewInternalError(err)
	}

	s.publish(ctx, models.FeedEvent{Type: models.FeedPostDeleted, PostID: postID, UserID: userID})
	return nil
}

// LikePost records a like by userID and returns the updated likes.
func (s *PostService) LikePost(ctx context.Context, userID, postID uuid.UUID) ([]models.Like, error) {
	liked, err := s.postRepo.Like(ctx, postID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError("Post not found")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !liked {
		return nil, models.NewBadRequestError("Post already liked")
	}
	return s.likesChanged(ctx, userID, postID)
}

// UnlikePost removes the like of userID and returns the updated likes.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uuid.UUID) ([]models.Like, error) {
	removed, err := s.postRepo.Unlike(ctx, postID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError("Post not found")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !removed {
		return nil, models.NewBadRequestError("Post has not yet been liked")
	}
	return s.likesChanged(ctx, userID, postID)
}

func (s *PostService) likesChanged(ctx context.Context, userID, postID uuid.UUID) ([]models.Like, error) {
	likes, err := s.postRepo.Likes(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	s.publish(ctx, models.FeedEvent{Type: models.FeedLikesUpdated, PostID: postID, UserID: userID, Likes: likes})
	return likes, nil
}

// AddComment appends a comment by userID and returns the post's comments.
func (s *PostService) AddComment(ctx context.Context, userID, postID uuid.UUID, in models.TextRequest) ([]models.Comment, error) {
	if err := validation.Comment.Validate(in).Err(); err != nil {
		return nil, err
	}
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:         postID,
		UserID:         userID,
		Text:           in.Text,
		AuthorSnapshot: models.SnapshotOf(user),
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}
	return s.commentsChanged(ctx, userID, postID)
}

// DeleteComment removes the comment with commentID when userID wrote it.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError("Comment does not exist")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}

	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFoundError("Comment does not exist")
		}
		return nil, models.NewInternalError(err)
	}
	return s.commentsChanged(ctx, userID, postID)
}

func (s *PostService) commentsChanged(ctx context.Context, userID, postID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.postRepo.Comments(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	s.publish(ctx, models.FeedEvent{Type: models.FeedCommentsUpdated, PostID: postID, UserID: userID, Comments: comments})
	return comments, nil
}
