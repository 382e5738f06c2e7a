package repository

import (
	"context"

	"devconnector/internal/cache"
	"devconnector/internal/models"
	"devconnector/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Like adds a like by userID. It reports false when the user had
	// already liked the post.
	Like(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	// Unlike removes the like of userID. It reports false when there was none.
	Unlike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	Likes(ctx context.Context, postID uuid.UUID) ([]models.Like, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, postID, commentID uuid.UUID) (*models.Comment, error)
	// DeleteComment removes exactly the comment with commentID.
	DeleteComment(ctx context.Context, postID, commentID uuid.UUID) error
	Comments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC")
}

// withDetails preloads likes and comments, newest first.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Likes", newestFirst).Preload("Comments", newestFirst)
}

// normalize swaps nil lists for empty ones so they encode as [].
func normalize(p *models.Post) {
	if p.Likes == nil {
		p.Likes = []models.Like{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	normalize(post)
	return nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "List", "posts")
	posts := []models.Post{}
	err := withDetails(r.db.WithContext(ctx)).Order("date DESC").Find(&posts).Error
	observability.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		normalize(&posts[i])
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		var found models.Post
		if err := withDetails(r.db.WithContext(ctx)).First(&found, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		normalize(&found)
		post = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	normalize(&post)
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) exists(ctx context.Context, postID uuid.UUID) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Like relies on the (post_id, user_id) unique index so that concurrent
// likes by the same user insert at most one row.
func (r *postRepository) Like(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Like", "likes")
	liked, err := r.like(ctx, postID, userID)
	observability.EndSpan(span, err)
	return liked, err
}

func (r *postRepository) like(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if err := r.exists(ctx, postID); err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{PostID: postID, UserID: userID})
	if res.Error != nil {
		if isUniqueConstraintError(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidatePost(ctx, postID)
	return true, nil
}

func (r *postRepository) Unlike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Unlike", "likes")
	removed, err := r.unlike(ctx, postID, userID)
	observability.EndSpan(span, err)
	return removed, err
}

func (r *postRepository) unlike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if err := r.exists(ctx, postID); err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidatePost(ctx, postID)
	return true, nil
}

func (r *postRepository) Likes(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	likes := []models.Like{}
	err := newestFirst(r.db.WithContext(ctx)).Where("post_id = ?", postID).Find(&likes).Error
	return likes, err
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	if err := r.exists(ctx, comment.PostID); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *postRepository) GetComment(ctx context.Context, postID, commentID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND post_id = ?", commentID, postID).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) Comments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := newestFirst(r.db.WithContext(ctx)).Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}
