package service

import (
	"context"
	"errors"
	"testing"

	"devconnector/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uuid.UUID) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	deleteAccountFn func(context.Context, uuid.UUID) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error {
	return s.createFn(ctx, u)
}
func (s *userRepoStub) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.deleteAccountFn(ctx, id)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	listFn          func(context.Context) ([]models.Post, error)
	getByIDFn       func(context.Context, uuid.UUID) (*models.Post, error)
	deleteFn        func(context.Context, uuid.UUID) error
	likeFn          func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	unlikeFn        func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	likesFn         func(context.Context, uuid.UUID) ([]models.Like, error)
	addCommentFn    func(context.Context, *models.Comment) error
	getCommentFn    func(context.Context, uuid.UUID, uuid.UUID) (*models.Comment, error)
	deleteCommentFn func(context.Context, uuid.UUID, uuid.UUID) error
	commentsFn      func(context.Context, uuid.UUID) ([]models.Comment, error)
}

// A nil hook makes the method succeed with an empty result.
func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, p)
}

func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	if s.listFn == nil {
		return []models.Post{}, nil
	}
	return s.listFn(ctx)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	if s.getByIDFn == nil {
		return &models.Post{}, nil
	}
	return s.getByIDFn(ctx, id)
}

func (s *postRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *postRepoStub) Like(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if s.likeFn == nil {
		return true, nil
	}
	return s.likeFn(ctx, postID, userID)
}

func (s *postRepoStub) Unlike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if s.unlikeFn == nil {
		return true, nil
	}
	return s.unlikeFn(ctx, postID, userID)
}

func (s *postRepoStub) Likes(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	if s.likesFn == nil {
		return []models.Like{}, nil
	}
	return s.likesFn(ctx, postID)
}

func (s *postRepoStub) AddComment(ctx context.Context, c *models.Comment) error {
	if s.addCommentFn == nil {
		return nil
	}
	return s.addCommentFn(ctx, c)
}

func (s *postRepoStub) GetComment(ctx context.Context, postID, commentID uuid.UUID) (*models.Comment, error) {
	if s.getCommentFn == nil {
		return &models.Comment{}, nil
	}
	return s.getCommentFn(ctx, postID, commentID)
}

func (s *postRepoStub) DeleteComment(ctx context.Context, postID, commentID uuid.UUID) error {
	if s.deleteCommentFn == nil {
		return nil
	}
	return s.deleteCommentFn(ctx, postID, commentID)
}

func (s *postRepoStub) Comments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	if s.commentsFn == nil {
		return []models.Comment{}, nil
	}
	return s.commentsFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uuid.UUID) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	upsertFn           func(context.Context, *models.Profile) error
	addExperienceFn    func(context.Context, uuid.UUID, *models.Experience) error
	deleteExperienceFn func(context.Context, uuid.UUID, uuid.UUID) error
	addEducationFn     func(context.Context, uuid.UUID, *models.Education) error
	deleteEducationFn  func(context.Context, uuid.UUID, uuid.UUID) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Upsert(ctx context.Context, p *models.Profile) error {
	return s.upsertFn(ctx, p)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, userID uuid.UUID, e *models.Experience) error {
	return s.addExperienceFn(ctx, userID, e)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteExperienceFn(ctx, userID, id)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, userID uuid.UUID, e *models.Education) error {
	return s.addEducationFn(ctx, userID, e)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, userID, id uuid.UUID) error {
	return s.deleteEducationFn(ctx, userID, id)
}

type tokenStub struct {
	token string
	err   error
}

func (s tokenStub) Issue(uuid.UUID) (string, error) { return s.token, s.err }

// plainHasher prefixes instead of hashing so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Compare(hash, p string) (bool, error) {
	return hash == "hashed:"+p, nil
}

type feedRecorder struct {
	events []models.FeedEvent
	err    error
}

func (f *feedRecorder) PublishFeed(_ context.Context, e models.FeedEvent) error {
	f.events = append(f.events, e)
	return f.err
}

func assertAppError(t *testing.T, err error, code, msg string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
}
