package service

import (
	"context"
	"errors"
	"testing"

	"devconnector/internal/models"
	"devconnector/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(repo *userRepoStub) *UserService {
	return NewUserService(repo, tokenStub{token: "signed"}, plainHasher{})
}

func TestUserService_Register(t *testing.T) {
	var created *models.User
	repo := &userRepoStub{
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, u *models.User) error {
			created = u
			return nil
		},
	}

	token, err := newUserService(repo).Register(context.Background(), models.RegisterRequest{
		Name: " Ann ", Email: "Ann@Example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
	require.NotNil(t, created)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "hashed:secret1", created.Password)
	assert.Contains(t, created.Avatar, "//www.gravatar.com/avatar/")
	assert.Contains(t, created.Avatar, "?s=200&r=pg&d=mm")
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc := newUserService(&userRepoStub{})
	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "bad"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Fields, 3)
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	tests := []struct {
		name string
		repo *userRepoStub
	}{
		{
			name: "Existing Email",
			repo: &userRepoStub{
				getByEmailFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
			},
		},
		{
			name: "Lost Race On Unique Index",
			repo: &userRepoStub{
				getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
				createFn:     func(context.Context, *models.User) error { return repository.ErrDuplicate },
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUserService(tt.repo).Register(context.Background(), models.RegisterRequest{
				Name: "Ann", Email: "ann@example.com", Password: "secret1",
			})
			assertAppError(t, err, models.CodeValidation, "User already exists")
		})
	}
}

func TestUserService_Login(t *testing.T) {
	stored := &models.User{ID: uuid.New(), Email: "ann@example.com", Password: "hashed:secret1"}
	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := newUserService(repo)

	token, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed", token)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "wrong"})
	assertAppError(t, err, models.CodeValidation, "Invalid Credentials")

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "secret1"})
	assertAppError(t, err, models.CodeValidation, "Invalid Credentials")

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com"})
	assertAppError(t, err, models.CodeValidation, "Password is required")
}

func TestUserService_LoginRepoError(t *testing.T) {
	repo := &userRepoStub{
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, errors.New("db down") },
	}
	_, err := newUserService(repo).Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "x"})
	assertAppError(t, err, models.CodeInternal, "Server Error")
}

func TestUserService_TokenError(t *testing.T) {
	repo := &userRepoStub{
		getByEmailFn: func(context.Context, string) (*models.User, error) {
			return &models.User{Password: "hashed:secret1"}, nil
		},
	}
	svc := NewUserService(repo, tokenStub{err: errors.New("no secret")}, plainHasher{})
	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	assertAppError(t, err, models.CodeInternal, "Server Error")
}

func TestUserService_CurrentUser(t *testing.T) {
	id := uuid.New()
	repo := &userRepoStub{
		getByIDFn: func(_ context.Context, got uuid.UUID) (*models.User, error) {
			if got == id {
				return &models.User{ID: id, Name: "Ann", Password: "should-not-leak"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := newUserService(repo)

	u, err := svc.CurrentUser(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, u.Password)

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	assertAppError(t, err, models.CodeNotFound, "User not found")
}

func TestUserService_DeleteAccount(t *testing.T) {
	var deleted uuid.UUID
	repo := &userRepoStub{
		deleteAccountFn: func(_ context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	id := uuid.New()
	require.NoError(t, newUserService(repo).DeleteAccount(context.Background(), id))
	assert.Equal(t, id, deleted)

	repo.deleteAccountFn = func(context.Context, uuid.UUID) error { return errors.New("tx aborted") }
	assertAppError(t, newUserService(repo).DeleteAccount(context.Background(), id), models.CodeInternal, "Server Error")
}
