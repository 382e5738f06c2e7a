package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"devconnector/internal/auth"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
	"devconnector/internal/observability"
	"devconnector/internal/repository"
	"devconnector/internal/validation"

	"github.com/google/uuid"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type UserService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	hasher   PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, tokens TokenIssuer, hasher PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens, hasher: hasher}
}

// Register creates an account and returns a session token for it.
func (s *UserService) Register(ctx context.Context, in models.RegisterRequest) (string, error) {
	if err := validation.Register.Validate(in).Err(); err != nil {
		return "", err
	}
	email := strings.TrimSpace(in.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if existing != nil {
		observability.AuthEvents.WithLabelValues("register", "duplicate").Inc()
		return "", models.NewValidationError("User already exists")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hash,
		Avatar:   auth.Gravatar(email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			observability.AuthEvents.WithLabelValues("register", "duplicate").Inc()
			return "", models.NewValidationError("User already exists")
		}
		return "", models.NewInternalError(err)
	}

	middleware.Logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	observability.AuthEvents.WithLabelValues("register", "success").Inc()
	return s.issue(user.ID)
}

// Login checks the credentials and returns a fresh session token. Unknown
// email and wrong password are reported identically.
func (s *UserService) Login(ctx context.Context, in models.LoginRequest) (string, error) {
	if err := validation.Login.Validate(in).Err(); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if user == nil {
		observability.AuthEvents.WithLabelValues("login", "failure").Inc()
		return "", models.NewValidationError("Invalid Credentials")
	}

	ok, err := s.hasher.Compare(user.Password, in.Password)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if !ok {
		observability.AuthEvents.WithLabelValues("login", "failure").Inc()
		return "", models.NewValidationError("Invalid Credentials")
	}

	observability.AuthEvents.WithLabelValues("login", "success").Inc()
	return s.issue(user.ID)
}

func (s *UserService) issue(userID uuid.UUID) (string, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// CurrentUser returns the requester without the password hash.
func (s *UserService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user.Password = ""
	return user, nil
}

// DeleteAccount removes the user, their profile and their posts.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.DeleteAccount(ctx, userID); err != nil {
		return models.NewInternalError(err)
	}
	middleware.Logger.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))
	return nil
}
