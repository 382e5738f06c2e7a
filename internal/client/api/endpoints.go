package api

import (
	"context"
	"net/http"

	"devconnector/internal/models"

	"github.com/google/uuid"
)

// Register creates an account and returns its session token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/users", req, &out)
	return out, err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth", req, &out)
	return out, err
}

// CurrentUser returns the user owning the token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	err := c.do(ctx, http.MethodGet, "/posts", nil, &out)
	return out, err
}

func (c *Client) Post(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePost(ctx context.Context, text string) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", models.TextRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id.String(), nil, nil)
}

// Like returns the post's likes after liking it.
func (c *Client) Like(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	var out []models.Like
	err := c.do(ctx, http.MethodPut, "/posts/like/"+postID.String(), nil, &out)
	return out, err
}

// Unlike returns the post's likes after unliking it.
func (c *Client) Unlike(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	var out []models.Like
	err := c.do(ctx, http.MethodPut, "/posts/unlike/"+postID.String(), nil, &out)
	return out, err
}

// AddComment returns the post's comments, newest first.
func (c *Client) AddComment(ctx context.Context, postID uuid.UUID, text string) ([]models.Comment, error) {
	var out []models.Comment
	err := c.do(ctx, http.MethodPost, "/posts/comment/"+postID.String(), models.TextRequest{Text: text}, &out)
	return out, err
}

func (c *Client) DeleteComment(ctx context.Context, postID, commentID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	err := c.do(ctx, http.MethodDelete, "/posts/comment/"+postID.String()+"/"+commentID.String(), nil, &out)
	return out, err
}

func (c *Client) Profiles(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	err := c.do(ctx, http.MethodGet, "/profile", nil, &out)
	return out, err
}

func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	return c.profile(ctx, http.MethodGet, "/profile/me", nil)
}

func (c *Client) ProfileByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return c.profile(ctx, http.MethodGet, "/profile/user/"+userID.String(), nil)
}

// SaveProfile creates or updates the requester's profile.
func (c *Client) SaveProfile(ctx context.Context, req models.ProfileRequest) (*models.Profile, error) {
	return c.profile(ctx, http.MethodPost, "/profile", req)
}

func (c *Client) AddExperience(ctx context.Context, req models.ExperienceRequest) (*models.Profile, error) {
	return c.profile(ctx, http.MethodPut, "/profile/experience", req)
}

func (c *Client) DeleteExperience(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return c.profile(ctx, http.MethodDelete, "/profile/experience/"+id.String(), nil)
}

func (c *Client) AddEducation(ctx context.Context, req models.EducationRequest) (*models.Profile, error) {
	return c.profile(ctx, http.MethodPut, "/profile/education", req)
}

func (c *Client) DeleteEducation(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return c.profile(ctx, http.MethodDelete, "/profile/education/"+id.String(), nil)
}

// DeleteAccount removes the requester's posts, profile and user.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/profile", nil, nil)
}

func (c *Client) profile(ctx context.Context, method, path string, in any) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, method, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
