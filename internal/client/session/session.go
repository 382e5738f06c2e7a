// Package session drives the API client and dispatches the results to the
// client store. Token persistence happens here, after each dispatch, and
// never inside a reducer.
package session

import (
	"context"
	"errors"
	"fmt"

	"devconnector/internal/client/api"
	"devconnector/internal/client/state"
	"devconnector/internal/models"

	"github.com/google/uuid"
)

// Alert types.
const (
	AlertSuccess = "success"
	AlertDanger  = "danger"
)

var errNoToken = errors.New("not logged in")

// Session binds an API client, a store and a token store.
type Session struct {
	API    *api.Client
	Store  *state.Store
	Tokens state.TokenStore
}

// Open loads the persisted token, seeds the store with it and configures the
// API client to send it.
func Open(client *api.Client, tokens state.TokenStore, opts ...state.Option) (*Session, error) {
	token, err := tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	client.SetAuthToken(token)
	return &Session{
		API:    client,
		Store:  state.NewStore(state.InitialState(token), opts...),
		Tokens: tokens,
	}, nil
}

// Close cancels pending alert timers.
func (s *Session) Close() {
	s.Store.Close()
}

func (s *Session) dispatch(a state.Action) error {
	next := s.Store.Dispatch(a)
	s.API.SetAuthToken(next.Auth.Token)
	return state.PersistToken(s.Tokens, a)
}

// alertError turns each message of err into a danger alert.
func (s *Session) alertError(err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		s.Store.SetAlert(err.Error(), AlertDanger)
		return
	}
	for _, msg := range apiErr.Messages() {
		s.Store.SetAlert(msg, AlertDanger)
	}
}

func requestError(err error) state.RequestError {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return state.RequestError{Msg: apiErr.Msg, Status: apiErr.Status}
	}
	return state.RequestError{Msg: err.Error()}
}

// LoadUser fetches the user owning the current token.
func (s *Session) LoadUser(ctx context.Context) error {
	if s.API.AuthToken() == "" {
		return errors.Join(errNoToken, s.dispatch(state.Action{Type: state.AuthError}))
	}
	user, err := s.API.CurrentUser(ctx)
	if err != nil {
		return errors.Join(err, s.dispatch(state.Action{Type: state.AuthError}))
	}
	return s.dispatch(state.Action{Type: state.UserLoaded, Payload: user})
}

// Register creates an account, stores its token and loads the user.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := s.API.Register(ctx, req)
	if err != nil {
		s.alertError(err)
		return errors.Join(err, s.dispatch(state.Action{Type: state.RegisterFail}))
	}
	if err := s.dispatch(state.Action{Type: state.RegisterSuccess, Payload: resp}); err != nil {
		return err
	}
	return s.LoadUser(ctx)
}

// Login authenticates, stores the token and loads the user.
func (s *Session) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := s.API.Login(ctx, req)
	if err != nil {
		s.alertError(err)
		return errors.Join(err, s.dispatch(state.Action{Type: state.LoginFail}))
	}
	if err := s.dispatch(state.Action{Type: state.LoginSuccess, Payload: resp}); err != nil {
		return err
	}
	return s.LoadUser(ctx)
}

// Logout forgets the session token.
func (s *Session) Logout() error {
	return s.dispatch(state.Action{Type: state.Logout})
}

func (s *Session) postError(err error) error {
	s.Store.Dispatch(state.Action{Type: state.PostError, Payload: requestError(err)})
	return err
}

// GetPosts loads the feed.
func (s *Session) GetPosts(ctx context.Context) error {
	posts, err := s.API.Posts(ctx)
	if err != nil {
		return s.postError(err)
	}
	s.Store.Dispatch(state.Action{Type: state.GetPosts, Payload: posts})
	return nil
}

// GetPost loads a single post.
func (s *Session) GetPost(ctx context.Context, id uuid.UUID) error {
	post, err := s.API.Post(ctx, id)
	if err != nil {
		return s.postError(err)
	}
	s.Store.Dispatch(state.Action{Type: state.GetPost, Payload: post})
	return nil
}

// AddPost publishes a post and puts it at the top of the feed.
func (s *Session) AddPost(ctx context.Context, text string) (*models.Post, error) {
	post, err := s.API.CreatePost(ctx, text)
	if err != nil {
		s.alertError(err)
		return nil, s.postError(err)
	}
	s.Store.Dispatch(state.Action{Type: state.AddPost, Payload: post})
	s.Store.SetAlert("Post Created", AlertSuccess)
	return post, nil
}

// DeletePost removes a post from the server and the feed.
func (s *Session) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.API.DeletePost(ctx, id); err != nil {
		s.alertError(err)
		return s.postError(err)
	}
	s.Store.Dispatch(state.Action{Type: state.DeletePost, Payload: id})
	s.Store.SetAlert("Post Removed", AlertSuccess)
	return nil
}

// Like likes a post and updates its likes in the feed.
func (s *Session) Like(ctx context.Context, id uuid.UUID) error {
	likes, err := s.API.Like(ctx, id)
	if err != nil {
		s.alertError(err)
		return s.postError(err)
	}
	s.Store.Dispatch(state.Action{Type: state.UpdateLikes, Payload: state.LikesUpdate{ID: id, Likes: likes}})
	return nil
}

// Unlike removes the requester's like and updates the feed.
func (s *Session) Unlike(ctx context.Context, id uuid.UUID) error {
	likes, err := s.API.Unlike(ctx, id)
	if err != nil {
		s.alertError(err)
		return s.postError(err)
	}
	s.Store.Dispatch(state.Action{Type: state.UpdateLikes, Payload: state.LikesUpdate{ID: id, Likes: likes}})
	return nil
}
