package state

import (
	"slices"

	"devconnector/internal/models"

	"github.com/google/uuid"
)

// AlertState is the ordered list of visible alerts.
type AlertState []Alert

// AuthState tracks the session of the current user.
type AuthState struct {
	Token           string
	IsAuthenticated bool
	Loading         bool
	User            *models.User
}

// PostState is the post feed and the post being viewed.
type PostState struct {
	Posts   []models.Post
	Post    *models.Post
	Loading bool
	Error   *RequestError
}

// State is the whole client state.
type State struct {
	Alerts AlertState
	Auth   AuthState
	Post   PostState
}

// InitialState returns the state at startup. token is the persisted session
// token, if any.
func InitialState(token string) State {
	return State{
		Alerts: AlertState{},
		Auth:   AuthState{Token: token, Loading: true},
		Post:   PostState{Posts: []models.Post{}, Loading: true},
	}
}

// ReduceAlerts appends on SET_ALERT and removes by id on REMOVE_ALERT.
func ReduceAlerts(s AlertState, a Action) AlertState {
	switch a.Type {
	case SetAlertAction:
		alert, ok := a.Payload.(Alert)
		if !ok {
			return s
		}
		out := make(AlertState, 0, len(s)+1)
		out = append(out, s...)
		return append(out, alert)
	case RemoveAlertAction:
		id, ok := a.Payload.(uuid.UUID)
		if !ok {
			return s
		}
		out := make(AlertState, 0, len(s))
		for _, alert := range s {
			if alert.ID != id {
				out = append(out, alert)
			}
		}
		return out
	default:
		return s
	}
}

// ReduceAuth folds session actions. It never touches token storage; callers
// persist the token through a TokenStore.
func ReduceAuth(s AuthState, a Action) AuthState {
	switch a.Type {
	case RegisterSuccess, LoginSuccess:
		resp, ok := a.Payload.(models.AuthResponse)
		if !ok {
			return s
		}
		s.Token = resp.Token
		s.IsAuthenticated = true
		s.Loading = false
		return s
	case UserLoaded:
		user, ok := a.Payload.(*models.User)
		if !ok {
			return s
		}
		s.IsAuthenticated = true
		s.Loading = false
		s.User = user
		return s
	case RegisterFail, LoginFail, AuthError, Logout:
		return AuthState{}
	default:
		return s
	}
}

// ReducePosts folds feed actions. Slices are copied so earlier states stay
// unchanged.
func ReducePosts(s PostState, a Action) PostState {
	switch a.Type {
	case GetPosts:
		posts, ok := a.Payload.([]models.Post)
		if !ok {
			return s
		}
		s.Posts = slices.Clone(posts)
	case GetPost:
		post, ok := a.Payload.(*models.Post)
		if !ok {
			return s
		}
		s.Post = post
	case AddPost:
		post, ok := a.Payload.(*models.Post)
		if !ok || post == nil {
			return s
		}
		posts := make([]models.Post, 0, len(s.Posts)+1)
		posts = append(posts, *post)
		s.Posts = append(posts, s.Posts...)
	case DeletePost:
		id, ok := a.Payload.(uuid.UUID)
		if !ok {
			return s
		}
		s.Posts = slices.DeleteFunc(slices.Clone(s.Posts), func(p models.Post) bool { return p.ID == id })
	case PostError:
		reqErr, ok := a.Payload.(RequestError)
		if !ok {
			return s
		}
		s.Error = &reqErr
	case UpdateLikes:
		upd, ok := a.Payload.(LikesUpdate)
		if !ok {
			return s
		}
		posts := slices.Clone(s.Posts)
		for i := range posts {
			if posts[i].ID == upd.ID {
				posts[i].Likes = slices.Clone(upd.Likes)
			}
		}
		s.Posts = posts
	default:
		return s
	}
	s.Loading = false
	return s
}

// Reduce applies a to every slice of the state.
func Reduce(s State, a Action) State {
	return State{
		Alerts: ReduceAlerts(s.Alerts, a),
		Auth:   ReduceAuth(s.Auth, a),
		Post:   ReducePosts(s.Post, a),
	}
}
