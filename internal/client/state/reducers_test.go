package state

import (
	"testing"

	"devconnector/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceAlerts(t *testing.T) {
	t.Parallel()
	a1 := Alert{ID: uuid.New(), Msg: "Saved", AlertType: "success"}
	a2 := Alert{ID: uuid.New(), Msg: "Invalid credentials", AlertType: "danger"}

	s := ReduceAlerts(AlertState{}, Action{Type: SetAlertAction, Payload: a1})
	s2 := ReduceAlerts(s, Action{Type: SetAlertAction, Payload: a2})
	assert.Equal(t, AlertState{a1}, s, "previous state is not mutated")
	assert.Equal(t, AlertState{a1, a2}, s2)

	s3 := ReduceAlerts(s2, Action{Type: RemoveAlertAction, Payload: a1.ID})
	assert.Equal(t, AlertState{a2}, s3)

	assert.Equal(t, s3, ReduceAlerts(s3, Action{Type: RemoveAlertAction, Payload: uuid.New()}))
	assert.Equal(t, s3, ReduceAlerts(s3, Action{Type: GetPosts}))
}

func TestReduceAuth(t *testing.T) {
	t.Parallel()
	user := &models.User{ID: uuid.New(), Name: "Ann"}

	tests := []struct {
		name   string
		start  AuthState
		action Action
		want   AuthState
	}{
		{
			name:   "Register Success",
			start:  AuthState{Loading: true},
			action: Action{Type: RegisterSuccess, Payload: models.AuthResponse{Token: "tok"}},
			want:   AuthState{Token: "tok", IsAuthenticated: true},
		},
		{
			name:   "Login Success",
			start:  AuthState{Loading: true},
			action: Action{Type: LoginSuccess, Payload: models.AuthResponse{Token: "tok"}},
			want:   AuthState{Token: "tok", IsAuthenticated: true},
		},
		{
			name:   "User Loaded",
			start:  AuthState{Token: "tok", Loading: true},
			action: Action{Type: UserLoaded, Payload: user},
			want:   AuthState{Token: "tok", IsAuthenticated: true, User: user},
		},
		{
			name:   "Register Fail",
			start:  AuthState{Token: "stale", Loading: true},
			action: Action{Type: RegisterFail},
			want:   AuthState{},
		},
		{
			name:   "Auth Error",
			start:  AuthState{Token: "tok", IsAuthenticated: true, User: user},
			action: Action{Type: AuthError},
			want:   AuthState{},
		},
		{
			name:   "Logout",
			start:  AuthState{Token: "tok", IsAuthenticated: true, User: user},
			action: Action{Type: Logout},
			want:   AuthState{},
		},
		{
			name:   "Wrong Payload Ignored",
			start:  AuthState{Loading: true},
			action: Action{Type: LoginSuccess, Payload: "tok"},
			want:   AuthState{Loading: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReduceAuth(tt.start, tt.action))
		})
	}
}

func TestReducePosts(t *testing.T) {
	t.Parallel()
	p1 := models.Post{ID: uuid.New(), Text: "first"}
	p2 := models.Post{ID: uuid.New(), Text: "second"}
	start := InitialState("").Post

	s := ReducePosts(start, Action{Type: GetPosts, Payload: []models.Post{p1}})
	assert.False(t, s.Loading)
	require.Len(t, s.Posts, 1)

	s = ReducePosts(s, Action{Type: AddPost, Payload: &p2})
	require.Len(t, s.Posts, 2)
	assert.Equal(t, "second", s.Posts[0].Text, "new posts go first")

	before := s
	likes := []models.Like{{ID: uuid.New(), UserID: uuid.New()}}
	s = ReducePosts(s, Action{Type: UpdateLikes, Payload: LikesUpdate{ID: p1.ID, Likes: likes}})
	assert.Equal(t, likes, s.Posts[1].Likes)
	assert.Empty(t, before.Posts[1].Likes, "earlier state keeps its likes")

	s = ReducePosts(s, Action{Type: DeletePost, Payload: p2.ID})
	require.Len(t, s.Posts, 1)
	assert.Equal(t, p1.ID, s.Posts[0].ID)
	assert.Len(t, before.Posts, 2)

	s = ReducePosts(s, Action{Type: GetPost, Payload: &p1})
	assert.Equal(t, &p1, s.Post)

	s = ReducePosts(s, Action{Type: PostError, Payload: RequestError{Msg: "Post not found", Status: 404}})
	require.NotNil(t, s.Error)
	assert.Equal(t, 404, s.Error.Status)
}

func TestReduceRoutesToEverySlice(t *testing.T) {
	t.Parallel()
	s := Reduce(InitialState("persisted"), Action{Type: Logout})
	assert.Equal(t, AuthState{}, s.Auth)
	assert.True(t, s.Post.Loading, "post slice ignores auth actions")
	assert.Empty(t, s.Alerts)
}
