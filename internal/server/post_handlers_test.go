package server

import (
	"net/http"
	"sync"
	"testing"

	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, app *fiber.App, token, text string) models.Post {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/posts", token, fiber.Map{"text": text})
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
	var post models.Post
	resp.decode(t, &post)
	return post
}

func TestPostRoundTrip(t *testing.T) {
	app := newTestServer(t).App()
	token := register(t, app, "Ann", "ann@example.com")

	created := createPost(t, app, token, "hello")
	assert.Equal(t, "Ann", created.Name)
	assert.NotEmpty(t, created.Avatar)

	var got models.Post
	resp := call(t, app, http.MethodGet, "/api/posts/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	resp.decode(t, &got)
	assert.Equal(t, "hello", got.Text)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Comments)
	assert.Contains(t, string(resp.Body), `"likes":[]`)

	second := createPost(t, app, token, "world")
	var list []models.Post
	call(t, app, http.MethodGet, "/api/posts", token, nil).decode(t, &list)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
}

func TestCreatePost_RequiresText(t *testing.T) {
	app := newTestServer(t).App()
	token := register(t, app, "Ann", "ann@example.com")

	resp := call(t, app, http.MethodPost, "/api/posts", token, fiber.Map{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, []string{"Text is required"}, resp.errorMsgs(t))
}

func TestGetPost_NotFound(t *testing.T) {
	app := newTestServer(t).App()
	token := register(t, app, "Ann", "ann@example.com")

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		resp := call(t, app, http.MethodGet, "/api/posts/"+id, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "Post not found", resp.msg(t))
	}
}

func TestDeletePost(t *testing.T) {
	app := newTestServer(t).App()
	ann := register(t, app, "Ann", "ann@example.com")
	bob := register(t, app, "Bob", "bob@example.com")
	post := createPost(t, app, ann, "mine")
	path := "/api/posts/" + post.ID.String()

	resp := call(t, app, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "User not authorized", resp.msg(t))

	resp = call(t, app, http.MethodDelete, path, ann, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Post removed", resp.msg(t))

	resp = call(t, app, http.MethodGet, path, ann, nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestLikeAndUnlike(t *testing.T) {
	s := newTestServer(t)
	app := s.App()
	ann := register(t, app, "Ann", "ann@example.com")
	bob := register(t, app, "Bob", "bob@example.com")
	bobID, err := s.tokens.Parse(bob)
	require.NoError(t, err)
	post := createPost(t, app, ann, "like me")
	id := post.ID.String()

	resp := call(t, app, http.MethodPut, "/api/posts/unlike/"+id, bob, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Post has not yet been liked", resp.msg(t))

	var likes []models.Like
	resp = call(t, app, http.MethodPut, "/api/posts/like/"+id, bob, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	resp.decode(t, &likes)
	require.Len(t, likes, 1)
	assert.Equal(t, bobID, likes[0].UserID)

	resp = call(t, app, http.MethodPut, "/api/posts/like/"+id, bob, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Post already liked", resp.msg(t))

	var after models.Post
	call(t, app, http.MethodGet, "/api/posts/"+id, ann, nil).decode(t, &after)
	assert.Len(t, after.Likes, 1)

	resp = call(t, app, http.MethodPut, "/api/posts/unlike/"+id, bob, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	resp.decode(t, &likes)
	assert.Empty(t, likes)

	resp = call(t, app, http.MethodPut, "/api/posts/like/"+uuid.NewString(), bob, nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Post not found", resp.msg(t))
}

func TestConcurrentLikesNeverDuplicate(t *testing.T) {
	app := newTestServer(t).App()
	ann := register(t, app, "Ann", "ann@example.com")
	post := createPost(t, app, ann, "race")

	const workers = 8
	statuses := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i] = call(t, app, http.MethodPut, "/api/posts/like/"+post.ID.String(), ann, nil).Status
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, st := range statuses {
		if st == http.StatusOK {
			ok++
		} else {
			assert.Equal(t, http.StatusBadRequest, st)
		}
	}
	assert.Equal(t, 1, ok)

	var got models.Post
	call(t, app, http.MethodGet, "/api/posts/"+post.ID.String(), ann, nil).decode(t, &got)
	assert.Len(t, got.Likes, 1)
}

func TestComments(t *testing.T) {
	app := newTestServer(t).App()
	ann := register(t, app, "Ann", "ann@example.com")
	bob := register(t, app, "Bob", "bob@example.com")
	post := createPost(t, app, ann, "discuss")
	base := "/api/posts/comment/" + post.ID.String()

	resp := call(t, app, http.MethodPost, base, bob, fiber.Map{"text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, []string{"Text is required"}, resp.errorMsgs(t))

	var comments []models.Comment
	call(t, app, http.MethodPost, base, bob, fiber.Map{"text": "first"}).decode(t, &comments)
	resp = call(t, app, http.MethodPost, base, ann, fiber.Map{"text": "second"})
	require.Equal(t, http.StatusOK, resp.Status)
	resp.decode(t, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text, "newest first")
	assert.Equal(t, "Bob", comments[1].Name)
	bobComment := comments[1].ID

	resp = call(t, app, http.MethodDelete, base+"/"+bobComment.String(), ann, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "User not authorized", resp.msg(t))

	resp = call(t, app, http.MethodDelete, base+"/"+uuid.NewString(), bob, nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Comment does not exist", resp.msg(t))

	resp = call(t, app, http.MethodDelete, "/api/posts/comment/"+uuid.NewString()+"/"+bobComment.String(), bob, nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Post not found", resp.msg(t))

	resp = call(t, app, http.MethodDelete, base+"/"+bobComment.String(), bob, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	resp.decode(t, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "second", comments[0].Text)

	resp = call(t, app, http.MethodPost, "/api/posts/comment/"+uuid.NewString(), bob, fiber.Map{"text": "lost"})
	assert.Equal(t, http.StatusNotFound, resp.Status)
}
