package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"Validation", models.NewValidationError("Name is required",
			models.FieldError{Msg: "Name is required", Param: "name", Location: "body"}),
			http.StatusBadRequest, `{"errors":[{"msg":"Name is required","param":"name","location":"body"}]}`},
		{"Validation Without Fields", models.NewValidationError("User already exists"),
			http.StatusBadRequest, `{"errors":[{"msg":"User already exists"}]}`},
		{"Bad Request", models.NewBadRequestError("Post already liked"),
			http.StatusBadRequest, `{"msg":"Post already liked"}`},
		{"Unauthenticated", models.NewUnauthenticatedError("Token is not valid"),
			http.StatusUnauthorized, `{"msg":"Token is not valid"}`},
		{"Unauthorized", models.NewUnauthorizedError("User not authorized"),
			http.StatusUnauthorized, `{"msg":"User not authorized"}`},
		{"Not Found", models.NewNotFoundError("Post not found"),
			http.StatusNotFound, `{"msg":"Post not found"}`},
		{"Internal", models.NewInternalError(errors.New("connection refused")),
			http.StatusInternalServerError, "Server Error"},
		{"Plain Error", errors.New("boom"),
			http.StatusInternalServerError, "Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondWithError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := parseID(c, "id", errPostNotFound)
		if err != nil {
			return respondWithError(c, err)
		}
		return c.SendString(id.String())
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/5b0d1c7e-6a43-4f7e-9a43-0c1f5b3f2a11", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/123", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBindJSON_Malformed(t *testing.T) {
	app := newTestServer(t).App()

	req := httptest.NewRequest(http.MethodPost, "/api/users", stringsReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	resp := call(t, newTestServer(t).App(), http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.NotEmpty(t, resp.msg(t))
}
