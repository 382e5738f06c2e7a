package server

import (
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body models.TextRequest true "Post text"
// @Success 200 {object} models.Post
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	var req models.TextRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	post, err := s.postService.CreatePost(c.UserContext(), userID, req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/posts
// @Summary List posts
// @Description All posts, newest first
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.MessageResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", errPostNotFound)
	if err != nil {
		return respondWithError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	postID, err := parseID(c, "id", errPostNotFound)
	if err != nil {
		return respondWithError(c, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), userID, postID); err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(models.MessageResponse{Msg: "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id
// @Summary Like post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {array} models.Like
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /posts/like/{id} [put]
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	postID, err := parseID(c, "id", errPostNotFound)
	if err != nil {
		return respondWithError(c, err)
	}

	likes, err := s.postService.LikePost(c.UserContext(), userID, postID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id
// @Summary Unlike post
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Success 200 {array} models.Like
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /posts/unlike/{id} [put]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	postID, err := parseID(c, "id", errPostNotFound)
	if err != nil {
		return respondWithError(c, err)
	}

	likes, err := s.postService.UnlikePost(c.UserContext(), userID, postID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(likes)
}

// AddComment handles POST /api/posts/comment/:id
// @Summary Comment on post
// @Tags posts
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param request body models.TextRequest true "Comment text"
// @Success 200 {array} models.Comment
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Failure 404 {object} models.MessageResponse
// @Router /posts/comment/{id} [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	postID, err := parseID(c, "id", errPostNotFound)
	if err != nil {
		return respondWithError(c, err)
	}
	var req models.TextRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	comments, err := s.postService.AddComment(c.UserContext(), userID, postID, req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id
// @Summary Delete comment
// @Tags posts
// @Produce json
// @Security TokenAuth
// @Param id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {array} models.Comment
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /posts/comment/{id}/{comment_id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	postID, err := parseID(c, "id", errPostNotFound)
	if err != nil {
		return respondWithError(c, err)
	}
	commentID, err := parseID(c, "comment_id", models.NewNotFoundError("Comment does not exist"))
	if err != nil {
		return respondWithError(c, err)
	}

	comments, err := s.postService.DeleteComment(c.UserContext(), userID, postID, commentID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(comments)
}
