package server

import (
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users
// @Summary Register user
// @Description Create an account and return a session token
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Router /users [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	token, err := s.userService.Register(c.UserContext(), req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(models.AuthResponse{Token: token})
}

// Login handles POST /api/auth
// @Summary Authenticate user
// @Description Check credentials and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Router /auth [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	token, err := s.userService.Login(c.UserContext(), req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(models.AuthResponse{Token: token})
}

// CurrentUser handles GET /api/auth
// @Summary Current user
// @Tags auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /auth [get]
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}

	user, err := s.userService.CurrentUser(c.UserContext(), userID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(user)
}

// DeleteAccount handles DELETE /api/profile
// @Summary Delete account
// @Description Remove the requester's posts, profile and user
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} models.MessageResponse
// @Router /profile [delete]
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}

	if err := s.userService.DeleteAccount(c.UserContext(), userID); err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(models.MessageResponse{Msg: "User deleted"})
}
