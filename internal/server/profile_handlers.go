package server

import (
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me
// @Summary Requester's profile
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.MessageResponse
// @Router /profile/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.MyProfile(c.UserContext(), userID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}

// GetProfiles handles GET /api/profile
// @Summary List profiles
// @Tags profile
// @Produce json
// @Success 200 {array} models.Profile
// @Router /profile [get]
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.UserContext())
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:user_id
// @Summary Profile by user
// @Tags profile
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.MessageResponse
// @Router /profile/user/{user_id} [get]
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id", errProfileNotFound)
	if err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.ProfileByUser(c.UserContext(), userID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}

// SaveProfile handles POST /api/profile
// @Summary Create or update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body models.ProfileRequest true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Router /profile [post]
func (s *Server) SaveProfile(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	var req models.ProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.SaveProfile(c.UserContext(), userID, req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles PUT /api/profile/experience
// @Summary Add experience
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body models.ExperienceRequest true "Experience entry"
// @Success 200 {object} models.Profile
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Router /profile/experience [put]
func (s *Server) AddExperience(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	var req models.ExperienceRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), userID, req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id
// @Summary Delete experience
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Param exp_id path string true "Experience ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.MessageResponse
// @Router /profile/experience/{exp_id} [delete]
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	expID, err := parseID(c, "exp_id", models.NewNotFoundError("Experience not found"))
	if err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.DeleteExperience(c.UserContext(), userID, expID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education
// @Summary Add education
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body models.EducationRequest true "Education entry"
// @Success 200 {object} models.Profile
// @Failure 400 {object} object{errors=[]models.FieldError}
// @Router /profile/education [put]
func (s *Server) AddEducation(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	var req models.EducationRequest
	if err := bindJSON(c, &req); err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), userID, req)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id
// @Summary Delete education
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Param edu_id path string true "Education ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.MessageResponse
// @Router /profile/education/{edu_id} [delete]
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	userID, err := requester(c)
	if err != nil {
		return respondWithError(c, err)
	}
	eduID, err := parseID(c, "edu_id", models.NewNotFoundError("Education not found"))
	if err != nil {
		return respondWithError(c, err)
	}

	profile, err := s.profileService.DeleteEducation(c.UserContext(), userID, eduID)
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(profile)
}
