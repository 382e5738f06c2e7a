package server

import (
	"errors"
	"log/slog"

	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	errPostNotFound    = models.NewNotFoundError("Post not found")
	errProfileNotFound = models.NewBadRequestError("Profile not found")
	errInvalidBody     = models.NewBadRequestError("Invalid request body")
)

// respondWithError writes err in the body shape the web client expects:
// {errors:[...]} for validation failures, {msg} for other client errors and
// a plain "Server Error" for everything else.
func respondWithError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}

	switch appErr.Code {
	case models.CodeValidation:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": appErr.Fields})
	case models.CodeBadRequest:
		return c.Status(fiber.StatusBadRequest).JSON(models.MessageResponse{Msg: appErr.Message})
	case models.CodeUnauthenticated, models.CodeUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(models.MessageResponse{Msg: appErr.Message})
	case models.CodeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(models.MessageResponse{Msg: appErr.Message})
	}

	middleware.Logger.ErrorContext(c.UserContext(), "request failed",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", appErr.Error()))
	return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
}

// errorHandler handles errors that escaped a handler, such as unknown routes
// and oversized bodies.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(models.MessageResponse{Msg: fe.Message})
	}
	return respondWithError(c, err)
}

// parseID reads a uuid route parameter. A malformed value yields notFound so
// the client sees the same response as for an unknown id.
func parseID(c *fiber.Ctx, param string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

// bindJSON decodes the request body into dst. An empty body leaves dst zero
// so validation reports the missing fields.
func bindJSON(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// requester returns the authenticated user id. Routes behind AuthRequired
// always have one.
func requester(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, models.NewUnauthenticatedError("No Token, authorization denied")
	}
	return id, nil
}
