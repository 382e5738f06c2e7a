// Package middleware provides the Fiber middleware shared by every route group.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TokenHeader carries the session token on protected requests.
const TokenHeader = "x-auth-token"

const userIDLocal = "userID"

// TokenParser verifies a raw token and returns the user it belongs to.
type TokenParser interface {
	Parse(raw string) (uuid.UUID, error)
}

// AuthRequired rejects requests without a valid x-auth-token and stores the
// requester id in the request locals and context.
func AuthRequired(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(TokenHeader)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "No Token, authorization denied",
			})
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "Token is not valid",
			})
		}

		c.Locals(userIDLocal, userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
		return c.Next()
	}
}

// UserID returns the requester id set by AuthRequired.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDLocal).(uuid.UUID)
	return id, ok
}

// QueryToken copies the token from a query parameter into the token header
// when the header is absent. Browsers cannot set headers on WebSocket
// upgrades, so the live feed passes the token in the URL.
func QueryToken(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(TokenHeader) == "" {
			if raw := c.Query(param); raw != "" {
				c.Request().Header.Set(TokenHeader, raw)
			}
		}
		return c.Next()
	}
}
