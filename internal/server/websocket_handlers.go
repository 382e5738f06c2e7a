package server

import (
	"encoding/json"
	"log/slog"

	"devconnector/internal/featureflags"
	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// LiveFeedEnabled rejects live feed requests when the live_feed flag is off
// for the requester, and plain HTTP requests that are not upgrades.
// It must run after AuthRequired.
func (s *Server) LiveFeedEnabled() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := requester(c)
		if err != nil {
			return respondWithError(c, err)
		}
		if !s.featureFlags.Enabled(featureflags.LiveFeed, userID) {
			return respondWithError(c, models.NewNotFoundError("Live feed is not enabled"))
		}
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// FeedSocket streams feed events to one connected client.
func (s *Server) FeedSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("userID").(uuid.UUID)

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			middleware.Logger.Warn("live feed connection refused",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
			msg, _ := json.Marshal(fiber.Map{"type": "error", "msg": err.Error()})
			_ = conn.WriteMessage(websocket.TextMessage, msg)
			_ = conn.Close()
			return
		}

		middleware.Logger.Info("live feed connected", slog.String("user_id", userID.String()))
		go client.WritePump()
		client.ReadPump()
	})
}
