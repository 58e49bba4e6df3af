package handler

import (
	"os"

	"crossword-collab-be/internal/pkg/logger"
	internalWS "crossword-collab-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SyncHandler owns the websocket endpoint feeding the session relay.
type SyncHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewSyncHandler(hub *internalWS.Hub, log logger.ILogger) *SyncHandler {
	return &SyncHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *SyncHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/sync/v1")
	g.Get("/ws", h.ServeWs)
}

// ServeWs authenticates the handshake and hands the upgraded connection to
// the hub. Browsers cannot set headers on websocket upgrades, so the token is
// accepted via query param first, bearer header second.
func (h *SyncHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("SyncHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SyncHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userId})
			internalWS.ServeWs(h.hub, conn, userId)
			h.logger.Info("SyncHandler", "WebSocket session ended", map[string]interface{}{"user_id": userId})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
