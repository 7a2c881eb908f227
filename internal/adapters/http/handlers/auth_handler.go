package handlers

import (
	"errors"

	"scholarchain/internal/core/domain"
	"scholarchain/internal/core/services"
	"scholarchain/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles wallet session endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateSessionRequest represents create session request
type CreateSessionRequest struct {
	Address string `json:"address"`
	RoleKey string `json:"roleKey"`
}

// CreateSession creates a wallet session
// @Summary Create wallet session
// @Description Exchange a wallet address and role key for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body CreateSessionRequest true "Wallet address and role key"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/session [post]
func (h *AuthHandler) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	session, err := h.authService.CreateSession(req.Address, req.RoleKey)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Error())
		case errors.Is(err, domain.ErrInvalidRoleKey):
			return response.Unauthorized(c, "Invalid role key")
		default:
			return response.InternalServerError(c, "Failed to create session")
		}
	}

	return response.Success(c, "Session created successfully", fiber.Map{
		"session": session,
	})
}
