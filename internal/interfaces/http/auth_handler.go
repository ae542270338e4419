package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/auth"
)

// AuthHandler maneja el login del operador (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica al operador y devuelve un token JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in auth.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
