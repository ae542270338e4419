package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/usecase"
)

// DashboardHandler maneja las métricas de la pantalla de inicio (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve los agregados del dashboard y las alertas de stock bajo.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(summary)
}
