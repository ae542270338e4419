package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos y ventas directas (protegido).
type OrderHandler struct {
	uc *orders.Lifecycle
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.Lifecycle) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create registra un pedido en estado processing (sin tocar stock).
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List devuelve los pedidos; con ?status= filtra por estado.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "orders": list})
}

// GetByID obtiene un pedido por ID.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(order)
}

// Complete transiciona processing → completed descontando el stock de todas
// las líneas en una sola transacción.
func (h *OrderHandler) Complete(c *fiber.Ctx) error {
	resp, err := h.uc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Cancel transiciona processing → cancelled.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(order)
}

// DirectSale descuenta stock de inmediato sin pedido previo (escáner).
func (h *OrderHandler) DirectSale(c *fiber.Ctx) error {
	var in dto.DirectSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ProcessDirectSale(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
