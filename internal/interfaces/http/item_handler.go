package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/inventory"
)

// ItemHandler maneja las peticiones HTTP del catálogo de inventario (protegido).
type ItemHandler struct {
	uc *inventory.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *inventory.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create registra un artículo nuevo con su stock inicial.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List devuelve el inventario completo; con ?search= filtra por nombre o ID
// ignorando mayúsculas y acentos.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// GetByID obtiene un artículo por su ID (SKU o código de barras).
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(item)
}

// Update edición manual con semántica merge.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(item)
}

// History devuelve el historial completo del artículo, ascendente por fecha.
func (h *ItemHandler) History(c *fiber.Ctx) error {
	entries, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(entries), "history": entries})
}
