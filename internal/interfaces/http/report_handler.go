package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/forecast"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/usecase"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
)

// ReportHandler maneja reportes de gerencia y pronósticos de demanda (protegido).
type ReportHandler struct {
	reportUC   *usecase.ReportUseCase
	forecastUC *forecast.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *usecase.ReportUseCase, forecastUC *forecast.UseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, forecastUC: forecastUC}
}

// Daily genera el reporte gerencial del día UTC indicado en ?date=YYYY-MM-DD
// (hoy si se omite).
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return handleError(c, fmt.Errorf("fecha %q inválida, formato esperado YYYY-MM-DD: %w", raw, domain.ErrInvalidInput))
		}
		day = parsed
	}
	report, err := h.reportUC.GenerateDaily(c.Context(), day)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(report)
}

// Forecast pronostica la demanda diaria de un artículo para ?days= días
// (7 por defecto).
func (h *ReportHandler) Forecast(c *fiber.Ctx) error {
	horizon := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(c, fmt.Errorf("days %q inválido: %w", raw, domain.ErrInvalidInput))
		}
		horizon = n
	}
	resp, err := h.forecastUC.Forecast(c.Context(), c.Params("item_id"), horizon)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
