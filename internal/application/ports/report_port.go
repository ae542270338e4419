package ports

import (
	"context"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
)

// ReportService define el puerto de salida hacia el generador de reportes con IA.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El adaptador es responsable de validar la forma de la respuesta (presencia de
// las claves requeridas); el contenido no se valida.
type ReportService interface {
	// GenerateDailyReport produce el reporte del día a partir de las ventas
	// agregadas. El contexto debe llevar un timeout para las llamadas externas.
	GenerateDailyReport(ctx context.Context, input dto.DailyReportInput) (*dto.DailyReportDTO, error)
}
