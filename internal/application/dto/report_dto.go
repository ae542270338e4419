package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemSaleCount cantidad vendida de un artículo en el día del reporte.
type ItemSaleCount struct {
	Name     string
	Quantity int64
}

// DailyReportInput datos agregados del día que recibe el generador de reportes.
type DailyReportInput struct {
	Date         time.Time
	TotalRevenue decimal.Decimal
	TotalOrders  int
	// ItemSales ordenado de mayor a menor cantidad vendida.
	ItemSales []ItemSaleCount
}

// ReportAuthor firma del reporte.
type ReportAuthor struct {
	Nombre string `json:"nombre"`
	Cargo  string `json:"cargo"`
}

// DailyReportDTO reporte diario estructurado que devuelve la IA.
// Las claves JSON son el contrato con el generador; el núcleo solo valida
// la presencia de las claves, no su contenido.
type DailyReportDTO struct {
	ResumenEjecutivo            string       `json:"resumen_ejecutivo"`
	ObservacionesClave          []string     `json:"observaciones_clave"`
	RecomendacionesEstrategicas []string     `json:"recomendaciones_estrategicas"`
	ElaboradoPor                ReportAuthor `json:"elaborado_por"`
}

// ForecastPoint pronóstico de demanda para un día futuro.
type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
}

// ForecastResponse serie pronosticada para un artículo.
type ForecastResponse struct {
	ItemID   string          `json:"item_id"`
	Horizon  int             `json:"horizon_days"`
	Forecast []ForecastPoint `json:"forecast"`
}

// DashboardSummaryResponse métricas de la pantalla de inicio.
type DashboardSummaryResponse struct {
	TotalItems       int             `json:"total_items"`
	InventoryValue   decimal.Decimal `json:"inventory_value"`
	ProcessingOrders int             `json:"processing_orders"`
	TotalSuppliers   int             `json:"total_suppliers"`
	LowStockAlerts   []string        `json:"low_stock_alerts"`
}
