package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary métricas agregadas para la pantalla de inicio.
type DashboardSummary struct {
	TotalItems       int
	InventoryValue   decimal.Decimal // Σ quantity × purchase_price
	ProcessingOrders int
	TotalSuppliers   int
}

// DailyQuantity cantidad vendida de un artículo en un día (agregado del historial).
type DailyQuantity struct {
	Date     time.Time
	Quantity int64
}

// AnalyticsRepository define el puerto de consultas agregadas de solo lectura.
// No participa en transacciones del motor de inventario.
type AnalyticsRepository interface {
	GetDashboardSummary(ctx context.Context) (*DashboardSummary, error)
	// GetDailyConsumption suma las salidas (order_completion y direct_sale) de un
	// artículo por día UTC dentro de [from, to). Devuelve solo días con ventas.
	GetDailyConsumption(ctx context.Context, itemID string, from, to time.Time) ([]DailyQuantity, error)
}
