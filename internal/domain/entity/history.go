package entity

import "time"

// Tipos de entrada del historial de inventario.
const (
	HistoryTypeInitialStock         = "initial_stock"
	HistoryTypeManualAdjustment     = "manual_adjustment"
	HistoryTypeOrderCompletion      = "order_completion"
	HistoryTypeDirectSale           = "direct_sale"
	HistoryTypeCancellationReversal = "cancellation_reversal"
)

// HistoryEntry es una entrada del historial (append-only) de un artículo.
// Invariante: la suma de QuantityChange sobre el historial de un artículo,
// desde su primera entrada, es igual a su Quantity actual tras cada commit.
type HistoryEntry struct {
	ID             string
	ItemID         string
	Timestamp      time.Time
	Type           string
	QuantityChange int64 // con signo: positivo entrada, negativo salida
	Details        string
}
