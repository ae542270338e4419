package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
// ID es opcional: si viene vacío se genera un UUID; si viene, es el SKU o
// código de barras escaneado.
type CreateItemRequest struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MinStockAlert *int64          `json:"min_stock_alert,omitempty"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	SupplierName  *string         `json:"supplier_name,omitempty"`
	Details       string          `json:"details,omitempty"` // texto libre para el historial
}

// UpdateItemRequest body para PUT /api/items/:id. Semántica merge: solo los
// campos presentes sobrescriben; los ausentes se conservan.
type UpdateItemRequest struct {
	Name          *string          `json:"name,omitempty"`
	Quantity      *int64           `json:"quantity,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	MinStockAlert *int64           `json:"min_stock_alert,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	SupplierName  *string          `json:"supplier_name,omitempty"`
	Details       string           `json:"details,omitempty"`
}

// ItemResponse representación HTTP de un artículo.
type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MinStockAlert *int64          `json:"min_stock_alert,omitempty"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	SupplierName  *string         `json:"supplier_name,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HistoryEntryResponse una entrada del historial de un artículo.
type HistoryEntryResponse struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Type           string    `json:"type"`
	QuantityChange int64     `json:"quantity_change"`
	Details        string    `json:"details"`
}

// DirectSaleLine línea de una venta directa (salida rápida por escáner).
type DirectSaleLine struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// DirectSaleRequest body para POST /api/sales/direct.
type DirectSaleRequest struct {
	Lines []DirectSaleLine `json:"lines"`
}

// DirectSaleResponse resultado de una venta directa procesada.
type DirectSaleResponse struct {
	SaleID string          `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
	Alerts []string        `json:"alerts,omitempty"`
}
