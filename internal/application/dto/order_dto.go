package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderLine línea solicitada al crear un pedido.
type CreateOrderLine struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// CreateOrderRequest body para POST /api/orders. Title opcional: vacío genera
// "Pedido #N". El precio se congela a la suma de subtotales al crear.
type CreateOrderRequest struct {
	Title string            `json:"title,omitempty"`
	Lines []CreateOrderLine `json:"lines"`
}

// OrderLineResponse línea de pedido en respuestas.
type OrderLineResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// OrderResponse representación HTTP de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Price     decimal.Decimal     `json:"price"`
	Lines     []OrderLineResponse `json:"lines"`
	Status    string              `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
}

// CompleteOrderResponse resultado de completar un pedido.
type CompleteOrderResponse struct {
	Order  OrderResponse `json:"order"`
	Alerts []string      `json:"alerts,omitempty"`
}
