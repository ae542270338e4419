package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido. Las transiciones son irreversibles:
// processing → completed o processing → cancelled.
const (
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderLine es una línea del pedido: snapshot de id y nombre del artículo
// al momento de crear el pedido, con la cantidad solicitada (> 0).
type OrderLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// Order representa un pedido. Price queda congelado a la suma de subtotales
// al momento de la creación. El stock solo se descuenta al completar.
type Order struct {
	ID          string
	Title       string
	Price       decimal.Decimal
	Ingredients []OrderLine
	Status      string
	Timestamp   time.Time // creación, UTC
}
