package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario. El ID es el SKU/código de barras
// suministrado por el usuario o un UUID generado al crearlo.
// Quantity nunca puede ser negativa; toda mutación pasa por el motor de
// transacciones y deja un registro en el historial.
type Item struct {
	ID            string
	Name          string
	Quantity      int64
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	MinStockAlert *int64  // nil = sin umbral de alerta
	SupplierID    *string // referencia débil a Supplier
	SupplierName  *string
	UpdatedAt     time.Time
}
