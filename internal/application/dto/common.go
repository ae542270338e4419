package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Items en falta cuando el código es INSUFFICIENT_STOCK.
	Shortages []ShortageDTO `json:"shortages,omitempty"`
}

// ShortageDTO detalle de una línea rechazada por stock insuficiente.
type ShortageDTO struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}
