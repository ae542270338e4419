package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrConcurrentModification = errors.New("conflicto de modificación concurrente")
	ErrInvalidState           = errors.New("estado inválido para la operación")
	ErrUnauthorized           = errors.New("no autorizado")
)

// StockShortage describe una línea de ajuste que dejaría el stock en negativo.
type StockShortage struct {
	ItemID    string
	Name      string
	Available int64
	Requested int64
}

// InsufficientStockError agrupa todas las líneas en falta de un mismo evento.
// Es un rechazo de negocio: nunca se reintenta y el evento completo se aborta.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		names = append(names, fmt.Sprintf("%s (disponible: %d, solicitado: %d)", s.Name, s.Available, s.Requested))
	}
	return "stock insuficiente: " + strings.Join(names, ", ")
}

// Unwrap permite errors.Is(err, ErrInsufficientStock) en los handlers.
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
