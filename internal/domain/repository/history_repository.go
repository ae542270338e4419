package repository

import (
	"context"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
)

// HistoryRepository define el puerto del historial append-only por artículo.
// No existe Update ni Delete: las entradas son inmutables.
type HistoryRepository interface {
	Append(ctx context.Context, entry *entity.HistoryEntry) error
	// ListByItem devuelve el historial de un artículo en orden ascendente de timestamp.
	ListByItem(ctx context.Context, itemID string) ([]*entity.HistoryEntry, error)
}
