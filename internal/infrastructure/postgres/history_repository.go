package postgres

import (
	"context"
	"fmt"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación del puerto HistoryRepository sobre PostgreSQL.
// La tabla es append-only: no existen UPDATE ni DELETE sobre inventory_history.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Append persiste una entrada inmutable del historial.
func (r *HistoryRepo) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	query := `
		INSERT INTO inventory_history (id, item_id, ts, type, quantity_change, details)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ItemID, entry.Timestamp, entry.Type, entry.QuantityChange, entry.Details,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// ListByItem devuelve el historial de un artículo en orden ascendente de timestamp.
func (r *HistoryRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	query := `
		SELECT id, item_id, ts, type, quantity_change, details
		FROM inventory_history WHERE item_id = $1 ORDER BY ts, id`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoryEntry
	for rows.Next() {
		var e entity.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Timestamp, &e.Type, &e.QuantityChange, &e.Details); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
