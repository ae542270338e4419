package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para dashboard y pronóstico.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Usar con el pool.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardSummary calcula los agregados de la pantalla de inicio en una
// sola consulta.
func (r *AnalyticsRepo) GetDashboardSummary(ctx context.Context) (*repository.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM inventory_items),
			(SELECT coalesce(sum(quantity * purchase_price), 0) FROM inventory_items),
			(SELECT count(*) FROM orders WHERE status = $1),
			(SELECT count(*) FROM suppliers)`
	var s repository.DashboardSummary
	err := r.q.QueryRow(ctx, query, entity.OrderStatusProcessing).Scan(
		&s.TotalItems, &s.InventoryValue, &s.ProcessingOrders, &s.TotalSuppliers,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

// GetDailyConsumption suma las salidas (order_completion y direct_sale) de un
// artículo por día UTC dentro de [from, to). Solo devuelve días con ventas.
func (r *AnalyticsRepo) GetDailyConsumption(ctx context.Context, itemID string, from, to time.Time) ([]repository.DailyQuantity, error) {
	query := `
		SELECT date_trunc('day', ts AT TIME ZONE 'UTC') AS day, sum(-quantity_change)
		FROM inventory_history
		WHERE item_id = $1
		  AND type IN ($2, $3)
		  AND quantity_change < 0
		  AND ts >= $4 AND ts < $5
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query,
		itemID, entity.HistoryTypeOrderCompletion, entity.HistoryTypeDirectSale, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("daily consumption: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyQuantity
	for rows.Next() {
		var d repository.DailyQuantity
		if err := rows.Scan(&d.Date, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan daily consumption: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
