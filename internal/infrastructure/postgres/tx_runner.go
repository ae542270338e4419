package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/inventory"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/orders"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and orders.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un conflicto de serialización o deadlock se traduce a
// ErrConcurrentModification para que el caller reintente el evento completo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	histRepo := NewHistoryRepository(tx)

	if err := fn(itemRepo, histRepo); err != nil {
		return translateConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateConflict(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunOrder inicia una transacción que abarca pedidos, artículos e historial
// (para completar pedidos en una sola unidad atómica).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	histRepo := NewHistoryRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(itemRepo, histRepo, orderRepo); err != nil {
		return translateConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateConflict(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func translateConflict(err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%v: %w", err, domain.ErrConcurrentModification)
	}
	return err
}
